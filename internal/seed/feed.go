package seed

import (
	"time"

	"liaison-portal/internal/models"
)

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// Feed returns the editorial starter feed.
func Feed() []models.Post {
	return []models.Post{
		{
			ID:       "f1",
			Type:     models.PostNews,
			Title:    "County Devolution Funding — New Guidelines Published",
			Summary:  "The Senate Liaison Office releases updated guidance for county budget monitoring and transfers. Key changes focus on transparency and auditability.",
			Time:     mustTime("2025-09-30T10:00:00Z"),
			Author:   "Press Office",
			Featured: true,
		},
		{
			ID:      "f2",
			Type:    models.PostAnalysis,
			Title:   "Data Brief: Fiscal Transfers vs Service Delivery",
			Summary: "A short analysis showing correlations between transfer timing and service delivery metrics across counties.",
			Time:    mustTime("2025-09-24T08:00:00Z"),
			Author:  "Policy & Research",
		},
		{
			ID:      "f3",
			Type:    models.PostCommunity,
			Title:   "School Visit Gallery — Nyeri County",
			Summary: "Photos and notes from the liaison office site visit to Nyeri schools.",
			Media:   "/photos/liaison-visit-1.jpg",
			Time:    mustTime("2025-09-20T14:30:00Z"),
			Author:  "Outreach Team",
		},
		{
			ID:      "f4",
			Type:    models.PostMotivation,
			Title:   "Daily Spark",
			Summary: "“Small efforts repeated consistently move mountains.” — Keep showing up for the people.",
			Time:    mustTime("2025-09-25T06:00:00Z"),
			Author:  "Culture Desk",
		},
		{
			ID:      "f5",
			Type:    models.PostMedia,
			Title:   "Watch: Webinar on Citizen Engagement",
			Summary: "Recording of the Digital Outreach Webinar — 90 minutes of practical tips.",
			Media:   "/media/webinar-thumb.jpg",
			Time:    mustTime("2025-09-18T11:00:00Z"),
			Author:  "Digital Team",
		},
		{
			ID:      "f6",
			Type:    models.PostNews,
			Title:   "Stakeholder Forum — Key Takeaways",
			Summary: "Summary of the stakeholder forum highlighting next steps and action owners.",
			Time:    mustTime("2025-09-15T16:00:00Z"),
			Author:  "Press Office",
		},
	}
}
