package seed

import "liaison-portal/internal/models"

// Visitors returns the visiting international delegates.
func Visitors() []models.Visitor {
	return []models.Visitor{
		{
			ID:        "v-ken-001",
			Name:      "Hon. Alex Cooper",
			Title:     "Chair, Security Committee",
			Country:   "South Africa",
			Region:    "Africa",
			Photo:     "/image1.jpg",
			Arrival:   "2025-10-04",
			Departure: "2025-10-09",
			Purpose:   "Exchange on county governance & fiscal transfers",
			Email:     "alex@parliament.za",
			Phone:     "+27 21 000 0000",
			Bio:       "Hon. Cooper has led parliamentary oversight on national security and local government issues, with a focus on intergovernmental relations and service delivery.",
			Schedule: []models.ScheduleEntry{
				{Date: "2025-10-05", Activity: "Briefing with Liaison Office"},
				{Date: "2025-10-06", Activity: "County visit — Nairobi"},
				{Date: "2025-10-08", Activity: "Public forum — devolution outcomes"},
			},
		},
		{
			ID:        "v-uk-001",
			Name:      "Lord Marcus Ashby",
			Title:     "Parliamentary Delegate",
			Country:   "United Kingdom",
			Region:    "Europe",
			Photo:     "/image2.jpg",
			Arrival:   "2025-10-03",
			Departure: "2025-10-07",
			Purpose:   "Comparative legislative oversight study",
			Email:     "m.ashby@parliament.uk",
			Phone:     "+44 20 0000 0000",
			Bio:       "Lord Ashby chairs the Oversight and Governance Committee, with two decades of experience in legislative review and public policy evaluation.",
			Schedule: []models.ScheduleEntry{
				{Date: "2025-10-04", Activity: "Roundtable: budget oversight"},
				{Date: "2025-10-05", Activity: "Visit to county governance projects"},
			},
		},
		{
			ID:        "v-us-001",
			Name:      "Dr. Sofia Martinez",
			Title:     "Senior Policy Advisor",
			Country:   "United States",
			Region:    "Americas",
			Photo:     "/image3.jpg",
			Arrival:   "2025-10-10",
			Departure: "2025-10-14",
			Purpose:   "Technical assistance on monitoring & evaluation",
			Email:     "s.martinez@policyinst.org",
			Phone:     "+1 202-000-0000",
			Bio:       "Dr. Martinez specialises in public sector monitoring and performance measurement, and leads programs linking data with policy decisions.",
			Schedule: []models.ScheduleEntry{
				{Date: "2025-10-11", Activity: "M&E workshop"},
				{Date: "2025-10-12", Activity: "County data clinic"},
			},
		},
	}
}

// Events returns the upcoming calendar events.
func Events() []models.Event {
	return []models.Event{
		{ID: 1, Title: "County Stakeholder Forum", Date: "2025-10-07", Time: "09:00", Location: "Nairobi County Hall", Type: "Public", Note: "Open floor for county devolution updates and Q&A."},
		{ID: 2, Title: "Senate Briefing: Budget 2026", Date: "2025-10-11", Time: "14:30", Location: "Senate Committee Room A", Type: "Internal", Note: "Closed session for committee members and invited partners."},
		{ID: 3, Title: "Digital Outreach Webinar", Date: "2025-10-15", Time: "11:00", Location: "Online — Zoom", Type: "Online", Note: "Webinar on citizen engagement and digital platforms."},
		{ID: 4, Title: "Site Visit: Devolution Project", Date: "2025-10-20", Time: "07:30", Location: "Kisumu — Project Site B", Type: "Field Visit", Note: "On-site progress review; PPE required."},
		{ID: 5, Title: "Morning Brief — Liaison Office", Date: "2025-10-23", Time: "08:00", Location: "Liaison Office Boardroom", Type: "Internal", Note: "Daily operations briefing and tasking."},
	}
}

// Correspondence returns internal memos followed by external letters.
func Correspondence() []models.Correspondence {
	return []models.Correspondence{
		{
			ID:      "i-001",
			Kind:    models.CorrespondenceInternal,
			Subject: "Inter-office memo: Liaison duties Q4",
			Date:    "2025-09-05",
			From:    "Chief Liaison Officer",
			To:      "Operations Team",
			Body:    "Team — Please prepare the devolution briefing packs for county visits scheduled in October. Ensure all attachments are compiled and cleared by legal.",
			File:    "/correspondence/internal-memo-q4.pdf",
		},
		{
			ID:      "i-002",
			Kind:    models.CorrespondenceInternal,
			Subject: "Staff circular: Security protocols",
			Date:    "2025-08-18",
			From:    "Administrative Head",
			To:      "All Staff",
			Body:    "All staff are reminded to wear official badges while on site visits. Any anomalies should be reported to the security desk immediately.",
			File:    "/correspondence/security-circular-2025.pdf",
		},
		{
			ID:      "e-001",
			Kind:    models.CorrespondenceExternal,
			Subject: "Invitation: County Stakeholder Forum",
			Date:    "2025-09-20",
			From:    "Kisumu County Secretary",
			To:      "Senate Liaison Office",
			Body:    "You are cordially invited to attend the County Stakeholder Forum on October 7. The agenda includes updates on devolved projects and citizen engagement sessions.",
			File:    "/correspondence/invitation-kisumu.pdf",
		},
		{
			ID:      "e-002",
			Kind:    models.CorrespondenceExternal,
			Subject: "Citizen petition: Water access improvements",
			Date:    "2025-09-12",
			From:    "Residents Association — Ward 6",
			To:      "Senate Liaison Office",
			Body:    "We submit this petition requesting urgent attention to water supply interruptions affecting multiple villages. Please advise on next steps.",
			File:    "/correspondence/petition-water-ward6.pdf",
		},
	}
}
