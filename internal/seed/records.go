package seed

import "liaison-portal/internal/models"

// Minutes returns the minutes list with its initial receipt flags.
// Two entries share a title and date but have distinct ids.
func Minutes() []models.Minute {
	return []models.Minute{
		{ID: "m-2025-09-01", Title: "Senate Liaison — Monthly Meeting Minutes (Sept 2025)", Date: "2025-09-01", File: "/minutes/meeting-minutes-sept-2025.pdf", Summary: "Discussion on devolution implementation and county coordination."},
		{ID: "m-2025-08-05", Title: "Budget Oversight Minutes (Aug 2025)", Date: "2025-08-05", File: "/minutes/budget-oversight-aug-2025.pdf", Summary: "Review of county budget queries and committee directives.", Received: true},
		{ID: "m-2025-07-10-1", Title: "Stakeholder Forum Minutes (July 2025)", Date: "2025-07-10", File: "/minutes/stakeholder-forum-jul-2025.pdf", Summary: "Notes and action points from the county stakeholder forum."},
		{ID: "m-2025-06-14", Title: "Operational Briefing Minutes (June 2025)", Date: "2025-06-14", File: "/minutes/op-briefing-jun-2025.pdf", Summary: "Internal operations and field visit planning.", Received: true},
		{ID: "m-2025-07-10-2", Title: "Stakeholder Forum Minutes (July 2025)", Date: "2025-07-10", File: "/minutes/stakeholder-forum-jul-2025.pdf", Summary: "Notes and action points from the county stakeholder forum."},
		{ID: "m-2025-03-10", Title: "Stakeholder Forum Minutes (March 2025)", Date: "2025-03-10", File: "/minutes/stakeholder-forum-mar-2025.pdf", Summary: "Notes and action points from the county stakeholder forum."},
		{ID: "m-2025-04-10", Title: "Stakeholder Forum Minutes (April 2025)", Date: "2025-04-10", File: "/minutes/stakeholder-forum-apr-2025.pdf", Summary: "Notes and action points from the county stakeholder forum."},
	}
}

func Reports() []models.Report {
	return []models.Report{
		{ID: "r-annual-2024", Title: "Annual Devolution Report 2024", Date: "2024-12-15", Summary: "Comprehensive assessment of devolution implementation across counties, fiscal transfers and performance metrics.", FileURL: "/reports/annual-devolution-2024.pdf", Type: models.ReportAnnual},
		{ID: "r-q1-2025", Title: "Quarterly Report Q1 2025", Date: "2025-04-10", Summary: "First quarter update on budget oversight and county performance.", FileURL: "/reports/quarterly-q1-2025.pdf", Type: models.ReportQuarterly},
		{ID: "r-q2-2025", Title: "Quarterly Report Q2 2025", Date: "2025-07-10", Summary: "Second quarter assessment and recommendations.", FileURL: "/reports/quarterly-q2-2025.pdf", Type: models.ReportQuarterly},
		{ID: "r-half-2025-h1", Title: "Half-Year Review — H1 2025", Date: "2025-07-20", Summary: "Mid-year review summarizing progress and key indicators.", FileURL: "/reports/half-h1-2025.pdf", Type: models.ReportHalfYear},
		{ID: "r-sector-2025-health", Title: "Sectoral Review: Health Services 2025", Date: "2025-09-01", Summary: "County-level health initiatives review and recommended interventions for improvement.", FileURL: "/reports/sector-health-2025.pdf", Type: models.ReportAnnual},
	}
}

// Photos returns the gallery images in display order.
func Photos() []models.Photo {
	return []models.Photo{
		{ID: "p1", Src: "/photos/liaison-visit-1.jpg", Caption: "County site visit — progress review"},
		{ID: "p2", Src: "/photos/liaison-visit-2.jpg", Caption: "Stakeholder forum — plenary session"},
		{ID: "p3", Src: "/photos/liaison-visit-3.jpg", Caption: "Team briefing before field visit"},
		{ID: "p4", Src: "/photos/liaison-visit-4.jpg", Caption: "Documentation & records review"},
		{ID: "p5", Src: "/photos/liaison-visit-5.jpg", Caption: "Public engagement — Q&A"},
		{ID: "p6", Src: "/photos/liaison-visit-6.jpg", Caption: "Delegation group photo"},
	}
}
