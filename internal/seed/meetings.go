package seed

import "liaison-portal/internal/models"

// Meetings returns the starter internal meetings.
func Meetings() []models.Meeting {
	return []models.Meeting{
		{
			ID:       "m-1",
			Title:    "Liaison Office Weekly Briefing",
			Date:     "2025-10-14",
			Time:     "09:00",
			Mode:     models.MeetingPhysical,
			Location: "Committee Room A, Parliament Buildings",
			Notes:    "Agenda: county report reviews",
		},
		{
			ID:       "m-2",
			Title:    "Digital Outreach: Virtual Townhall",
			Date:     "2025-10-16",
			Time:     "15:00",
			Mode:     models.MeetingVirtual,
			Location: "https://meet.example.com/slo-townhall",
			Notes:    "Open to public; registration required",
		},
		{
			ID:       "m-3",
			Title:    "Stakeholder Consultative Meeting",
			Date:     "2025-11-02",
			Time:     "11:30",
			Mode:     models.MeetingPhysical,
			Location: "Senate Liaison Conference Hall",
			Notes:    "Invite-only stakeholders and partners",
		},
	}
}
