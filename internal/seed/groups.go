// Package seed holds the fixed sample records used when no persisted state exists.
package seed

import (
	"time"

	"liaison-portal/internal/models"
)

// Groups returns the starter group list relative to now.
func Groups(now time.Time) []models.Group {
	day := 24 * time.Hour
	return []models.Group{
		{
			ID:          "g-1",
			Name:        "County Youth Delegation",
			Description: "Youth delegates from various wards — visit schedule & coordination.",
			CreatedAt:   now.Add(-6 * day).UnixMilli(),
			Members: []models.Member{
				{ID: "m-1", Name: "Angela M", Role: "Coordinator"},
				{ID: "m-2", Name: "Brian K", Role: "Logistics"},
				{ID: "m-3", Name: "Cynthia R", Role: "Registration"},
			},
			Messages: []models.Message{
				{
					ID:       "msg-1",
					SenderID: "m-1",
					Text:     "Welcome team — meet at 08:00 at the main gate.",
					Time:     now.Add(-5 * day).UnixMilli(),
				},
				{
					ID:       "msg-2",
					SenderID: "m-2",
					Text:     "Noted. I will confirm transport.",
					Time:     now.Add(-5*day + time.Minute).UnixMilli(),
				},
			},
		},
	}
}
