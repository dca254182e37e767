package stores

import (
	"strings"
	"sync"

	"liaison-portal/internal/models"
	"liaison-portal/internal/seed"
)

// MinutesStore tracks which minutes have been received. Receipt flags live
// only in memory and reset on restart.
type MinutesStore struct {
	mu      sync.Mutex
	minutes []models.Minute
}

func NewMinutesStore() *MinutesStore {
	return &MinutesStore{minutes: seed.Minutes()}
}

// Minutes filters by receipt status (received, pending, or anything else for
// all) and by a case-insensitive query over title, summary and date.
func (s *MinutesStore) Minutes(status, query string) []models.Minute {
	status = strings.ToLower(strings.TrimSpace(status))
	query = strings.ToLower(strings.TrimSpace(query))

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Minute, 0, len(s.minutes))
	for _, m := range s.minutes {
		if status == models.MinutesReceived && !m.Received {
			continue
		}
		if status == models.MinutesPending && m.Received {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(m.Title), query) &&
			!strings.Contains(strings.ToLower(m.Summary), query) &&
			!strings.Contains(strings.ToLower(m.Date), query) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// ToggleReceived flips the receipt flag of the minutes with id.
func (s *MinutesStore) ToggleReceived(id string) (models.Minute, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.minutes {
		if s.minutes[i].ID == id {
			s.minutes[i].Received = !s.minutes[i].Received
			return s.minutes[i], true
		}
	}
	return models.Minute{}, false
}
