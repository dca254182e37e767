package stores

import (
	"testing"

	"github.com/stretchr/testify/require"

	"liaison-portal/internal/models"
)

func minuteIDs(minutes []models.Minute) []string {
	ids := make([]string, 0, len(minutes))
	for _, m := range minutes {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestMinutesFilterByStatus(t *testing.T) {
	s := NewMinutesStore()

	require.Len(t, s.Minutes("", ""), 7)
	require.Len(t, s.Minutes("all", ""), 7)
	require.Equal(t, []string{"m-2025-08-05", "m-2025-06-14"}, minuteIDs(s.Minutes(models.MinutesReceived, "")))
	require.Len(t, s.Minutes("Pending", ""), 5)
}

func TestMinutesSearch(t *testing.T) {
	s := NewMinutesStore()

	require.Equal(t, []string{"m-2025-07-10-1", "m-2025-07-10-2"}, minuteIDs(s.Minutes("", "2025-07")))
	require.Equal(t, []string{"m-2025-08-05"}, minuteIDs(s.Minutes("", "BUDGET")))
	require.Empty(t, s.Minutes(models.MinutesReceived, "stakeholder"))
}

func TestMinutesToggleReceived(t *testing.T) {
	s := NewMinutesStore()

	m, ok := s.ToggleReceived("m-2025-07-10-1")
	require.True(t, ok)
	require.True(t, m.Received)
	require.Equal(t, []string{"m-2025-08-05", "m-2025-07-10-1", "m-2025-06-14"}, minuteIDs(s.Minutes(models.MinutesReceived, "")))

	// the duplicate entry with the same title keeps its own flag
	require.Equal(t, []string{"m-2025-07-10-2"}, minuteIDs(s.Minutes(models.MinutesPending, "july")))

	m, ok = s.ToggleReceived("m-2025-07-10-1")
	require.True(t, ok)
	require.False(t, m.Received)

	_, ok = s.ToggleReceived("missing")
	require.False(t, ok)
}
