package stores

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"liaison-portal/internal/models"
	"liaison-portal/internal/repositories"
	"liaison-portal/internal/seed"
)

var (
	ErrMeetingIncomplete = errors.New("please provide title, date, and time")
	ErrMeetingSchedule   = errors.New("date must be YYYY-MM-DD and time HH:MM")
)

const scheduleLayout = "2006-01-02T15:04"

// MeetingInput carries the fields of a new meeting.
type MeetingInput struct {
	Title    string
	Date     string
	Time     string
	Mode     string
	Location string
	Notes    string
}

// MeetingStore owns the internal meeting list.
type MeetingStore struct {
	mu       sync.Mutex
	docs     repositories.DocumentRepository
	now      func() time.Time
	meetings []models.Meeting
}

// NewMeetingStore constructs an empty MeetingStore; call Load before serving.
func NewMeetingStore(docs repositories.DocumentRepository) *MeetingStore {
	return &MeetingStore{docs: docs, now: time.Now}
}

// Load reads the persisted meetings, seeding a missing document and falling
// back to the seed when the document is unreadable.
func (s *MeetingStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var meetings []models.Meeting
	found, err := loadDocument(ctx, s.docs, MeetingsKey, &meetings)
	switch {
	case err != nil:
		slog.Warn("meetings document unreadable, using seed", "error", err)
		meetings = seed.Meetings()
	case !found:
		meetings = seed.Meetings()
		saveDocument(ctx, s.docs, MeetingsKey, meetings)
	}
	s.meetings = meetings
	slog.Info("meetings loaded", "count", len(meetings))
}

// Meetings returns meetings in chronological order, optionally limited to one mode.
func (s *MeetingStore) Meetings(mode string) []models.Meeting {
	mode = strings.TrimSpace(mode)

	s.mu.Lock()
	out := make([]models.Meeting, 0, len(s.meetings))
	for _, m := range s.meetings {
		if mode == "" || mode == FilterAll || m.Mode == mode {
			out = append(out, m)
		}
	}
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return scheduledAt(out[i]).Before(scheduledAt(out[j]))
	})
	return out
}

// AddMeeting validates and prepends a meeting.
func (s *MeetingStore) AddMeeting(ctx context.Context, in MeetingInput) (models.Meeting, error) {
	m := models.Meeting{
		Title:    strings.TrimSpace(in.Title),
		Date:     strings.TrimSpace(in.Date),
		Time:     strings.TrimSpace(in.Time),
		Mode:     strings.TrimSpace(in.Mode),
		Location: strings.TrimSpace(in.Location),
		Notes:    strings.TrimSpace(in.Notes),
	}
	if m.Title == "" || m.Date == "" || m.Time == "" {
		return models.Meeting{}, ErrMeetingIncomplete
	}
	if _, err := time.Parse(scheduleLayout, m.Date+"T"+m.Time); err != nil {
		return models.Meeting{}, ErrMeetingSchedule
	}
	if m.Mode != models.MeetingVirtual {
		m.Mode = models.MeetingPhysical
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = newID("m-", s.now())
	s.meetings = append([]models.Meeting{m}, s.meetings...)
	saveDocument(ctx, s.docs, MeetingsKey, s.meetings)
	return m, nil
}

// RemoveMeeting deletes the meeting with id.
func (s *MeetingStore) RemoveMeeting(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.meetings {
		if m.ID == id {
			s.meetings = append(s.meetings[:i:i], s.meetings[i+1:]...)
			saveDocument(ctx, s.docs, MeetingsKey, s.meetings)
			return true
		}
	}
	return false
}

// scheduledAt parses the meeting's date and time; unparseable values sort first.
func scheduledAt(m models.Meeting) time.Time {
	t, err := time.Parse(scheduleLayout, m.Date+"T"+m.Time)
	if err != nil {
		return time.Time{}
	}
	return t
}
