package stores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"liaison-portal/internal/mocks"
	"liaison-portal/internal/models"
	"liaison-portal/internal/repositories"
)

func newLoadedMeetingStore(t *testing.T, docs repositories.DocumentRepository) *MeetingStore {
	t.Helper()
	s := NewMeetingStore(docs)
	s.now = func() time.Time { return fixedNow }
	s.Load(context.Background())
	return s
}

func meetingIDs(meetings []models.Meeting) []string {
	ids := make([]string, 0, len(meetings))
	for _, m := range meetings {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestMeetingStoreLoadSeedsMissingDocument(t *testing.T) {
	docs := repositories.NewMemoryDocumentRepo()
	s := newLoadedMeetingStore(t, docs)

	require.Equal(t, []string{"m-1", "m-2", "m-3"}, meetingIDs(s.Meetings("")))
	_, err := docs.GetDocument(context.Background(), MeetingsKey)
	require.NoError(t, err)
}

func TestMeetingStoreLoadMalformedUsesSeed(t *testing.T) {
	docs := new(mocks.DocumentRepositoryMock)
	docs.On("GetDocument", mock.Anything, MeetingsKey).Return([]byte(`"oops`), nil).Once()

	s := newLoadedMeetingStore(t, docs)

	require.Len(t, s.Meetings(""), 3)
	docs.AssertNotCalled(t, "PutDocument", mock.Anything, mock.Anything, mock.Anything)
}

func TestMeetingStoreFilterByMode(t *testing.T) {
	s := newLoadedMeetingStore(t, repositories.NewMemoryDocumentRepo())

	require.Equal(t, []string{"m-2"}, meetingIDs(s.Meetings(models.MeetingVirtual)))
	require.Equal(t, []string{"m-1", "m-3"}, meetingIDs(s.Meetings(models.MeetingPhysical)))
	require.Len(t, s.Meetings(FilterAll), 3)
}

func TestMeetingStoreAddMeetingSortsChronologically(t *testing.T) {
	docs := repositories.NewMemoryDocumentRepo()
	s := newLoadedMeetingStore(t, docs)

	m, err := s.AddMeeting(context.Background(), MeetingInput{
		Title: "Budget prep",
		Date:  "2025-10-15",
		Time:  "08:30",
	})
	require.NoError(t, err)
	require.Equal(t, models.MeetingPhysical, m.Mode)
	require.Contains(t, m.ID, "m-")

	require.Equal(t, []string{"m-1", m.ID, "m-2", "m-3"}, meetingIDs(s.Meetings("")))

	reloaded := newLoadedMeetingStore(t, docs)
	require.Len(t, reloaded.Meetings(""), 4)
}

func TestMeetingStoreAddMeetingValidation(t *testing.T) {
	s := newLoadedMeetingStore(t, repositories.NewMemoryDocumentRepo())
	ctx := context.Background()

	_, err := s.AddMeeting(ctx, MeetingInput{Title: " ", Date: "2025-10-15", Time: "08:30"})
	require.ErrorIs(t, err, ErrMeetingIncomplete)

	_, err = s.AddMeeting(ctx, MeetingInput{Title: "x", Date: "2025-10-15"})
	require.ErrorIs(t, err, ErrMeetingIncomplete)

	_, err = s.AddMeeting(ctx, MeetingInput{Title: "x", Date: "15/10/2025", Time: "08:30"})
	require.ErrorIs(t, err, ErrMeetingSchedule)

	require.Len(t, s.Meetings(""), 3)
}

func TestMeetingStoreAddVirtualMeeting(t *testing.T) {
	s := newLoadedMeetingStore(t, repositories.NewMemoryDocumentRepo())

	m, err := s.AddMeeting(context.Background(), MeetingInput{
		Title:    "Remote sync",
		Date:     "2025-12-01",
		Time:     "10:00",
		Mode:     models.MeetingVirtual,
		Location: "https://meet.example.com/sync",
	})
	require.NoError(t, err)
	require.Equal(t, models.MeetingVirtual, m.Mode)
	require.Len(t, s.Meetings(models.MeetingVirtual), 2)
}

func TestMeetingStoreRemoveMeeting(t *testing.T) {
	s := newLoadedMeetingStore(t, repositories.NewMemoryDocumentRepo())
	ctx := context.Background()

	require.True(t, s.RemoveMeeting(ctx, "m-2"))
	require.False(t, s.RemoveMeeting(ctx, "m-2"))
	require.Equal(t, []string{"m-1", "m-3"}, meetingIDs(s.Meetings("")))
}

func TestMeetingStoreAddMeetingKeepsTextVerbatim(t *testing.T) {
	s := newLoadedMeetingStore(t, repositories.NewMemoryDocumentRepo())

	m, err := s.AddMeeting(context.Background(), MeetingInput{
		Title: "<Budget> review",
		Date:  "2025-10-20",
		Time:  "10:00",
		Notes: "bring Q&A notes",
	})
	require.NoError(t, err)
	require.Equal(t, "<Budget> review", m.Title)
	require.Equal(t, "bring Q&A notes", m.Notes)
}
