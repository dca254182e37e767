package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"liaison-portal/internal/models"
	"liaison-portal/internal/repositories"
	"liaison-portal/internal/seed"
)

// Sender names shown for messages whose sender is not a current member.
const (
	SystemSenderName  = "System"
	UnknownSenderName = "Unknown"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// GroupStore owns the group list and the active group selection.
type GroupStore struct {
	mu       sync.Mutex
	docs     repositories.DocumentRepository
	now      func() time.Time
	groups   []models.Group
	activeID string
}

// NewGroupStore constructs an empty GroupStore; call Load before serving.
func NewGroupStore(docs repositories.DocumentRepository) *GroupStore {
	return &GroupStore{docs: docs, now: time.Now}
}

// Load reads the persisted groups. A missing document is replaced by the
// seed; an unreadable one falls back to the seed without overwriting it.
func (s *GroupStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var groups []models.Group
	found, err := loadDocument(ctx, s.docs, GroupsKey, &groups)
	switch {
	case err != nil:
		slog.Warn("groups document unreadable, using seed", "error", err)
		groups = seed.Groups(s.now())
	case !found:
		groups = seed.Groups(s.now())
		saveDocument(ctx, s.docs, GroupsKey, groups)
	}

	s.groups = groups
	s.activeID = ""
	if len(groups) > 0 {
		s.activeID = groups[0].ID
	}
	slog.Info("groups loaded", "count", len(groups), "seeded", !found || err != nil)
}

// Groups returns a copy of every group in display order.
func (s *GroupStore) Groups() []models.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneGroups(s.groups)
}

// Search returns groups whose name or description contains q, ignoring case.
func (s *GroupStore) Search(q string) []models.Group {
	q = strings.ToLower(strings.TrimSpace(q))

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Group, 0, len(s.groups))
	for _, g := range s.groups {
		if q == "" ||
			strings.Contains(strings.ToLower(g.Name), q) ||
			strings.Contains(strings.ToLower(g.Description), q) {
			out = append(out, g.Clone())
		}
	}
	return out
}

// Group returns a copy of the group with the given id.
// An empty id resolves to the active group.
func (s *GroupStore) Group(id string) (models.Group, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.resolve(id)
	if idx < 0 {
		return models.Group{}, false
	}
	return s.groups[idx].Clone(), true
}

// Active returns the active group id, or "" when nothing is selected.
func (s *GroupStore) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Select makes id the active group. Unknown ids leave the selection unchanged.
func (s *GroupStore) Select(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(id) < 0 {
		return false
	}
	s.activeID = id
	return true
}

// CreateGroup prepends a new empty group and selects it.
func (s *GroupStore) CreateGroup(ctx context.Context, name, description string) models.Group {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		name = fmt.Sprintf("Group %d", len(s.groups)+1)
	}
	now := s.now()
	g := models.Group{
		ID:          newID("g-", now),
		Name:        name,
		Description: description,
		CreatedAt:   now.UnixMilli(),
		Members:     []models.Member{},
		Messages:    []models.Message{},
	}
	s.groups = append([]models.Group{g}, s.groups...)
	s.activeID = g.ID
	s.persist(ctx)
	return g.Clone()
}

// DeleteGroup removes the group and clears the selection if it was active.
func (s *GroupStore) DeleteGroup(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.groups = append(s.groups[:idx:idx], s.groups[idx+1:]...)
	if s.activeID == id {
		s.activeID = ""
	}
	s.persist(ctx)
	return true
}

// ClearAll drops every group and the stored document.
func (s *GroupStore) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = []models.Group{}
	s.activeID = ""
	deleteDocument(ctx, s.docs, GroupsKey)
}

// AddMember appends a member to the group. It is a no-op when the group
// cannot be resolved or the trimmed name is empty.
func (s *GroupStore) AddMember(ctx context.Context, groupID, name, role string) (models.Member, bool) {
	name = strings.TrimSpace(name)
	role = strings.TrimSpace(role)
	if name == "" {
		return models.Member{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.resolve(groupID)
	if idx < 0 {
		return models.Member{}, false
	}
	member := models.Member{ID: newID("m-", s.now()), Name: name, Role: role}
	g := s.groups[idx].Clone()
	g.Members = append(g.Members, member)
	s.groups[idx] = g
	s.persist(ctx)
	return member, true
}

// RemoveMember removes the member from the group. Messages already sent by
// the member keep their sender id.
func (s *GroupStore) RemoveMember(ctx context.Context, groupID, memberID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.resolve(groupID)
	if idx < 0 {
		return false
	}
	g := s.groups[idx]
	members := make([]models.Member, 0, len(g.Members))
	for _, m := range g.Members {
		if m.ID != memberID {
			members = append(members, m)
		}
	}
	if len(members) == len(g.Members) {
		return false
	}
	g = g.Clone()
	g.Members = members
	s.groups[idx] = g
	s.persist(ctx)
	return true
}

// SendMessage appends a message to the group. It is a no-op when the text
// trims to empty or the group cannot be resolved. An empty sender id means
// the system sentinel.
func (s *GroupStore) SendMessage(ctx context.Context, groupID, text, senderID string) (models.Message, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Message{}, false
	}
	senderID = strings.TrimSpace(senderID)
	if senderID == "" {
		senderID = models.SystemSenderID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.resolve(groupID)
	if idx < 0 {
		return models.Message{}, false
	}
	now := s.now()
	msg := models.Message{
		ID:       newID("msg-", now),
		SenderID: senderID,
		Text:     text,
		Time:     now.UnixMilli(),
	}
	g := s.groups[idx].Clone()
	g.Messages = append(g.Messages, msg)
	s.groups[idx] = g
	s.persist(ctx)
	return msg, true
}

// Messages returns the group's messages with sender names resolved.
func (s *GroupStore) Messages(groupID string) ([]models.MessageView, bool) {
	g, ok := s.Group(groupID)
	if !ok {
		return nil, false
	}
	out := make([]models.MessageView, 0, len(g.Messages))
	for _, m := range g.Messages {
		out = append(out, models.MessageView{Message: m, SenderName: SenderName(g, m.SenderID)})
	}
	return out, true
}

// SenderName resolves a sender id against the group's current members.
func SenderName(g models.Group, senderID string) string {
	if m, ok := g.FindMember(senderID); ok {
		return m.Name
	}
	if senderID == models.SystemSenderID {
		return SystemSenderName
	}
	return UnknownSenderName
}

// ExportGroup renders the group as an indented JSON document and derives a
// download filename from the group name.
func ExportGroup(g models.Group) (string, []byte, error) {
	body, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("encode group %s: %w", g.ID, err)
	}
	return ExportFilename(g.Name), body, nil
}

// ExportFilename lowercases name and replaces whitespace runs with dashes.
func ExportFilename(name string) string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(name, "-")) + ".json"
}

func (s *GroupStore) resolve(id string) int {
	if id == "" {
		id = s.activeID
	}
	if id == "" {
		return -1
	}
	return s.indexOf(id)
}

func (s *GroupStore) indexOf(id string) int {
	for i, g := range s.groups {
		if g.ID == id {
			return i
		}
	}
	return -1
}

// persist must be called with mu held.
func (s *GroupStore) persist(ctx context.Context) {
	saveDocument(ctx, s.docs, GroupsKey, s.groups)
}

func cloneGroups(groups []models.Group) []models.Group {
	out := make([]models.Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Clone())
	}
	return out
}
