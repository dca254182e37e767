package stores

import (
	"strings"
	"sync"

	"liaison-portal/internal/models"
	"liaison-portal/internal/seed"
)

// DelegationStore serves the local delegation lists. Check-in state lives
// only in memory and resets on restart.
type DelegationStore struct {
	mu         sync.Mutex
	schools    []models.School
	attachees  []models.Person
	interns    []models.Person
	groups     []models.CommunityGroup
	volunteers []models.Volunteer
}

// NewDelegationStore constructs a DelegationStore from the seed lists.
func NewDelegationStore() *DelegationStore {
	return &DelegationStore{
		schools:    seed.Schools(),
		attachees:  seed.Attachees(),
		interns:    seed.Interns(),
		groups:     seed.CommunityGroups(),
		volunteers: seed.Volunteers(),
	}
}

func (s *DelegationStore) Schools() []models.School {
	return append([]models.School(nil), s.schools...)
}

func (s *DelegationStore) CommunityGroups() []models.CommunityGroup {
	return append([]models.CommunityGroup(nil), s.groups...)
}

func (s *DelegationStore) Volunteers() []models.Volunteer {
	return append([]models.Volunteer(nil), s.volunteers...)
}

// People returns attachees then interns, tagged with their role and
// filtered by a case-insensitive query over name, department, school and role.
func (s *DelegationStore) People(query string) []models.Person {
	query = strings.ToLower(strings.TrimSpace(query))

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Person, 0, len(s.attachees)+len(s.interns))
	for _, p := range s.combined() {
		if query == "" || strings.Contains(strings.ToLower(strings.Join([]string{p.Name, p.Department, p.School, p.Role}, " ")), query) {
			out = append(out, p)
		}
	}
	return out
}

// ToggleCheckedIn flips the check-in flag of every person with id across
// both lists. Ids are expected to be unique, so at most one record changes.
func (s *DelegationStore) ToggleCheckedIn(id string) (models.Person, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		updated models.Person
		found   bool
	)
	for i := range s.attachees {
		if s.attachees[i].ID == id {
			s.attachees[i].CheckedIn = !s.attachees[i].CheckedIn
			updated, found = withRole(s.attachees[i], models.RoleAttachment), true
		}
	}
	for i := range s.interns {
		if s.interns[i].ID == id {
			s.interns[i].CheckedIn = !s.interns[i].CheckedIn
			updated, found = withRole(s.interns[i], models.RoleInternship), true
		}
	}
	return updated, found
}

// combined must be called with mu held.
func (s *DelegationStore) combined() []models.Person {
	out := make([]models.Person, 0, len(s.attachees)+len(s.interns))
	for _, p := range s.attachees {
		out = append(out, withRole(p, models.RoleAttachment))
	}
	for _, p := range s.interns {
		out = append(out, withRole(p, models.RoleInternship))
	}
	return out
}

func withRole(p models.Person, role string) models.Person {
	p.Role = role
	return p
}
