package stores

import (
	"testing"

	"github.com/stretchr/testify/require"

	"liaison-portal/internal/models"
)

func TestDelegationPeopleCombinesRoles(t *testing.T) {
	s := NewDelegationStore()

	people := s.People("")
	require.Len(t, people, 12)
	require.Equal(t, "a1", people[0].ID)
	require.Equal(t, models.RoleAttachment, people[0].Role)
	require.Equal(t, "i1", people[6].ID)
	require.Equal(t, models.RoleInternship, people[6].Role)
}

func TestDelegationPeopleSearch(t *testing.T) {
	s := NewDelegationStore()

	require.Len(t, s.People("internship"), 6)
	require.Len(t, s.People("FINANCE"), 2)

	nairobi := s.People("nairobi high")
	require.Len(t, nairobi, 4)
	require.Empty(t, s.People("zzz"))
}

func TestDelegationToggleCheckedIn(t *testing.T) {
	s := NewDelegationStore()

	p, ok := s.ToggleCheckedIn("i3")
	require.True(t, ok)
	require.True(t, p.CheckedIn)
	require.Equal(t, models.RoleInternship, p.Role)

	for _, person := range s.People("") {
		require.Equal(t, person.ID == "i3", person.CheckedIn, person.ID)
	}

	p, ok = s.ToggleCheckedIn("i3")
	require.True(t, ok)
	require.False(t, p.CheckedIn)

	_, ok = s.ToggleCheckedIn("x9")
	require.False(t, ok)
}

func TestDelegationListsAreCopies(t *testing.T) {
	s := NewDelegationStore()

	schools := s.Schools()
	require.Len(t, schools, 5)
	schools[0].Name = "changed"
	require.Equal(t, "Nairobi High School", s.Schools()[0].Name)

	require.Len(t, s.CommunityGroups(), 5)
	require.Len(t, s.Volunteers(), 6)
}
