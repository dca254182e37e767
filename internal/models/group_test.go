package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroupCloneIsDeep(t *testing.T) {
	g := Group{
		ID:       "g-1",
		Members:  []Member{{ID: "m-1", Name: "Angela M"}},
		Messages: []Message{{ID: "msg-1", SenderID: "m-1", Text: "hi"}},
	}

	clone := g.Clone()
	clone.Members[0].Name = "changed"
	clone.Messages = append(clone.Messages, Message{ID: "msg-2"})

	require.Equal(t, "Angela M", g.Members[0].Name)
	require.Len(t, g.Messages, 1)
}

func TestGroupCloneKeepsEmptySlices(t *testing.T) {
	clone := Group{ID: "g-2"}.Clone()
	require.NotNil(t, clone.Members)
	require.NotNil(t, clone.Messages)
}

func TestFindMember(t *testing.T) {
	g := Group{Members: []Member{{ID: "m-1", Name: "Angela M"}, {ID: "m-2", Name: "Brian K"}}}

	m, ok := g.FindMember("m-2")
	require.True(t, ok)
	require.Equal(t, "Brian K", m.Name)

	_, ok = g.FindMember("m-9")
	require.False(t, ok)
}
