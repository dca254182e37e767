package models

// SystemSenderID marks a message authored by the system rather than a member.
const SystemSenderID = "system"

// Group represents a chat group. Members and messages are owned by the group
// and reference each other only by id.
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   int64     `json:"createdAt"`
	Members     []Member  `json:"members"`
	Messages    []Message `json:"messages"`
}

// Member is a participant listed in a group. Role is free text.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Clone returns a deep copy of the group.
func (g Group) Clone() Group {
	out := g
	out.Members = append(make([]Member, 0, len(g.Members)), g.Members...)
	out.Messages = append(make([]Message, 0, len(g.Messages)), g.Messages...)
	return out
}

// FindMember returns the member with the given id.
func (g Group) FindMember(id string) (Member, bool) {
	for _, m := range g.Members {
		if m.ID == id {
			return m, true
		}
	}
	return Member{}, false
}
