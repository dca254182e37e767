package models

// Person roles in the combined delegation list.
const (
	RoleAttachment = "Attachment"
	RoleInternship = "Internship"
)

// School is a school visited by the local delegation.
type School struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	County  string `json:"county"`
	Contact string `json:"contact"`
	Visits  int    `json:"visits"`
}

// Person is an attachee or intern that can be checked in.
type Person struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Expiry     string `json:"expiry"`
	School     string `json:"school"`
	Role       string `json:"role,omitempty"`
	CheckedIn  bool   `json:"checkedIn"`
}

// CommunityGroup is a local organisation engaging with the office.
type CommunityGroup struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Leader  string `json:"leader"`
	Contact string `json:"contact"`
	Purpose string `json:"purpose"`
}

// Volunteer supports delegation events at an assigned school.
type Volunteer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Assigned string `json:"assigned"`
}
