package models

// Meeting modes.
const (
	MeetingPhysical = "Physical"
	MeetingVirtual  = "Virtual"
)

// Meeting is an internal meeting announcement. Date is YYYY-MM-DD and Time is HH:MM.
type Meeting struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Mode     string `json:"mode"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}
