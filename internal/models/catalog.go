package models

// Visitor is an international delegate visiting the office.
type Visitor struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Title     string          `json:"title"`
	Country   string          `json:"country"`
	Region    string          `json:"region"`
	Photo     string          `json:"photo"`
	Arrival   string          `json:"arrival"`
	Departure string          `json:"departure"`
	Purpose   string          `json:"purpose"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Bio       string          `json:"bio"`
	Schedule  []ScheduleEntry `json:"schedule"`
}

// ScheduleEntry is a single day on a visitor's itinerary.
type ScheduleEntry struct {
	Date     string `json:"date"`
	Activity string `json:"activity"`
}

// Event is an upcoming calendar event.
type Event struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Note     string `json:"note"`
}

// Correspondence kinds.
const (
	CorrespondenceInternal = "internal"
	CorrespondenceExternal = "external"
)

// Correspondence is a memo or letter shown in the correspondence viewer.
type Correspondence struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Subject string `json:"subject"`
	Date    string `json:"date"`
	From    string `json:"from"`
	To      string `json:"to"`
	Body    string `json:"body"`
	File    string `json:"file"`
}

// Minutes receipt filters.
const (
	MinutesReceived = "received"
	MinutesPending  = "pending"
)

// Minute is a set of meeting minutes that staff acknowledge on receipt.
type Minute struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	File     string `json:"file"`
	Summary  string `json:"summary"`
	Received bool   `json:"received"`
}

// Report types.
const (
	ReportQuarterly = "Quarterly"
	ReportHalfYear  = "Half-Year"
	ReportAnnual    = "Annual"
)

// Report is a published office report.
type Report struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Summary string `json:"summary"`
	FileURL string `json:"fileUrl"`
	Type    string `json:"type"`
}

// Photo is a gallery image.
type Photo struct {
	ID      string `json:"id"`
	Src     string `json:"src"`
	Caption string `json:"caption"`
}
