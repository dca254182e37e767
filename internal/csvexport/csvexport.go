// Package csvexport renders delegation lists as CSV downloads.
//
// The header row is written bare; every value is quoted with embedded quotes
// doubled. encoding/csv only quotes fields that need it, so rows are
// assembled here.
package csvexport

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"liaison-portal/internal/models"
)

// Export list names.
const (
	ListSchools    = "schools"
	ListGroups     = "groups"
	ListVolunteers = "volunteers"
	ListMembers    = "members"
)

var (
	SchoolHeader    = []string{"id", "name", "county", "contact", "visits"}
	GroupHeader     = []string{"id", "name", "leader", "contact", "purpose"}
	VolunteerHeader = []string{"id", "name", "role", "phone", "assigned"}
	MemberHeader    = []string{"id", "name", "department", "expiry", "school", "role"}
)

// Write renders header and rows to w. Nothing is written when rows is empty.
func Write(w io.Writer, header []string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(header, ","))
	for _, row := range rows {
		quoted := make([]string, len(row))
		for i, v := range row {
			quoted[i] = Quote(v)
		}
		lines = append(lines, strings.Join(quoted, ","))
	}
	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// Quote wraps v in double quotes, doubling any embedded quote.
func Quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// Filename returns the download name for a list.
func Filename(list string) string {
	return list + ".csv"
}

func SchoolRows(schools []models.School) [][]string {
	rows := make([][]string, 0, len(schools))
	for _, s := range schools {
		rows = append(rows, []string{s.ID, s.Name, s.County, s.Contact, strconv.Itoa(s.Visits)})
	}
	return rows
}

func GroupRows(groups []models.CommunityGroup) [][]string {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{g.ID, g.Name, g.Leader, g.Contact, g.Purpose})
	}
	return rows
}

func VolunteerRows(volunteers []models.Volunteer) [][]string {
	rows := make([][]string, 0, len(volunteers))
	for _, v := range volunteers {
		rows = append(rows, []string{v.ID, v.Name, v.Role, v.Phone, v.Assigned})
	}
	return rows
}

func MemberRows(people []models.Person) [][]string {
	rows := make([][]string, 0, len(people))
	for _, p := range people {
		rows = append(rows, []string{p.ID, p.Name, p.Department, p.Expiry, p.School, p.Role})
	}
	return rows
}
