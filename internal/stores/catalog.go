package stores

import (
	"sort"
	"strings"

	"liaison-portal/internal/models"
	"liaison-portal/internal/seed"
)

// Catalog serves the read-only visitor, event, correspondence, report and
// photo lists. Returned values never share memory with the catalog.
type Catalog struct {
	visitors       []models.Visitor
	events         []models.Event
	correspondence []models.Correspondence
	reports        []models.Report
	photos         []models.Photo
}

func NewCatalog() *Catalog {
	events := seed.Events()
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date+events[i].Time < events[j].Date+events[j].Time
	})
	return &Catalog{
		visitors:       seed.Visitors(),
		events:         events,
		correspondence: seed.Correspondence(),
		reports:        seed.Reports(),
		photos:         seed.Photos(),
	}
}

// Visitors filters delegates by region and by a case-insensitive query over
// name, title, country and purpose.
func (c *Catalog) Visitors(region, query string) []models.Visitor {
	region = strings.TrimSpace(region)
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Visitor, 0, len(c.visitors))
	for _, v := range c.visitors {
		if region != "" && region != FilterAll && v.Region != region {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(v.Name), query) &&
			!strings.Contains(strings.ToLower(v.Title), query) &&
			!strings.Contains(strings.ToLower(v.Country), query) &&
			!strings.Contains(strings.ToLower(v.Purpose), query) {
			continue
		}
		out = append(out, cloneVisitor(v))
	}
	return out
}

func (c *Catalog) Visitor(id string) (models.Visitor, bool) {
	for _, v := range c.visitors {
		if v.ID == id {
			return cloneVisitor(v), true
		}
	}
	return models.Visitor{}, false
}

func (c *Catalog) Events() []models.Event {
	return append([]models.Event(nil), c.events...)
}

// Correspondence lists letters of one kind; an empty kind lists everything.
func (c *Catalog) Correspondence(kind string) []models.Correspondence {
	kind = strings.ToLower(strings.TrimSpace(kind))
	out := make([]models.Correspondence, 0, len(c.correspondence))
	for _, l := range c.correspondence {
		if kind == "" || l.Kind == kind {
			out = append(out, l)
		}
	}
	return out
}

func (c *Catalog) Letter(id string) (models.Correspondence, bool) {
	for _, l := range c.correspondence {
		if l.ID == id {
			return l, true
		}
	}
	return models.Correspondence{}, false
}

// Reports filters reports by type and by a case-insensitive query over
// title, summary and type.
func (c *Catalog) Reports(reportType, query string) []models.Report {
	reportType = strings.TrimSpace(reportType)
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Report, 0, len(c.reports))
	for _, r := range c.reports {
		if reportType != "" && reportType != FilterAll && r.Type != reportType {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(r.Title), query) &&
			!strings.Contains(strings.ToLower(r.Summary), query) &&
			!strings.Contains(strings.ToLower(r.Type), query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (c *Catalog) Photos() []models.Photo {
	return append([]models.Photo(nil), c.photos...)
}

func (c *Catalog) Photo(id string) (models.Photo, bool) {
	for _, p := range c.photos {
		if p.ID == id {
			return p, true
		}
	}
	return models.Photo{}, false
}

func cloneVisitor(v models.Visitor) models.Visitor {
	v.Schedule = append([]models.ScheduleEntry(nil), v.Schedule...)
	return v
}
