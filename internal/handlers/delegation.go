package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"liaison-portal/internal/csvexport"
	"liaison-portal/internal/stores"
)

// DelegationHandler serves the local delegation lists and check-in.
type DelegationHandler struct {
	delegation *stores.DelegationStore
}

func NewDelegationHandler(delegation *stores.DelegationStore) *DelegationHandler {
	return &DelegationHandler{delegation: delegation}
}

func (h *DelegationHandler) ListSchools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"schools": h.delegation.Schools()})
}

func (h *DelegationHandler) ListGroups(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"groups": h.delegation.CommunityGroups()})
}

func (h *DelegationHandler) ListVolunteers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"volunteers": h.delegation.Volunteers()})
}

// ListPeople handles GET /delegation/people.
func (h *DelegationHandler) ListPeople(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"people": h.delegation.People(c.Query("q"))})
}

// CheckIn handles POST /delegation/people/:id/check-in.
func (h *DelegationHandler) CheckIn(c *gin.Context) {
	person, ok := h.delegation.ToggleCheckedIn(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"person": person})
}

// Export handles GET /delegation/export/:list. The members list honours
// the same q filter as ListPeople.
func (h *DelegationHandler) Export(c *gin.Context) {
	list := c.Param("list")

	var (
		header []string
		rows   [][]string
	)
	switch list {
	case csvexport.ListSchools:
		header, rows = csvexport.SchoolHeader, csvexport.SchoolRows(h.delegation.Schools())
	case csvexport.ListGroups:
		header, rows = csvexport.GroupHeader, csvexport.GroupRows(h.delegation.CommunityGroups())
	case csvexport.ListVolunteers:
		header, rows = csvexport.VolunteerHeader, csvexport.VolunteerRows(h.delegation.Volunteers())
	case csvexport.ListMembers:
		header, rows = csvexport.MemberHeader, csvexport.MemberRows(h.delegation.People(c.Query("q")))
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown export list"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+csvexport.Filename(list)+`"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if err := csvexport.Write(c.Writer, header, rows); err != nil {
		slog.Warn("csv export failed", "list", list, "error", err)
	}
}
