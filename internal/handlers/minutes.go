package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"liaison-portal/internal/stores"
)

// MinutesHandler serves the minutes list and receipt toggling.
type MinutesHandler struct {
	minutes *stores.MinutesStore
}

func NewMinutesHandler(minutes *stores.MinutesStore) *MinutesHandler {
	return &MinutesHandler{minutes: minutes}
}

// ListMinutes handles GET /minutes?status=&q=.
func (h *MinutesHandler) ListMinutes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"minutes": h.minutes.Minutes(c.Query("status"), c.Query("q"))})
}

// ToggleReceived handles POST /minutes/:minute_id/received.
func (h *MinutesHandler) ToggleReceived(c *gin.Context) {
	minute, ok := h.minutes.ToggleReceived(c.Param("minute_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "minutes not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"minute": minute})
}
