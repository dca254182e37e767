package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"liaison-portal/internal/middleware"
	"liaison-portal/internal/stores"
	"liaison-portal/internal/telemetry"
)

// MeetingHandler serves the password-gated internal meetings.
type MeetingHandler struct {
	meetings *stores.MeetingStore
	audit    *telemetry.AuditEmitter
}

func NewMeetingHandler(meetings *stores.MeetingStore, audit *telemetry.AuditEmitter) *MeetingHandler {
	return &MeetingHandler{meetings: meetings, audit: audit}
}

// Unlock handles POST /meetings/unlock.
func (h *MeetingHandler) Unlock(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !middleware.CheckMeetingPassword(req.Password) {
		emitAudit(c, h.audit, "WARN", "Meeting unlock rejected", "meetings")
		c.JSON(http.StatusUnauthorized, gin.H{"error": middleware.IncorrectPasswordMessage})
		return
	}
	emitAudit(c, h.audit, "INFO", "Meetings unlocked", "meetings")
	c.JSON(http.StatusOK, gin.H{"unlocked": true})
}

// ListMeetings handles GET /meetings.
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"meetings": h.meetings.Meetings(c.Query("mode"))})
}

// CreateMeeting handles POST /meetings.
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	var req struct {
		Title    string `json:"title"`
		Date     string `json:"date"`
		Time     string `json:"time"`
		Mode     string `json:"mode"`
		Location string `json:"location"`
		Notes    string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meeting, err := h.meetings.AddMeeting(c.Request.Context(), stores.MeetingInput{
		Title:    req.Title,
		Date:     req.Date,
		Time:     req.Time,
		Mode:     req.Mode,
		Location: req.Location,
		Notes:    req.Notes,
	})
	if errors.Is(err, stores.ErrMeetingIncomplete) || errors.Is(err, stores.ErrMeetingSchedule) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create meeting"})
		return
	}
	emitAudit(c, h.audit, "INFO", "Meeting created", meeting.ID)
	c.JSON(http.StatusCreated, gin.H{"meeting": meeting})
}

// DeleteMeeting handles DELETE /meetings/:meeting_id?confirm=true.
func (h *MeetingHandler) DeleteMeeting(c *gin.Context) {
	if !confirmed(c) {
		return
	}
	id := c.Param("meeting_id")
	if !h.meetings.RemoveMeeting(c.Request.Context(), id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "meeting not found"})
		return
	}
	emitAudit(c, h.audit, "WARN", "Meeting removed", id)
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
