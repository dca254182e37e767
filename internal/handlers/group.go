package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"liaison-portal/internal/stores"
	"liaison-portal/internal/telemetry"
)

// activeGroupParam addresses the active group in place of a group id.
const activeGroupParam = "active"

// GroupHandler manages group-related endpoints.
type GroupHandler struct {
	groups *stores.GroupStore
	audit  *telemetry.AuditEmitter
}

// NewGroupHandler constructs a GroupHandler.
func NewGroupHandler(groups *stores.GroupStore, audit *telemetry.AuditEmitter) *GroupHandler {
	return &GroupHandler{groups: groups, audit: audit}
}

func groupIDParam(c *gin.Context) string {
	id := c.Param("group_id")
	if id == activeGroupParam {
		return ""
	}
	return id
}

// ListGroups handles GET /groups.
func (h *GroupHandler) ListGroups(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"groups":          h.groups.Search(c.Query("q")),
		"active_group_id": h.groups.Active(),
	})
}

// CreateGroup handles POST /groups.
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group := h.groups.CreateGroup(c.Request.Context(), req.Name, req.Description)
	emitAudit(c, h.audit, "INFO", "Group created", group.ID)
	c.JSON(http.StatusCreated, gin.H{"group": group})
}

// SelectGroup handles POST /groups/:group_id/select.
func (h *GroupHandler) SelectGroup(c *gin.Context) {
	id := c.Param("group_id")
	if !h.groups.Select(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"active_group_id": id})
}

// DeleteGroup handles DELETE /groups/:group_id?confirm=true.
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	if !confirmed(c) {
		return
	}
	id := groupIDParam(c)
	if id == "" {
		id = h.groups.Active()
	}
	if id == "" || !h.groups.DeleteGroup(c.Request.Context(), id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	emitAudit(c, h.audit, "WARN", "Group deleted", id)
	c.JSON(http.StatusOK, gin.H{"deleted": id, "active_group_id": h.groups.Active()})
}

// ClearGroups handles DELETE /groups?confirm=true.
func (h *GroupHandler) ClearGroups(c *gin.Context) {
	if !confirmed(c) {
		return
	}
	h.groups.ClearAll(c.Request.Context())
	emitAudit(c, h.audit, "WARN", "All groups cleared", stores.GroupsKey)
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// AddMember handles POST /groups/:group_id/members.
func (h *GroupHandler) AddMember(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, ok := h.groups.AddMember(c.Request.Context(), groupIDParam(c), req.Name, req.Role)
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"member": member})
}

// RemoveMember handles DELETE /groups/:group_id/members/:member_id.
func (h *GroupHandler) RemoveMember(c *gin.Context) {
	if !h.groups.RemoveMember(c.Request.Context(), groupIDParam(c), c.Param("member_id")) {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": c.Param("member_id")})
}

// GetGroupMessages handles GET /groups/:group_id/messages.
func (h *GroupHandler) GetGroupMessages(c *gin.Context) {
	messages, ok := h.groups.Messages(groupIDParam(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// PostGroupMessage handles POST /groups/:group_id/messages.
func (h *GroupHandler) PostGroupMessage(c *gin.Context) {
	var req struct {
		Text     string `json:"text"`
		SenderID string `json:"sender_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, ok := h.groups.SendMessage(c.Request.Context(), groupIDParam(c), req.Text, req.SenderID)
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// ExportGroup handles GET /groups/:group_id/export.
func (h *GroupHandler) ExportGroup(c *gin.Context) {
	group, ok := h.groups.Group(groupIDParam(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}

	filename, body, err := stores.ExportGroup(group)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not export group"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", body)
}
