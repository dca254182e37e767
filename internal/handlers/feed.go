package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"liaison-portal/internal/stores"
	"liaison-portal/internal/telemetry"
)

// FeedHandler serves the news feed.
type FeedHandler struct {
	feed  *stores.FeedStore
	audit *telemetry.AuditEmitter
}

func NewFeedHandler(feed *stores.FeedStore, audit *telemetry.AuditEmitter) *FeedHandler {
	return &FeedHandler{feed: feed, audit: audit}
}

// ListFeed handles GET /feed.
func (h *FeedHandler) ListFeed(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.feed.Feed(c.Query("type"), c.Query("q"))})
}

// SubmitPost handles POST /feed/posts.
func (h *FeedHandler) SubmitPost(c *gin.Context) {
	var req struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, ok := h.feed.SubmitPost(c.Request.Context(), req.Title, req.Body)
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// ToggleLike handles POST /feed/:id/like.
func (h *FeedHandler) ToggleLike(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, gin.H{"id": id, "liked": h.feed.ToggleLike(c.Request.Context(), id)})
}

// ToggleBookmark handles POST /feed/:id/bookmark.
func (h *FeedHandler) ToggleBookmark(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, gin.H{"id": id, "bookmarked": h.feed.ToggleBookmark(c.Request.Context(), id)})
}

// ClearLocalData handles DELETE /feed?confirm=true.
func (h *FeedHandler) ClearLocalData(c *gin.Context) {
	if !confirmed(c) {
		return
	}
	h.feed.ClearLocalData(c.Request.Context())
	emitAudit(c, h.audit, "WARN", "Feed data cleared", stores.FeedPostsKey)
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
