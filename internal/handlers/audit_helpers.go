package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"liaison-portal/internal/middleware"
	"liaison-portal/internal/observability"
	"liaison-portal/internal/telemetry"
)

func requestIDFromContext(c *gin.Context) string {
	if val, ok := c.Get(middleware.RequestIDContextKey); ok {
		if id, ok := val.(string); ok && id != "" {
			return id
		}
	}

	requestID := c.GetHeader(middleware.RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Set(middleware.RequestIDContextKey, requestID)
	return requestID
}

func emitAudit(c *gin.Context, audit *telemetry.AuditEmitter, level, text, resource string) {
	audit.Emit(c.Request.Context(), telemetry.AuditEvent{
		Level:     level,
		Text:      text,
		Resource:  resource,
		RequestID: requestIDFromContext(c),
		ClientIP:  observability.IPFromRequest(c.Request),
	})
}

// confirmed reports whether a destructive request carries confirm=true and
// answers 428 when it does not.
func confirmed(c *gin.Context) bool {
	if c.Query("confirm") == "true" {
		return true
	}
	c.JSON(http.StatusPreconditionRequired, gin.H{"error": "confirmation required"})
	return false
}
