package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"liaison-portal/internal/observability"
)

// MeetingPasswordHeader carries the meeting gate password on gated requests.
const MeetingPasswordHeader = "X-Meeting-Password"

// IncorrectPasswordMessage is returned when the gate rejects a password.
const IncorrectPasswordMessage = "Incorrect password. Please try again."

const meetingPassword = "senate"

// CheckMeetingPassword reports whether password opens the meeting gate.
// The comparison ignores case. This is a UX gate, not authentication.
func CheckMeetingPassword(password string) bool {
	unlocked := strings.ToLower(password) == meetingPassword
	observability.ObserveGateAttempt(unlocked)
	return unlocked
}

// MeetingPasswordFromRequest reads the password from the header, falling
// back to the password query parameter.
func MeetingPasswordFromRequest(c *gin.Context) string {
	if password := c.GetHeader(MeetingPasswordHeader); password != "" {
		return password
	}
	return c.Query("password")
}

// MeetingGate rejects requests that do not carry the meeting password.
func MeetingGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		password := MeetingPasswordFromRequest(c)
		if password == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing meeting password"})
			return
		}
		if !CheckMeetingPassword(password) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": IncorrectPasswordMessage})
			return
		}
		c.Next()
	}
}
