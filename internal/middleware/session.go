package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionKey is the context key for the session ID
	SessionKey = "session_id"
	// SessionCookie is the cookie carrying the session ID
	SessionCookie = "vivenda_session"
	// sessionMaxAge keeps the cookie alive across visits so an unfinished
	// draft can be picked up again.
	sessionMaxAge = 60 * 60 * 24 * 90
)

// Session assigns each client a stable session ID via cookie. The ID keys
// the draft store: one in-progress draft per session, never shared across
// sessions or devices.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, sessionID, sessionMaxAge, "/", "", false, true)
		}

		c.Set(SessionKey, sessionID)

		c.Next()
	}
}

// GetSessionID retrieves the session ID from the Gin context.
// Returns an empty string if not found.
func GetSessionID(c *gin.Context) string {
	if sessionID, exists := c.Get(SessionKey); exists {
		if id, ok := sessionID.(string); ok {
			return id
		}
	}
	return ""
}
