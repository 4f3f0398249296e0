package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader identifies the client instance. Each browser/app install
// generates one ID and sends it on every request; it keys the persisted
// session record.
const SessionHeader = "X-Session-ID"

// SessionKey is the gin context key under which the session ID is stored.
const SessionKey = "sessionID"

// ClientIPKey is the gin context key under which the resolved caller IP is
// stored.
const ClientIPKey = "clientIP"

// SessionMiddleware extracts the client session ID into the request context.
// When required is false and the header is absent, a throwaway ID is
// assigned so anonymous flows (chat, content) still work.
func SessionMiddleware(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader(SessionHeader)
		if sid == "" {
			if required {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"error": "Missing required session details: X-Session-ID",
				})
				return
			}
			sid = "anon-" + uuid.NewString()
		}
		c.Set(SessionKey, sid)
		c.Set(ClientIPKey, getClientIP(c))
		c.Next()
	}
}

// ClientIP returns the caller IP placed in the context by
// SessionMiddleware, or "" when none was set.
func ClientIP(c *gin.Context) string {
	ip, ok := c.Get(ClientIPKey)
	if !ok {
		return ""
	}
	s, _ := ip.(string)
	return s
}

// SessionID returns the session ID placed in the context by
// SessionMiddleware, or "" when none was set.
func SessionID(c *gin.Context) string {
	sid, ok := c.Get(SessionKey)
	if !ok {
		return ""
	}
	s, _ := sid.(string)
	return s
}
