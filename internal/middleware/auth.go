package middleware

import (
	"net/http"

	"github.com/yNatanzinn/SalesTrackPro/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "stp_session"

// Auth resolves the session cookie to a vendor identity and puts the
// vendor id into the request context. Every authenticated route runs
// behind this; there is no other way to obtain a vendor scope.
func Auth(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		userID, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		c.Set("vendorID", userID)
		c.Next()
	}
}
