// Package middleware holds the gin middlewares shared by the API routes.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// userIDKey is the gin context key the auth middleware sets for handlers.
const userIDKey = "userID"

// Verifier resolves a raw bearer token to a user identifier.
type Verifier interface {
	Verify(raw string) (string, error)
}

// Auth verifies the Authorization bearer token and stores the caller's user
// id in the request context. Routes behind it always see an authenticated
// identity; the services never authenticate anything themselves.
func Auth(ver Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing Authorization header"})
			return
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid Authorization header"})
			return
		}

		userID, err := ver.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by Auth, or "" on public
// routes.
func UserID(c *gin.Context) string {
	id, _ := c.Get(userIDKey)
	s, _ := id.(string)
	return s
}
