package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sultangaziagd/agdsgazi/internal/auth"
)

// RBACMiddleware allows the request through only when the session user
// holds one of the given roles. It must run after AuthMiddleware.
func RBACMiddleware(allowed ...auth.Role) gin.HandlerFunc {
	allowedSet := make(map[auth.Role]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		if _, ok := allowedSet[user.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}

		c.Next()
	}
}
