package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/sultangaziagd/agdsgazi/config"
	"github.com/sultangaziagd/agdsgazi/internal/auth"
)

// AuthMiddleware validates the bearer token and loads the session user
// into the request context. All downstream handlers receive the user
// explicitly; there is no ambient current-user state.
func AuthMiddleware(cfg *config.Config, authSvc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header"})
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTAccessSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}

		uid, ok := claims["uid"].(string)
		if !ok || uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "uid missing in token"})
			return
		}

		user, err := authSvc.GetUserByID(uid)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		c.Set("user", user)
		c.Set("uid", user.UID)
		c.Next()
	}
}

// CurrentUser fetches the session user placed by AuthMiddleware.
func CurrentUser(c *gin.Context) (auth.AppUser, bool) {
	val, exists := c.Get("user")
	if !exists {
		return auth.AppUser{}, false
	}
	user, ok := val.(auth.AppUser)
	return user, ok
}
