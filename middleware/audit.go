package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuditMiddleware resolves the client IP once per request so audit log
// entries written by handlers share the same value.
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("client_ip", clientIP(c))
		c.Next()
	}
}

// clientIP extracts the real client IP, preferring proxy headers.
func clientIP(c *gin.Context) string {
	xff := c.GetHeader("X-Forwarded-For")
	if xff != "" {
		ip := strings.TrimSpace(strings.Split(xff, ",")[0])
		if net.ParseIP(ip) != nil {
			return ip
		}
	}

	xri := c.GetHeader("X-Real-Ip")
	if xri != "" && net.ParseIP(xri) != nil {
		return xri
	}

	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}

// GetIPFromContext retrieves the IP stored by AuditMiddleware.
func GetIPFromContext(c *gin.Context) string {
	if ip, exists := c.Get("client_ip"); exists {
		if s, ok := ip.(string); ok {
			return s
		}
	}
	return clientIP(c)
}
