package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimiter limits requests per client IP. The portal serves a small
// district roster, so 120/min leaves headroom for the dashboard polling.
func RateLimiter() gin.HandlerFunc {
	store := memory.NewStore()
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  120,
	}

	instance := limiter.New(store, rate)
	return ginlimiter.NewMiddleware(instance)
}
