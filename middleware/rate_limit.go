package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leconstantin/storefront-api/config"
)

const (
	rateLimitPeriod = 1 * time.Minute
	rateLimitCount  = 10 // per client IP per period
)

// RateLimiter is a fixed-window limiter over Redis, applied to the auth
// endpoints. It is a no-op when Redis is not configured.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.RedisClient == nil {
			c.Next()
			return
		}

		key := "ratelimit:" + c.ClientIP() + ":" + c.FullPath()
		ctx := c.Request.Context()

		count, err := config.RedisClient.Incr(ctx, key).Result()
		if err != nil {
			// Fail open on Redis errors
			c.Next()
			return
		}
		if count == 1 {
			config.RedisClient.Expire(ctx, key, rateLimitPeriod)
		}
		if count > rateLimitCount {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, try again later"})
			c.Abort()
			return
		}
		c.Next()
	}
}
