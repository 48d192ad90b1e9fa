package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
)

const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// RateLimit is a fixed-window per-client limiter backed by redis. With a
// nil client it lets everything through.
func RateLimit(client *redis.Client, perMinute int) gin.HandlerFunc {
	var script *redis.Script
	if client != nil {
		script = redis.NewScript(rateLimitScript)
	}

	return func(c *gin.Context) {
		if client == nil || perMinute <= 0 {
			c.Next()
			return
		}

		key := "ratelimit:" + c.ClientIP()
		if v, ok := c.Get("user_id"); ok {
			if s, ok := v.(string); ok && s != "" {
				key = "ratelimit:" + s
			}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 250*time.Millisecond)
		defer cancel()

		allowed, err := script.Run(ctx, client, []string{key}, time.Minute.Milliseconds(), perMinute).Int64()
		if err != nil {
			// redis trouble never blocks requests
			c.Next()
			return
		}
		if allowed != 1 {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apiError{
				Code:    utils.CodeUnavailable,
				Message: "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
