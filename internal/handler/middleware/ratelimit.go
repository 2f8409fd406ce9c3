package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"marketplace-core/internal/handler/httperr"
	"marketplace-core/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit throttles per caller: the authenticated user when known, the client IP otherwise.
// Limiter failures let the request through.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision, err := limiter.Allow(c.Request.Context(), rateLimitKey(c))
		if err != nil {
			slog.Warn("rate limiter unavailable", "error", err.Error(), "path", c.Request.URL.Path)
			c.Next()
			return
		}
		if !decision.Allowed {
			seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}

func rateLimitKey(c *gin.Context) string {
	if id, ok := GetUserID(c); ok {
		return "user:" + id.String()
	}
	return "ip:" + c.ClientIP()
}
