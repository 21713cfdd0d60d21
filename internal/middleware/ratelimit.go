package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	maxTrackedClients = 1000
	clientIdleExpiry  = 10 * time.Minute
)

// RateLimit limits each client to perMinute requests on the wrapped routes.
// Clients are keyed by session id header when present, falling back to the
// remote IP; idle limiters expire so the table stays bounded.
func RateLimit(perMinute int) gin.HandlerFunc {
	limiters := expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, clientIdleExpiry)

	return func(c *gin.Context) {
		key := c.GetHeader("X-Session-Id")
		if key == "" {
			key = c.ClientIP()
		}

		limiter, ok := limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
			limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests",
			})
			return
		}

		c.Next()
	}
}
