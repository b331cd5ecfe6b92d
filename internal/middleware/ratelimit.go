package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/dcapulse/internal/domain/dto"
)

// client is the fixed-window counter of one IP.
type client struct {
	windowStart time.Time
	count       int
}

// RateLimiter limits every client IP to limit requests per window.
//
// Each call returns a limiter with its own in-memory store. A limit <= 0 disables limiting.
// Exceeding the limit returns 429 with the standard error payload.
//
// NOTE: the store is per process; multi-instance deployments need a shared store.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}

		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		cl, ok := clients[ip]
		if !ok || now.Sub(cl.windowStart) > window {
			cl = &client{windowStart: now}
			clients[ip] = cl
		}
		cl.count++
		exceeded := cl.count > limit
		mu.Unlock()

		if exceeded {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}

		c.Next()
	}
}
