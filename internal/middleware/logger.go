package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/dcapulse/internal/logger"
)

// RequestLogger is a Gin middleware that logs method, path, status code,
// request latency, client IP and request ID (if available).
//
// Requests answered with 5xx are logged at error level, 4xx at warn level.
//
// Example log output:
//
//	{"level":"info","request_id":"123e4567-...","method":"POST","path":"/calculate","status":200,"latency_ms":812,"message":"http_request"}
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		rid, _ := c.Get(RequestIDKey)

		ev := logger.L().Info()
		switch {
		case status >= 500:
			ev = logger.L().Error()
		case status >= 400:
			ev = logger.L().Warn()
		}
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", c.Errors.String())
		}

		ev.Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
