package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/dcapulse/internal/domain/dto"
	"github.com/guttosm/dcapulse/internal/logger"
)

// RecoveryMiddleware recovers from panics raised while handling a request,
// logs the panic value with its stack trace and request ID, and answers 500
// with the standard error payload.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				rid, _ := c.Get(RequestIDKey)
				logger.L().Error().
					Str("request_id", toString(rid)).
					Str("panic", fmt.Sprintf("%v", r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewErrorResponse("internal server error", nil))
			}
		}()

		c.Next()
	}
}
