package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/dcapulse/internal/domain/dto"
)

// ErrorHandler renders the last error attached with c.Error when the handler
// did not write a response itself. The status defaults to 500.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	last := c.Errors.Last()
	c.JSON(status, dto.NewErrorResponse(http.StatusText(status), last.Err))
}

// AbortWithError writes the standard error payload with status and stops the chain.
// err is attached to the context so RequestLogger can report it.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
