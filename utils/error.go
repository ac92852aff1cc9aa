package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIError is the envelope every failed request returns. Details carries the
// field- or request-specific hint; it is omitted when there is nothing safe to
// expose.
type APIError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler converts a handler panic into a 500 response instead of a
// dropped connection. It runs outside gin.Recovery so the panic is logged with
// the structured logger before the response is written.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLogger().Error("request panicked",
					zap.String("path", c.FullPath()),
					zap.Any("panic", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, APIError{
					Error: "internal server error",
				})
			}
		}()
		c.Next()
	}
}

// JSONError writes a standardized error response and stops the handler chain.
// Server faults are logged at error level; client faults only at debug, since
// a malformed request is the caller's problem, not an incident.
func JSONError(c *gin.Context, status int, message, details string) {
	logger := GetLogger()
	if status >= http.StatusInternalServerError {
		logger.Error(message, zap.Int("status", status), zap.String("details", details))
	} else {
		logger.Debug(message, zap.Int("status", status), zap.String("details", details))
	}
	c.AbortWithStatusJSON(status, APIError{Error: message, Details: details})
}
