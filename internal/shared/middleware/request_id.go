package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextRequestID is the gin context key the request id is stored under.
const ContextRequestID = "request_id"

// RequestID tags every request with an id so log lines can be correlated.
// An incoming X-Request-ID is trusted and echoed back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(ContextRequestID, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// RequestIDFromContext returns the id set by RequestID, or "" before it ran.
func RequestIDFromContext(c *gin.Context) string {
	return c.GetString(ContextRequestID)
}
