package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation ID. A caller-supplied value is
// trusted and echoed back; absent ones are minted here.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID tags every request with a correlation ID so log lines from one
// request can be stitched together.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// GetRequestID returns the correlation ID tagged on the request, or an empty
// string before RequestID has run.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
