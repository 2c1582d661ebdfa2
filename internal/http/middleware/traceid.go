// README: Trace ID middleware; every request carries an X-Trace-ID.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	TraceIDHeader = "X-Trace-ID"
	traceIDKey    = "trace_id"
)

// TraceID reuses a well-formed incoming X-Trace-ID or assigns a new UUID.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(TraceIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(traceIDKey, id)
		c.Header(TraceIDHeader, id)
		c.Next()
	}
}

// TraceIDFrom returns the request's trace ID, or "" outside the middleware.
func TraceIDFrom(c *gin.Context) string {
	return c.GetString(traceIDKey)
}
