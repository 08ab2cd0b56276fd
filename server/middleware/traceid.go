package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillsenselab/templateapi/observability"
)

// HeaderTraceID is the request/response header carrying the correlation id.
const HeaderTraceID = "X-Trace-Id"

// contextKeyTraceID is the gin context key under which the trace id is stored.
const contextKeyTraceID = "trace_id"

// TraceID resolves the request's correlation id and makes it available to
// handlers and clients. Precedence: incoming X-Trace-Id header, active
// OpenTelemetry span trace id, fresh UUID. The id is opaque to this layer;
// it is never validated, only propagated.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderTraceID)
		if id == "" {
			id = observability.TraceIDFromContext(c.Request.Context())
		}
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(contextKeyTraceID, id)
		c.Header(HeaderTraceID, id)
		c.Next()
	}
}

// GetTraceID returns the trace id resolved by TraceID, or "" when the
// middleware did not run.
func GetTraceID(c *gin.Context) string {
	return c.GetString(contextKeyTraceID)
}
