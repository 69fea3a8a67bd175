package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Trace ID header and context key. Every error payload carries this ID, so
// a log line can be matched to the exact response a client saw.
const (
	TraceIDHeader     = "X-Trace-ID"
	TraceIDContextKey = "trace_id"
)

// RequestID tags each request with a trace ID. A client-supplied X-Trace-ID
// is reused; otherwise a fresh UUID is generated. The ID lands both on the
// Echo context and in the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}
			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the trace ID set by RequestID, or "" when the
// middleware did not run for this request.
func GetTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}
