package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"wealthway/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts a handler panic into the standard SYSTEM_001 JSON
// payload instead of dropping the connection. The panic value and stack are
// logged under the request's trace ID.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				slog.Error("handler panicked",
					"trace_id", traceID,
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"panic", r,
					"stack", string(debug.Stack()),
				)

				response := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if err := c.JSON(http.StatusInternalServerError, response); err != nil {
					slog.Error("failed to write panic response",
						"trace_id", traceID,
						"error", err.Error(),
					)
				}
			}()

			return next(c)
		}
	}
}
