// Package middleware holds the inbound HTTP middleware of the planning API.
// Standard assembles them in the order the server uses:
//
//	Recovery → RequestID → CorrelationID → AppContext → OpenTelemetry → Logging → Timeout → Handler
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/protocolo-ceremonial/flagplan/internal/platform/telemetry"
)

// Chain composes middleware so the first argument is the outermost:
// Chain(a, b)(h) is a(b(h)).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Standard returns the middleware stack of the planning API, outermost
// first: Recovery, RequestID, CorrelationID, AppContext, OpenTelemetry,
// Logging and Timeout. A nil metrics skips metric recording and a
// non-positive timeout disables the deadline.
func Standard(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) func(http.Handler) http.Handler {
	return Chain(
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		AppContext(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(timeout),
	)
}
