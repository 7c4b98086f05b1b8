package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/protocolo-ceremonial/flagplan/internal/platform/logging"
)

// Logging brackets each request with "request started" and "request completed"
// lines. The request-scoped child logger carries the request and correlation
// IDs and is stored in the context for handlers and services. Completion is
// logged at WARN for 4xx and ERROR for 5xx.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			began := time.Now()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("correlation_id", CorrelationIDFromContext(r.Context())),
			)
			r = r.WithContext(logging.WithLogger(r.Context(), reqLogger))
			ctx := r.Context()

			call := []slog.Attr{slog.String("method", r.Method), slog.String("path", r.URL.Path)}
			reqLogger.LogAttrs(ctx, slog.LevelInfo, "request started", call...)
			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(r.Header)...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			reqLogger.LogAttrs(ctx, levelForStatus(rw.statusCode), "request completed", append(call,
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(began)),
			)...)
		})
	}
}

// levelForStatus is WARN for 4xx and ERROR for 5xx.
func levelForStatus(status int) slog.Level {
	if status >= http.StatusInternalServerError {
		return slog.LevelError
	}
	if status >= http.StatusBadRequest {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}
