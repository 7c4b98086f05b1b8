package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/protocolo-ceremonial/flagplan/internal/platform/httpclient"
)

const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"

	// Inbound IDs longer than this, or with bytes outside printable ASCII,
	// are replaced instead of echoed into logs.
	maxTraceIDLen = 128
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores id for this package and for outbound registry calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return httpclient.WithRequestID(context.WithValue(ctx, requestIDKey{}, id), id)
}

// RequestIDFromContext returns the request ID, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithCorrelationID stores id for this package and for outbound registry calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return httpclient.WithCorrelationID(context.WithValue(ctx, correlationIDKey{}, id), id)
}

// CorrelationIDFromContext returns the correlation ID, or "" outside a request.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// RequestID reuses a well-formed X-Request-ID or mints a UUID v4, then echoes
// it on the response.
func RequestID() func(http.Handler) http.Handler {
	return traceID(headerRequestID, WithRequestID, func(context.Context) string {
		return uuid.NewString()
	})
}

// CorrelationID reuses a well-formed X-Correlation-ID or falls back to the
// request ID, so it must run after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return traceID(headerCorrelationID, WithCorrelationID, RequestIDFromContext)
}

func traceID(
	header string,
	store func(context.Context, string) context.Context,
	fallback func(context.Context) string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if !validTraceID(id) {
				id = fallback(r.Context())
			}
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(store(r.Context(), id)))
		})
	}
}

func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLen {
		return false
	}
	for i := range len(id) {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}
