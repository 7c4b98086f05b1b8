package httpclient

import (
	"context"
	"net/http"
)

// Context key types for request metadata propagation.
type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// traceHeaders maps each propagated context key to its outbound header.
var traceHeaders = []struct {
	key    any
	header string
}{
	{requestIDKey{}, "X-Request-ID"},
	{correlationIDKey{}, "X-Correlation-ID"},
}

// WithRequestID returns a new context carrying the inbound request ID, so
// calls to the reference registry repeat it as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID returns a new context carrying the correlation ID, so
// calls to the reference registry repeat it as X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

func injectTraceHeaders(ctx context.Context, h http.Header) {
	for _, th := range traceHeaders {
		if id, ok := ctx.Value(th.key).(string); ok && id != "" {
			h.Set(th.header, id)
		}
	}
}
