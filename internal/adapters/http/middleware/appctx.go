package middleware

import (
	"net/http"

	appctx "github.com/protocolo-ceremonial/flagplan/internal/app/context"
)

// AppContext gives each request a fresh appctx.RequestContext, so reference
// lookups made while serving it are memoized once. It runs after
// CorrelationID and before OpenTelemetry.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := appctx.WithRequestContext(r.Context(), appctx.New(r.Context()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
