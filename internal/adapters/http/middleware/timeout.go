package middleware

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/protocolo-ceremonial/flagplan/internal/adapters/http/dto"
)

// Timeout bounds each request by d. The handler runs against a buffered writer
// and a context carrying the deadline, so registry calls give up with it. When
// the deadline fires first the client gets a 504 problem response and later
// handler writes fail with http.ErrHandlerTimeout. A non-positive d disables
// the middleware.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			r = r.WithContext(ctx)

			buf := &bufferedWriter{header: make(http.Header)}
			done := make(chan any, 1)
			go func() {
				var p any
				defer func() {
					if v := recover(); v != nil {
						p = v
					}
					done <- p
				}()
				next.ServeHTTP(buf, r)
			}()

			select {
			case p := <-done:
				if p != nil {
					panic(p)
				}
				buf.commit(w)
			case <-ctx.Done():
				buf.expire()
				dto.WriteProblem(w, r, http.StatusGatewayTimeout, "request deadline exceeded")
			}
		})
	}
}

// bufferedWriter holds a handler's response until Timeout decides whether it
// reaches the client.
type bufferedWriter struct {
	mu      sync.Mutex
	header  http.Header
	body    []byte
	status  int
	expired bool
}

// Header returns the buffered header map. Handlers must not touch it after
// the deadline fires.
func (b *bufferedWriter) Header() http.Header { return b.header }

func (b *bufferedWriter) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.expired && b.status == 0 {
		b.status = code
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.expired {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	b.body = append(b.body, p...)
	return len(p), nil
}

func (b *bufferedWriter) expire() {
	b.mu.Lock()
	b.expired = true
	b.mu.Unlock()
}

func (b *bufferedWriter) commit(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}
