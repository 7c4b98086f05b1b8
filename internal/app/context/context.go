// Package appctx provides request-scoped and process-wide caching for the
// application services.
//
// RequestContext memoizes reference-data lookups for the lifetime of one
// HTTP request, so that planning several variants of the same event reads the
// catalog once:
//
//	rc := appctx.New(ctx)
//	catalog, err := appctx.GetOrFetch(rc, "catalog", loadCatalog)
//
// Snapshot keeps a value across requests for a fixed time-to-live, backed by
// SafeRef.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrTypeMismatch reports a key reused with a different value type.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

var errLoadAborted = errors.New("appctx: load did not complete")

// RequestContext wraps one request's context with a memo of lookups. It is
// safe for the goroutines serving that request.
type RequestContext struct {
	context.Context
	mu   sync.Mutex
	memo map[string]*memoEntry
}

// memoEntry is filled once; ready closes when value and err are final.
type memoEntry struct {
	ready chan struct{}
	value any
	err   error
}

type requestContextKey struct{}

// New starts an empty memo for ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx, memo: make(map[string]*memoEntry)}
}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc
}

// GetOrFetch returns the memoized result for key, calling load on first use.
// Errors are memoized like values. Callers asking for a key that is still
// loading wait for it; other keys load independently.
//
// A key must always be read with the same T, otherwise ErrTypeMismatch is
// returned. DataProvider pins a key to its type.
func GetOrFetch[T any](rc *RequestContext, key string, load func(ctx context.Context) (T, error)) (T, error) {
	rc.mu.Lock()
	entry, seen := rc.memo[key]
	if !seen {
		entry = &memoEntry{ready: make(chan struct{})}
		rc.memo[key] = entry
	}
	rc.mu.Unlock()

	if !seen {
		defer close(entry.ready)
		entry.err = errLoadAborted // overwritten unless load panics
		v, err := load(rc.Context)
		entry.value, entry.err = v, err
		return v, err
	}

	<-entry.ready
	var zero T
	if entry.err != nil {
		return zero, entry.err
	}
	v, ok := entry.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
	}
	return v, nil
}

// DataProvider pins a memo key to its loader and value type.
type DataProvider[T any] struct {
	key  string
	load func(ctx context.Context) (T, error)
}

// NewDataProvider returns a provider reading key through load.
func NewDataProvider[T any](key string, load func(ctx context.Context) (T, error)) *DataProvider[T] {
	return &DataProvider[T]{key: key, load: load}
}

// Get memoizes in the RequestContext carried by ctx, and calls the loader
// directly when there is none.
func (p *DataProvider[T]) Get(ctx context.Context) (T, error) {
	if rc := FromContext(ctx); rc != nil {
		return GetOrFetch(rc, p.key, p.load)
	}
	return p.load(ctx)
}
