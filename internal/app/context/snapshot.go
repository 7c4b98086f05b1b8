package appctx

import (
	"context"
	"sync"
	"time"
)

// Snapshot caches the latest successful result of a fetch for a fixed TTL.
// It is shared across requests and safe for concurrent use. Failed fetches
// are not cached; a stale value is never served after it expires.
type Snapshot[T any] struct {
	ttl   time.Duration
	now   func() time.Time
	fill  sync.Mutex
	state *SafeRef[snapshotState[T]]
}

type snapshotState[T any] struct {
	value     T
	fetchedAt time.Time
	valid     bool
}

// NewSnapshot creates a Snapshot. A non-positive ttl disables caching.
func NewSnapshot[T any](ttl time.Duration, now func() time.Time) *Snapshot[T] {
	if now == nil {
		now = time.Now
	}
	return &Snapshot[T]{
		ttl:   ttl,
		now:   now,
		state: NewRef(snapshotState[T]{}),
	}
}

// Get returns the cached value while it is fresh, otherwise calls fetch and
// stores its result. Concurrent misses share a single fetch.
func (s *Snapshot[T]) Get(ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	if v, ok := s.fresh(); ok {
		return v, nil
	}

	s.fill.Lock()
	defer s.fill.Unlock()

	if v, ok := s.fresh(); ok {
		return v, nil
	}

	v, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if s.ttl > 0 {
		s.state.Set(snapshotState[T]{value: v, fetchedAt: s.now(), valid: true})
	}
	return v, nil
}

// Invalidate drops the cached value.
func (s *Snapshot[T]) Invalidate() {
	s.state.Update(func(st *snapshotState[T]) { st.valid = false })
}

func (s *Snapshot[T]) fresh() (T, bool) {
	st := s.state.Get()
	if !st.valid || s.now().Sub(st.fetchedAt) >= s.ttl {
		var zero T
		return zero, false
	}
	return st.value, true
}
