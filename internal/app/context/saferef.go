package appctx

import "sync"

// SafeRef is a value behind a read/write lock. Snapshot keeps its cached
// catalog state in one.
type SafeRef[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewRef returns a SafeRef holding val.
func NewRef[T any](val T) *SafeRef[T] {
	return &SafeRef[T]{val: val}
}

// Get returns a copy of the value.
func (r *SafeRef[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

func (r *SafeRef[T]) Set(val T) {
	r.mu.Lock()
	r.val = val
	r.mu.Unlock()
}

// Update mutates the value in place while holding the write lock.
func (r *SafeRef[T]) Update(fn func(*T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.val)
}
