// Package fanout runs one function over a slice of items with a bounded number
// of goroutines. The plan service uses it to plan the same event under several
// ordering criteria at once. Results keep the input order.
package fanout

import (
	"context"
	"fmt"
	"sync"
)

// ErrPanic wraps a panic recovered from fn so that one failing item does not
// take down its siblings.
type ErrPanic struct {
	Value any
}

func (e *ErrPanic) Error() string {
	return fmt.Sprintf("fanout: recovered panic: %v", e.Value)
}

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent
// goroutines; values below 1 are treated as 1. Results are returned in input
// order.
//
// An item still waiting for a worker slot when ctx is canceled records
// ctx.Err() without calling fn. Items already running finish; fn is expected
// to observe ctx itself. A panic inside fn is recovered and reported as an
// *ErrPanic for that item.
//
// Run blocks until every item is done. An empty input returns an empty,
// non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	maxWorkers = max(maxWorkers, 1)

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			results[i] = call(ctx, item, fn)
		})
	}

	wg.Wait()
	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if v := recover(); v != nil {
			res = Result[R]{Err: &ErrPanic{Value: v}}
		}
	}()

	val, err := fn(ctx, item)
	return Result[R]{Value: val, Err: err}
}
