// Package fanout runs a function across a slice of items with bounded
// concurrency, preserving input order in the results. The board uses it to
// deliver one snapshot payload to many webhook endpoints at once without
// letting a slow endpoint serialize the rest.
//
// The helper manages goroutines, a semaphore channel, and context
// cancellation, and nothing else; fn owns retries, timeouts, and logging.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item in items using at most maxWorkers concurrent
// goroutines. Results are returned in the same order as the input items.
//
// If ctx is canceled while a goroutine is waiting for a semaphore slot, that
// goroutine records ctx.Err() and does not call fn. Goroutines that have
// already acquired a slot run to completion (fn is responsible for checking
// ctx internally if it supports cancellation).
//
// Run blocks until all goroutines complete. If items is empty, it returns an
// empty non-nil slice immediately.
//
// maxWorkers must be >= 1. If maxWorkers >= len(items), all items run
// concurrently with no semaphore contention.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}

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

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		})
	}

	wg.Wait()
	return results
}

// Errs joins the errors of all failed results into a single error, or nil
// when every result succeeded.
func Errs[R any](results []Result[R]) error {
	errs := make([]error, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
