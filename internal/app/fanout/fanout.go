// Package fanout runs a function over a slice of inputs on a bounded number
// of goroutines. The repositories use it to fetch dishes in parallel.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Result is the outcome for one input: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each item with at most maxWorkers calls in flight and
// returns the results in input order. A maxWorkers below 1 is treated as 1.
//
// Items still waiting for a slot when ctx is done get ctx.Err() and fn is
// not called for them. Calls already running are left to observe ctx
// themselves. An empty items yields an empty non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := make(chan struct{}, max(maxWorkers, 1))
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

			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
		})
	}
	wg.Wait()
	return results
}

// Split separates successes from failures. Values keep input order; the
// failures are joined with errors.Join, nil when every call succeeded.
func Split[R any](results []Result[R]) ([]R, error) {
	values := make([]R, 0, len(results))
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		values = append(values, r.Value)
	}
	return values, errors.Join(errs...)
}
