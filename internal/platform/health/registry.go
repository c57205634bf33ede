// Package health runs the readiness checks of the engine host: the engine
// loop, the local cache and the delivery API. Each check is bounded by its
// own timeout so one stuck collaborator cannot stall the probe.
package health

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds each checker when New is given no timeout.
const DefaultCheckTimeout = 2 * time.Second

// Registry implements [ports.HealthRegistry]. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// New creates an empty registry. Each check gets at most timeout; zero or
// less means DefaultCheckTimeout.
func New(timeout ...time.Duration) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	if len(timeout) > 0 && timeout[0] > 0 {
		r.timeout = timeout[0]
	}
	return r
}

// Register adds checker.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every checker concurrently and keys the results by name.
// Checkers registered while it runs are picked up by the next call.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]error, len(checkers))
	)
	for _, c := range checkers {
		wg.Go(func() {
			err := r.check(ctx, c)
			mu.Lock()
			results[c.Name()] = err
			mu.Unlock()
		})
	}
	wg.Wait()
	return results
}

// check runs c under the per-check deadline. A checker that ignores its
// context is reported as failed and left to finish on its own.
func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- c.HealthCheck(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%s health check: %w", c.Name(), ctx.Err())
	}
}

// Failing returns the sorted names of the checkers that reported an error.
func Failing(results map[string]error) []string {
	var names []string
	for name, err := range results {
		if err != nil {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
