package ports

import "context"

// HealthChecker reports whether one collaborator of the process is usable.
// The engine loop, the local cache and the delivery API client each
// implement it.
type HealthChecker interface {
	// Name keys the checker's result in readiness output.
	Name() string

	// HealthCheck returns nil when the component can serve. It must give
	// up once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them per probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker concurrently. A nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
