package ports

import "context"

// HealthChecker reports whether one dependency can serve: the database, the
// task queue, the worker loop or the remote task API.
type HealthChecker interface {
	// Name keys the checker's result in readiness output.
	Name() string
	// HealthCheck returns nil when healthy. It must honor ctx's deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs every registered checker for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll returns each checker's result by name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
