// Package health runs the readiness checks of the service's dependencies.
package health

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/action-pipeline/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry holds one checker per name. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{checkers: make(map[string]ports.HealthChecker)}
}

// Register adds checker, replacing any checker registered under the same
// name.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[name] = checker
}

// CheckAll runs every check concurrently and waits for all of them. A check
// that panics reports the panic as its error.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := maps.Clone(r.checkers)
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		results = make(map[string]error, len(checkers))
		g       errgroup.Group
	)
	for name, c := range checkers {
		g.Go(func() error {
			err := check(ctx, c)
			mu.Lock()
			results[name] = err
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func check(ctx context.Context, c ports.HealthChecker) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("health check panicked: %v", p)
		}
	}()
	return c.HealthCheck(ctx)
}
