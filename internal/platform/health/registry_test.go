package health_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/action-pipeline/internal/platform/health"
	"github.com/jsamuelsen11/action-pipeline/mocks"
)

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	refused := errors.New("connection refused")

	tests := []struct {
		name   string
		checks map[string]error
	}{
		{name: "no checkers", checks: map[string]error{}},
		{name: "all healthy", checks: map[string]error{"database": nil, "task-queue": nil, "worker": nil}},
		{name: "one failing", checks: map[string]error{"database": nil, "task-api": refused}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for name, err := range tt.checks {
				r.Register(checker(t, name, err))
			}

			results := r.CheckAll(context.Background())
			if results == nil {
				t.Fatal("CheckAll() = nil, want a map")
			}
			if len(results) != len(tt.checks) {
				t.Fatalf("got %d results, want %d", len(results), len(tt.checks))
			}
			for name, want := range tt.checks {
				if got, ok := results[name]; !ok || !errors.Is(got, want) || (want == nil) != (got == nil) {
					t.Errorf("results[%s] = %v, want %v", name, got, want)
				}
			}
		})
	}
}

func TestCheckAll_PassesContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("task-api")
	c.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(c)

	if got := r.CheckAll(ctx)["task-api"]; !errors.Is(got, context.Canceled) {
		t.Errorf("results[task-api] = %v, want context.Canceled", got)
	}
}

func TestRegister_SameNameReplaces(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("database")

	second := errors.New("pool exhausted")
	r := health.New()
	r.Register(first)
	r.Register(checker(t, "database", second))

	results := r.CheckAll(context.Background())
	if len(results) != 1 || !errors.Is(results["database"], second) {
		t.Errorf("results = %v, want only the replacement's error", results)
	}
}

type okChecker string

func (c okChecker) Name() string                    { return string(c) }
func (okChecker) HealthCheck(context.Context) error { return nil }

type panicChecker struct{}

func (panicChecker) Name() string                      { return "worker" }
func (panicChecker) HealthCheck(context.Context) error { panic("nil source") }

func TestCheckAll_PanicBecomesError(t *testing.T) {
	t.Parallel()

	r := health.New()
	r.Register(panicChecker{})
	r.Register(checker(t, "database", nil))

	results := r.CheckAll(context.Background())
	if err := results["worker"]; err == nil || !strings.Contains(err.Error(), "nil source") {
		t.Errorf("results[worker] = %v, want the panic as an error", err)
	}
	if results["database"] != nil {
		t.Errorf("results[database] = %v, want nil", results["database"])
	}
}

// barrierChecker blocks until every checker sharing its barrier has started.
type barrierChecker struct {
	name    string
	barrier *sync.WaitGroup
}

func (c barrierChecker) Name() string { return c.name }

func (c barrierChecker) HealthCheck(context.Context) error {
	c.barrier.Done()
	c.barrier.Wait()
	return nil
}

func TestCheckAll_RunsChecksConcurrently(t *testing.T) {
	t.Parallel()

	var barrier sync.WaitGroup
	barrier.Add(2)

	r := health.New()
	r.Register(barrierChecker{name: "database", barrier: &barrier})
	r.Register(barrierChecker{name: "task-queue", barrier: &barrier})

	// Sequential checks would deadlock on the barrier.
	if results := r.CheckAll(context.Background()); len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	t.Parallel()

	r := health.New()
	var wg sync.WaitGroup
	for i := range 50 {
		if i%2 == 0 {
			wg.Go(func() { r.Register(okChecker("worker")) })
			continue
		}
		wg.Go(func() { r.CheckAll(context.Background()) })
	}
	wg.Wait()
}
