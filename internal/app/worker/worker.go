// Package worker runs queued follow-up work items through their background
// actions. A Worker pulls items from a ports.TaskSource and executes them with
// bounded concurrency via a semaphore channel. Failed items are logged and
// counted, never retried.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jsamuelsen11/action-pipeline/internal/domain"
	"github.com/jsamuelsen11/action-pipeline/internal/platform/logging"
	"github.com/jsamuelsen11/action-pipeline/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthChecker = (*Worker)(nil)

// ErrAlreadyRunning is returned by Run when the worker loop is already active.
var ErrAlreadyRunning = errors.New("worker: already running")

var errNotRunning = errors.New("worker: not running")

// Config controls a Worker.
type Config struct {
	// Concurrency is the maximum number of items executed at once.
	Concurrency int
	// RetryDelay is how long the loop waits after a failed Receive.
	RetryDelay time.Duration
}

// Stats is a snapshot of a worker's counters.
type Stats struct {
	Received  int64
	Succeeded int64
	Failed    int64
}

// Worker drains a task source into a background executor.
type Worker struct {
	source  ports.TaskSource
	exec    ports.BackgroundExecutor
	cfg     Config
	logger  *slog.Logger
	running atomic.Bool

	received  atomic.Int64
	succeeded atomic.Int64
	failed    atomic.Int64
}

// New creates a Worker. Concurrency below 1 is raised to 1 and a zero
// RetryDelay defaults to one second. A nil logger discards output.
func New(source ports.TaskSource, exec ports.BackgroundExecutor, cfg Config, logger *slog.Logger) *Worker {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Worker{source: source, exec: exec, cfg: cfg, logger: logger}
}

// Run receives and executes items until ctx is canceled or the source
// closes. Items already executing when Run stops are allowed to finish; Run
// returns once they have.
//
// Items run with a context detached from ctx's cancellation so that a
// shutdown does not abort a transaction half way.
func (w *Worker) Run(ctx context.Context) error {
	if !w.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer w.running.Store(false)

	w.logger.InfoContext(ctx, "task worker started", slog.Int("concurrency", w.cfg.Concurrency))

	sem := make(chan struct{}, w.cfg.Concurrency)
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		// Context-aware semaphore acquisition.
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			w.logger.InfoContext(ctx, "task worker stopping")
			return nil
		}

		item, err := w.source.Receive(ctx)
		if err != nil {
			<-sem
			switch {
			case ctx.Err() != nil:
				w.logger.InfoContext(ctx, "task worker stopping")
				return nil
			case errors.Is(err, ports.ErrSourceClosed):
				w.logger.InfoContext(ctx, "task source closed, worker stopping")
				return nil
			}

			w.logger.ErrorContext(ctx, "failed to receive task",
				slog.String("operation", "Worker.Run"),
				slog.Duration("retry_in", w.cfg.RetryDelay),
				slog.Any("error", err),
			)
			if !sleep(ctx, w.cfg.RetryDelay) {
				return nil
			}
			continue
		}

		w.received.Add(1)
		wg.Add(1)
		go func(it domain.UserActionRequest) {
			defer wg.Done()
			defer func() { <-sem }()
			w.process(context.WithoutCancel(ctx), it)
		}(item)
	}
}

// process executes one item and records its outcome.
func (w *Worker) process(ctx context.Context, item domain.UserActionRequest) {
	logger := w.logger.With(
		slog.String("request_id", item.ID),
		slog.String("action", item.Action),
	)
	ctx = logging.WithLogger(ctx, logger)

	start := time.Now()
	_, err := w.exec.ExecuteBackground(ctx, item)
	if err != nil {
		w.failed.Add(1)
		logger.ErrorContext(ctx, "task failed",
			slog.String("kind", string(domain.KindOf(err))),
			slog.Duration("duration", time.Since(start)),
			slog.Any("error", err),
		)
		return
	}

	w.succeeded.Add(1)
	logger.DebugContext(ctx, "task completed", slog.Duration("duration", time.Since(start)))
}

// Stats returns the worker's counters.
func (w *Worker) Stats() Stats {
	return Stats{
		Received:  w.received.Load(),
		Succeeded: w.succeeded.Load(),
		Failed:    w.failed.Load(),
	}
}

// Name implements ports.HealthChecker.
func (w *Worker) Name() string { return "task-worker" }

// HealthCheck reports an error while the worker loop is not running.
func (w *Worker) HealthCheck(context.Context) error {
	if !w.running.Load() {
		return errNotRunning
	}
	return nil
}

// sleep waits for d or until ctx is done and reports whether the full wait
// elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
