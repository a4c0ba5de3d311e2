// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server and the background worker, and
// handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/action-pipeline/internal/adapters/clients/taskapi"
	"github.com/jsamuelsen11/action-pipeline/internal/adapters/database"
	adapthttp "github.com/jsamuelsen11/action-pipeline/internal/adapters/http"
	"github.com/jsamuelsen11/action-pipeline/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/action-pipeline/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/action-pipeline/internal/adapters/queue"
	"github.com/jsamuelsen11/action-pipeline/internal/app"
	"github.com/jsamuelsen11/action-pipeline/internal/app/actions"
	"github.com/jsamuelsen11/action-pipeline/internal/app/pipeline"
	"github.com/jsamuelsen11/action-pipeline/internal/app/worker"
	"github.com/jsamuelsen11/action-pipeline/internal/platform/config"
	"github.com/jsamuelsen11/action-pipeline/internal/platform/health"
	"github.com/jsamuelsen11/action-pipeline/internal/platform/httpclient"
	"github.com/jsamuelsen11/action-pipeline/internal/platform/logging"
	"github.com/jsamuelsen11/action-pipeline/internal/platform/telemetry"
	"github.com/jsamuelsen11/action-pipeline/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	workerShutdownTimeout = 30 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	db := do.MustInvoke[*sqlx.DB](injector)
	backend := do.MustInvoke[*queueBackend](injector)

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*database.Store](injector))
	registry.Register(backend.checker)

	// Start the worker when this instance owns a local queue.
	var wrk *worker.Worker
	workerCtx, stopWorker := context.WithCancel(ctx)
	defer stopWorker()
	workerDone := make(chan error, 1)
	if backend.source != nil && cfg.Worker.Enabled {
		wrk = do.MustInvoke[*worker.Worker](injector)
		registry.Register(wrk)
		go func() {
			workerDone <- wrk.Run(workerCtx)
		}()
	} else {
		close(workerDone)
		logger.Info("background worker disabled", slog.String("queue_driver", cfg.Queue.Driver))
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		runErr = fmt.Errorf("server failed: %w", err)
		serverErr <- nil
	}

	// Graceful shutdown: drain HTTP requests so no new work is queued.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Stop pulling items and let in-flight ones finish.
	stopWorker()
	select {
	case err := <-workerDone:
		if err != nil {
			logger.Error("worker stopped with error", slog.Any("error", err))
		}
	case <-time.After(workerShutdownTimeout):
		logger.Warn("worker did not stop in time")
	}
	if wrk != nil {
		stats := wrk.Stats()
		logger.Info("worker stopped",
			slog.Int64("received", stats.Received),
			slog.Int64("succeeded", stats.Succeeded),
			slog.Int64("failed", stats.Failed),
		)
	}

	if err := backend.Close(); err != nil {
		logger.Error("queue shutdown error", slog.Any("error", err))
	}
	if err := db.Close(); err != nil {
		logger.Error("database shutdown error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return runErr
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// queueBackend is the follow-up work queue selected by queue.driver. source
// is nil when items are handed to a remote task API.
type queueBackend struct {
	handler ports.TaskHandler
	source  ports.TaskSource
	checker ports.HealthChecker
	close   func() error
}

// Close releases the queue's resources.
func (b *queueBackend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

func newQueueBackend(ctx context.Context, cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) (*queueBackend, error) {
	switch cfg.Queue.Driver {
	case "memory":
		q := queue.NewMemory(cfg.Queue.Capacity)
		return &queueBackend{handler: q, source: q, checker: q, close: q.Close}, nil

	case "redis":
		client, err := queue.Connect(ctx, &cfg.Queue.Redis)
		if err != nil {
			return nil, err
		}
		q := queue.NewRedis(client, cfg.Queue.Redis.Key, cfg.Queue.Redis.PollTimeout)
		return &queueBackend{handler: q, source: q, checker: q, close: client.Close}, nil

	case "http":
		hc := httpclient.New(&cfg.Client, taskapi.ServiceName, metrics, logger)
		client := taskapi.NewClient(hc, logger)
		return &queueBackend{handler: client, checker: client}, nil

	default:
		return nil, fmt.Errorf("unsupported queue driver %q", cfg.Queue.Driver)
	}
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*sqlx.DB, error) {
		db, err := database.Open(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if _, err := database.Migrate(ctx, db, logger); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		return db, nil
	})

	do.Provide(injector, func(i do.Injector) (*database.Store, error) {
		return database.NewStore(do.MustInvoke[*sqlx.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TxManager, error) {
		return database.NewTxManager(do.MustInvoke[*sqlx.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*queueBackend, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return newQueueBackend(ctx, cfg, metrics, logger)
	})

	do.Provide(injector, func(i do.Injector) (*pipeline.Controller, error) {
		txm := do.MustInvoke[ports.TxManager](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return pipeline.NewController(txm, metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Registry, error) {
		store := do.MustInvoke[*database.Store](i)
		backend := do.MustInvoke[*queueBackend](i)

		reg := app.NewRegistry()
		stores := actions.Stores{People: store, Follows: store, Gallery: store}
		if err := actions.Register(reg, stores, backend.handler); err != nil {
			return nil, err
		}
		return reg, nil
	})

	do.Provide(injector, func(i do.Injector) (*app.ActionService, error) {
		return app.NewActionService(
			do.MustInvoke[*app.Registry](i),
			do.MustInvoke[*pipeline.Controller](i),
			do.MustInvoke[*database.Store](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*worker.Worker, error) {
		backend := do.MustInvoke[*queueBackend](i)
		svc := do.MustInvoke[*app.ActionService](i)
		return worker.New(backend.source, svc, worker.Config{
			Concurrency: cfg.Worker.Concurrency,
			RetryDelay:  cfg.Worker.RetryDelay,
		}, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ActionHandler, error) {
		return handlers.NewActionHandler(do.MustInvoke[*app.ActionService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry, cfg.Server.HealthTimeout), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		backend := do.MustInvoke[*queueBackend](i)
		routes := adapthttp.Routes{
			Actions: do.MustInvoke[*handlers.ActionHandler](i),
			Health:  do.MustInvoke[*handlers.HealthHandler](i),
		}

		// Only instances with a local queue accept work from other instances.
		if backend.source != nil {
			routes.Tasks = handlers.NewTaskIntakeHandler(backend.handler)
		}

		return adapthttp.NewRouter(routes,
			middleware.Standard(logger, metrics, cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
