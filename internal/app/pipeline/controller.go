package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	appctx "github.com/jsamuelsen11/action-pipeline/internal/app/context"
	"github.com/jsamuelsen11/action-pipeline/internal/domain"
	"github.com/jsamuelsen11/action-pipeline/internal/platform/logging"
	"github.com/jsamuelsen11/action-pipeline/internal/platform/telemetry"
	"github.com/jsamuelsen11/action-pipeline/internal/ports"
)

// Messages carried by the GeneralErrors the controller creates.
const (
	msgTransaction = "error occurred performing transaction"
	msgBegin       = "error occurred beginning transaction"
	msgCommit      = "error occurred committing transaction"
	msgDispatch    = "error occurred posting follow-up requests to the queue"
)

const outcomeSuccess = "success"

// PanicError is the cause recorded when a stage panics.
type PanicError struct {
	Stage string
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s stage: %v", e.Stage, e.Value)
}

// Controller runs actions inside a transaction, classifies their failures and
// hands queued follow-up work to the task handler once the transaction has
// committed. A Controller is safe for concurrent use.
type Controller struct {
	txm     ports.TxManager
	metrics *telemetry.Metrics
	tracer  trace.Tracer
}

// NewController creates a Controller that opens transactions through txm.
// metrics may be nil.
func NewController(txm ports.TxManager, metrics *telemetry.Metrics) *Controller {
	return &Controller{
		txm:     txm,
		metrics: metrics,
		tracer:  otel.Tracer(telemetry.InstrumentationName),
	}
}

// Execute runs a service or background action. Service actions run Validate,
// Authorize and Execute; background actions skip Authorize. The first failing
// stage stops the invocation and rolls the transaction back.
//
// The returned error is always one of the four pipeline error kinds, and the
// result is nil whenever the error is not.
func (c *Controller) Execute(ac *appctx.Context, a *Action) (any, error) {
	return c.run(ac, a.meta, func(tc *appctx.Context) (any, error) {
		if err := c.gate(tc, a.flavor, a.validator, a.authorizer); err != nil {
			return nil, err
		}
		return invoke("execute", func() (any, error) {
			return a.executor.Execute(tc)
		})
	}, nil)
}

// ExecuteTask runs a task action like Execute, passing Execute a task context
// to queue follow-up work on. After the transaction commits the queued items
// are submitted to the action's task handler one at a time in the order they
// were queued. The first submission failure stops the drain and is returned as
// a *domain.GeneralError; the committed transaction is not undone.
func (c *Controller) ExecuteTask(ac *appctx.Context, a *TaskAction) (any, error) {
	var queue *appctx.TaskContext
	return c.run(ac, a.meta, func(tc *appctx.Context) (any, error) {
		if err := c.gate(tc, a.flavor, a.validator, a.authorizer); err != nil {
			return nil, err
		}
		queue = appctx.NewTaskContext(tc)
		return invoke("execute", func() (any, error) {
			return a.executor.Execute(queue)
		})
	}, func(ctx context.Context) error {
		return c.dispatch(ctx, a, queue)
	})
}

// gate runs the validation stage and, for service actions, the authorization
// stage.
func (c *Controller) gate(tc *appctx.Context, flavor Flavor, v Validator, a Authorizer) error {
	_, err := invoke("validate", func() (any, error) {
		return nil, v.Validate(tc)
	})
	if err != nil && !emptyValidation(err) {
		return err
	}

	if flavor != FlavorService {
		return nil
	}
	_, err = invoke("authorize", func() (any, error) {
		return nil, a.Authorize(tc)
	})
	return err
}

// run owns the transaction boundary of one invocation. stages runs with a
// context bound to the transaction; afterCommit, if set, runs once the
// transaction has committed.
func (c *Controller) run(
	ac *appctx.Context,
	m meta,
	stages func(tc *appctx.Context) (any, error),
	afterCommit func(ctx context.Context) error,
) (any, error) {
	start := time.Now()
	ctx, span := c.tracer.Start(ac, "action.execute",
		trace.WithAttributes(
			telemetry.AttrAction.String(m.name),
			attribute.String("action.flavor", m.flavor.String()),
			attribute.Bool("action.read_only", m.readOnly),
		),
	)
	defer span.End()

	result, err := c.transact(ctx, ac, m, stages)
	if err == nil && afterCommit != nil {
		err = afterCommit(ctx)
	}

	outcome := outcomeSuccess
	if err != nil {
		outcome = string(domain.KindOf(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		result = nil
	}
	span.SetAttributes(telemetry.AttrOutcome.String(outcome))
	c.metrics.RecordAction(ctx, m.name, outcome, time.Since(start))

	return result, err
}

// transact begins the transaction, runs the stages and commits, or rolls back
// at most once when anything fails.
func (c *Controller) transact(
	ctx context.Context,
	ac *appctx.Context,
	m meta,
	stages func(tc *appctx.Context) (any, error),
) (any, error) {
	logger := logging.FromContext(ctx)

	txCtx, tx, err := c.txm.Begin(ctx, ports.TxOptions{Name: m.name, ReadOnly: m.readOnly})
	if err != nil {
		logger.ErrorContext(ctx, msgBegin,
			slog.String("operation", "Controller.Execute"),
			slog.String("action", m.name),
			slog.Any("error", err),
		)
		return nil, domain.NewGeneralError(msgBegin, err)
	}

	result, err := stages(ac.WithContext(txCtx))
	if err != nil {
		c.rollback(txCtx, logger, m, tx)
		return nil, classify(ctx, logger, m, err)
	}

	if err := tx.Commit(txCtx); err != nil {
		c.rollback(txCtx, logger, m, tx)
		logger.ErrorContext(ctx, msgCommit,
			slog.String("operation", "Controller.Execute"),
			slog.String("action", m.name),
			slog.Any("error", err),
		)
		return nil, domain.NewGeneralError(msgCommit, err)
	}

	logger.DebugContext(ctx, "action committed",
		slog.String("action", m.name),
		slog.String("flavor", m.flavor.String()),
	)
	return result, nil
}

// rollback aborts tx unless it has already completed. Rollback errors are
// logged and do not replace the error being returned.
func (c *Controller) rollback(ctx context.Context, logger *slog.Logger, m meta, tx ports.Tx) {
	if tx.Completed() {
		return
	}
	if err := tx.Rollback(ctx); err != nil {
		logger.ErrorContext(ctx, "rollback failed",
			slog.String("operation", "Controller.Execute"),
			slog.String("action", m.name),
			slog.Any("error", err),
		)
	}
}

// dispatch drains the follow-up queue into the task handler in insertion
// order. It runs after commit, outside the transaction.
func (c *Controller) dispatch(ctx context.Context, a *TaskAction, queue *appctx.TaskContext) error {
	logger := logging.FromContext(ctx)

	items, err := queue.Drain()
	if err != nil {
		logger.ErrorContext(ctx, msgDispatch,
			slog.String("operation", "Controller.ExecuteTask"),
			slog.String("action", a.name),
			slog.Any("error", err),
		)
		return domain.NewGeneralError(msgDispatch, err)
	}

	for i, item := range items {
		logger.DebugContext(ctx, "submitting follow-up request",
			slog.String("operation", "Controller.ExecuteTask"),
			slog.String("action", a.name),
			slog.Int("step", i+1),
			slog.Int("total", len(items)),
			slog.String("destination", item.Action),
			slog.String("request_id", item.ID),
		)

		err := a.handler.Submit(ctx, item)
		c.metrics.RecordTaskSubmission(ctx, item.Action, err)
		if err != nil {
			// The primary transaction stays committed and the remaining items
			// are dropped.
			// TODO: replace post-commit dispatch with a transactional outbox so
			// failed submissions are retried instead of lost.
			logger.ErrorContext(ctx, msgDispatch,
				slog.String("operation", "Controller.ExecuteTask"),
				slog.String("action", a.name),
				slog.Int("failed_step", i+1),
				slog.Int("dropped", len(items)-i-1),
				slog.String("destination", item.Action),
				slog.String("request_id", item.ID),
				slog.Any("error", err),
			)
			return domain.NewGeneralError(msgDispatch, err)
		}
	}

	return nil
}

// classify logs a stage failure at the level its kind calls for and returns
// it unchanged when it is one of the pipeline kinds, or wrapped in a
// GeneralError otherwise.
func classify(ctx context.Context, logger *slog.Logger, m meta, err error) error {
	action := slog.String("action", m.name)

	switch domain.KindOf(err) {
	case domain.KindValidation:
		var verr *domain.ValidationError
		errors.As(err, &verr)
		fields := make([]string, 0, len(verr.Fields))
		for field := range verr.Fields {
			fields = append(fields, field)
		}
		slices.Sort(fields)
		for _, field := range fields {
			logger.WarnContext(ctx, "action validation failed",
				action,
				slog.String("field", field),
				slog.String("message", verr.Fields[field]),
			)
		}
		return err

	case domain.KindAuthorization:
		logger.WarnContext(ctx, "action authorization failed", action, slog.Any("error", err))
		return err

	case domain.KindExecution:
		logger.ErrorContext(ctx, "action execution failed", action, slog.Any("error", err))
		return err

	case domain.KindGeneral:
		logger.ErrorContext(ctx, msgTransaction, action, slog.Any("error", err))
		return err

	default:
		attrs := []any{action, slog.Any("error", err)}
		var perr *PanicError
		if errors.As(err, &perr) {
			attrs = append(attrs, slog.String("stack", string(perr.Stack)))
		}
		logger.ErrorContext(ctx, msgTransaction, attrs...)
		return domain.NewGeneralError(msgTransaction, err)
	}
}

// emptyValidation reports whether err is a ValidationError without fields,
// which does not fail the action.
func emptyValidation(err error) bool {
	var verr *domain.ValidationError
	return domain.KindOf(err) == domain.KindValidation && errors.As(err, &verr) && !verr.HasErrors()
}

// invoke calls fn, converting a panic into a *PanicError.
func invoke(stage string, fn func() (any, error)) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &PanicError{Stage: stage, Value: r, Stack: debug.Stack()}
		}
	}()
	return fn()
}
