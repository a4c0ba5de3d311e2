package pipeline

import (
	appctx "github.com/jsamuelsen11/action-pipeline/internal/app/context"
)

// Validator checks an invocation's parameters. It returns a
// *domain.ValidationError listing the failing fields; a ValidationError with
// no fields counts as success. Validators may store looked-up entities in the
// context state for later stages.
type Validator interface {
	Validate(c *appctx.Context) error
}

// Authorizer checks that the invocation's principal may perform the action on
// the validated input. It returns a *domain.AuthorizationError on refusal.
type Authorizer interface {
	Authorize(c *appctx.Context) error
}

// Executor performs an action's side effect and returns its result. Expected
// failures are reported as *domain.ExecutionError.
type Executor interface {
	Execute(c *appctx.Context) (any, error)
}

// TaskExecutor is an Executor that may queue follow-up work on the task
// context. Queued items are submitted only after the transaction commits.
type TaskExecutor interface {
	Execute(tc *appctx.TaskContext) (any, error)
}

// ValidateFunc adapts a function to Validator.
type ValidateFunc func(c *appctx.Context) error

// Validate calls f(c).
func (f ValidateFunc) Validate(c *appctx.Context) error { return f(c) }

// AuthorizeFunc adapts a function to Authorizer.
type AuthorizeFunc func(c *appctx.Context) error

// Authorize calls f(c).
func (f AuthorizeFunc) Authorize(c *appctx.Context) error { return f(c) }

// ExecuteFunc adapts a function to Executor.
type ExecuteFunc func(c *appctx.Context) (any, error)

// Execute calls f(c).
func (f ExecuteFunc) Execute(c *appctx.Context) (any, error) { return f(c) }

// TaskExecuteFunc adapts a function to TaskExecutor.
type TaskExecuteFunc func(tc *appctx.TaskContext) (any, error)

// Execute calls f(tc).
func (f TaskExecuteFunc) Execute(tc *appctx.TaskContext) (any, error) { return f(tc) }

// Allow is a Validator and Authorizer that always succeeds.
var Allow allow

type allow struct{}

func (allow) Validate(*appctx.Context) error  { return nil }
func (allow) Authorize(*appctx.Context) error { return nil }
