package ports

import (
	"context"
	"encoding/json"

	"github.com/jsamuelsen11/action-pipeline/internal/domain"
)

// ActionRequest is an inbound request to run a registered service action.
type ActionRequest struct {
	// Action is the registry key of the action to run.
	Action string
	// Params is the JSON payload decoded into the action's parameter type.
	Params json.RawMessage
	// AccountID identifies the caller; it is resolved to a principal.
	AccountID string
	// ClientID optionally names the client application.
	ClientID string
}

// ActionInfo describes a registered action.
type ActionInfo struct {
	Key      string
	Name     string
	ReadOnly bool
	Task     bool
}

// ActionService defines the service port for running actions on behalf of a
// caller. Implemented by the application layer; called by inbound adapters.
type ActionService interface {
	// Execute runs the service action named by req.Action and returns its
	// result. Errors are one of the pipeline kinds (see domain.KindOf), or
	// wrap domain.ErrNotFound when the action is not registered.
	Execute(ctx context.Context, req ActionRequest) (any, error)

	// Actions lists the actions callers may run through Execute.
	Actions() []ActionInfo
}

// BackgroundExecutor runs follow-up work items pulled from a task queue.
// Implemented by the application layer; called by the worker.
type BackgroundExecutor interface {
	// ExecuteBackground runs the background action named by req.Action.
	ExecuteBackground(ctx context.Context, req domain.UserActionRequest) (any, error)
}
