package ports

import (
	"context"
	"errors"

	"github.com/jsamuelsen11/action-pipeline/internal/domain"
)

// TxOptions describes a transaction to begin.
type TxOptions struct {
	// Name labels the transaction in logs and traces.
	Name string
	// ReadOnly tells the manager the unit of work does not mutate state.
	ReadOnly bool
}

// TxManager begins transactions. Implemented by the database adapter.
type TxManager interface {
	// Begin starts a transaction and returns a context carrying it. Stores
	// called with the returned context take part in the transaction.
	Begin(ctx context.Context, opts TxOptions) (context.Context, Tx, error)
}

// Tx is a transaction handle returned by TxManager.Begin.
type Tx interface {
	// Commit commits the transaction.
	Commit(ctx context.Context) error

	// Rollback aborts the transaction.
	Rollback(ctx context.Context) error

	// Completed reports whether Commit or Rollback has already been called,
	// whatever its outcome.
	Completed() bool
}

// TaskHandler accepts follow-up work items for asynchronous processing.
// Implemented by queue adapters.
type TaskHandler interface {
	// Submit hands req to the queue. It returns once the queue has accepted
	// the item or failed to.
	Submit(ctx context.Context, req domain.UserActionRequest) error
}

// ErrSourceClosed is returned by TaskSource.Receive once the source is closed
// and drained.
var ErrSourceClosed = errors.New("task source closed")

// TaskSource yields queued follow-up work items. Implemented by queue
// adapters; consumed by the worker.
type TaskSource interface {
	// Receive blocks until an item is available or ctx is done. It returns
	// ErrSourceClosed when no more items will arrive.
	Receive(ctx context.Context) (domain.UserActionRequest, error)
}

// PrincipalSource resolves caller identities.
type PrincipalSource interface {
	// Principal returns the principal for accountID.
	// Returns domain.ErrNotFound if the account does not exist.
	Principal(ctx context.Context, accountID string) (*domain.Principal, error)
}
