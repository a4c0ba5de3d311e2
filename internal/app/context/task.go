package appctx

import (
	"errors"
	"slices"

	"github.com/jsamuelsen11/action-pipeline/internal/domain"
)

// ErrAlreadyDrained is returned when a follow-up request is queued on, or
// drained from, a TaskContext whose list has already been drained.
var ErrAlreadyDrained = errors.New("appctx: follow-up requests already drained")

// TaskContext wraps one Context and collects the follow-up work an action
// queues while it executes. Items are kept in insertion order and handed out
// exactly once by Drain.
//
// A TaskContext is NOT safe for concurrent use from multiple goroutines.
type TaskContext struct {
	*Context
	requests []domain.UserActionRequest
	drained  bool
}

// NewTaskContext wraps inner with an empty follow-up list.
func NewTaskContext(inner *Context) *TaskContext {
	return &TaskContext{Context: inner}
}

// Enqueue appends req to the follow-up list.
func (tc *TaskContext) Enqueue(req domain.UserActionRequest) error {
	if tc.drained {
		return ErrAlreadyDrained
	}
	tc.requests = append(tc.requests, req)
	return nil
}

// EnqueueAction builds a follow-up request for the background action named
// action on behalf of the current principal, if any, and appends it.
func (tc *TaskContext) EnqueueAction(action string, params any) error {
	var accountID string
	if p := tc.Principal(); p != nil {
		accountID = p.AccountID
	}
	req, err := domain.NewUserActionRequest(action, accountID, params)
	if err != nil {
		return err
	}
	return tc.Enqueue(req)
}

// Requests returns a copy of the queued follow-up requests.
func (tc *TaskContext) Requests() []domain.UserActionRequest {
	return slices.Clone(tc.requests)
}

// Len returns the number of queued follow-up requests.
func (tc *TaskContext) Len() int { return len(tc.requests) }

// Drain returns the queued requests in insertion order and closes the list.
// It returns ErrAlreadyDrained when called more than once.
func (tc *TaskContext) Drain() ([]domain.UserActionRequest, error) {
	if tc.drained {
		return nil, ErrAlreadyDrained
	}
	tc.drained = true
	items := tc.requests
	tc.requests = nil
	return items, nil
}
