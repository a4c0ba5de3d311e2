// Package appctx provides the per-invocation context handed to action stages.
//
// Context extends Go's context.Context with the action's input parameters,
// the caller's principal and a stage-shared state store. TaskContext adds the
// ordered list of follow-up work queued during execution.
//
// A new Context is created for every action invocation and must not be
// shared between concurrent invocations:
//
//	c := appctx.New(ctx, query, appctx.WithPrincipal(p))
//
//	// Validation resolves an entity once...
//	target, err := targetKey.GetOrFetch(c, lookupTarget)
//
//	// ...and execution reuses it.
//	target, _ = targetKey.Get(c)
package appctx

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/action-pipeline/internal/domain"
)

// ErrTypeMismatch is returned when a stored value's type does not match the
// requested type T. This indicates a programming error where the same key is
// used with different types.
var ErrTypeMismatch = errors.New("appctx: stored value type mismatch")

// Context is an invocation-scoped context wrapper carrying an action's
// parameters, optional principal and client identifier, and the state shared
// between its stages.
//
// A Context is NOT safe for concurrent use from multiple goroutines.
type Context struct {
	context.Context
	params    any
	principal *domain.Principal
	clientID  string
	actionID  string
	state     map[string]stateEntry
}

// stateEntry stores a value put by a stage or the result of a GetOrFetch
// call, including any error.
type stateEntry struct {
	value any
	err   error
}

// Option configures a Context.
type Option func(*Context)

// WithPrincipal sets the caller identity. Service actions require one;
// background actions may run without.
func WithPrincipal(p *domain.Principal) Option {
	return func(c *Context) {
		c.principal = p
	}
}

// WithClientID records which client application issued the request.
func WithClientID(id string) Option {
	return func(c *Context) {
		c.clientID = id
	}
}

// WithActionID records the registry key the invocation was dispatched under.
func WithActionID(id string) Option {
	return func(c *Context) {
		c.actionID = id
	}
}

// New creates a Context wrapping ctx with the given parameters and an empty
// state store.
func New(ctx context.Context, params any, opts ...Option) *Context {
	c := &Context{
		Context: ctx,
		params:  params,
		state:   make(map[string]stateEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Params returns the invocation's input payload.
func (c *Context) Params() any { return c.params }

// Principal returns the caller identity, or nil when the invocation has none.
func (c *Context) Principal() *domain.Principal { return c.principal }

// ClientID returns the client identifier, or "" when none was supplied.
func (c *Context) ClientID() string { return c.clientID }

// ActionID returns the registry key of the action, or "" when dispatched
// directly.
func (c *Context) ActionID() string { return c.actionID }

// WithContext returns a shallow copy of c that uses ctx for cancellation and
// values. The copy shares params, principal and state with c, so stages see
// one state store regardless of which copy they receive.
func (c *Context) WithContext(ctx context.Context) *Context {
	cp := *c
	cp.Context = ctx
	return &cp
}

// ParamsAs returns the invocation's payload as T. It returns ErrTypeMismatch
// when the payload holds a different type.
func ParamsAs[T any](c *Context) (T, error) {
	v, ok := c.params.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: params hold %T, requested %T", ErrTypeMismatch, c.params, zero)
	}
	return v, nil
}
