package pipeline

import (
	"fmt"

	"github.com/jsamuelsen11/action-pipeline/internal/ports"
)

// Flavor selects which stages an action runs.
type Flavor int

// Action flavors.
const (
	// FlavorService runs Validate, Authorize and Execute for a caller.
	FlavorService Flavor = iota + 1
	// FlavorBackground runs Validate and Execute; authorization happened
	// upstream or does not apply.
	FlavorBackground
)

// String implements fmt.Stringer.
func (f Flavor) String() string {
	switch f {
	case FlavorService:
		return "service"
	case FlavorBackground:
		return "background"
	default:
		return fmt.Sprintf("Flavor(%d)", int(f))
	}
}

// Option configures an action at construction.
type Option func(*meta)

// WithReadOnly marks the action's transaction read-only.
func WithReadOnly() Option {
	return func(m *meta) {
		m.readOnly = true
	}
}

// meta holds the descriptive fields shared by Action and TaskAction.
type meta struct {
	name     string
	readOnly bool
	flavor   Flavor
}

// Name returns the action's name, used to label its transaction, logs,
// traces and metrics.
func (m meta) Name() string { return m.name }

// ReadOnly reports whether the action's transaction is read-only.
func (m meta) ReadOnly() bool { return m.readOnly }

// Flavor returns the action's flavor.
func (m meta) Flavor() Flavor { return m.flavor }

// String implements fmt.Stringer.
func (m meta) String() string { return m.name }

func newMeta(name string, flavor Flavor, opts []Option) meta {
	if name == "" {
		panic("pipeline: action name must not be empty")
	}
	m := meta{name: name, flavor: flavor}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Action is an immutable bundle of stages. It holds no per-invocation state
// and is safe to share between concurrent invocations.
type Action struct {
	meta
	validator  Validator
	authorizer Authorizer
	executor   Executor
}

// NewServiceAction builds an action that runs Validate, Authorize and Execute.
// A nil validator or authorizer always succeeds. It panics if name is empty
// or executor is nil.
func NewServiceAction(name string, v Validator, a Authorizer, e Executor, opts ...Option) *Action {
	if e == nil {
		panic("pipeline: nil executor for action " + name)
	}
	return &Action{
		meta:       newMeta(name, FlavorService, opts),
		validator:  orAllowValidator(v),
		authorizer: orAllowAuthorizer(a),
		executor:   e,
	}
}

// NewBackgroundAction builds an action that runs Validate and Execute only.
// A nil validator always succeeds. It panics if name is empty or executor is
// nil.
func NewBackgroundAction(name string, v Validator, e Executor, opts ...Option) *Action {
	if e == nil {
		panic("pipeline: nil executor for action " + name)
	}
	return &Action{
		meta:      newMeta(name, FlavorBackground, opts),
		validator: orAllowValidator(v),
		executor:  e,
	}
}

// TaskAction is an Action whose Execute stage may queue follow-up work for
// handler. Like Action it is immutable and safe to share.
type TaskAction struct {
	meta
	validator  Validator
	authorizer Authorizer
	executor   TaskExecutor
	handler    ports.TaskHandler
}

// Handler returns the task handler that receives the action's follow-up work.
func (a *TaskAction) Handler() ports.TaskHandler { return a.handler }

// NewServiceTaskAction builds a service action whose Execute stage may queue
// follow-up work. It panics if name is empty, executor is nil or handler is
// nil.
func NewServiceTaskAction(name string, v Validator, a Authorizer, e TaskExecutor, h ports.TaskHandler, opts ...Option) *TaskAction {
	mustTask(name, e, h)
	return &TaskAction{
		meta:       newMeta(name, FlavorService, opts),
		validator:  orAllowValidator(v),
		authorizer: orAllowAuthorizer(a),
		executor:   e,
		handler:    h,
	}
}

// NewBackgroundTaskAction builds a background action whose Execute stage may
// queue follow-up work. It panics if name is empty, executor is nil or
// handler is nil.
func NewBackgroundTaskAction(name string, v Validator, e TaskExecutor, h ports.TaskHandler, opts ...Option) *TaskAction {
	mustTask(name, e, h)
	return &TaskAction{
		meta:      newMeta(name, FlavorBackground, opts),
		validator: orAllowValidator(v),
		executor:  e,
		handler:   h,
	}
}

func mustTask(name string, e TaskExecutor, h ports.TaskHandler) {
	if e == nil {
		panic("pipeline: nil executor for action " + name)
	}
	if h == nil {
		panic("pipeline: nil task handler for action " + name)
	}
}

func orAllowValidator(v Validator) Validator {
	if v == nil {
		return Allow
	}
	return v
}

func orAllowAuthorizer(a Authorizer) Authorizer {
	if a == nil {
		return Allow
	}
	return a
}
