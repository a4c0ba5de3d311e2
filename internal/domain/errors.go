package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
	ErrExecution   = errors.New("execution error")
	ErrGeneral     = errors.New("general error")
)

// Kind identifies which of the four pipeline error kinds an error belongs to.
type Kind string

// Error kinds returned by the action pipeline.
const (
	KindValidation    Kind = "validation"
	KindAuthorization Kind = "authorization"
	KindExecution     Kind = "execution"
	KindGeneral       Kind = "general"
	KindUnknown       Kind = "unknown"
)

// KindOf classifies err into one of the pipeline error kinds. The outermost
// taxonomy error in the chain wins, so a GeneralError wrapping a
// ValidationError is general.
func KindOf(err error) Kind {
	switch e := err.(type) {
	case nil:
		return KindUnknown
	case *ValidationError:
		return KindValidation
	case *AuthorizationError:
		return KindAuthorization
	case *ExecutionError:
		return KindExecution
	case *GeneralError:
		return KindGeneral
	case interface{ Unwrap() error }:
		return KindOf(e.Unwrap())
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			if k := KindOf(inner); k != KindUnknown {
				return k
			}
		}
	}
	return KindUnknown
}

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns an empty ValidationError ready for Add.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a message for field. The first message recorded for a field wins.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// ErrOrNil returns e when at least one field failed and nil otherwise, so
// validators can accumulate failures and return the result unconditionally.
func (e *ValidationError) ErrOrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// AuthorizationError reports that the caller may not perform an action.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	if e.Reason == "" {
		return ErrForbidden.Error()
	}
	return ErrForbidden.Error() + ": " + e.Reason
}

func (e *AuthorizationError) Unwrap() error {
	return ErrForbidden
}

// ExecutionError reports an expected failure while performing an action's
// side effect. Cause is optional.
type ExecutionError struct {
	Reason string
	Cause  error
}

func (e *ExecutionError) Error() string {
	if e.Cause == nil {
		return ErrExecution.Error() + ": " + e.Reason
	}
	return fmt.Sprintf("%s: %s: %v", ErrExecution.Error(), e.Reason, e.Cause)
}

func (e *ExecutionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrExecution}
	}
	return []error{ErrExecution, e.Cause}
}

// GeneralError wraps any failure that is not one of the expected kinds.
// Cause is kept for diagnostics and is never shown to API clients.
type GeneralError struct {
	Message string
	Cause   error
}

// NewGeneralError wraps cause with msg.
func NewGeneralError(msg string, cause error) *GeneralError {
	return &GeneralError{Message: msg, Cause: cause}
}

func (e *GeneralError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *GeneralError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrGeneral}
	}
	return []error{ErrGeneral, e.Cause}
}
