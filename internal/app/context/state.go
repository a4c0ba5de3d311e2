package appctx

import (
	"context"
	"fmt"
)

// GetOrFetch returns the state value stored under key, or calls fetchFn to
// fetch and store it. Both successful results and errors are stored so a
// later stage does not repeat a failed lookup.
//
// The same key must always be used with the same type T. If a stored value
// exists but its type does not match T, GetOrFetch returns ErrTypeMismatch.
// Use StateKey for type-safe, reusable keys that prevent this.
func GetOrFetch[T any](c *Context, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := c.state[key]; ok {
		if entry.err != nil {
			var zero T
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(c.Context)
	c.state[key] = stateEntry{value: val, err: err}
	return val, err
}

// StateKey is a typed handle on one entry of a Context's state store. Declare
// keys as package variables next to the stages that share them.
type StateKey[T any] struct {
	name string
}

// NewStateKey creates a StateKey stored under name.
func NewStateKey[T any](name string) StateKey[T] {
	return StateKey[T]{name: name}
}

// Name returns the underlying state key.
func (k StateKey[T]) Name() string { return k.name }

// Put stores v, replacing any earlier value or cached error.
func (k StateKey[T]) Put(c *Context, v T) {
	c.state[k.name] = stateEntry{value: v}
}

// Get returns the stored value. The second result is false when nothing was
// stored, the stored fetch failed, or the value has a different type.
func (k StateKey[T]) Get(c *Context) (T, bool) {
	var zero T
	entry, ok := c.state[k.name]
	if !ok || entry.err != nil {
		return zero, false
	}
	v, ok := entry.value.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// GetOrFetch is GetOrFetch bound to this key.
func (k StateKey[T]) GetOrFetch(c *Context, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	return GetOrFetch(c, k.name, fetchFn)
}
