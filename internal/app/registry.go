package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	appctx "github.com/jsamuelsen11/action-pipeline/internal/app/context"
	"github.com/jsamuelsen11/action-pipeline/internal/app/pipeline"
	"github.com/jsamuelsen11/action-pipeline/internal/ports"
)

// ErrDuplicateAction is returned when an action key is registered twice.
var ErrDuplicateAction = errors.New("action already registered")

// ErrTrailingParams is returned when a params payload holds more than one
// JSON value.
var ErrTrailingParams = errors.New("unexpected data after params")

// ParamsDecoder turns a raw JSON payload into an action's parameter value.
type ParamsDecoder func(raw json.RawMessage) (any, error)

// JSONParams returns a decoder that unmarshals the payload into a T. An empty
// payload decodes to the zero T. Unknown fields and trailing data are rejected.
func JSONParams[T any]() ParamsDecoder {
	return func(raw json.RawMessage) (any, error) {
		var v T
		if len(bytes.TrimSpace(raw)) == 0 {
			return v, nil
		}
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, ErrTrailingParams
		}
		return v, nil
	}
}

// NoParams is a decoder for actions that take no parameters.
func NoParams(json.RawMessage) (any, error) { return nil, nil }

// entry is one registered action. Exactly one of action and task is set.
type entry struct {
	key    string
	action *pipeline.Action
	task   *pipeline.TaskAction
	decode ParamsDecoder
}

func (e entry) flavor() pipeline.Flavor {
	if e.task != nil {
		return e.task.Flavor()
	}
	return e.action.Flavor()
}

func (e entry) info() ports.ActionInfo {
	if e.task != nil {
		return ports.ActionInfo{Key: e.key, Name: e.task.Name(), ReadOnly: e.task.ReadOnly(), Task: true}
	}
	return ports.ActionInfo{Key: e.key, Name: e.action.Name(), ReadOnly: e.action.ReadOnly()}
}

func (e entry) run(c *pipeline.Controller, ac *appctx.Context) (any, error) {
	if e.task != nil {
		return c.ExecuteTask(ac, e.task)
	}
	return c.Execute(ac, e.action)
}

// Registry maps action keys to actions and their parameter decoders. It is
// filled during startup and read concurrently afterwards.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a plain action under key. A nil decoder means the action
// takes no parameters.
func (r *Registry) Register(key string, a *pipeline.Action, decode ParamsDecoder) error {
	if a == nil {
		return fmt.Errorf("registering %q: nil action", key)
	}
	return r.add(entry{key: key, action: a, decode: decode})
}

// RegisterTask adds a task action under key. A nil decoder means the action
// takes no parameters.
func (r *Registry) RegisterTask(key string, a *pipeline.TaskAction, decode ParamsDecoder) error {
	if a == nil {
		return fmt.Errorf("registering %q: nil action", key)
	}
	return r.add(entry{key: key, task: a, decode: decode})
}

func (r *Registry) add(e entry) error {
	if strings.TrimSpace(e.key) == "" {
		return errors.New("registering action: empty key")
	}
	if e.decode == nil {
		e.decode = NoParams
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[e.key]; ok {
		return fmt.Errorf("registering %q: %w", e.key, ErrDuplicateAction)
	}
	r.entries[e.key] = e
	return nil
}

func (r *Registry) lookup(key string) (entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	return e, ok
}

// List describes every registered action with the given flavor, sorted by
// key.
func (r *Registry) List(flavor pipeline.Flavor) []ports.ActionInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]ports.ActionInfo, 0, len(r.entries))
	for _, e := range r.entries {
		if e.flavor() == flavor {
			infos = append(infos, e.info())
		}
	}
	slices.SortFunc(infos, func(a, b ports.ActionInfo) int {
		return strings.Compare(a.Key, b.Key)
	})
	return infos
}
