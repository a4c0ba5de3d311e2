package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UserActionRequest is a follow-up work item queued during an action's
// execution and processed later by the background action named in Action.
// Treat it as immutable once created.
type UserActionRequest struct {
	ID        string          `json:"id"`
	Action    string          `json:"action"`
	AccountID string          `json:"account_id,omitempty"`
	Params    json.RawMessage `json:"params,omitempty"`
}

// NewUserActionRequest builds a follow-up item for action with params
// marshalled to JSON. accountID may be empty for work that needs no caller.
func NewUserActionRequest(action, accountID string, params any) (UserActionRequest, error) {
	if strings.TrimSpace(action) == "" {
		return UserActionRequest{}, &ValidationError{Fields: map[string]string{"action": "is required"}}
	}

	var raw json.RawMessage
	if params != nil {
		b, err := json.Marshal(params)
		if err != nil {
			return UserActionRequest{}, fmt.Errorf("marshalling params for %s: %w", action, err)
		}
		raw = b
	}

	return UserActionRequest{
		ID:        uuid.NewString(),
		Action:    action,
		AccountID: accountID,
		Params:    raw,
	}, nil
}
