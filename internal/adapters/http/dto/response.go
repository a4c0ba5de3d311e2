// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import "github.com/jsamuelsen11/action-pipeline/internal/ports"

// ActionResponse wraps the result of a successful action invocation.
type ActionResponse struct {
	Action string `json:"action"`
	Result any    `json:"result"`
}

// ActionInfoResponse describes one action callers may run.
type ActionInfoResponse struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	ReadOnly bool   `json:"read_only"`
	Task     bool   `json:"task"`
}

// ActionListResponse represents the list of registered actions.
type ActionListResponse struct {
	Actions []ActionInfoResponse `json:"actions"`
	Count   int                  `json:"count"`
}

// ToActionListResponse converts action descriptions to an HTTP list
// response DTO.
func ToActionListResponse(infos []ports.ActionInfo) ActionListResponse {
	items := make([]ActionInfoResponse, len(infos))
	for i, info := range infos {
		items[i] = ActionInfoResponse{
			Key:      info.Key,
			Name:     info.Name,
			ReadOnly: info.ReadOnly,
			Task:     info.Task,
		}
	}
	return ActionListResponse{
		Actions: items,
		Count:   len(items),
	}
}
