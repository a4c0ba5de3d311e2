package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/action-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/action-pipeline/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/action-pipeline/internal/ports"
)

// ActionHandler handles HTTP requests that run registered actions.
type ActionHandler struct {
	svc ports.ActionService
}

// NewActionHandler creates a new ActionHandler with the given service port.
func NewActionHandler(svc ports.ActionService) *ActionHandler {
	return &ActionHandler{svc: svc}
}

// Execute handles POST /api/v1/actions/{action}. The body is the action's
// parameter object; the caller comes from the Caller middleware.
func (h *ActionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	params, ok := readRawJSON(w, r)
	if !ok {
		return
	}

	action := chi.URLParam(r, "action")
	caller := middleware.CallerFromContext(r.Context())

	result, err := h.svc.Execute(r.Context(), ports.ActionRequest{
		Action:    action,
		Params:    params,
		AccountID: caller.AccountID,
		ClientID:  caller.ClientID,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ActionResponse{Action: action, Result: result})
}

// ListActions handles GET /api/v1/actions.
func (h *ActionHandler) ListActions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToActionListResponse(h.svc.Actions()))
}
