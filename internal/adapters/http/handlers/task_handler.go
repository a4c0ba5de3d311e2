package handlers

import (
	"net/http"
	"strings"

	"github.com/jsamuelsen11/action-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/action-pipeline/internal/domain"
	"github.com/jsamuelsen11/action-pipeline/internal/ports"
)

const headerIdempotencyKey = "Idempotency-Key"

// TaskIntakeHandler accepts follow-up work items posted by other instances
// and hands them to the local queue.
type TaskIntakeHandler struct {
	queue ports.TaskHandler
}

// NewTaskIntakeHandler creates a TaskIntakeHandler that submits to queue.
func NewTaskIntakeHandler(queue ports.TaskHandler) *TaskIntakeHandler {
	return &TaskIntakeHandler{queue: queue}
}

// Submit handles POST /api/v1/tasks. The Idempotency-Key header supplies the
// item id when the body omits one and must match it otherwise. Accepted
// items get 202 with no body.
func (h *TaskIntakeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var item domain.UserActionRequest
	if !decodeJSONBody(w, r, &item) {
		return
	}

	key := strings.TrimSpace(r.Header.Get(headerIdempotencyKey))
	if item.ID == "" {
		item.ID = key
	}

	verr := domain.NewValidationError()
	if item.ID == "" {
		verr.Add("id", "is required")
	}
	if key != "" && key != item.ID {
		verr.Add("id", "must match the Idempotency-Key header")
	}
	if strings.TrimSpace(item.Action) == "" {
		verr.Add("action", "is required")
	}
	if err := verr.ErrOrNil(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.queue.Submit(r.Context(), item); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
