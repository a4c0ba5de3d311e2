package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/action-pipeline/internal/domain"
)

const problemContentType = "application/problem+json"

// ErrorResponse is an RFC 9457 problem document. Kind is an extension member
// carrying the pipeline error kind, when the error has one.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Kind     string        `json:"kind,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one rejected field of a validation problem.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

var kindStatus = map[domain.Kind]int{
	domain.KindValidation:    http.StatusBadRequest,
	domain.KindAuthorization: http.StatusForbidden,
	domain.KindExecution:     http.StatusUnprocessableEntity,
	domain.KindGeneral:       http.StatusInternalServerError,
}

// sentinelStatus is consulted in order for errors without a pipeline kind.
var sentinelStatus = []struct {
	target error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// NewErrorResponse builds the problem document for err, using the request
// URI as the instance. Causes wrapped by general and execution errors never
// reach the detail, and neither does the text of any other 5xx error.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	kind := domain.KindOf(err)
	status := statusOf(kind, err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   publicDetail(kind, status, err),
		Instance: r.RequestURI,
	}
	if kind != domain.KindUnknown {
		resp.Kind = string(kind)
	}
	// Field details only describe the caller's own input. A validation error
	// carried as the cause of another kind stays hidden.
	if kind == domain.KindValidation || (kind == domain.KindUnknown && errors.Is(err, domain.ErrValidation)) {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			resp.Errors = fieldDetails(verr.Fields)
		}
	}
	return resp
}

// WriteErrorResponse writes the problem document for err as
// application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response", slog.Any("error", encErr))
	}
}

func statusOf(kind domain.Kind, err error) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}
	for _, s := range sentinelStatus {
		if errors.Is(err, s.target) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

func publicDetail(kind domain.Kind, status int, err error) string {
	switch kind {
	case domain.KindGeneral:
		var gerr *domain.GeneralError
		if errors.As(err, &gerr) {
			return gerr.Message
		}
	case domain.KindExecution:
		var eerr *domain.ExecutionError
		if errors.As(err, &eerr) {
			return domain.ErrExecution.Error() + ": " + eerr.Reason
		}
	}
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}

// fieldDetails lists validation fields as body.<field> entries sorted by
// location.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
