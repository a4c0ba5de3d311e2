package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/action-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/action-pipeline/internal/domain"
	"github.com/jsamuelsen11/action-pipeline/internal/platform/logging"
)

// maxJSONBodyBytes caps request bodies at 1 MiB.
const maxJSONBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// readRawJSON returns the request body as JSON, or nil when it is blank. A
// body that is oversized, unreadable or malformed is answered with a 400 and
// ok is false.
func readRawJSON(w http.ResponseWriter, r *http.Request) (json.RawMessage, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	if err != nil {
		msg := "could not be read"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = "exceeds 1 MiB"
		}
		rejectBody(w, r, msg, err)
		return nil, false
	}

	body = bytes.TrimSpace(body)
	switch {
	case len(body) == 0:
		return nil, true
	case !json.Valid(body):
		rejectBody(w, r, "invalid JSON", nil)
		return nil, false
	}
	return body, true
}

// decodeJSONBody decodes a required JSON body into dst, answering with a 400
// and returning false when it cannot.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	body, ok := readRawJSON(w, r)
	if !ok {
		return false
	}
	if body == nil {
		rejectBody(w, r, "is required", nil)
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		rejectBody(w, r, "invalid JSON", err)
		return false
	}
	return true
}

func rejectBody(w http.ResponseWriter, r *http.Request, msg string, cause error) {
	if cause != nil {
		logging.FromContext(r.Context()).DebugContext(r.Context(), "rejected request body",
			slog.String("reason", msg),
			slog.Any("error", cause),
		)
	}
	verr := domain.NewValidationError()
	verr.Add("body", msg)
	dto.WriteErrorResponse(w, r, verr)
}
