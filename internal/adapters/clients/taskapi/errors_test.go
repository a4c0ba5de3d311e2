package taskapi

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/action-pipeline/internal/domain"
)

func response(status int, contentType, body string) *http.Response {
	h := http.Header{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &http.Response{StatusCode: status, Header: h, Body: io.NopCloser(strings.NewReader(body))}
}

func TestTranslateResponse_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusBadRequest, want: domain.ErrValidation},
		{status: http.StatusUnprocessableEntity, want: domain.ErrValidation},
		{status: http.StatusNotFound, want: domain.ErrNotFound},
		{status: http.StatusConflict, want: domain.ErrConflict},
		{status: http.StatusUnauthorized, want: domain.ErrForbidden},
		{status: http.StatusForbidden, want: domain.ErrForbidden},
		{status: http.StatusTooManyRequests, want: domain.ErrUnavailable},
		{status: http.StatusBadGateway, want: domain.ErrUnavailable},
		{status: http.StatusServiceUnavailable, want: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		if got := translateResponse(response(tt.status, "", "")); !errors.Is(got, tt.want) {
			t.Errorf("status %d: translateResponse() = %v, want errors.Is %v", tt.status, got, tt.want)
		}
	}
}

func TestTranslateResponse_FieldErrors(t *testing.T) {
	t.Parallel()

	body := `{"detail":"bad task","errors":[{"location":"body.action","message":"is required"},{"location":"body.id","message":"must match the Idempotency-Key header"}]}`
	err := translateResponse(response(http.StatusBadRequest, "application/problem+json; charset=utf-8", body))

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("translateResponse() = %v, want *domain.ValidationError", err)
	}
	want := map[string]string{"action": "is required", "id": "must match the Idempotency-Key header"}
	for field, msg := range want {
		if verr.Fields[field] != msg {
			t.Errorf("Fields[%s] = %q, want %q", field, verr.Fields[field], msg)
		}
	}
}

func TestTranslateResponse_Detail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{name: "problem detail", contentType: "application/problem+json", body: `{"detail":"task already queued"}`, want: "task already queued"},
		{name: "plain body ignored", contentType: "text/plain", body: `{"detail":"ignored"}`, want: "Conflict"},
		{name: "malformed problem", contentType: "application/problem+json", body: `{"detail":`, want: "Conflict"},
	}

	for _, tt := range tests {
		err := translateResponse(response(http.StatusConflict, tt.contentType, tt.body))
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: translateResponse() = %q, want it to contain %q", tt.name, err, tt.want)
		}
	}
}

func TestTranslateResponse_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	err := translateResponse(response(http.StatusTeapot, "", ""))
	if err == nil || !strings.Contains(err.Error(), "unexpected status 418") {
		t.Errorf("translateResponse() = %v, want unexpected status 418", err)
	}
}
