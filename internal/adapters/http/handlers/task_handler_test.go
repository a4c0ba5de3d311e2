package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/action-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/action-pipeline/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/action-pipeline/internal/domain"
	"github.com/jsamuelsen11/action-pipeline/mocks"
)

func newTaskRequest(body, key string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(body))
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	return req
}

func TestTaskIntake_Accepted(t *testing.T) {
	t.Parallel()

	queue := mocks.NewMockTaskHandler(t)
	queue.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(item domain.UserActionRequest) bool {
		return item.ID == "req-1" &&
			item.Action == "refreshFollowerCount" &&
			string(item.Params) == `{"personId":2}`
	})).Return(nil)

	h := handlers.NewTaskIntakeHandler(queue)
	rec := httptest.NewRecorder()
	h.Submit(rec, newTaskRequest(`{"id":"req-1","action":"refreshFollowerCount","params":{"personId":2}}`, "req-1"))

	assertStatus(t, rec, http.StatusAccepted)
}

func TestTaskIntake_IDFromIdempotencyKey(t *testing.T) {
	t.Parallel()

	queue := mocks.NewMockTaskHandler(t)
	queue.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(item domain.UserActionRequest) bool {
		return item.ID == "req-9"
	})).Return(nil)

	h := handlers.NewTaskIntakeHandler(queue)
	rec := httptest.NewRecorder()
	h.Submit(rec, newTaskRequest(`{"action":"refreshFollowerCount"}`, "req-9"))

	assertStatus(t, rec, http.StatusAccepted)
}

func TestTaskIntake_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		key       string
		wantField string
	}{
		{name: "missing id", body: `{"action":"refreshFollowerCount"}`, wantField: "body.id"},
		{name: "mismatched key", body: `{"id":"a","action":"refreshFollowerCount"}`, key: "b", wantField: "body.id"},
		{name: "missing action", body: `{"id":"a"}`, wantField: "body.action"},
		{name: "malformed body", body: `{"id":`, wantField: "body.body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewTaskIntakeHandler(mocks.NewMockTaskHandler(t))
			rec := httptest.NewRecorder()
			h.Submit(rec, newTaskRequest(tt.body, tt.key))

			assertStatus(t, rec, http.StatusBadRequest)
			resp := decodeBody[dto.ErrorResponse](t, rec)
			found := false
			for _, e := range resp.Errors {
				if e.Location == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("errors = %+v, want entry for %s", resp.Errors, tt.wantField)
			}
		})
	}
}

func TestTaskIntake_QueueUnavailable(t *testing.T) {
	t.Parallel()

	queue := mocks.NewMockTaskHandler(t)
	queue.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(fmt.Errorf("queue full: %w", domain.ErrUnavailable))

	h := handlers.NewTaskIntakeHandler(queue)
	rec := httptest.NewRecorder()
	h.Submit(rec, newTaskRequest(`{"id":"a","action":"refreshFollowerCount"}`, ""))

	assertStatus(t, rec, http.StatusBadGateway)
}
