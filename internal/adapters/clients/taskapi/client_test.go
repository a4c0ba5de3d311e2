package taskapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/action-pipeline/internal/domain"
	"github.com/jsamuelsen11/action-pipeline/internal/platform/config"
	"github.com/jsamuelsen11/action-pipeline/internal/platform/httpclient"
)

// newTestClient creates a Client for baseURL that tries each call attempts
// times and trips its breaker after maxFailures.
func newTestClient(t *testing.T, baseURL string, attempts, maxFailures int) *Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     attempts,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   maxFailures,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	logger := slog.New(slog.DiscardHandler)
	return NewClient(httpclient.New(cfg, ServiceName, nil, logger), logger)
}

func testItem() domain.UserActionRequest {
	return domain.UserActionRequest{
		ID:        "req-1",
		Action:    "refreshFollowerCount",
		AccountID: "jane",
		Params:    json.RawMessage(`{"personId":2}`),
	}
}

func TestClient_Submit(t *testing.T) {
	t.Parallel()

	var (
		got            domain.UserActionRequest
		idempotencyKey string
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/tasks" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		idempotencyKey = r.Header.Get("Idempotency-Key")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(ts.Close)

	if err := newTestClient(t, ts.URL, 1, 5).Submit(context.Background(), testItem()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if idempotencyKey != "req-1" {
		t.Errorf("Idempotency-Key = %q, want %q", idempotencyKey, "req-1")
	}
	want := testItem()
	if got.ID != want.ID || got.Action != want.Action || got.AccountID != want.AccountID {
		t.Errorf("body = %+v, want %+v", got, want)
	}
	if string(got.Params) != string(want.Params) {
		t.Errorf("params = %s, want %s", got.Params, want.Params)
	}
}

func TestClient_Submit_RetriedUntilAccepted(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(ts.Close)

	if err := newTestClient(t, ts.URL, 3, 5).Submit(context.Background(), testItem()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestClient_Submit_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		problem string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "rejected fields",
			status:  http.StatusBadRequest,
			problem: `{"detail":"invalid task","kind":"validation","errors":[{"location":"body.action","message":"is required"}]}`,
			check: func(t *testing.T, err error) {
				var verr *domain.ValidationError
				if !errors.As(err, &verr) || verr.Fields["action"] != "is required" {
					t.Errorf("Submit() error = %v, want field error on action", err)
				}
			},
		},
		{
			name:   "remote queue full",
			status: http.StatusBadGateway,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, domain.ErrUnavailable) {
					t.Errorf("Submit() error = %v, want ErrUnavailable", err)
				}
			},
		},
		{
			name:   "200 instead of 202",
			status: http.StatusOK,
			check: func(t *testing.T, err error) {
				if err == nil {
					t.Error("Submit() error = nil, want error")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if tt.problem != "" {
					w.Header().Set("Content-Type", "application/problem+json")
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.problem))
			}))
			t.Cleanup(ts.Close)

			tt.check(t, newTestClient(t, ts.URL, 1, 5).Submit(context.Background(), testItem()))
		})
	}
}

func TestClient_Submit_Unreachable(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	if err := newTestClient(t, url, 1, 5).Submit(context.Background(), testItem()); err == nil {
		t.Fatal("Submit() error = nil, want transport error")
	}
}

func TestClient_HealthCheck(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(ts.Close)

	client := newTestClient(t, ts.URL, 1, 1)
	if got := client.Name(); got != "task-api" {
		t.Errorf("Name() = %q, want %q", got, "task-api")
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck() = %v, want nil before any failure", err)
	}

	_ = client.Submit(context.Background(), testItem())

	if err := client.HealthCheck(context.Background()); err == nil {
		t.Fatal("HealthCheck() = nil, want error with open breaker")
	}
}
