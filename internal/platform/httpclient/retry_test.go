package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
)

func TestBackoff(t *testing.T) {
	t.Parallel()

	cfg := retryConfig{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     500 * time.Millisecond,
		multiplier:      2.0,
	}

	tests := []struct {
		attempt int
		base    time.Duration
	}{
		{attempt: 1, base: 100 * time.Millisecond},
		{attempt: 2, base: 200 * time.Millisecond},
		{attempt: 3, base: 400 * time.Millisecond},
		{attempt: 10, base: 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt %d", tt.attempt), func(t *testing.T) {
			t.Parallel()
			lo := time.Duration(float64(tt.base) * (1 - jitterFraction))
			hi := time.Duration(float64(tt.base) * (1 + jitterFraction))
			for range 100 {
				if got := backoff(tt.attempt, cfg); got < lo || got > hi {
					t.Fatalf("backoff(%d) = %v, want within [%v, %v]", tt.attempt, got, lo, hi)
				}
			}
		})
	}
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "absent", value: "", want: 0},
		{name: "seconds", value: "3", want: 3 * time.Second},
		{name: "negative seconds", value: "-1", want: 0},
		{name: "http date", value: now.Add(2 * time.Second).Format(http.TimeFormat), want: 2 * time.Second},
		{name: "past date", value: now.Add(-time.Minute).Format(http.TimeFormat), want: 0},
		{name: "garbage", value: "soon", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := retryAfter(tt.value, now); got != tt.want {
				t.Errorf("retryAfter(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestReplayable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method string
		key    string
		want   bool
	}{
		{method: http.MethodGet, want: true},
		{method: http.MethodPut, want: true},
		{method: http.MethodDelete, want: true},
		{method: http.MethodPost, want: false},
		{method: http.MethodPost, key: "req-1", want: true},
		{method: http.MethodPatch, want: false},
	}

	for _, tt := range tests {
		req, _ := http.NewRequestWithContext(context.Background(), tt.method, "http://example.com", http.NoBody)
		if tt.key != "" {
			req.Header.Set(IdempotencyKeyHeader, tt.key)
		}
		if got := replayable(req); got != tt.want {
			t.Errorf("replayable(%s, key=%q) = %v, want %v", tt.method, tt.key, got, tt.want)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline", err: fmt.Errorf("dial: %w", context.DeadlineExceeded), want: false},
		{name: "connection refused", err: errors.New("connection refused"), want: true},
	}

	for _, tt := range tests {
		if got := isRetryable(tt.err); got != tt.want {
			t.Errorf("isRetryable(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	for status, want := range map[int]bool{
		http.StatusOK:                  false,
		http.StatusAccepted:            false,
		http.StatusBadRequest:          false,
		http.StatusConflict:            false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusServiceUnavailable:  true,
	} {
		if got := isRetryableStatus(status); got != want {
			t.Errorf("isRetryableStatus(%d) = %v, want %v", status, got, want)
		}
	}
}

func TestOutcome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		err    error
		want   string
	}{
		{name: "2xx", status: http.StatusAccepted, want: "success"},
		{name: "4xx", status: http.StatusConflict, want: "error"},
		{name: "exhausted 5xx", status: http.StatusBadGateway, err: errors.New("retries exhausted"), want: "error"},
		{name: "transport error", err: errors.New("connection refused"), want: "error"},
		{name: "breaker open", err: gobreaker.ErrOpenState, want: "circuit_open"},
		{name: "half-open limit", err: gobreaker.ErrTooManyRequests, want: "circuit_open"},
		{name: "canceled", err: context.Canceled, want: "canceled"},
		{name: "deadline", err: fmt.Errorf("send: %w", context.DeadlineExceeded), want: "canceled"},
	}

	for _, tt := range tests {
		if got := outcome(tt.status, tt.err); got != tt.want {
			t.Errorf("%s: outcome(%d, %v) = %q, want %q", tt.name, tt.status, tt.err, got, tt.want)
		}
	}
}
