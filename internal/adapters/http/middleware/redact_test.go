package middleware_test

import (
	"net/http"
	"testing"

	"github.com/jsamuelsen11/action-pipeline/internal/adapters/http/middleware"
)

const redactedValue = "[REDACTED]"

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers http.Header
		want    map[string]string
	}{
		{
			name:    "empty",
			headers: http.Header{},
			want:    map[string]string{},
		},
		{
			name: "credentials are redacted",
			headers: http.Header{
				"Authorization":       {"Bearer secret"},
				"Proxy-Authorization": {"Basic abc"},
				"X-Api-Key":           {"key-123"},
				"Cookie":              {"session=abc"},
			},
			want: map[string]string{
				"Authorization":       redactedValue,
				"Proxy-Authorization": redactedValue,
				"X-Api-Key":           redactedValue,
				"Cookie":              redactedValue,
			},
		},
		{
			name: "caller identity passes through",
			headers: http.Header{
				"X-Account-Id":    {"jane"},
				"X-Client-Id":     {"web"},
				"Idempotency-Key": {"req-1"},
			},
			want: map[string]string{
				"X-Account-Id":    "jane",
				"X-Client-Id":     "web",
				"Idempotency-Key": "req-1",
			},
		},
		{
			name:    "multiple values are joined",
			headers: http.Header{"Accept": {"text/html", "application/json"}},
			want:    map[string]string{"Accept": "text/html,application/json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attrs := middleware.RedactHeaders(tt.headers)
			if len(attrs) != len(tt.want) {
				t.Fatalf("len(attrs) = %d, want %d", len(attrs), len(tt.want))
			}
			for _, a := range attrs {
				if got := a.Value.String(); got != tt.want[a.Key] {
					t.Errorf("%s = %q, want %q", a.Key, got, tt.want[a.Key])
				}
			}
		})
	}
}

func TestRedactHeaders_SortedByName(t *testing.T) {
	t.Parallel()

	attrs := middleware.RedactHeaders(http.Header{
		"X-Client-Id":  {"web"},
		"Accept":       {"*/*"},
		"Content-Type": {"application/json"},
	})

	want := []string{"Accept", "Content-Type", "X-Client-Id"}
	for i, a := range attrs {
		if a.Key != want[i] {
			t.Errorf("attrs[%d].Key = %q, want %q", i, a.Key, want[i])
		}
	}
}
