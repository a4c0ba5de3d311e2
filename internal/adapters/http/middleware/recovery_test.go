package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/action-pipeline/internal/adapters/http/middleware"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, http.NoBody))
	return rec
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
		wantKind   string
	}{
		{
			name: "no panic",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"action":"getGalleryItems"}`))
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"action":"getGalleryItems"}`,
		},
		{
			name:       "string panic",
			handler:    func(http.ResponseWriter, *http.Request) { panic("nil state for targetPerson") },
			wantStatus: http.StatusInternalServerError,
			wantKind:   "general",
		},
		{
			name:       "error panic",
			handler:    func(http.ResponseWriter, *http.Request) { panic(errors.New("store closed")) },
			wantStatus: http.StatusInternalServerError,
			wantKind:   "general",
		},
		{
			name: "panic after headers sent",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte("partial"))
				panic("late")
			},
			wantStatus: http.StatusAccepted,
			wantBody:   "partial",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := serve(middleware.Recovery(discardLogger())(tt.handler), http.MethodPost, "/api/v1/actions/x")

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			if tt.wantKind == "" {
				return
			}

			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want application/problem+json", ct)
			}
			var body map[string]any
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding response body: %v", err)
			}
			if body["kind"] != tt.wantKind {
				t.Errorf("kind = %v, want %q", body["kind"], tt.wantKind)
			}
			for _, leaked := range []string{"targetPerson", "store closed"} {
				if detail, _ := body["detail"].(string); strings.Contains(detail, leaked) {
					t.Errorf("detail = %q, want panic value hidden", detail)
				}
			}
		})
	}
}

func TestRecovery_LogsPanicWithStack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Recovery(testLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("test panic value")
	}))
	serve(h, http.MethodGet, "/log-test")

	for _, want := range []string{"panic recovered", "test panic value", "goroutine", "path=/log-test"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log output missing %q", want)
		}
	}
}

func TestRecovery_ReraisesAbortHandler(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if v := recover(); v != http.ErrAbortHandler { //nolint:errorlint // sentinel panic value
			t.Errorf("recovered %v, want http.ErrAbortHandler", v)
		}
	}()
	serve(h, http.MethodGet, "/stream")
	t.Error("ServeHTTP returned, want ErrAbortHandler to propagate")
}
