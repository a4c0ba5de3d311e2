package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/action-pipeline/internal/adapters/http/middleware"
)

// Tests that install a tracer provider replace global state and do not run
// in parallel.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	return exporter
}

func onlySpan(t *testing.T, exporter *tracetest.InMemoryExporter) tracetest.SpanStub {
	t.Helper()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	return spans[0]
}

func spanAttrs(span tracetest.SpanStub) map[string]any {
	attrs := make(map[string]any, len(span.Attributes))
	for _, a := range span.Attributes {
		attrs[string(a.Key)] = a.Value.AsInterface()
	}
	return attrs
}

func actionRouter(status int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(nil))
	r.Post("/api/v1/actions/{action}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
	return r
}

func TestOpenTelemetry_NamesSpanByRoute(t *testing.T) {
	exporter := setupTracer(t)

	serve(actionRouter(http.StatusOK), http.MethodPost, "/api/v1/actions/getGalleryItems")

	span := onlySpan(t, exporter)
	if want := "HTTP POST /api/v1/actions/{action}"; span.Name != want {
		t.Errorf("span name = %q, want %q", span.Name, want)
	}
	attrs := spanAttrs(span)
	for key, want := range map[string]any{
		"http.method":      "POST",
		"http.route":       "/api/v1/actions/{action}",
		"action.name":      "getGalleryItems",
		"http.status_code": int64(http.StatusOK),
	} {
		if attrs[key] != want {
			t.Errorf("%s = %v, want %v", key, attrs[key], want)
		}
	}
	if span.Status.Code == codes.Error {
		t.Error("span status = Error, want unset for 200")
	}
}

func TestOpenTelemetry_StatusClass(t *testing.T) {
	tests := []struct {
		status    int
		wantError bool
	}{
		{status: http.StatusBadRequest},
		{status: http.StatusUnprocessableEntity},
		{status: http.StatusInternalServerError, wantError: true},
		{status: http.StatusGatewayTimeout, wantError: true},
	}

	for _, tt := range tests {
		exporter := setupTracer(t)
		serve(actionRouter(tt.status), http.MethodPost, "/api/v1/actions/setFollowingStatus")

		span := onlySpan(t, exporter)
		if got := span.Status.Code == codes.Error; got != tt.wantError {
			t.Errorf("status %d: span error = %v, want %v", tt.status, got, tt.wantError)
		}
	}
}

func TestOpenTelemetry_KeepsPathOutsideRouter(t *testing.T) {
	exporter := setupTracer(t)

	h := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	serve(h, http.MethodGet, "/health/live")

	span := onlySpan(t, exporter)
	if span.Name != "HTTP GET /health/live" {
		t.Errorf("span name = %q, want %q", span.Name, "HTTP GET /health/live")
	}
	if _, ok := spanAttrs(span)["http.route"]; ok {
		t.Error("http.route set outside a router")
	}
}

func TestOpenTelemetry_JoinsInboundTrace(t *testing.T) {
	exporter := setupTracer(t)

	const parent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/actions/getGalleryItems", http.NoBody)
	req.Header.Set("Traceparent", parent)
	actionRouter(http.StatusOK).ServeHTTP(rec, req)

	span := onlySpan(t, exporter)
	if got := span.SpanContext.TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace id = %s, want the inbound trace", got)
	}
	if got := span.Parent.SpanID().String(); got != "00f067aa0ba902b7" {
		t.Errorf("parent span id = %s, want the inbound span", got)
	}
}
