package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/action-pipeline/internal/platform/telemetry"
)

// unrouted labels metrics for requests chi matched to no route.
const unrouted = "unmatched"

// OpenTelemetry returns middleware that continues the caller's W3C trace with
// a server span and records request metrics. Spans and metrics are named by
// chi route pattern once routing has run, so every action invocation shares
// "HTTP POST /api/v1/actions/{action}" and carries the action key as an
// attribute. metrics may be nil.
func OpenTelemetry(metrics *telemetry.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := otel.GetTracerProvider().Tracer("middleware").Start(ctx,
				"HTTP "+r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.url", r.URL.String()),
				),
			)
			defer span.End()

			sr := record(w)
			next.ServeHTTP(sr, r.WithContext(ctx))

			route, action := routeOf(ctx)
			if route != "" {
				span.SetName("HTTP " + r.Method + " " + route)
				span.SetAttributes(attribute.String("http.route", route))
			}
			if action != "" {
				span.SetAttributes(telemetry.AttrAction.String(action))
			}

			status := sr.Status()
			span.SetAttributes(attribute.Int("http.status_code", status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			if route == "" {
				route = unrouted
			}
			recordServerMetrics(ctx, metrics, r.Method, route, status, time.Since(start))
		})
	}
}

// routeOf returns the matched chi pattern and the {action} parameter, both
// empty outside a chi router.
func routeOf(ctx context.Context) (route, action string) {
	rctx := chi.RouteContext(ctx)
	if rctx == nil {
		return "", ""
	}
	return rctx.RoutePattern(), rctx.URLParam("action")
}

func recordServerMetrics(ctx context.Context, metrics *telemetry.Metrics, method, route string, status int, elapsed time.Duration) {
	if metrics == nil {
		return
	}

	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)

	metrics.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}
