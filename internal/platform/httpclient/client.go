// Package httpclient provides the instrumented HTTP client used for outbound
// calls such as task submission to a remote task API.
//
// A request passes through, in order:
//
//	Circuit Breaker → Rate Limiter → Header Injection → OTEL Span → Retry → HTTP
//
// Retries apply only to requests that can be replayed: idempotent methods, or
// any method carrying an Idempotency-Key header. A Retry-After header on a
// 429 or 5xx response stretches the next backoff.
//
//	client := httpclient.New(&cfg.Client, "task-api", metrics, logger)
//	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
//	req.Header.Set(httpclient.IdempotencyKeyHeader, item.ID)
//	resp, err := client.Do(ctx, req)
//
// Request and correlation ids set by inbound middleware are forwarded:
//
//	ctx = httpclient.WithRequestID(ctx, "req-123")
//	ctx = httpclient.WithCorrelationID(ctx, "corr-456")
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/action-pipeline/internal/platform/config"
	"github.com/jsamuelsen11/action-pipeline/internal/platform/telemetry"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// propagated lists the context values copied onto every outbound request.
var propagated = []struct {
	key    any
	header string
}{
	{requestIDKey{}, "X-Request-ID"},
	{correlationIDKey{}, "X-Correlation-ID"},
}

// WithRequestID returns a copy of ctx whose outbound requests carry id as
// X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID returns a copy of ctx whose outbound requests carry id as
// X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client sends requests to one downstream service.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter // nil when rate limiting is disabled
	retryCfg    retryConfig
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New creates a Client for serviceName, the name used in spans, metrics and
// health results. metrics may be nil.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		// A caller giving up says nothing about the downstream.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		breaker:     cb,
		limiter:     limiter,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Do sends req. A final non-retryable status returns the response and a nil
// error. When retries run out on a retryable status, both the last response
// and an error are returned. Breaker rejections and transport errors return
// a nil response. The caller closes any returned body.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}

		for _, p := range propagated {
			if id, ok := ctx.Value(p.key).(string); ok && id != "" {
				req.Header.Set(p.header, id)
			}
		}

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		req = req.WithContext(spanCtx)
		err := c.doWithRetry(spanCtx, req, &resp)

		if resp != nil {
			span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return struct{}{}, err
	})

	c.recordMetrics(ctx, method, start, resp, err)
	return resp, err
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CircuitBreakerState returns "closed", "half-open" or "open".
func (c *Client) CircuitBreakerState() string {
	return c.breaker.State().String()
}

// Name returns the downstream service name.
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck reports the breaker's view of the downstream without making a
// call: nil while closed, an error while half-open or open.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	default:
		return fmt.Errorf("%s: failing (circuit breaker %s)", c.serviceName, state)
	}
}

// startSpan opens a client span and injects its trace context into req's
// headers.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.GetTracerProvider().Tracer("httpclient").Start(ctx,
		fmt.Sprintf("HTTP %s %s", req.Method, c.serviceName),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

// recordMetrics runs outside the breaker so rejected calls are counted too.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(statusCode),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(outcome(statusCode, err)),
	)

	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// outcome labels one call for the result metric attribute.
func outcome(statusCode int, err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case statusCode > 0 && statusCode < http.StatusBadRequest:
		return "success"
	default:
		return "error"
	}
}

// toUint32 clamps v into the uint32 range.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
