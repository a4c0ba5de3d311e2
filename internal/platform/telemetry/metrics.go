package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrAction      = attribute.Key("action.name")
	AttrOutcome     = attribute.Key("action.outcome")
	AttrService     = attribute.Key("service.name")
)

// Metrics holds the service's instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	ActionDuration        metric.Float64Histogram
	ActionExecutions      metric.Int64Counter
	TaskSubmissions       metric.Int64Counter

	serviceName string
}

// NewMetrics creates every instrument on mp's meter for this module.
// serviceName labels the action and task instruments.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(InstrumentationName)
	m := &Metrics{serviceName: serviceName}

	var errs []error
	histogram := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		errs = append(errs, err)
		return h
	}
	counter := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		errs = append(errs, err)
		return c
	}

	m.ServerRequestDuration = histogram("http.server.request.duration", "Duration of incoming HTTP requests")
	m.ServerRequestTotal = counter("http.server.request.total", "Incoming HTTP requests", "{request}")
	m.ClientRequestDuration = histogram("http.client.request.duration", "Duration of outgoing HTTP requests")
	m.ClientRequestTotal = counter("http.client.request.total", "Outgoing HTTP requests", "{request}")
	m.ActionDuration = histogram("action.execution.duration", "Duration of action pipeline invocations")
	m.ActionExecutions = counter("action.execution.total", "Action pipeline invocations", "{invocation}")
	m.TaskSubmissions = counter("action.task.submitted", "Follow-up items submitted to the task queue", "{item}")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordAction records one pipeline invocation. outcome is "success" or the
// failing error kind. Safe on a nil *Metrics.
func (m *Metrics) RecordAction(ctx context.Context, action, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		AttrAction.String(action),
		AttrOutcome.String(outcome),
		AttrService.String(m.serviceName),
	)
	m.ActionExecutions.Add(ctx, 1, attrs)
	m.ActionDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// RecordTaskSubmission records one follow-up item handed to the task queue.
// Safe on a nil *Metrics.
func (m *Metrics) RecordTaskSubmission(ctx context.Context, action string, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.TaskSubmissions.Add(ctx, 1, metric.WithAttributes(
		AttrAction.String(action),
		AttrResult.String(result),
		AttrService.String(m.serviceName),
	))
}
