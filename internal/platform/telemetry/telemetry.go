// Package telemetry sets up OpenTelemetry tracing and metrics, exporting to
// stdout in development or to an OTLP/HTTP collector.
//
//	tp, err := telemetry.InitTracer(ctx, "action-pipeline", telemetry.ExporterOTLP, "http://collector:4318")
//	mp, err := telemetry.InitMeter(ctx, "action-pipeline", telemetry.ExporterOTLP, "http://collector:4318")
//	metrics, err := telemetry.NewMetrics(mp, "action-pipeline")
//	metrics.RecordAction(ctx, "setFollowingStatus", "success", elapsed)
//
// Both providers become the otel globals and must be shut down on exit.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// InstrumentationName scopes tracers and meters created by this service.
const InstrumentationName = "github.com/jsamuelsen11/action-pipeline"

var errEmptyEndpoint = errors.New("otlp exporter requires an endpoint")

// InitTracer installs a batching TracerProvider and the W3C trace context
// and baggage propagators as the otel globals.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var spans sdktrace.SpanExporter
	switch exporter {
	case ExporterOTLP:
		host, insecure, perr := parseEndpoint(endpoint)
		if perr != nil {
			return nil, fmt.Errorf("creating span exporter: %w", perr)
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		spans, err = otlptracehttp.New(ctx, opts...)
	case ExporterStdout:
		spans, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	default:
		err = fmt.Errorf("unsupported exporter %q", exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter installs a MeterProvider with a periodic reader as the otel
// global.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var metrics sdkmetric.Exporter
	switch exporter {
	case ExporterOTLP:
		host, insecure, perr := parseEndpoint(endpoint)
		if perr != nil {
			return nil, fmt.Errorf("creating metric exporter: %w", perr)
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		metrics, err = otlpmetrichttp.New(ctx, opts...)
	case ExporterStdout:
		metrics, err = stdoutmetric.New()
	default:
		err = fmt.Errorf("unsupported exporter %q", exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metrics)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
}

// parseEndpoint splits a collector URL such as "http://collector:4318" into
// the host:port the OTLP exporters take and whether TLS is off. A bare
// host:port is used as is, without TLS.
func parseEndpoint(endpoint string) (host string, insecure bool, err error) {
	if endpoint == "" {
		return "", false, errEmptyEndpoint
	}
	u, perr := url.Parse(endpoint)
	if perr != nil || u.Host == "" {
		return endpoint, true, nil
	}
	return u.Host, u.Scheme != "https", nil
}
