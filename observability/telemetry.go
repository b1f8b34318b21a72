// Package observability wires optional OpenTelemetry tracing and metrics
// around notification sends. The provider stays disabled unless a Config
// with Enabled set is supplied; while disabled every instrument is a no-op.
package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

// Config controls how telemetry is exported.
type Config struct {
	ServiceName    string            `json:"service_name"`
	ServiceVersion string            `json:"service_version"`
	Environment    string            `json:"environment"`
	OTLPEndpoint   string            `json:"otlp_endpoint"`
	OTLPHeaders    map[string]string `json:"otlp_headers,omitempty"`
	TracingEnabled bool              `json:"tracing_enabled"`
	MetricsEnabled bool              `json:"metrics_enabled"`
	SampleRate     float64           `json:"sample_rate"`
	Enabled        bool              `json:"enabled"`
}

// TelemetryProvider provides observability features
type TelemetryProvider struct {
	config        *Config
	tracer        trace.Tracer
	meter         metric.Meter
	traceProvider *sdktrace.TracerProvider

	// Metrics
	notificationsSent   metric.Int64Counter
	notificationsFailed metric.Int64Counter
	sendDuration        metric.Float64Histogram
}

// NewTelemetryProvider creates a new telemetry provider
func NewTelemetryProvider(cfg *Config) (*TelemetryProvider, error) {
	if cfg == nil {
		cfg = &Config{
			ServiceName:    "notihub",
			ServiceVersion: "1.0.0",
			Environment:    "development",
			OTLPEndpoint:   "http://localhost:4318",
			TracingEnabled: true,
			MetricsEnabled: true,
			SampleRate:     1.0,
			Enabled:        false,
		}
	}

	tp := &TelemetryProvider{
		config: cfg,
	}

	if !cfg.Enabled {
		// Return no-op provider
		tp.tracer = otel.Tracer("notihub")
		tp.meter = otel.Meter("notihub")
		return tp, nil
	}

	// Initialize tracing
	if cfg.TracingEnabled {
		if err := tp.initTracing(); err != nil {
			return nil, fmt.Errorf("init tracing: %v", err)
		}
	}

	// Initialize metrics
	if cfg.MetricsEnabled {
		if err := tp.initMetrics(); err != nil {
			return nil, fmt.Errorf("init metrics: %v", err)
		}
	}

	return tp, nil
}

// Disabled returns a provider that records nothing. It is the default
// collaborator of the notifiers so telemetry stays opt-in.
func Disabled() *TelemetryProvider {
	tp, _ := NewTelemetryProvider(nil)
	return tp
}

// initTracing initializes OpenTelemetry tracing
func (tp *TelemetryProvider) initTracing() error {
	// Create resource
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(tp.config.ServiceName),
			semconv.ServiceVersion(tp.config.ServiceVersion),
			semconv.DeploymentEnvironment(tp.config.Environment),
		),
	)
	if err != nil {
		return fmt.Errorf("create resource: %v", err)
	}

	// Create OTLP HTTP exporter
	exporter, err := otlptrace.New(context.Background(),
		otlptracehttp.NewClient(
			otlptracehttp.WithEndpoint(tp.config.OTLPEndpoint),
			otlptracehttp.WithHeaders(tp.config.OTLPHeaders),
		),
	)
	if err != nil {
		return fmt.Errorf("create exporter: %v", err)
	}

	// Create trace provider
	tp.traceProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(tp.config.SampleRate)),
	)

	// Set global trace provider
	otel.SetTracerProvider(tp.traceProvider)

	// Set global propagator
	otel.SetTextMapPropagator(propagation.TraceContext{})

	// Get tracer
	tp.tracer = otel.Tracer("notihub",
		trace.WithInstrumentationVersion("1.0.0"),
		trace.WithSchemaURL(semconv.SchemaURL),
	)

	return nil
}

// initMetrics initializes OpenTelemetry metrics
func (tp *TelemetryProvider) initMetrics() error {
	// Get meter
	tp.meter = otel.Meter("notihub",
		metric.WithInstrumentationVersion("1.0.0"),
		metric.WithSchemaURL(semconv.SchemaURL),
	)

	var err error

	// Create counters
	tp.notificationsSent, err = tp.meter.Int64Counter(
		"notihub_notifications_sent_total",
		metric.WithDescription("Total number of notifications sent"),
	)
	if err != nil {
		return fmt.Errorf("create notifications_sent counter: %v", err)
	}

	tp.notificationsFailed, err = tp.meter.Int64Counter(
		"notihub_notifications_failed_total",
		metric.WithDescription("Total number of notifications that failed"),
	)
	if err != nil {
		return fmt.Errorf("create notifications_failed counter: %v", err)
	}

	// Create histograms
	tp.sendDuration, err = tp.meter.Float64Histogram(
		"notihub_send_duration_seconds",
		metric.WithDescription("Duration of notification send operations"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("create send_duration histogram: %v", err)
	}

	return nil
}

// TraceOperation creates a new span for an operation
func (tp *TelemetryProvider) TraceOperation(ctx context.Context, operationName string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	if tp.tracer == nil {
		// Return no-op span
		return ctx, trace.SpanFromContext(ctx)
	}

	return tp.tracer.Start(ctx, operationName,
		trace.WithAttributes(attributes...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// TraceSend creates a span for a notification send
func (tp *TelemetryProvider) TraceSend(ctx context.Context, provider string, channel string) (context.Context, trace.Span) {
	attributes := []attribute.KeyValue{
		attribute.String("notihub.provider", provider),
		attribute.String("notihub.channel", channel),
		attribute.String("notihub.operation", "send"),
	}

	return tp.TraceOperation(ctx, "notihub.send", attributes...)
}

// RecordSendSuccess records a successful notification send
func (tp *TelemetryProvider) RecordSendSuccess(ctx context.Context, provider string, channel string, duration time.Duration) {
	if tp.notificationsSent != nil {
		tp.notificationsSent.Add(ctx, 1, metric.WithAttributes(
			attribute.String("provider", provider),
			attribute.String("channel", channel),
			attribute.String("status", "success"),
		))
	}

	if tp.sendDuration != nil {
		tp.sendDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
			attribute.String("provider", provider),
			attribute.String("channel", channel),
			attribute.String("status", "success"),
		))
	}
}

// RecordSendFailure records a failed notification send
func (tp *TelemetryProvider) RecordSendFailure(ctx context.Context, provider string, channel string, duration time.Duration, errorCode string) {
	if tp.notificationsFailed != nil {
		tp.notificationsFailed.Add(ctx, 1, metric.WithAttributes(
			attribute.String("provider", provider),
			attribute.String("channel", channel),
			attribute.String("error_code", errorCode),
		))
	}

	if tp.sendDuration != nil {
		tp.sendDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
			attribute.String("provider", provider),
			attribute.String("channel", channel),
			attribute.String("status", "error"),
		))
	}
}

// SetSpanError sets an error on the current span
func (tp *TelemetryProvider) SetSpanError(span trace.Span, err error) {
	if span != nil && err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// SetSpanSuccess marks the span as successful
func (tp *TelemetryProvider) SetSpanSuccess(span trace.Span) {
	if span != nil {
		span.SetStatus(codes.Ok, "")
	}
}

// Shutdown gracefully shuts down the telemetry provider
func (tp *TelemetryProvider) Shutdown(ctx context.Context) error {
	if tp.traceProvider != nil {
		return tp.traceProvider.Shutdown(ctx)
	}
	return nil
}

// GetTracer returns the tracer instance
func (tp *TelemetryProvider) GetTracer() trace.Tracer {
	return tp.tracer
}

// GetMeter returns the meter instance
func (tp *TelemetryProvider) GetMeter() metric.Meter {
	return tp.meter
}
