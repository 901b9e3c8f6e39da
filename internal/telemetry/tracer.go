// Package telemetry wires up OpenTelemetry tracing for the router.
package telemetry

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// Option configures the tracer bootstrap.
type Option func(*settings)

type settings struct {
	writer      io.Writer
	sampleRatio float64
}

// WithWriter directs exported spans to w instead of stdout. The demo
// CLI uses this to keep span JSON off its own output stream.
func WithWriter(w io.Writer) Option {
	return func(s *settings) {
		s.writer = w
	}
}

// WithSampleRatio samples the given fraction of traces. The default is
// 1, every trace.
func WithSampleRatio(ratio float64) Option {
	return func(s *settings) {
		s.sampleRatio = ratio
	}
}

// InitTracer initializes OpenTelemetry with a pretty-printed span
// exporter and registers the global tracer provider. The returned
// function shuts the provider down, flushing any buffered spans.
func InitTracer(serviceName string, logger *slog.Logger, opts ...Option) (func(context.Context) error, error) {
	s := &settings{
		writer:      os.Stdout,
		sampleRatio: 1,
	}
	for _, opt := range opts {
		opt(s)
	}

	exporter, err := stdouttrace.New(
		stdouttrace.WithPrettyPrint(),
		stdouttrace.WithWriter(s.writer),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			"",
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(s.sampleRatio))),
	)
	otel.SetTracerProvider(tp)

	logger.Info("OpenTelemetry initialized",
		slog.String("service", serviceName),
		slog.Float64("sample_ratio", s.sampleRatio),
	)

	return tp.Shutdown, nil
}
