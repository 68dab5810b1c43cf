package observability

import (
	"context"
	"log/slog"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// LogExporter is a span exporter that writes finished spans to a slog logger.
// It keeps tracing usable in a terminal program with no collector.
type LogExporter struct {
	logger *slog.Logger
}

// NewLogExporter creates an exporter logging at debug level.
func NewLogExporter(logger *slog.Logger) *LogExporter {
	return &LogExporter{logger: logger}
}

func (e *LogExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		attrs := []any{
			"trace_id", s.SpanContext().TraceID().String(),
			"span_id", s.SpanContext().SpanID().String(),
			"duration", s.EndTime().Sub(s.StartTime()),
			"events", len(s.Events()),
		}
		if s.Parent().IsValid() {
			attrs = append(attrs, "parent_id", s.Parent().SpanID().String())
		}
		for _, kv := range s.Attributes() {
			attrs = append(attrs, string(kv.Key), kv.Value.Emit())
		}
		if s.Status().Description != "" {
			attrs = append(attrs, "status", s.Status().Description)
		}
		e.logger.DebugContext(ctx, "Span "+s.Name(), attrs...)
	}
	return nil
}

func (e *LogExporter) Shutdown(context.Context) error {
	return nil
}

// NewTracerProvider returns a provider that exports every span synchronously to the logger.
func NewTracerProvider(logger *slog.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSyncer(NewLogExporter(logger)))
}
