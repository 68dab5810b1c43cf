package cli

import (
	"context"
	"log/slog"

	"github.com/aretw0/workflow-tui/internal/observability"
	"github.com/aretw0/workflow-tui/pkg/domain"
	"github.com/aretw0/workflow-tui/pkg/engine"
)

// createEngine initializes the default engine with standard CLI conventions.
func createEngine(logger *slog.Logger) *engine.Engine {
	return engine.New(engine.WithLogger(logger))
}

// sessionHooks collects the lifecycle hooks enabled by the options.
// The returned shutdown flushes the tracer and must always be called.
func sessionHooks(opts RunOptions, logger *slog.Logger) (domain.LifecycleHooks, *observability.Metrics, func()) {
	var (
		all      []domain.LifecycleHooks
		metrics  *observability.Metrics
		shutdown = func() {}
	)

	if opts.Debug {
		all = append(all, observability.DebugHooks(logger))
	}
	if opts.MetricsFile != "" {
		metrics = observability.NewMetrics()
		all = append(all, metrics.Hooks())
	}
	if opts.Trace {
		tp := observability.NewTracerProvider(logger)
		all = append(all, observability.NewTracing(tp.Tracer(observability.TracerName)).Hooks())
		shutdown = func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Warn("tracer shutdown failed", "err", err)
			}
		}
	}
	return observability.Combine(all...), metrics, shutdown
}
