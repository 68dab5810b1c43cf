package observability

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/workflow-tui/pkg/domain"
)

const namespace = "workflow_tui"

// Metrics records session activity in a private Prometheus registry.
// A terminal session has no scrape endpoint, so the registry is written
// to a node-exporter textfile when the session ends.
type Metrics struct {
	registry *prometheus.Registry

	sessions        *prometheus.CounterVec
	sessionDuration prometheus.Gauge
	nodesVisited    *prometheus.CounterVec
	answered        *prometheus.CounterVec
	rejected        *prometheus.CounterVec
	backs           prometheus.Counter
}

// NewMetrics creates and registers the session metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "Sessions finished, by outcome (complete or error).",
		}, []string{"workflow_id", "outcome"}),
		sessionDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "session_duration_seconds",
			Help:      "Wall-clock duration of the last session.",
		}),
		nodesVisited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "node_visits_total",
			Help:      "Total number of node visits.",
		}, []string{"node_id"}),
		answered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fields_answered_total",
			Help:      "Answers accepted by the validator, by field type.",
		}, []string{"field_type"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fields_rejected_total",
			Help:      "Answers rejected by the validator, by field type.",
		}, []string{"field_type"}),
		backs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "back_navigations_total",
			Help:      "Successful back navigations.",
		}),
	}
	m.registry.MustRegister(m.sessions, m.sessionDuration, m.nodesVisited, m.answered, m.rejected, m.backs)
	return m
}

// Registry exposes the underlying registry (tests, custom exporters).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Hooks returns the lifecycle hooks that feed the metrics.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSessionEnd: func(_ context.Context, e *domain.SessionEvent) {
			outcome := "complete"
			if e.Err != nil {
				outcome = "error"
			}
			m.sessions.WithLabelValues(e.WorkflowID, outcome).Inc()
			m.sessionDuration.Set(e.Duration.Seconds())
		},
		OnNodeEnter: func(_ context.Context, e *domain.NodeEvent) {
			m.nodesVisited.WithLabelValues(e.NodeID).Inc()
		},
		OnFieldAnswered: func(_ context.Context, e *domain.FieldEvent) {
			m.answered.WithLabelValues(string(e.FieldType)).Inc()
		},
		OnFieldRejected: func(_ context.Context, e *domain.FieldEvent) {
			m.rejected.WithLabelValues(string(e.FieldType)).Inc()
		},
		OnBack: func(_ context.Context, _ *domain.NodeEvent) {
			m.backs.Inc()
		},
	}
}

// WriteTextfile writes the current values in the Prometheus text format.
// The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
