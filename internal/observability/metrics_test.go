package observability_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/workflow-tui/internal/observability"
	"github.com/aretw0/workflow-tui/pkg/domain"
)

func TestMetrics_Hooks(t *testing.T) {
	m := observability.NewMetrics()
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnNodeEnter(ctx, &domain.NodeEvent{NodeID: "start"})
	hooks.OnFieldRejected(ctx, &domain.FieldEvent{FieldID: "age", FieldType: domain.FieldNumber})
	hooks.OnFieldAnswered(ctx, &domain.FieldEvent{FieldID: "age", FieldType: domain.FieldNumber})
	hooks.OnNodeLeave(ctx, &domain.NodeEvent{NodeID: "start", Target: "second"})
	hooks.OnNodeEnter(ctx, &domain.NodeEvent{NodeID: "second"})
	hooks.OnBack(ctx, &domain.NodeEvent{NodeID: "second", Target: "start"})
	hooks.OnNodeEnter(ctx, &domain.NodeEvent{NodeID: "start"})
	hooks.OnSessionEnd(ctx, &domain.SessionEvent{WorkflowID: "wf", Duration: 1500 * time.Millisecond})
	hooks.OnSessionEnd(ctx, &domain.SessionEvent{WorkflowID: "wf", Err: errors.New("boom")})

	expected := `
# HELP workflow_tui_node_visits_total Total number of node visits.
# TYPE workflow_tui_node_visits_total counter
workflow_tui_node_visits_total{node_id="second"} 1
workflow_tui_node_visits_total{node_id="start"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "workflow_tui_node_visits_total"))

	count, err := testutil.GatherAndCount(m.Registry(), "workflow_tui_fields_rejected_total", "workflow_tui_fields_answered_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(`
# HELP workflow_tui_back_navigations_total Successful back navigations.
# TYPE workflow_tui_back_navigations_total counter
workflow_tui_back_navigations_total 1
# HELP workflow_tui_sessions_total Sessions finished, by outcome (complete or error).
# TYPE workflow_tui_sessions_total counter
workflow_tui_sessions_total{outcome="complete",workflow_id="wf"} 1
workflow_tui_sessions_total{outcome="error",workflow_id="wf"} 1
`), "workflow_tui_back_navigations_total", "workflow_tui_sessions_total"))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := observability.NewMetrics()
	m.Hooks().OnNodeEnter(context.Background(), &domain.NodeEvent{NodeID: "start"})

	path := filepath.Join(t.TempDir(), "session.prom")
	require.NoError(t, m.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `workflow_tui_node_visits_total{node_id="start"} 1`)
}

func TestMetrics_WriteTextfile_BadPath(t *testing.T) {
	m := observability.NewMetrics()
	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "session.prom"))
	assert.ErrorContains(t, err, "failed to write metrics")
}
