package tests

import (
	"context"
	"testing"

	"github.com/aretw0/workflow-tui/pkg/domain"
	"github.com/aretw0/workflow-tui/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// LinearWorkflow returns a minimal valid workflow: start -> details -> done.
func LinearWorkflow() *domain.Workflow {
	return &domain.Workflow{
		Meta:        domain.Meta{ID: "linear", Name: "Linear", Version: "1.0.0"},
		EntryNodeID: "start",
		Nodes: map[string]domain.Node{
			"start": {
				ID:    "start",
				Type:  domain.NodeTypeQuestion,
				Label: "Start",
				Fields: []domain.FieldDefinition{
					{ID: "name", Type: domain.FieldText, Label: "Name", Validation: domain.FieldValidation{Required: true}},
				},
				DefaultEdge: "details",
			},
			"details": {
				ID:    "details",
				Type:  domain.NodeTypeQuestion,
				Label: "Details",
				Fields: []domain.FieldDefinition{
					{ID: "age", Type: domain.FieldNumber, Label: "Age"},
				},
				DefaultEdge: "done",
			},
			"done": {ID: "done", Type: domain.NodeTypeEnd, Status: "complete"},
		},
	}
}

// EngineContractTest is a reusable test suite that verifies if an adapter complies with ports.Engine.
func EngineContractTest(t *testing.T, engine ports.Engine) {
	t.Helper()
	wf := LinearWorkflow()

	t.Run("ValidateWorkflow_Valid", func(t *testing.T) {
		res := engine.ValidateWorkflow(wf)
		assert.True(t, res.IsValid, "errors: %v", res.Errors)
		assert.Empty(t, res.Errors)
	})

	t.Run("Classification", func(t *testing.T) {
		assert.True(t, engine.IsQuestionNode(wf.Nodes["start"]))
		assert.False(t, engine.IsEndNode(wf.Nodes["start"]))
		assert.True(t, engine.IsEndNode(wf.Nodes["done"]))
		assert.False(t, engine.IsQuestionNode(wf.Nodes["done"]))
	})

	t.Run("NextNode_DefaultEdge", func(t *testing.T) {
		data := domain.DataFrom("name", "Ada")

		next, err := engine.NextNode(wf, "start", data)
		require.NoError(t, err)
		assert.Equal(t, "details", next)

		next, err = engine.NextNode(wf, "details", data)
		require.NoError(t, err)
		assert.Equal(t, "done", next)
	})

	t.Run("NextNode_UnknownNode", func(t *testing.T) {
		_, err := engine.NextNode(wf, "missing", domain.NewData())
		assert.Error(t, err)
	})
}

// WorkflowLoaderContractTest verifies that a ports.WorkflowLoader returns the expected
// workflow and that each Load yields an independent copy.
func WorkflowLoaderContractTest(t *testing.T, loader ports.WorkflowLoader, expected *domain.Workflow) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load", func(t *testing.T) {
		wf, err := loader.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, expected, wf)
	})

	t.Run("Load_Isolated", func(t *testing.T) {
		first, err := loader.Load(ctx)
		require.NoError(t, err)
		first.EntryNodeID = "mutated"
		delete(first.Nodes, expected.EntryNodeID)

		second, err := loader.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, expected.EntryNodeID, second.EntryNodeID)
		assert.Contains(t, second.Nodes, expected.EntryNodeID)
	})

	t.Run("Load_CancelledContext", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := loader.Load(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
