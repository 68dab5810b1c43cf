package engine

import (
	"errors"
	"testing"

	"github.com/aretw0/workflow-tui/pkg/domain"
	"github.com/aretw0/workflow-tui/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Contract(t *testing.T) {
	tests.EngineContractTest(t, New())
}

func branching() *domain.Workflow {
	wf := tests.LinearWorkflow()
	start := wf.Nodes["start"]
	start.ConditionalEdges = []domain.ConditionalEdge{
		{TargetNodeID: "done", Condition: domain.Condition{FieldID: "name", Operator: OpEq, Value: "skip"}},
	}
	wf.Nodes["start"] = start
	return wf
}

func TestEngine_NextNode(t *testing.T) {
	e := New()
	wf := branching()

	t.Run("Conditional Edge", func(t *testing.T) {
		next, err := e.NextNode(wf, "start", domain.DataFrom("name", "skip"))
		require.NoError(t, err)
		assert.Equal(t, "done", next)
	})

	t.Run("Default Edge", func(t *testing.T) {
		next, err := e.NextNode(wf, "start", domain.DataFrom("name", "Ada"))
		require.NoError(t, err)
		assert.Equal(t, "details", next)
	})

	t.Run("Unknown Node", func(t *testing.T) {
		_, err := e.NextNode(wf, "ghost", nil)
		assert.ErrorIs(t, err, domain.ErrNodeNotFound)
	})

	t.Run("No Edge", func(t *testing.T) {
		_, err := e.NextNode(wf, "done", nil)
		assert.ErrorIs(t, err, ErrNoEdge)
	})

	t.Run("Evaluator Errors Are Skipped", func(t *testing.T) {
		failing := New(WithConditionEvaluator(func(domain.Condition, *domain.Data) (bool, error) {
			return false, errors.New("boom")
		}))
		next, err := failing.NextNode(wf, "start", domain.DataFrom("name", "skip"))
		require.NoError(t, err)
		assert.Equal(t, "details", next)
	})
}

func TestEngine_ValidateWorkflow(t *testing.T) {
	e := New()

	t.Run("Branching Is Valid", func(t *testing.T) {
		res := e.ValidateWorkflow(branching())
		assert.True(t, res.IsValid, "errors: %v", res.Errors)
	})

	t.Run("Nil", func(t *testing.T) {
		assert.False(t, e.ValidateWorkflow(nil).IsValid)
	})

	cases := []struct {
		name   string
		mutate func(wf *domain.Workflow)
		want   string
	}{
		{"Missing Entry", func(wf *domain.Workflow) { wf.EntryNodeID = "ghost" }, `entry node "ghost" does not exist`},
		{"Empty Entry", func(wf *domain.Workflow) { wf.EntryNodeID = "" }, "entryNodeId is required"},
		{"Mismatched Id", func(wf *domain.Workflow) {
			n := wf.Nodes["details"]
			n.ID = "other"
			wf.Nodes["details"] = n
		}, `node "details" has mismatched id "other"`},
		{"End Without Status", func(wf *domain.Workflow) {
			wf.Nodes["done"] = domain.Node{ID: "done", Type: domain.NodeTypeEnd}
		}, `end node "done" has no status`},
		{"Unknown Node Type", func(wf *domain.Workflow) {
			wf.Nodes["done"] = domain.Node{ID: "done", Type: "webhook"}
		}, `node "done" has unknown type "webhook"`},
		{"No Fields", func(wf *domain.Workflow) {
			n := wf.Nodes["details"]
			n.Fields = nil
			wf.Nodes["details"] = n
		}, `question node "details" has no fields`},
		{"Duplicate Field", func(wf *domain.Workflow) {
			n := wf.Nodes["details"]
			n.Fields = append(n.Fields, n.Fields[0])
			wf.Nodes["details"] = n
		}, `node "details" has duplicate field "age"`},
		{"Unknown Field Type", func(wf *domain.Workflow) {
			n := wf.Nodes["details"]
			n.Fields = []domain.FieldDefinition{{ID: "age", Type: "slider"}}
			wf.Nodes["details"] = n
		}, `field "age" in node "details" has unknown type "slider"`},
		{"Select Without Options", func(wf *domain.Workflow) {
			n := wf.Nodes["details"]
			n.Fields = []domain.FieldDefinition{{ID: "plan", Type: domain.FieldSelect}}
			wf.Nodes["details"] = n
		}, `field "plan" in node "details" requires options`},
		{"No Default Edge", func(wf *domain.Workflow) {
			n := wf.Nodes["details"]
			n.DefaultEdge = ""
			wf.Nodes["details"] = n
		}, `question node "details" has no defaultEdge`},
		{"Broken Edge", func(wf *domain.Workflow) {
			n := wf.Nodes["details"]
			n.DefaultEdge = "ghost"
			wf.Nodes["details"] = n
		}, `node "details" points to missing node "ghost"`},
		{"Unknown Operator", func(wf *domain.Workflow) {
			n := wf.Nodes["start"]
			n.ConditionalEdges = []domain.ConditionalEdge{{TargetNodeID: "done", Condition: domain.Condition{FieldID: "name", Operator: "like"}}}
			wf.Nodes["start"] = n
		}, `conditional edge 0 in node "start" has unknown operator "like"`},
		{"Unreachable", func(wf *domain.Workflow) {
			wf.Nodes["orphan"] = domain.Node{ID: "orphan", Type: domain.NodeTypeEnd, Status: "complete"}
		}, `node "orphan" is unreachable from the entry node`},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			wf := branching()
			tt.mutate(wf)

			res := e.ValidateWorkflow(wf)
			assert.False(t, res.IsValid)
			assert.Contains(t, res.Errors, tt.want)
		})
	}
}
