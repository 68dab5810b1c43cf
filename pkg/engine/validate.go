package engine

import (
	"fmt"
	"slices"

	"github.com/aretw0/workflow-tui/internal/validator"
	"github.com/aretw0/workflow-tui/pkg/domain"
)

// ValidateWorkflow checks the graph shape and the node definitions.
// Every problem is reported; the order is deterministic.
func (e *Engine) ValidateWorkflow(wf *domain.Workflow) domain.WorkflowValidation {
	if wf == nil {
		return domain.Invalid("workflow is nil")
	}

	var errs []string
	if wf.EntryNodeID == "" {
		errs = append(errs, "entryNodeId is required")
	} else if _, ok := wf.Node(wf.EntryNodeID); !ok {
		errs = append(errs, fmt.Sprintf("entry node %q does not exist", wf.EntryNodeID))
	}
	if len(wf.Nodes) == 0 {
		errs = append(errs, "workflow has no nodes")
	}

	ids := make([]string, 0, len(wf.Nodes))
	for id := range wf.Nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		errs = append(errs, e.validateNode(wf, id, wf.Nodes[id])...)
	}

	if len(errs) == 0 {
		for _, id := range validator.Crawl(wf).Unreachable {
			errs = append(errs, fmt.Sprintf("node %q is unreachable from the entry node", id))
		}
	}

	if len(errs) > 0 {
		e.logger.Debug("workflow invalid", "workflow_id", wf.Meta.ID, "errors", len(errs))
		return domain.Invalid(errs...)
	}
	return domain.Valid()
}

func (e *Engine) validateNode(wf *domain.Workflow, key string, n domain.Node) []string {
	var errs []string
	if n.ID != key {
		errs = append(errs, fmt.Sprintf("node %q has mismatched id %q", key, n.ID))
	}

	switch {
	case e.IsEndNode(n):
		if n.Status == "" {
			errs = append(errs, fmt.Sprintf("end node %q has no status", key))
		}
		return errs
	case e.IsQuestionNode(n):
	default:
		return append(errs, fmt.Sprintf("node %q has unknown type %q", key, n.Type))
	}

	if len(n.Fields) == 0 {
		errs = append(errs, fmt.Sprintf("question node %q has no fields", key))
	}
	seen := make(map[string]bool, len(n.Fields))
	for _, f := range n.Fields {
		switch {
		case f.ID == "":
			errs = append(errs, fmt.Sprintf("node %q has a field without id", key))
		case seen[f.ID]:
			errs = append(errs, fmt.Sprintf("node %q has duplicate field %q", key, f.ID))
		}
		seen[f.ID] = true
		if !f.Type.Known() {
			errs = append(errs, fmt.Sprintf("field %q in node %q has unknown type %q", f.ID, key, f.Type))
		}
		if f.Type.HasOptions() && len(f.Options) == 0 {
			errs = append(errs, fmt.Sprintf("field %q in node %q requires options", f.ID, key))
		}
	}

	if n.DefaultEdge == "" {
		errs = append(errs, fmt.Sprintf("question node %q has no defaultEdge", key))
	}
	for _, target := range validator.Targets(n) {
		if _, ok := wf.Node(target); !ok {
			errs = append(errs, fmt.Sprintf("node %q points to missing node %q", key, target))
		}
	}
	for i, edge := range n.ConditionalEdges {
		if edge.TargetNodeID == "" {
			errs = append(errs, fmt.Sprintf("conditional edge %d in node %q has no target", i, key))
		}
		if !KnownOperator(edge.Condition.Operator) {
			errs = append(errs, fmt.Sprintf("conditional edge %d in node %q has unknown operator %q", i, key, edge.Condition.Operator))
		}
	}
	return errs
}
