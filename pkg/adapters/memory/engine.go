package memory

import (
	"fmt"

	"github.com/aretw0/workflow-tui/pkg/domain"
)

// Engine is a minimal ports.Engine for tests: every workflow is valid and
// NextNode follows Routes first, then the default edge. Conditions are ignored.
type Engine struct {
	// Routes overrides the next node by current node id.
	Routes map[string]string
	// Errors, when set, makes ValidateWorkflow fail with these messages.
	Errors []string
}

// NewEngine creates a stub engine with optional route overrides.
func NewEngine(routes map[string]string) *Engine {
	return &Engine{Routes: routes}
}

func (e *Engine) ValidateWorkflow(*domain.Workflow) domain.WorkflowValidation {
	if len(e.Errors) > 0 {
		return domain.Invalid(e.Errors...)
	}
	return domain.Valid()
}

func (e *Engine) IsEndNode(n domain.Node) bool {
	return n.Type == domain.NodeTypeEnd
}

func (e *Engine) IsQuestionNode(n domain.Node) bool {
	return n.Type == domain.NodeTypeQuestion
}

func (e *Engine) NextNode(wf *domain.Workflow, currentNodeID string, _ *domain.Data) (string, error) {
	node, ok := wf.Node(currentNodeID)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrNodeNotFound, currentNodeID)
	}
	if next, ok := e.Routes[currentNodeID]; ok {
		return next, nil
	}
	if node.DefaultEdge == "" {
		return "", fmt.Errorf("node %s has no default edge", currentNodeID)
	}
	return node.DefaultEdge, nil
}
