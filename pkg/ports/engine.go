package ports

import (
	"github.com/aretw0/workflow-tui/pkg/domain"
)

// Engine is the external collaborator that owns the workflow graph semantics.
// The session driver never evaluates edge conditions itself; it only asks NextNode.
type Engine interface {
	// ValidateWorkflow checks the whole graph once, before any prompting.
	ValidateWorkflow(wf *domain.Workflow) domain.WorkflowValidation

	// IsEndNode reports whether the node terminates the session.
	// It must be consulted before IsQuestionNode.
	IsEndNode(node domain.Node) bool

	// IsQuestionNode reports whether the node prompts for fields.
	IsQuestionNode(node domain.Node) bool

	// NextNode returns the id of the node to visit after currentNodeID given all data collected so far.
	NextNode(wf *domain.Workflow, currentNodeID string, data *domain.Data) (string, error)
}
