package ports

import (
	"context"

	"github.com/aretw0/workflow-tui/pkg/domain"
)

// WorkflowLoader defines how the client retrieves a workflow definition.
// This allows the storage layer (file, memory) to be decoupled.
type WorkflowLoader interface {
	Load(ctx context.Context) (*domain.Workflow, error)
}
