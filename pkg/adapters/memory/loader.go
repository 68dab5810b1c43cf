package memory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aretw0/workflow-tui/pkg/domain"
)

// Loader implements ports.WorkflowLoader over a workflow held in memory.
// Every Load returns a deep copy, so callers cannot mutate the source.
type Loader struct {
	raw []byte
}

// NewLoader creates a Loader from raw JSON.
func NewLoader(data []byte) *Loader {
	return &Loader{raw: append([]byte(nil), data...)}
}

// NewFromWorkflow creates a Loader from a domain object.
// This handles serialization automatically, improving DX for tests.
func NewFromWorkflow(wf *domain.Workflow) (*Loader, error) {
	if wf == nil {
		return nil, fmt.Errorf("workflow is nil")
	}
	bytes, err := json.Marshal(wf)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workflow %s: %w", wf.Meta.ID, err)
	}
	return &Loader{raw: bytes}, nil
}

// Load decodes a fresh copy of the workflow.
func (l *Loader) Load(ctx context.Context) (*domain.Workflow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var wf domain.Workflow
	if err := json.Unmarshal(l.raw, &wf); err != nil {
		return nil, fmt.Errorf("failed to decode workflow: %w", err)
	}
	return &wf, nil
}
