package runner

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/workflow-tui/pkg/domain"
	"github.com/aretw0/workflow-tui/pkg/schema"
)

// scriptedInput replays fixed answers and records every prompt it was shown.
type scriptedInput struct {
	lines   []string
	prompts []string
	closed  int
}

func script(lines ...string) *scriptedInput {
	return &scriptedInput{lines: lines}
}

func (s *scriptedInput) ReadLine(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptedInput) Close() error {
	s.closed++
	return nil
}

// fakeEngine routes by default edge, or through route when set.
type fakeEngine struct {
	invalid []string
	route   func(nodeID string, data *domain.Data) (string, bool)
	calls   []string
}

func (e *fakeEngine) ValidateWorkflow(*domain.Workflow) domain.WorkflowValidation {
	if len(e.invalid) > 0 {
		return domain.Invalid(e.invalid...)
	}
	return domain.Valid()
}

func (e *fakeEngine) IsEndNode(n domain.Node) bool      { return n.Type == domain.NodeTypeEnd }
func (e *fakeEngine) IsQuestionNode(n domain.Node) bool { return n.Type == domain.NodeTypeQuestion }

func (e *fakeEngine) NextNode(wf *domain.Workflow, current string, data *domain.Data) (string, error) {
	e.calls = append(e.calls, current)
	if e.route != nil {
		if next, ok := e.route(current, data); ok {
			return next, nil
		}
	}
	n, ok := wf.Node(current)
	if !ok || n.DefaultEdge == "" {
		return "", fmt.Errorf("no edge from %s", current)
	}
	return n.DefaultEdge, nil
}

// recordingView keeps a log of view calls instead of writing text.
type recordingView struct {
	calls  []string
	errors []string
}

func (v *recordingView) Intro(m domain.Meta) {
	v.calls = append(v.calls, "intro:"+m.Name)
}

func (v *recordingView) NodeHeader(n domain.Node) {
	v.calls = append(v.calls, "node:"+n.ID)
}

func (v *recordingView) Options(f domain.FieldDefinition) {
	v.calls = append(v.calls, "options:"+f.ID)
}

func (v *recordingView) AlreadyAtStart() {
	v.calls = append(v.calls, "at-start")
}

func (v *recordingView) BackTo(id string) {
	v.calls = append(v.calls, "back:"+id)
}

func (v *recordingView) Advance() {}

func (v *recordingView) Summary(*domain.Workflow, *domain.Data) {
	v.calls = append(v.calls, "summary")
}

func (v *recordingView) ReadOnlyField(f domain.FieldDefinition, value any, present bool) {
	v.calls = append(v.calls, "readonly:"+f.ID+"="+displayOrMissing(value, present))
}

func (v *recordingView) FieldError(_ domain.FieldDefinition, err *schema.FieldError) {
	v.errors = append(v.errors, err.Message)
}
