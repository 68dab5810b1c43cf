package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aretw0/workflow-tui/pkg/domain"
	"github.com/aretw0/workflow-tui/pkg/ports"
	"github.com/aretw0/workflow-tui/pkg/schema"
)

// Runner drives one workflow session over a line-oriented terminal.
// It owns the collected data and the history stack; routing is delegated to the engine.
type Runner struct {
	engine ports.Engine

	// Input is the line source. If nil, a TextHandler over Stdin/Stdout is used.
	Input ports.LineReader

	// View renders headers, warnings and the summary. If nil, a plain TextView on Stdout is used.
	View View

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Hooks receive session, node and field events. Any hook may be nil.
	Hooks domain.LifecycleHooks

	// SessionID tags events and log lines.
	SessionID string

	initialData *domain.Data
}

// Outcome is what a completed session produced.
type Outcome struct {
	Data        *domain.Data
	History     []string
	FinalNodeID string
	Status      string
}

// WorkflowError is returned when the engine rejects the workflow before the session starts.
type WorkflowError struct {
	Errors []string
}

func (e *WorkflowError) Error() string {
	if len(e.Errors) == 0 {
		return domain.ErrInvalidWorkflow.Error()
	}
	return fmt.Sprintf("%s: %s", domain.ErrInvalidWorkflow, strings.Join(e.Errors, "; "))
}

func (e *WorkflowError) Unwrap() error { return domain.ErrInvalidWorkflow }

// NodeError reports a node the driver cannot handle.
type NodeError struct {
	NodeID string
	Err    error
}

func (e *NodeError) Error() string {
	switch {
	case errors.Is(e.Err, domain.ErrNodeNotFound):
		return "invalid node: " + e.NodeID
	case errors.Is(e.Err, domain.ErrUnknownNodeType):
		return "unknown node type: " + e.NodeID
	}
	return fmt.Sprintf("node %s: %v", e.NodeID, e.Err)
}

func (e *NodeError) Unwrap() error { return e.Err }

// NewRunner creates a Runner bound to an engine.
func NewRunner(engine ports.Engine, opts ...Option) *Runner {
	r := &Runner{
		engine: engine,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the session until an end node is reached.
// The input is closed on every return path.
func (r *Runner) Run(ctx context.Context, wf *domain.Workflow) (outcome *Outcome, err error) {
	in := r.resolveInput()
	defer func() {
		if cerr := in.Close(); cerr != nil && err == nil {
			r.Logger.Debug("input close failed", "err", cerr)
		}
	}()

	if r.engine == nil {
		return nil, errors.New("runner: engine is required")
	}
	if wf == nil {
		return nil, &WorkflowError{Errors: []string{"workflow is nil"}}
	}

	if v := r.engine.ValidateWorkflow(wf); !v.IsValid {
		r.Logger.Debug("workflow rejected", "workflow_id", wf.Meta.ID, "errors", v.Errors)
		return nil, &WorkflowError{Errors: v.Errors}
	}

	view := r.resolveView()

	data := domain.NewData()
	r.initialData.Each(data.Set)
	history := domain.NewHistory(wf.EntryNodeID)

	started := time.Now()
	r.emitSession(ctx, r.Hooks.OnSessionStart, domain.EventSessionStart, wf, "", 0, nil)
	defer func() {
		r.emitSession(ctx, r.Hooks.OnSessionEnd, domain.EventSessionEnd, wf, history.Current(), time.Since(started), err)
	}()

	view.Intro(wf.Meta)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		nodeID := history.Current()
		node, ok := wf.Node(nodeID)
		if !ok {
			return nil, &NodeError{NodeID: nodeID, Err: domain.ErrNodeNotFound}
		}
		if r.engine.IsEndNode(node) {
			r.emitNode(ctx, r.Hooks.OnNodeEnter, domain.EventNodeEnter, node, "")
			view.Summary(wf, data)
			return &Outcome{
				Data:        data,
				History:     history.IDs(),
				FinalNodeID: node.ID,
				Status:      node.Status,
			}, nil
		}
		if !r.engine.IsQuestionNode(node) {
			return nil, &NodeError{NodeID: nodeID, Err: domain.ErrUnknownNodeType}
		}

		r.emitNode(ctx, r.Hooks.OnNodeEnter, domain.EventNodeEnter, node, "")
		view.NodeHeader(node)

		wentBack, err := r.askFields(ctx, in, view, node, data)
		if err != nil {
			return nil, err
		}

		if wentBack {
			if !history.Back() {
				r.Logger.Debug("back ignored at entry node", "node_id", nodeID)
				view.AlreadyAtStart()
				continue
			}
			target := history.Current()
			r.Logger.Debug("navigated back", "from", nodeID, "to", target)
			r.emitNode(ctx, r.Hooks.OnBack, domain.EventBack, node, target)
			view.BackTo(target)
			continue
		}

		next, err := r.engine.NextNode(wf, nodeID, data)
		if err != nil {
			return nil, fmt.Errorf("next node from %s: %w", nodeID, err)
		}
		r.Logger.Debug("advanced", "from", nodeID, "to", next)
		r.emitNode(ctx, r.Hooks.OnNodeLeave, domain.EventNodeLeave, node, next)
		history.Push(next)
		view.Advance()
	}
}

// askFields prompts every field of a question node in order.
// It stops at the first "back" and reports it.
func (r *Runner) askFields(ctx context.Context, in ports.LineReader, view View, node domain.Node, data *domain.Data) (bool, error) {
	for _, field := range node.Fields {
		if field.ReadOnly {
			v, ok := data.Get(field.ID)
			view.ReadOnlyField(field, v, ok)
			continue
		}
		if field.Type == domain.FieldSelect || field.Type == domain.FieldRadio {
			view.Options(field)
		}

		res, err := PromptField(ctx, in, view, field, data, WithRejectionHook(func(fe *schema.FieldError) {
			r.Logger.Debug("answer rejected", "node_id", node.ID, "field_id", field.ID, "reason", fe.Message)
			r.emitField(ctx, r.Hooks.OnFieldRejected, domain.EventFieldRejected, node, field, fe.Message)
		}))
		if err != nil {
			return false, fmt.Errorf("prompt %s: %w", field.ID, err)
		}
		if res.IsBack() {
			return true, nil
		}
		v, _ := res.Value()
		data.Set(field.ID, v)
		r.emitField(ctx, r.Hooks.OnFieldAnswered, domain.EventFieldAnswered, node, field, "")
	}
	return false, nil
}

func (r *Runner) resolveInput() ports.LineReader {
	if r.Input == nil {
		r.Input = NewTextHandler(os.Stdin, os.Stdout)
	}
	return r.Input
}

func (r *Runner) resolveView() View {
	if r.View == nil {
		r.View = NewTextView(os.Stdout)
	}
	return r.View
}

func (r *Runner) base(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t, SessionID: r.SessionID}
}

func (r *Runner) emitSession(ctx context.Context, hook func(context.Context, *domain.SessionEvent), t domain.EventType, wf *domain.Workflow, nodeID string, d time.Duration, err error) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.SessionEvent{EventBase: r.base(t), WorkflowID: wf.Meta.ID, NodeID: nodeID, Duration: d, Err: err})
}

func (r *Runner) emitNode(ctx context.Context, hook func(context.Context, *domain.NodeEvent), t domain.EventType, node domain.Node, target string) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.NodeEvent{EventBase: r.base(t), NodeID: node.ID, NodeType: node.Type, Target: target})
}

func (r *Runner) emitField(ctx context.Context, hook func(context.Context, *domain.FieldEvent), t domain.EventType, node domain.Node, field domain.FieldDefinition, reason string) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.FieldEvent{EventBase: r.base(t), NodeID: node.ID, FieldID: field.ID, FieldType: field.Type, Reason: reason})
}
