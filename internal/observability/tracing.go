package observability

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/aretw0/workflow-tui/pkg/domain"
)

// TracerName is the instrumentation scope used by Tracing.
const TracerName = "github.com/aretw0/workflow-tui"

// Tracing maps a session onto spans: one root span per session, one child span
// per node visit, and span events for answered and rejected fields.
type Tracing struct {
	tracer trace.Tracer

	mu          sync.Mutex
	sessionCtx  context.Context
	sessionSpan trace.Span
	nodeSpan    trace.Span
}

// NewTracing creates span hooks on top of tracer.
func NewTracing(tracer trace.Tracer) *Tracing {
	return &Tracing{tracer: tracer}
}

// Hooks returns the lifecycle hooks that create the spans.
func (t *Tracing) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSessionStart:  t.sessionStart,
		OnSessionEnd:    t.sessionEnd,
		OnNodeEnter:     t.nodeEnter,
		OnNodeLeave:     t.nodeLeave,
		OnFieldAnswered: t.fieldAnswered,
		OnFieldRejected: t.fieldRejected,
		OnBack:          t.back,
	}
}

func (t *Tracing) sessionStart(ctx context.Context, e *domain.SessionEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessionCtx, t.sessionSpan = t.tracer.Start(ctx, "session",
		trace.WithTimestamp(e.Timestamp),
		trace.WithAttributes(
			attribute.String("session.id", e.SessionID),
			attribute.String("workflow.id", e.WorkflowID),
		))
}

func (t *Tracing) sessionEnd(_ context.Context, e *domain.SessionEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.endNode(attribute.String("node.exit", "session_end"))
	if t.sessionSpan == nil {
		return
	}
	t.sessionSpan.SetAttributes(attribute.String("node.final", e.NodeID))
	if e.Err != nil {
		t.sessionSpan.RecordError(e.Err)
		t.sessionSpan.SetStatus(codes.Error, e.Err.Error())
	}
	t.sessionSpan.End(trace.WithTimestamp(e.Timestamp))
	t.sessionSpan = nil
	t.sessionCtx = nil
}

func (t *Tracing) nodeEnter(ctx context.Context, e *domain.NodeEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// A re-rendered node (back at the entry node) closes its previous visit.
	t.endNode(attribute.String("node.exit", "rerender"))
	parent := ctx
	if t.sessionCtx != nil {
		parent = t.sessionCtx
	}
	_, t.nodeSpan = t.tracer.Start(parent, "node "+e.NodeID,
		trace.WithTimestamp(e.Timestamp),
		trace.WithAttributes(
			attribute.String("node.id", e.NodeID),
			attribute.String("node.type", e.NodeType),
		))
}

func (t *Tracing) nodeLeave(_ context.Context, e *domain.NodeEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.endNode(attribute.String("node.exit", "next"), attribute.String("node.target", e.Target))
}

func (t *Tracing) back(_ context.Context, e *domain.NodeEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.endNode(attribute.String("node.exit", "back"), attribute.String("node.target", e.Target))
}

func (t *Tracing) fieldAnswered(_ context.Context, e *domain.FieldEvent) {
	t.addEvent("field_answered", e)
}

func (t *Tracing) fieldRejected(_ context.Context, e *domain.FieldEvent) {
	t.addEvent("field_rejected", e, attribute.String("reason", e.Reason))
}

func (t *Tracing) addEvent(name string, e *domain.FieldEvent, extra ...attribute.KeyValue) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.nodeSpan == nil {
		return
	}
	attrs := append([]attribute.KeyValue{
		attribute.String("field.id", e.FieldID),
		attribute.String("field.type", string(e.FieldType)),
	}, extra...)
	t.nodeSpan.AddEvent(name, trace.WithTimestamp(e.Timestamp), trace.WithAttributes(attrs...))
}

// endNode must be called with mu held.
func (t *Tracing) endNode(attrs ...attribute.KeyValue) {
	if t.nodeSpan == nil {
		return
	}
	t.nodeSpan.SetAttributes(attrs...)
	t.nodeSpan.End()
	t.nodeSpan = nil
}
