package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/workflow-tui/pkg/domain"
)

// DebugHooks logs every lifecycle event at debug level.
func DebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSessionStart: func(ctx context.Context, e *domain.SessionEvent) {
			logger.Debug("Session Start", "session_id", e.SessionID, "workflow_id", e.WorkflowID)
		},
		OnSessionEnd: func(ctx context.Context, e *domain.SessionEvent) {
			if e.Err != nil {
				logger.Debug("Session End (Error)", "session_id", e.SessionID, "node_id", e.NodeID, "duration", e.Duration, "err", e.Err)
				return
			}
			logger.Debug("Session End", "session_id", e.SessionID, "node_id", e.NodeID, "duration", e.Duration)
		},
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) {
			logger.Debug("Enter Node", "node_id", e.NodeID, "type", e.NodeType)
		},
		OnNodeLeave: func(ctx context.Context, e *domain.NodeEvent) {
			logger.Debug("Leave Node", "node_id", e.NodeID, "target", e.Target)
		},
		OnFieldAnswered: func(ctx context.Context, e *domain.FieldEvent) {
			logger.Debug("Field Answered", "node_id", e.NodeID, "field_id", e.FieldID, "type", e.FieldType)
		},
		OnFieldRejected: func(ctx context.Context, e *domain.FieldEvent) {
			logger.Debug("Field Rejected", "node_id", e.NodeID, "field_id", e.FieldID, "reason", e.Reason)
		},
		OnBack: func(ctx context.Context, e *domain.NodeEvent) {
			logger.Debug("Back", "from", e.NodeID, "to", e.Target)
		},
	}
}

// Combine returns hooks that call each of the given hooks in order.
// Nil callbacks are skipped.
func Combine(all ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSessionStart: func(ctx context.Context, e *domain.SessionEvent) {
			for _, h := range all {
				if h.OnSessionStart != nil {
					h.OnSessionStart(ctx, e)
				}
			}
		},
		OnSessionEnd: func(ctx context.Context, e *domain.SessionEvent) {
			for _, h := range all {
				if h.OnSessionEnd != nil {
					h.OnSessionEnd(ctx, e)
				}
			}
		},
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) {
			for _, h := range all {
				if h.OnNodeEnter != nil {
					h.OnNodeEnter(ctx, e)
				}
			}
		},
		OnNodeLeave: func(ctx context.Context, e *domain.NodeEvent) {
			for _, h := range all {
				if h.OnNodeLeave != nil {
					h.OnNodeLeave(ctx, e)
				}
			}
		},
		OnFieldAnswered: func(ctx context.Context, e *domain.FieldEvent) {
			for _, h := range all {
				if h.OnFieldAnswered != nil {
					h.OnFieldAnswered(ctx, e)
				}
			}
		},
		OnFieldRejected: func(ctx context.Context, e *domain.FieldEvent) {
			for _, h := range all {
				if h.OnFieldRejected != nil {
					h.OnFieldRejected(ctx, e)
				}
			}
		},
		OnBack: func(ctx context.Context, e *domain.NodeEvent) {
			for _, h := range all {
				if h.OnBack != nil {
					h.OnBack(ctx, e)
				}
			}
		},
	}
}
