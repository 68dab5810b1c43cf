package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSessionStart  EventType = "session_start"
	EventSessionEnd    EventType = "session_end"
	EventNodeEnter     EventType = "node_enter"
	EventNodeLeave     EventType = "node_leave"
	EventFieldAnswered EventType = "field_answered"
	EventFieldRejected EventType = "field_rejected"
	EventBack          EventType = "back"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
}

// SessionEvent marks the start or the end of a session.
type SessionEvent struct {
	EventBase
	WorkflowID string        `json:"workflow_id"`
	NodeID     string        `json:"node_id,omitempty"`
	Duration   time.Duration `json:"duration,omitempty"`
	Err        error         `json:"-"`
}

// NodeEvent represents entry or exit from a node.
type NodeEvent struct {
	EventBase
	NodeID   string `json:"node_id"`
	NodeType string `json:"node_type"`
	// Target is the next node on leave, or the node returned to on back.
	Target string `json:"target,omitempty"`
}

// FieldEvent reports one answer to a field prompt, accepted or rejected.
type FieldEvent struct {
	EventBase
	NodeID    string    `json:"node_id"`
	FieldID   string    `json:"field_id"`
	FieldType FieldType `json:"field_type"`
	Reason    string    `json:"reason,omitempty"`
}

// LifecycleHooks defines callbacks for session observability.
// Any hook may be nil.
type LifecycleHooks struct {
	OnSessionStart  func(context.Context, *SessionEvent)
	OnSessionEnd    func(context.Context, *SessionEvent)
	OnNodeEnter     func(context.Context, *NodeEvent)
	OnNodeLeave     func(context.Context, *NodeEvent)
	OnFieldAnswered func(context.Context, *FieldEvent)
	OnFieldRejected func(context.Context, *FieldEvent)
	OnBack          func(context.Context, *NodeEvent)
}
