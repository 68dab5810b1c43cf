package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/workflow-tui/pkg/domain"
)

// ErrNoEdge is returned by NextNode when no conditional edge matches and there is no default edge.
var ErrNoEdge = errors.New("no outgoing edge")

// ConditionEvaluator decides whether an edge condition holds for the collected data.
type ConditionEvaluator func(cond domain.Condition, data *domain.Data) (bool, error)

// Engine implements ports.Engine.
type Engine struct {
	evaluator ConditionEvaluator
	logger    *slog.Logger
}

// Option configures the Engine.
type Option func(*Engine)

// WithConditionEvaluator replaces the built-in operator set.
func WithConditionEvaluator(eval ConditionEvaluator) Option {
	return func(e *Engine) {
		e.evaluator = eval
	}
}

// WithLogger sets the logger used for routing decisions.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Engine with the built-in condition operators.
func New(opts ...Option) *Engine {
	e := &Engine{
		evaluator: Evaluate,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) IsEndNode(n domain.Node) bool {
	return n.Type == domain.NodeTypeEnd
}

func (e *Engine) IsQuestionNode(n domain.Node) bool {
	return n.Type == domain.NodeTypeQuestion
}

// NextNode returns the target of the first conditional edge whose condition
// holds, falling back to the default edge.
// A condition that fails to evaluate is logged and treated as false.
func (e *Engine) NextNode(wf *domain.Workflow, currentNodeID string, data *domain.Data) (string, error) {
	node, ok := wf.Node(currentNodeID)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrNodeNotFound, currentNodeID)
	}

	for i, edge := range node.ConditionalEdges {
		ok, err := e.evaluator(edge.Condition, data)
		if err != nil {
			e.logger.Warn("condition evaluation failed",
				"node_id", currentNodeID, "edge", i, "field_id", edge.Condition.FieldID, "err", err)
			continue
		}
		if ok {
			e.logger.Debug("conditional edge taken",
				"node_id", currentNodeID, "target", edge.TargetNodeID, "field_id", edge.Condition.FieldID)
			return edge.TargetNodeID, nil
		}
	}

	if node.DefaultEdge == "" {
		return "", fmt.Errorf("%w from %s", ErrNoEdge, currentNodeID)
	}
	return node.DefaultEdge, nil
}
