package dsl

import "github.com/aretw0/workflow-tui/pkg/domain"

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	node    domain.Node
	builder *Builder
}

// Question marks the node as a question node with the given heading.
func (n *NodeBuilder) Question(label string) *NodeBuilder {
	n.node.Type = domain.NodeTypeQuestion
	n.node.Label = label
	return n
}

// Describe sets the text shown under the node heading.
func (n *NodeBuilder) Describe(text string) *NodeBuilder {
	n.node.Description = text
	return n
}

// Field appends a field to a question node.
func (n *NodeBuilder) Field(id string, fieldType domain.FieldType, label string, opts ...FieldOption) *NodeBuilder {
	f := domain.FieldDefinition{ID: id, Type: fieldType, Label: label}
	for _, opt := range opts {
		opt(&f)
	}
	n.node.Fields = append(n.node.Fields, f)
	return n
}

// Go sets the default edge.
func (n *NodeBuilder) Go(target string) *NodeBuilder {
	n.node.DefaultEdge = target
	return n
}

// When adds a conditional edge. Edges are evaluated in the order they are added.
func (n *NodeBuilder) When(fieldID, operator string, value any, target string) *NodeBuilder {
	n.node.ConditionalEdges = append(n.node.ConditionalEdges, domain.ConditionalEdge{
		TargetNodeID: target,
		Condition: domain.Condition{
			FieldID:  fieldID,
			Operator: operator,
			Value:    value,
		},
	})
	return n
}

// End marks the node as an end node with the given status.
// Fields and edges set earlier are dropped.
func (n *NodeBuilder) End(status string) *NodeBuilder {
	n.node.Type = domain.NodeTypeEnd
	n.node.Status = status
	n.node.Fields = nil
	n.node.DefaultEdge = ""
	n.node.ConditionalEdges = nil
	return n
}

// Build returns the underlying domain.Node.
// This is primarily used by the Builder, but exposed for advanced usage.
func (n *NodeBuilder) Build() domain.Node {
	return n.node
}
