package domain

// NodeType constants define the two node variants of a workflow graph.
const (
	// NodeTypeQuestion prompts the user for one or more fields, then follows an edge.
	NodeTypeQuestion = "question"
	// NodeTypeEnd terminates the session.
	NodeTypeEnd = "end"
)

// Node represents one step in the workflow graph.
// Question nodes use Fields and the edge properties; end nodes use Status.
type Node struct {
	ID          string `json:"id" yaml:"id" mapstructure:"id"`
	Type        string `json:"type" yaml:"type" mapstructure:"type"`
	Label       string `json:"label,omitempty" yaml:"label,omitempty" mapstructure:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`

	// Question node properties.
	Fields           []FieldDefinition `json:"fields,omitempty" yaml:"fields,omitempty" mapstructure:"fields"`
	DefaultEdge      string            `json:"defaultEdge,omitempty" yaml:"defaultEdge,omitempty" mapstructure:"defaultEdge"`
	ConditionalEdges []ConditionalEdge `json:"conditionalEdges,omitempty" yaml:"conditionalEdges,omitempty" mapstructure:"conditionalEdges"`

	// End node properties.
	Status string `json:"status,omitempty" yaml:"status,omitempty" mapstructure:"status"`
}

// ConditionalEdge routes to TargetNodeID when Condition holds for the collected data.
type ConditionalEdge struct {
	TargetNodeID string    `json:"targetNodeId" yaml:"targetNodeId" mapstructure:"targetNodeId"`
	Condition    Condition `json:"condition" yaml:"condition" mapstructure:"condition"`
}

// Condition compares one collected field against a literal value.
// e.g. {fieldId: "hasEmployees", operator: "eq", value: true}
type Condition struct {
	FieldID  string `json:"fieldId" yaml:"fieldId" mapstructure:"fieldId"`
	Operator string `json:"operator" yaml:"operator" mapstructure:"operator"`
	Value    any    `json:"value,omitempty" yaml:"value,omitempty" mapstructure:"value"`
}

// Meta describes the workflow document itself.
type Meta struct {
	ID          string `json:"id" yaml:"id" mapstructure:"id"`
	Name        string `json:"name" yaml:"name" mapstructure:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty" mapstructure:"version"`
	CreatedAt   string `json:"createdAt,omitempty" yaml:"createdAt,omitempty" mapstructure:"createdAt"`
	UpdatedAt   string `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty" mapstructure:"updatedAt"`
	Source      string `json:"source,omitempty" yaml:"source,omitempty" mapstructure:"source"`
}

// Workflow is a directed graph of nodes keyed by node id.
type Workflow struct {
	Meta        Meta            `json:"meta" yaml:"meta" mapstructure:"meta"`
	EntryNodeID string          `json:"entryNodeId" yaml:"entryNodeId" mapstructure:"entryNodeId"`
	Nodes       map[string]Node `json:"nodes" yaml:"nodes" mapstructure:"nodes"`
}

// Node looks up a node by id.
func (w *Workflow) Node(id string) (Node, bool) {
	if w == nil {
		return Node{}, false
	}
	n, ok := w.Nodes[id]
	return n, ok
}
