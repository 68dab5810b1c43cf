package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/workflow-tui/pkg/adapters/memory"
	"github.com/aretw0/workflow-tui/pkg/domain"
)

// Builder manages the workflow construction.
type Builder struct {
	meta  domain.Meta
	entry string
	order []string
	nodes map[string]*NodeBuilder
}

// New creates a new workflow builder.
func New(meta domain.Meta) *Builder {
	return &Builder{
		meta:  meta,
		nodes: make(map[string]*NodeBuilder),
	}
}

// Entry sets the entry node id explicitly.
func (b *Builder) Entry(id string) *Builder {
	b.entry = id
	return b
}

// Add creates a new node in the workflow.
// If the node already exists, it returns the existing builder.
func (b *Builder) Add(id string) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder{
		node: domain.Node{
			ID: id,
		},
		builder: b,
	}
	b.nodes[id] = nb
	b.order = append(b.order, id)
	return nb
}

// Build compiles the workflow.
// It fails on empty ids, duplicate field ids and an entry node that was never added;
// graph-level checks are left to the engine.
func (b *Builder) Build() (*domain.Workflow, error) {
	if len(b.order) == 0 {
		return nil, errors.New("workflow has no nodes")
	}

	entry := b.entry
	if entry == "" {
		entry = b.order[0]
	}
	if _, ok := b.nodes[entry]; !ok {
		return nil, fmt.Errorf("entry node %q was never added", entry)
	}

	wf := &domain.Workflow{
		Meta:        b.meta,
		EntryNodeID: entry,
		Nodes:       make(map[string]domain.Node, len(b.nodes)),
	}
	for _, id := range b.order {
		if id == "" {
			return nil, errors.New("node missing ID")
		}
		node := b.nodes[id].Build()
		if err := checkFields(node); err != nil {
			return nil, err
		}
		wf.Nodes[id] = node
	}
	return wf, nil
}

// Loader builds the workflow and wraps it in a memory.Loader.
func (b *Builder) Loader() (*memory.Loader, error) {
	wf, err := b.Build()
	if err != nil {
		return nil, err
	}
	loader, err := memory.NewFromWorkflow(wf)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}
	return loader, nil
}

func checkFields(node domain.Node) error {
	seen := make(map[string]bool, len(node.Fields))
	for _, f := range node.Fields {
		if f.ID == "" {
			return fmt.Errorf("node %s: field missing ID", node.ID)
		}
		if seen[f.ID] {
			return fmt.Errorf("node %s: duplicate field %s", node.ID, f.ID)
		}
		seen[f.ID] = true
	}
	return nil
}
