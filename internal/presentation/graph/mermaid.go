package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/workflow-tui/pkg/domain"
	"github.com/aretw0/workflow-tui/pkg/schema"
)

// GraphOverlay contains session data to visualize on the graph.
type GraphOverlay struct {
	VisitedNodes []string
	CurrentNode  string
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a workflow.
// It applies semantic styling:
// - Entry: ((Circle))
// - End: ([Stadium])
// - Question: [/Parallelogram/]
// - Default: [Rectangle]
// Conditional edges are labelled "field op value" and listed before the default edge.
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(wf *domain.Workflow, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	if wf == nil {
		return sb.String()
	}

	ids := make([]string, 0, len(wf.Nodes))
	for id := range wf.Nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	// Entry node first for a stable top-down layout.
	if i := slices.Index(ids, wf.EntryNodeID); i > 0 {
		ids = append([]string{wf.EntryNodeID}, slices.Delete(ids, i, i+1)...)
	}

	for _, id := range ids {
		node := wf.Nodes[id]
		safeID := sanitizeMermaidID(id)

		// Node Shape based on Type
		opener, closer := "[", "]"
		switch {
		case id == wf.EntryNodeID:
			opener, closer = "((", "))" // Circle
		case node.Type == domain.NodeTypeEnd:
			opener, closer = "([", "])" // Stadium
		case node.Type == domain.NodeTypeQuestion:
			opener, closer = "[/", "/]" // Parallelogram (Input)
		}

		label := id
		if node.Label != "" {
			label = node.Label
		}
		if node.Type == domain.NodeTypeEnd && node.Status != "" {
			label = fmt.Sprintf("%s <br/> %s", label, node.Status)
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escape(label), closer))

		for _, edge := range node.ConditionalEdges {
			cond := fmt.Sprintf("%s %s %s", edge.Condition.FieldID, edge.Condition.Operator, schema.Display(edge.Condition.Value))
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", safeID, escape(strings.TrimSpace(cond)), sanitizeMermaidID(edge.TargetNodeID)))
		}
		if node.DefaultEdge != "" {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeID, sanitizeMermaidID(node.DefaultEdge)))
		}
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		// Deduplicate visited nodes (using safeIDs)
		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedNodes {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}

		if overlay.CurrentNode != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode)))
		}
	}

	return sb.String()
}

// escape replaces double quotes, which would end a Mermaid label.
func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
