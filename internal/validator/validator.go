package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/workflow-tui/pkg/domain"
)

// Report is the result of crawling a workflow graph from its entry node.
type Report struct {
	// Visited holds every node id reachable from the entry node.
	Visited map[string]bool
	// Broken lists "from -> to" edges whose target does not exist, in crawl order.
	Broken []string
	// Unreachable lists node ids that exist but are never visited, sorted.
	Unreachable []string
}

// OK reports whether the graph has no broken links and no unreachable nodes.
func (r Report) OK() bool {
	return len(r.Broken) == 0 && len(r.Unreachable) == 0
}

// Crawl walks the graph breadth-first from the entry node following default
// and conditional edges.
func Crawl(wf *domain.Workflow) Report {
	report := Report{Visited: make(map[string]bool)}
	if wf == nil {
		return report
	}
	if _, ok := wf.Node(wf.EntryNodeID); !ok {
		report.Broken = append(report.Broken, fmt.Sprintf("<entry> -> %s", wf.EntryNodeID))
		report.Unreachable = sortedKeys(wf.Nodes)
		return report
	}

	queue := []string{wf.EntryNodeID}
	for len(queue) > 0 {
		currentID := queue[0]
		queue = queue[1:]

		if report.Visited[currentID] {
			continue
		}
		report.Visited[currentID] = true

		node, _ := wf.Node(currentID)
		for _, target := range Targets(node) {
			if _, ok := wf.Node(target); !ok {
				report.Broken = append(report.Broken, fmt.Sprintf("%s -> %s", currentID, target))
				continue
			}
			if !report.Visited[target] {
				queue = append(queue, target)
			}
		}
	}

	for _, id := range sortedKeys(wf.Nodes) {
		if !report.Visited[id] {
			report.Unreachable = append(report.Unreachable, id)
		}
	}
	return report
}

// ValidateGraph checks for broken links and unreachable nodes starting from the entry node.
func ValidateGraph(wf *domain.Workflow) error {
	report := Crawl(wf)
	if report.OK() {
		return nil
	}

	var errs []string
	for _, b := range report.Broken {
		errs = append(errs, "broken link: "+b)
	}
	for _, id := range report.Unreachable {
		errs = append(errs, "unreachable node: "+id)
	}
	return fmt.Errorf("found %d errors:\n- %s", len(errs), strings.Join(errs, "\n- "))
}

// Targets returns the outgoing edge targets of a node: conditional edges first,
// then the default edge. Empty targets are skipped.
func Targets(node domain.Node) []string {
	var out []string
	for _, e := range node.ConditionalEdges {
		if e.TargetNodeID != "" {
			out = append(out, e.TargetNodeID)
		}
	}
	if node.DefaultEdge != "" {
		out = append(out, node.DefaultEdge)
	}
	return out
}

func sortedKeys(nodes map[string]domain.Node) []string {
	keys := make([]string, 0, len(nodes))
	for k := range nodes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
