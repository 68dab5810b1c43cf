package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/workflow-tui/internal/adapters"
	"github.com/aretw0/workflow-tui/internal/loader"
	"github.com/aretw0/workflow-tui/internal/presentation/graph"
)

// GraphOptions configures GraphFile.
type GraphOptions struct {
	Path string
	// ResultsDir and SessionID select an archived session to overlay.
	ResultsDir string
	SessionID  string
}

// GraphFile prints the Mermaid diagram of a workflow, optionally highlighting
// the path taken by an archived session.
func GraphFile(ctx context.Context, opts GraphOptions, w io.Writer) error {
	wf, err := loader.New(opts.Path, nil).Load(ctx)
	if err != nil {
		return err
	}

	var overlay *graph.GraphOverlay
	if opts.SessionID != "" {
		res, err := adapters.NewResultStore(opts.ResultsDir).Load(ctx, opts.SessionID)
		if err != nil {
			return fmt.Errorf("failed to load session %s: %w", opts.SessionID, err)
		}
		if res.WorkflowID != wf.Meta.ID {
			return fmt.Errorf("session %s belongs to workflow %q, not %q", opts.SessionID, res.WorkflowID, wf.Meta.ID)
		}
		overlay = &graph.GraphOverlay{
			VisitedNodes: res.History,
			CurrentNode:  res.FinalNodeID,
		}
	}

	_, err = io.WriteString(w, graph.GenerateMermaid(wf, overlay))
	return err
}
