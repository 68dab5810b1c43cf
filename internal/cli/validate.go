package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/workflow-tui/internal/loader"
	"github.com/aretw0/workflow-tui/internal/validator"
	"github.com/aretw0/workflow-tui/pkg/runner"
)

// ValidateFile loads the workflow at path and checks it with the default engine.
// On success it prints a confirmation and reachability summary to w.
func ValidateFile(ctx context.Context, path string, w io.Writer) error {
	wf, err := loader.New(path, nil).Load(ctx)
	if err != nil {
		return err
	}

	if v := createEngine(nil).ValidateWorkflow(wf); !v.IsValid {
		return &runner.WorkflowError{Errors: v.Errors}
	}

	report := validator.Crawl(wf)
	fmt.Fprintf(w, "Workflow is valid! ✅\n")
	fmt.Fprintf(w, "%s: %d nodes, %d reachable from '%s'\n", wf.Meta.Name, len(wf.Nodes), len(report.Visited), wf.EntryNodeID)
	return nil
}
