package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/workflow-tui/internal/adapters"
	"github.com/aretw0/workflow-tui/internal/loader"
	"github.com/aretw0/workflow-tui/internal/presentation/tui"
	"github.com/aretw0/workflow-tui/pkg/domain"
	"github.com/aretw0/workflow-tui/pkg/ports"
	"github.com/aretw0/workflow-tui/pkg/runner"
)

// ErrInputClosed is returned when stdin ends before an end node is reached.
var ErrInputClosed = errors.New("input closed before completion")

// RunSession executes a single interactive session of the workflow at opts.Path.
func RunSession(ctx context.Context, opts RunOptions) error {
	stdin, stdout, stderr := opts.streams()

	logger, err := createLogger(stderr, opts.Debug, opts.LogFormat)
	if err != nil {
		return err
	}
	sessionID := uuid.NewString()
	logger = logger.With("session_id", sessionID)

	initial, err := parseContext(opts.Context)
	if err != nil {
		return err
	}

	wf, err := loader.New(opts.Path, logger).Load(ctx)
	if err != nil {
		return err
	}
	logger = logger.With("workflow", wf.Meta.ID)

	hooks, metrics, shutdown := sessionHooks(opts, logger)
	defer shutdown()

	var (
		view  runner.View
		input ports.LineReader
	)
	if opts.JSON {
		view = runner.NewJSONView(stdout)
		input = runner.NewJSONHandler(stdin, stdout)
	} else {
		color := tui.ColorEnabled(stdout, opts.NoColor)
		if !opts.NoBanner {
			tui.PrintBanner(stdout, tui.Profile(stdout, color))
		}
		view = tui.NewView(stdout, tui.ViewOptions{Color: color, Markdown: opts.Markdown})
		input = runner.NewTextHandler(stdin, stdout)
	}

	r := runner.NewRunner(createEngine(logger),
		runner.WithInput(input),
		runner.WithView(view),
		runner.WithLogger(logger),
		runner.WithHooks(hooks),
		runner.WithSessionID(sessionID),
		runner.WithInitialData(initial),
	)

	outcome, runErr := r.Run(ctx, wf)

	// Metrics describe failed sessions too.
	if metrics != nil {
		if err := metrics.WriteTextfile(opts.MetricsFile); err != nil {
			logger.Warn("metrics not written", "path", opts.MetricsFile, "err", err)
		}
	}

	if runErr != nil {
		return handleExecutionError(runErr)
	}
	logger.Info("Session Completed", "node_id", outcome.FinalNodeID, "status", outcome.Status)

	if err := writeOutput(opts.Output, stdout, outcome.Data); err != nil {
		return err
	}

	if opts.ResultsDir != "" {
		store := adapters.NewResultStore(opts.ResultsDir)
		if err := store.Save(ctx, newResult(sessionID, wf, outcome, time.Now())); err != nil {
			return fmt.Errorf("failed to archive result: %w", err)
		}
		logger.Debug("result archived", "dir", opts.ResultsDir)
		if !opts.JSON {
			printSystemMessage(stdout, "Result saved as '%s'.", sessionID)
		}
	}
	return nil
}

func handleExecutionError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, runner.ErrInputClosed) {
		return ErrInputClosed
	}
	return err
}

// writeOutput writes the collected data as indented JSON.
func writeOutput(dest string, stdout io.Writer, data *domain.Data) error {
	if dest == "" {
		return nil
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}
	raw = append(raw, '\n')

	if dest == "-" {
		_, err = stdout.Write(raw)
		return err
	}
	if err := os.WriteFile(dest, raw, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newResult(sessionID string, wf *domain.Workflow, o *runner.Outcome, at time.Time) *adapters.Result {
	return &adapters.Result{
		SessionID:       sessionID,
		WorkflowID:      wf.Meta.ID,
		WorkflowVersion: wf.Meta.Version,
		FinalNodeID:     o.FinalNodeID,
		Status:          o.Status,
		History:         o.History,
		CompletedAt:     at.UTC(),
		Data:            o.Data,
	}
}
