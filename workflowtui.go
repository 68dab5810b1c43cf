package workflowtui

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/workflow-tui/internal/loader"
	"github.com/aretw0/workflow-tui/pkg/domain"
	"github.com/aretw0/workflow-tui/pkg/engine"
	"github.com/aretw0/workflow-tui/pkg/ports"
	"github.com/aretw0/workflow-tui/pkg/runner"
)

// Client is the high-level entry point for the library.
// It pairs a workflow source with an engine and runs sessions against them.
type Client struct {
	loader     ports.WorkflowLoader
	engine     ports.Engine
	evaluator  engine.ConditionEvaluator
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
	runnerOpts []runner.Option
}

// Option defines a functional option for configuring the Client.
type Option func(*Client)

// WithLoader injects a custom WorkflowLoader, bypassing the file loader.
func WithLoader(l ports.WorkflowLoader) Option {
	return func(c *Client) {
		c.loader = l
	}
}

// WithEngine replaces the default engine.
func WithEngine(e ports.Engine) Option {
	return func(c *Client) {
		c.engine = e
	}
}

// WithConditionEvaluator sets a custom condition evaluator for the default engine.
// It has no effect together with WithEngine.
func WithConditionEvaluator(eval engine.ConditionEvaluator) Option {
	return func(c *Client) {
		c.evaluator = eval
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Client) {
		c.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRunnerOptions passes options through to every session Runner
// (input, view, initial data).
func WithRunnerOptions(opts ...runner.Option) Option {
	return func(c *Client) {
		c.runnerOpts = append(c.runnerOpts, opts...)
	}
}

// New creates a Client for the workflow file at path (JSON or YAML).
// path is ignored when a loader is injected with WithLoader.
func New(path string, opts ...Option) (*Client, error) {
	c := &Client{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.loader == nil {
		if path == "" {
			return nil, fmt.Errorf("workflow path is required when no loader is provided")
		}
		c.loader = loader.New(path, c.logger)
	}

	if c.engine == nil {
		engineOpts := []engine.Option{engine.WithLogger(c.logger)}
		if c.evaluator != nil {
			engineOpts = append(engineOpts, engine.WithConditionEvaluator(c.evaluator))
		}
		c.engine = engine.New(engineOpts...)
	}
	return c, nil
}

// Workflow loads the workflow definition from the configured source.
func (c *Client) Workflow(ctx context.Context) (*domain.Workflow, error) {
	wf, err := c.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load workflow: %w", err)
	}
	return wf, nil
}

// Validate loads the workflow and asks the engine to check it.
func (c *Client) Validate(ctx context.Context) (domain.WorkflowValidation, error) {
	wf, err := c.Workflow(ctx)
	if err != nil {
		return domain.WorkflowValidation{}, err
	}
	return c.engine.ValidateWorkflow(wf), nil
}

// Run loads the workflow and drives one session until an end node is reached.
// Without runner options the session reads stdin and writes plain text to stdout.
func (c *Client) Run(ctx context.Context, opts ...runner.Option) (*runner.Outcome, error) {
	wf, err := c.Workflow(ctx)
	if err != nil {
		return nil, err
	}

	all := []runner.Option{
		runner.WithLogger(c.logger),
		runner.WithHooks(c.hooks),
	}
	all = append(all, c.runnerOpts...)
	all = append(all, opts...)

	return runner.NewRunner(c.engine, all...).Run(ctx, wf)
}
