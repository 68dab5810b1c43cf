package runner

import (
	"log/slog"

	"github.com/aretw0/workflow-tui/pkg/domain"
	"github.com/aretw0/workflow-tui/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithInput configures the line source.
func WithInput(in ports.LineReader) Option {
	return func(r *Runner) {
		r.Input = in
	}
}

// WithView configures how the session is rendered.
func WithView(v View) Option {
	return func(r *Runner) {
		r.View = v
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.Logger = logger
		}
	}
}

// WithHooks registers lifecycle callbacks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Runner) {
		r.Hooks = hooks
	}
}

// WithSessionID sets the id attached to every emitted event.
func WithSessionID(id string) Option {
	return func(r *Runner) {
		r.SessionID = id
	}
}

// WithInitialData pre-fills collected data; prefilled values show up as prompt defaults.
func WithInitialData(data *domain.Data) Option {
	return func(r *Runner) {
		r.initialData = data
	}
}
