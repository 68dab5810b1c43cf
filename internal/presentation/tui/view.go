package tui

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/workflow-tui/pkg/runner"
)

// ViewOptions configures NewView.
type ViewOptions struct {
	Color    bool
	Markdown bool
}

// NewView returns a styled runner.TextView. Markdown rendering failures
// fall back to the plain description.
func NewView(w io.Writer, opts ViewOptions) *runner.TextView {
	v := runner.NewTextView(w)
	v.Theme = NewTheme(w, opts.Color)
	if opts.Markdown {
		if r, err := NewRenderer(opts.Color); err == nil {
			v.Renderer = r
		}
	}
	return v
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ColorEnabled decides whether output to w should be colored.
func ColorEnabled(w io.Writer, noColor bool) bool {
	return !noColor && IsTerminal(w)
}

// Profile returns the termenv profile for w, or Ascii when color is off.
func Profile(w io.Writer, color bool) termenv.Profile {
	if !color {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).EnvColorProfile()
}
