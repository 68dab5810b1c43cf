package tui

import (
	"github.com/charmbracelet/glamour"

	"github.com/aretw0/workflow-tui/pkg/runner"
)

// DefaultWordWrap is the column at which rendered markdown wraps.
const DefaultWordWrap = 72

// NewRenderer returns a function that renders markdown using glamour.
// With color disabled it uses the notty style so output stays plain text.
func NewRenderer(color bool) (runner.ContentRenderer, error) {
	style := glamour.WithAutoStyle() // Automatically detect light/dark background
	if !color {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(DefaultWordWrap))
	if err != nil {
		return nil, err
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}
