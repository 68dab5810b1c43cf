package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme implements runner.Theme with lipgloss styles.
type Theme struct {
	title   lipgloss.Style
	rule    lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
	success lipgloss.Style
}

// NewTheme builds the styles for w. With color disabled every style renders plain text.
func NewTheme(w io.Writer, color bool) *Theme {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Theme{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#22d3ee")),
		rule:    r.NewStyle().Foreground(lipgloss.Color("#22d3ee")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#888888")),
		warning: r.NewStyle().Foreground(lipgloss.Color("#facc15")),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ade80")),
	}
}

func (t *Theme) Title(s string) string   { return renderLines(t.title, s) }
func (t *Theme) Rule(s string) string    { return renderLines(t.rule, s) }
func (t *Theme) Muted(s string) string   { return renderLines(t.muted, s) }
func (t *Theme) Warning(s string) string { return renderLines(t.warning, s) }
func (t *Theme) Success(s string) string { return renderLines(t.success, s) }

// renderLines styles each non-empty line on its own, so blank lines stay
// blank and lipgloss does not pad them to the block width.
func renderLines(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = style.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}
