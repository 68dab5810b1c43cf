package runner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/workflow-tui/pkg/domain"
	"github.com/aretw0/workflow-tui/pkg/schema"
)

const (
	headerRuleWidth  = 50
	summaryRuleWidth = 40
	missingValue     = "—"
)

// View renders everything the driver shows besides the prompt line itself.
// Implementations must not block.
type View interface {
	Intro(meta domain.Meta)
	NodeHeader(node domain.Node)
	ReadOnlyField(field domain.FieldDefinition, value any, present bool)
	Options(field domain.FieldDefinition)
	FieldError(field domain.FieldDefinition, err *schema.FieldError)
	AlreadyAtStart()
	BackTo(nodeID string)
	Advance()
	Summary(wf *domain.Workflow, data *domain.Data)
}

// ContentRenderer is a function that transforms the content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// Theme styles the text produced by TextView.
type Theme interface {
	Title(s string) string
	Rule(s string) string
	Muted(s string) string
	Warning(s string) string
	Success(s string) string
}

// PlainTheme leaves text untouched.
type PlainTheme struct{}

func (PlainTheme) Title(s string) string   { return s }
func (PlainTheme) Rule(s string) string    { return s }
func (PlainTheme) Muted(s string) string   { return s }
func (PlainTheme) Warning(s string) string { return s }
func (PlainTheme) Success(s string) string { return s }

// TextView writes human-readable output.
type TextView struct {
	Writer   io.Writer
	Theme    Theme
	Renderer ContentRenderer
}

// NewTextView creates a plain text view. A nil writer means os.Stdout.
func NewTextView(w io.Writer) *TextView {
	if w == nil {
		w = os.Stdout
	}
	return &TextView{Writer: w, Theme: PlainTheme{}}
}

func (v *TextView) theme() Theme {
	if v.Theme == nil {
		return PlainTheme{}
	}
	return v.Theme
}

func (v *TextView) render(s string) string {
	if v.Renderer == nil || s == "" {
		return s
	}
	out, err := v.Renderer(s)
	if err != nil {
		return s
	}
	return strings.TrimRight(out, "\n")
}

func (v *TextView) Intro(meta domain.Meta) {
	th := v.theme()
	fmt.Fprintf(v.Writer, "%s\n\n", th.Title(fmt.Sprintf("\n %s ", meta.Name)))
	if meta.Description != "" {
		fmt.Fprintln(v.Writer, th.Muted(v.render(meta.Description)))
	}
	fmt.Fprintf(v.Writer, "%s\n\n", th.Muted(`Type "back" at any prompt to go to the previous step.`))
}

func (v *TextView) NodeHeader(node domain.Node) {
	th := v.theme()
	rule := th.Rule(strings.Repeat("─", headerRuleWidth))
	fmt.Fprintln(v.Writer, rule)
	fmt.Fprintln(v.Writer, th.Title("  "+node.Label))
	if node.Description != "" {
		fmt.Fprintln(v.Writer, th.Muted("  "+v.render(node.Description)))
	}
	fmt.Fprintln(v.Writer, rule)
}

func (v *TextView) ReadOnlyField(field domain.FieldDefinition, value any, present bool) {
	fmt.Fprintln(v.Writer, v.theme().Muted(fmt.Sprintf("  %s: %s", field.Label, displayOrMissing(value, present))))
}

func (v *TextView) Options(field domain.FieldDefinition) {
	if out := FormatOptions(field); out != "" {
		fmt.Fprintln(v.Writer, out)
	}
}

func (v *TextView) FieldError(_ domain.FieldDefinition, err *schema.FieldError) {
	fmt.Fprintf(v.Writer, "%s\n\n", v.theme().Warning("  ⚠ "+err.Message))
}

func (v *TextView) AlreadyAtStart() {
	fmt.Fprintf(v.Writer, "%s\n\n", v.theme().Warning("Already at the start."))
}

func (v *TextView) BackTo(nodeID string) {
	fmt.Fprintf(v.Writer, "%s\n\n", v.theme().Muted("\n ← Back to: "+nodeID))
}

func (v *TextView) Advance() {
	fmt.Fprintln(v.Writer)
}

func (v *TextView) Summary(wf *domain.Workflow, data *domain.Data) {
	th := v.theme()
	rule := th.Rule(strings.Repeat("─", summaryRuleWidth))
	fmt.Fprintf(v.Writer, "%s\n\n", th.Success("\n ✓ Application complete "))
	fmt.Fprintln(v.Writer, th.Rule("Collected data:"))
	fmt.Fprintln(v.Writer, rule)
	data.Each(func(id string, value any) {
		fmt.Fprintf(v.Writer, "  %s: %s\n", th.Muted(id), displayOrMissing(value, true))
	})
	fmt.Fprintln(v.Writer, rule)
	fmt.Fprintf(v.Writer, "%s\n\n", th.Muted(fmt.Sprintf("\nWorkflow: %s v%s", wf.Meta.Name, wf.Meta.Version)))
}

// displayOrMissing renders nil or absent values as an em dash.
func displayOrMissing(value any, present bool) string {
	if !present || value == nil {
		return missingValue
	}
	return schema.Display(value)
}
