package runner

import (
	"fmt"
	"strings"

	"github.com/aretw0/workflow-tui/pkg/domain"
)

// FormatOptions renders the option list of a choice field, one per line:
// 1-based index, label and value in parentheses.
func FormatOptions(field domain.FieldDefinition) string {
	lines := make([]string, len(field.Options))
	for i, o := range field.Options {
		lines[i] = fmt.Sprintf("  %d. %s (%s)", i+1, o.Label, o.Value)
	}
	return strings.Join(lines, "\n")
}
