package testutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/workflow-tui/pkg/domain"
	"github.com/aretw0/workflow-tui/pkg/dsl"
)

// QuoteWorkflow returns a small branching workflow:
// start asks hasEmployees; yes goes to revenue, no ends as declined.
func QuoteWorkflow(t *testing.T) *domain.Workflow {
	t.Helper()

	b := dsl.New(domain.Meta{ID: "quote", Name: "Quick Quote", Version: "1.0.0"})
	b.Add("start").Question("Business").
		Field("hasEmployees", domain.FieldBoolean, "Do you have employees?", dsl.Required()).
		When("hasEmployees", "eq", true, "revenue").
		Go("declined")
	b.Add("revenue").Question("Revenue").
		Field("annualRevenue", domain.FieldCurrency, "Annual revenue", dsl.Required(), dsl.Min(0)).
		Go("quoted")
	b.Add("quoted").End("quoted")
	b.Add("declined").End("declined")

	wf, err := b.Build()
	require.NoError(t, err, "Failed to build workflow")
	return wf
}

// WriteWorkflowFile writes wf as JSON into a temp directory and returns its path.
// It fails the test immediately on error.
func WriteWorkflowFile(t *testing.T, wf *domain.Workflow) string {
	t.Helper()

	raw, err := json.MarshalIndent(wf, "", "  ")
	require.NoError(t, err, "Failed to marshal workflow")
	return WriteFile(t, "workflow.json", raw)
}

// WriteFile writes content to name inside a fresh temp directory and returns the absolute path.
func WriteFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	absDir, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	path := filepath.Join(absDir, name)
	require.NoError(t, os.WriteFile(path, content, 0644), "Failed to write %s", name)
	return path
}
