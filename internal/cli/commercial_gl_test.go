package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/workflow-tui/internal/adapters"
)

const commercialGL = "../../examples/workflows/commercial-gl.json"

func TestValidateFile_CommercialGL(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ValidateFile(context.Background(), commercialGL, &out))
	assert.Contains(t, out.String(), "6 nodes, 6 reachable from 'business-info'")
}

func TestRunSession_CommercialGL(t *testing.T) {
	answers := []string{
		"Acme Roofing", // businessName
		"y",            // hasEmployees
		"$250,000",     // annualRevenue
		"0",            // employeeCount, rejected (min 1)
		"12",           // employeeCount
		"yes",          // operatesHeavyEquipment
		"2",            // coverageType -> standard
		"back",         // priorIncidents: return to coverage-selection
		"",             // coverageType keeps its default
		"1",            // priorIncidents
		"y",            // safetyTraining
		"y",            // agreeToTerms
	}
	var out bytes.Buffer
	dir := filepath.Join(t.TempDir(), "results")
	opts := RunOptions{
		Path:       commercialGL,
		NoBanner:   true,
		NoColor:    true,
		ResultsDir: dir,
		Stdin:      strings.NewReader(strings.Join(answers, "\n") + "\n"),
		Stdout:     &out,
		Stderr:     &bytes.Buffer{},
	}

	require.NoError(t, RunSession(context.Background(), opts))

	text := out.String()
	assert.Contains(t, text, "← Back to: coverage-selection")
	assert.Contains(t, text, "Coverage Level (number or value) [standard]: ")
	assert.Contains(t, text, "Workflow: Commercial General Liability Application v1.0.0")

	store := adapters.NewResultStore(dir)
	ids, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, ids, 1)
	res, err := store.Load(context.Background(), ids[0])
	require.NoError(t, err)

	assert.Equal(t, []string{"business-info", "employee-details", "coverage-selection", "high-risk-questions", "review", "complete"}, res.History)
	assert.Equal(t, []string{
		"businessName", "hasEmployees", "annualRevenue", "employeeCount", "operatesHeavyEquipment",
		"coverageType", "priorIncidents", "safetyTraining", "agreeToTerms",
	}, res.Data.Keys())
	assert.Equal(t, 250000.0, res.Data.Map()["annualRevenue"])
	assert.Equal(t, "standard", res.Data.Map()["coverageType"])
}
