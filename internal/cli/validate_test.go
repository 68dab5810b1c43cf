package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/workflow-tui/internal/adapters"
	"github.com/aretw0/workflow-tui/internal/testutils"
	"github.com/aretw0/workflow-tui/pkg/domain"
	"github.com/aretw0/workflow-tui/pkg/runner"
)

func TestValidateFile(t *testing.T) {
	var out bytes.Buffer
	path := testutils.WriteWorkflowFile(t, testutils.QuoteWorkflow(t))

	require.NoError(t, ValidateFile(context.Background(), path, &out))
	assert.Contains(t, out.String(), "Workflow is valid! ✅")
	assert.Contains(t, out.String(), "Quick Quote: 4 nodes, 4 reachable from 'start'")
}

func TestValidateFile_Invalid(t *testing.T) {
	wf := testutils.QuoteWorkflow(t)
	wf.Nodes["orphan"] = domain.Node{ID: "orphan", Type: domain.NodeTypeEnd, Status: "x"}
	delete(wf.Nodes, "quoted")

	err := ValidateFile(context.Background(), testutils.WriteWorkflowFile(t, wf), &bytes.Buffer{})

	var wfErr *runner.WorkflowError
	require.ErrorAs(t, err, &wfErr)
	assert.NotEmpty(t, wfErr.Errors)
}

func TestGraphFile(t *testing.T) {
	path := testutils.WriteWorkflowFile(t, testutils.QuoteWorkflow(t))

	var out bytes.Buffer
	require.NoError(t, GraphFile(context.Background(), GraphOptions{Path: path}, &out))
	assert.Contains(t, out.String(), "graph TD")
	assert.Contains(t, out.String(), "start -- \"hasEmployees eq true\" --> revenue")
	assert.NotContains(t, out.String(), "classDef")
}

func TestGraphFile_Overlay(t *testing.T) {
	path := testutils.WriteWorkflowFile(t, testutils.QuoteWorkflow(t))
	dir := filepath.Join(t.TempDir(), "results")
	store := adapters.NewResultStore(dir)
	require.NoError(t, store.Save(context.Background(), &adapters.Result{
		SessionID:   "s1",
		WorkflowID:  "quote",
		FinalNodeID: "declined",
		History:     []string{"start", "declined"},
		Data:        domain.NewData(),
	}))

	var out bytes.Buffer
	require.NoError(t, GraphFile(context.Background(), GraphOptions{Path: path, ResultsDir: dir, SessionID: "s1"}, &out))
	assert.Contains(t, out.String(), "classDef")

	err := GraphFile(context.Background(), GraphOptions{Path: path, ResultsDir: dir, SessionID: "missing"}, &out)
	assert.ErrorIs(t, err, adapters.ErrResultNotFound)
}
