package adapters_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/workflow-tui/internal/adapters"
	"github.com/aretw0/workflow-tui/pkg/domain"
)

func sampleResult(id string) *adapters.Result {
	return &adapters.Result{
		SessionID:       id,
		WorkflowID:      "commercial-gl",
		WorkflowVersion: "1.0.0",
		FinalNodeID:     "end_quote",
		Status:          "quoted",
		History:         []string{"start", "revenue", "end_quote"},
		CompletedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Data:            domain.DataFrom("hasEmployees", true, "annualRevenue", 50000.0),
	}
}

func TestResultStore(t *testing.T) {
	store := adapters.NewResultStore(filepath.Join(t.TempDir(), "results"))
	ctx := context.Background()

	t.Run("ListEmptyDirectory", func(t *testing.T) {
		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("LoadMissing", func(t *testing.T) {
		_, err := store.Load(ctx, "missing")
		assert.ErrorIs(t, err, adapters.ErrResultNotFound)
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		want := sampleResult("s-1")
		require.NoError(t, store.Save(ctx, want))

		got, err := store.Load(ctx, "s-1")
		require.NoError(t, err)
		assert.Equal(t, want.WorkflowID, got.WorkflowID)
		assert.Equal(t, want.Status, got.Status)
		assert.Equal(t, want.History, got.History)
		assert.True(t, want.CompletedAt.Equal(got.CompletedAt))
		assert.Equal(t, []string{"hasEmployees", "annualRevenue"}, got.Data.Keys())
		assert.Equal(t, want.Data.Map(), got.Data.Map())
	})

	t.Run("SaveOverwrites", func(t *testing.T) {
		r := sampleResult("s-1")
		r.Status = "declined"
		require.NoError(t, store.Save(ctx, r))

		got, err := store.Load(ctx, "s-1")
		require.NoError(t, err)
		assert.Equal(t, "declined", got.Status)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sampleResult("a-0")))
		require.NoError(t, os.WriteFile(filepath.Join(store.BasePath, "notes.txt"), []byte("x"), 0644))

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a-0", "s-1"}, ids)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "a-0"))
		require.NoError(t, store.Delete(ctx, "a-0"))

		_, err := store.Load(ctx, "a-0")
		assert.ErrorIs(t, err, adapters.ErrResultNotFound)
	})

	t.Run("NoTempFilesLeft", func(t *testing.T) {
		entries, err := os.ReadDir(store.BasePath)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), e.Name())
		}
	})
}

func TestResultStore_InvalidIDs(t *testing.T) {
	store := adapters.NewResultStore(t.TempDir())
	ctx := context.Background()

	for _, id := range []string{"", "..", "../escape", `a\b`} {
		assert.Error(t, store.Save(ctx, sampleResult(id)), id)
		_, err := store.Load(ctx, id)
		assert.Error(t, err, id)
		assert.Error(t, store.Delete(ctx, id), id)
	}
}

func TestResultStore_CancelledContext(t *testing.T) {
	store := adapters.NewResultStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Save(ctx, sampleResult("s")), context.Canceled)
	_, err := store.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResultStore_DefaultPath(t *testing.T) {
	store := adapters.NewResultStore("")
	assert.Equal(t, filepath.Join(".workflow-tui", "results"), store.BasePath)
}
