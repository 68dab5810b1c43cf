package runner

import (
	"context"
	"io"
	"testing"

	"github.com/aretw0/workflow-tui/pkg/domain"
	"github.com/aretw0/workflow-tui/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptField(t *testing.T) {
	ctx := context.Background()
	required := domain.FieldValidation{Required: true}

	t.Run("Back Skips Validation", func(t *testing.T) {
		field := domain.FieldDefinition{ID: "name", Type: domain.FieldText, Label: "Name", Validation: required}
		view := &recordingView{}

		res, err := PromptField(ctx, script("BACK"), view, field, domain.NewData())
		require.NoError(t, err)
		assert.True(t, res.IsBack())
		assert.Empty(t, view.errors)
	})

	t.Run("Retries Until Valid", func(t *testing.T) {
		field := domain.FieldDefinition{
			ID: "employees", Type: domain.FieldNumber, Label: "Employees",
			Validation: domain.FieldValidation{Required: true, Min: domain.Bound(1), Max: domain.Bound(10)},
		}
		view := &recordingView{}
		var rejected []string
		in := script("", "abc", "0", "5")

		res, err := PromptField(ctx, in, view, field, domain.NewData(), WithRejectionHook(func(fe *schema.FieldError) {
			rejected = append(rejected, fe.FieldID)
		}))
		require.NoError(t, err)

		v, ok := res.Value()
		require.True(t, ok)
		assert.Equal(t, 5.0, v)
		assert.Equal(t, []string{schema.MsgRequired, schema.MsgInvalidNumber, "Must be at least 1."}, view.errors)
		assert.Equal(t, []string{"employees", "employees", "employees"}, rejected)
		assert.Len(t, in.prompts, 4)
	})

	t.Run("Empty Line Reuses Default", func(t *testing.T) {
		field := domain.FieldDefinition{ID: "revenue", Type: domain.FieldCurrency, Label: "Revenue", Validation: required}
		data := domain.DataFrom("revenue", 50000.0)
		in := script("")

		res, err := PromptField(ctx, in, &recordingView{}, field, data)
		require.NoError(t, err)

		v, _ := res.Value()
		assert.Equal(t, 50000.0, v)
		assert.Contains(t, in.prompts[0], "[50000]")
	})

	t.Run("Default Select Is Not Reindexed", func(t *testing.T) {
		opts := []domain.Option{{Value: "1", Label: "One"}, {Value: "2", Label: "Two"}}
		field := domain.FieldDefinition{ID: "tier", Type: domain.FieldSelect, Label: "Tier", Options: opts}
		data := domain.DataFrom("tier", "2")

		res, err := PromptField(ctx, script(""), &recordingView{}, field, data)
		require.NoError(t, err)

		v, _ := res.Value()
		assert.Equal(t, "2", v)
	})

	t.Run("Input Error Is Returned", func(t *testing.T) {
		field := domain.FieldDefinition{ID: "name", Type: domain.FieldText, Label: "Name"}

		_, err := PromptField(ctx, script(), &recordingView{}, field, domain.NewData())
		assert.ErrorIs(t, err, io.EOF)
	})
}
