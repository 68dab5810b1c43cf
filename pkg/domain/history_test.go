package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory(t *testing.T) {
	t.Run("Back pops to previous node", func(t *testing.T) {
		h := NewHistory("n1")
		h.Push("n2")
		h.Push("n3")

		assert.True(t, h.Back())
		assert.Equal(t, []string{"n1", "n2"}, h.IDs())
		assert.Equal(t, "n2", h.Current())
	})

	t.Run("Back at entry is a no-op", func(t *testing.T) {
		h := NewHistory("n1")

		assert.False(t, h.Back())
		assert.Equal(t, []string{"n1"}, h.IDs())
		assert.Equal(t, 1, h.Len())
	})

	t.Run("IDs returns a copy", func(t *testing.T) {
		h := NewHistory("n1")
		ids := h.IDs()
		ids[0] = "mutated"
		assert.Equal(t, "n1", h.Current())
	})
}

func TestPromptResult(t *testing.T) {
	back := GoBack()
	assert.True(t, back.IsBack())
	_, ok := back.Value()
	assert.False(t, ok)

	// A literal "back" string is still an answer, not a signal.
	ans := Answer("back")
	assert.False(t, ans.IsBack())
	v, ok := ans.Value()
	assert.True(t, ok)
	assert.Equal(t, "back", v)
}
