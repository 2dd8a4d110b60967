package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		got, out, err := Apply(Tasks{}, AddAction{Description: "buy milk", Tags: []string{"errand"}})
		require.NoError(t, err)
		assert.Equal(t, 0, out.Index)
		assert.Equal(t, Tasks{{Description: "buy milk", Tags: []string{"errand"}}}, got)
		assert.Equal(t, "add", out.Action.Name())
	})

	t.Run("done", func(t *testing.T) {
		got, out, err := Apply(sample(), DoneAction{Index: 2})
		require.NoError(t, err)
		assert.True(t, got[2].Done)
		assert.Equal(t, "C", out.Task.Description)
	})

	t.Run("toggle", func(t *testing.T) {
		got, out, err := Apply(sample(), ToggleAction{Index: 1})
		require.NoError(t, err)
		assert.False(t, got[1].Done)
		assert.False(t, out.Task.Done)
	})

	t.Run("delete", func(t *testing.T) {
		got, out, err := Apply(sample(), DeleteAction{Index: 0})
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "A", out.Task.Description)
		assert.Equal(t, 0, out.Index)
	})

	t.Run("edit", func(t *testing.T) {
		got, out, err := Apply(sample(), EditAction{Index: 0, Description: "A2"})
		require.NoError(t, err)
		assert.Equal(t, "A2", got[0].Description)
		assert.Equal(t, "A", out.OldDescription)
		assert.Equal(t, "A2", out.Task.Description)
	})

	t.Run("out of range leaves list", func(t *testing.T) {
		tasks := Tasks{{Description: "A", Tags: []string{}}}
		for _, action := range []Action{
			DoneAction{Index: 5},
			ToggleAction{Index: 5},
			DeleteAction{Index: 5},
			EditAction{Index: 5, Description: "x"},
		} {
			got, _, err := Apply(tasks, action)
			assert.ErrorIs(t, err, ErrOutOfRange, action.Name())
			assert.Equal(t, Tasks{{Description: "A", Tags: []string{}}}, got, action.Name())
		}
	})
}
