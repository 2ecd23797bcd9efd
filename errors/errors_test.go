package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinels(t *testing.T) {
	t.Parallel()

	t.Run("sentinels are distinct", func(t *testing.T) {
		t.Parallel()

		assert.NotErrorIs(t, ErrNoSuchElement, ErrIllegalState)
		assert.NotErrorIs(t, ErrIllegalState, ErrMalformedEntry)
		assert.NotErrorIs(t, ErrMalformedEntry, ErrNoSuchElement)
	})

	t.Run("wrapped sentinels still match", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("%w: key %q", ErrMalformedEntry, "a")

		require.ErrorIs(t, err, ErrMalformedEntry)
		assert.Contains(t, err.Error(), `key "a"`)
	})
}

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(errors.New("error 1")) //nolint:err113
		c.Add(errors.New("error 2")) //nolint:err113

		assert.True(t, c.HasError())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Equal(t, 0, c.Len())
	})
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Add(ErrMalformedEntry)
	c.Clear()

	assert.False(t, c.HasError())
	require.NoError(t, c.GetError())

	c.Add(ErrIllegalState)
	assert.ErrorIs(t, c.GetError(), ErrIllegalState)
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when empty", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		assert.NoError(t, c.GetError())
	})

	t.Run("returns single error unchanged", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err1 := fmt.Errorf("%w: key 1", ErrMalformedEntry)
		c.Add(err1)

		assert.Equal(t, err1, c.GetError())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err1 := fmt.Errorf("%w: key 1", ErrMalformedEntry)
		err2 := errors.New("boom") //nolint:err113

		c.Add(err1)
		c.Add(err2)

		err := c.GetError()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrMalformedEntry)
		require.ErrorIs(t, err, err2)
		assert.Contains(t, err.Error(), "key 1")
		assert.Contains(t, err.Error(), "boom")
	})
}
