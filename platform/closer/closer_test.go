package closer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseAllRunsInReverseOrder(t *testing.T) {
	t.Parallel()

	c := New()

	var order []string
	c.AddNamed("first", func(context.Context) error {
		order = append(order, "first")
		return nil
	})
	c.AddNamed("second", func(context.Context) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, c.CloseAll(context.Background()))
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestCloseAllJoinsErrors(t *testing.T) {
	t.Parallel()

	c := New()
	boom := errors.New("boom")

	called := false
	c.AddNamed("broken", func(context.Context) error { return boom })
	c.AddNamed("healthy", func(context.Context) error {
		called = true
		return nil
	})

	err := c.CloseAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "broken")
	assert.True(t, called)

	require.NoError(t, c.CloseAll(context.Background()), "second call is a no-op")
}

func TestCloseAllSkipsWhenContextDone(t *testing.T) {
	t.Parallel()

	c := New()
	called := false
	c.AddNamed("late", func(context.Context) error {
		called = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.CloseAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
