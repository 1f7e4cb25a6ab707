package view_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/view"
)

func TestPageLifecycle(t *testing.T) {
	// Arrange
	v := view.NewFSM()
	ctx := signpost.NewParamsContext(context.Background(), signpost.Params{"machine": "m1"})

	// Act + Assert
	require.False(t, v.Active())
	require.NoError(t, v.Activate(ctx))
	require.True(t, v.Active())
	require.EqualValues(t, 1, v.Activations())

	b := new(bytes.Buffer)
	require.NoError(t, v.Render(b))
	require.Equal(t, "# FSM Minimizer\n\nPartition the states of a machine into equivalence classes.\n  machine: m1\n", b.String())

	require.NoError(t, v.Deactivate(ctx))
	require.False(t, v.Active())
}

func TestPageActivateCanceled(t *testing.T) {
	// Arrange
	v := view.NewCYK()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	err := v.Activate(ctx)

	// Assert
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, v.Active())
	require.Zero(t, v.Activations())
}

func TestNames(t *testing.T) {
	require.Equal(t, "Home", view.NewHome().Name())
	require.Equal(t, "CYK", view.NewCYK().Name())
	require.Equal(t, "FSM", view.NewFSM().Name())
	require.Equal(t, "NotFound", view.NewNotFound().Name())
	require.Equal(t, "Not Found", view.NewNotFound().Title())
}

func TestCatalog(t *testing.T) {
	c := view.DefaultCatalog()
	require.Equal(t, []string{"cyk", "fsm", "home", "not-found"}, c.Keys())

	v, err := c.Get(" CYK ")
	require.NoError(t, err)
	require.Equal(t, "CYK", v.Name())

	key, ok := c.KeyOf(v)
	require.True(t, ok)
	require.Equal(t, view.CYKKey, key)

	_, err = c.Get("pda")
	require.ErrorIs(t, err, signpost.ErrNotExist)
	require.Contains(t, err.Error(), "cyk, fsm, home, not-found")

	_, ok = c.KeyOf(view.NewHome())
	require.False(t, ok)
}
