/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/strictstore/registry"
)

func TestDriver(t *testing.T) {
	ctx := context.Background()
	d := New()

	_, found, err := d.GetItem(ctx, "user")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, d.SetItem(ctx, "user", "user001"))
	value, found, err := d.GetItem(ctx, "user")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "user001", value)
	assert.Equal(t, 1, d.Len())

	d.Clear()
	assert.Equal(t, 0, d.Len())
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.NotSame(t, Default(), New())
}

func TestRegistered(t *testing.T) {
	shared, err := registry.NewDriver("memory", "profile", nil)
	require.NoError(t, err)
	assert.Same(t, Default(), shared)

	private, err := registry.NewDriver("memory", "profile", registry.Options{"shared": "false"})
	require.NoError(t, err)
	assert.NotSame(t, Default(), private)
}
