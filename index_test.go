/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package strictstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapIndex(t *testing.T) {
	idx := NewMapIndex()
	assert.Equal(t, 0, idx.Len())

	idx.Set("user", "guest")
	idx.Set("data", nil)

	v, ok := idx.Get("user")
	assert.True(t, ok)
	assert.Equal(t, "guest", v)

	v, ok = idx.Get("data")
	assert.True(t, ok, "a nil value is still an entry")
	assert.Nil(t, v)
	assert.True(t, idx.Has("data"))
	assert.False(t, idx.Has("other"))

	idx.SetBatch([]Entry{{Key: "user", Value: "x"}, {Key: "no", Value: 1}})
	assert.Equal(t, 3, idx.Len())
	v, _ = idx.Get("user")
	assert.Equal(t, "x", v)

	idx.Clear()
	assert.Equal(t, 0, idx.Len())
	assert.False(t, idx.Has("user"))
}
