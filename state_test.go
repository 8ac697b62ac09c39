/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package strictstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", Uninitialized.String())
	assert.Equal(t, "initialized", Initialized.String())
	assert.Equal(t, "disposed", Disposed.String())
	assert.Equal(t, "unknown", State(9).String())
}
