/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/strictstore/datastore"
	"github.com/suparena/strictstore/datastore/mock"
)

func TestRegisterAndNewDriver(t *testing.T) {
	var gotNamespace string
	var gotOpts Options
	RegisterDriver("test-mock", func(namespace string, opts Options) (datastore.Driver, error) {
		gotNamespace, gotOpts = namespace, opts
		return mock.New(), nil
	})

	driver, err := NewDriver("test-mock", "profile", Options{"path": "x"})
	require.NoError(t, err)
	assert.NotNil(t, driver)
	assert.Equal(t, "profile", gotNamespace)
	assert.Equal(t, "x", gotOpts.Get("path", ""))
	assert.Contains(t, Drivers(), "test-mock")
}

func TestRegisterDriverDuplicatePanics(t *testing.T) {
	fn := func(string, Options) (datastore.Driver, error) { return mock.New(), nil }
	RegisterDriver("test-dup", fn)

	assert.Panics(t, func() { RegisterDriver("test-dup", fn) })
}

func TestNewDriverUnknown(t *testing.T) {
	_, err := NewDriver("does-not-exist", "ns", nil)
	assert.Error(t, err)
}

func TestOptionsGet(t *testing.T) {
	opts := Options{"bucket": "", "path": "a.db"}

	assert.Equal(t, "a.db", opts.Get("path", "b.db"))
	assert.Equal(t, "fallback", opts.Get("bucket", "fallback"))
	assert.Equal(t, "fallback", Options(nil).Get("missing", "fallback"))
}
