/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/strictstore/errors"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "strictstore.yaml")
	cfg := fmt.Sprintf(`
stores:
  profile:
    driver:
      type: bolt
      options:
        path: %s
        bucket: profile
    defaults:
      user: guest
      no: -1
      enable: false
      data: {}
`, filepath.Join(dir, "profile.db"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))
	return cfgPath
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func TestCommands(t *testing.T) {
	cfg := writeConfig(t)

	out, err := runCLI(t, "-config", cfg, "list")
	require.NoError(t, err)
	assert.Equal(t, "user=\"guest\"\nno=-1\nenable=false\ndata={}\n", out)

	out, err = runCLI(t, "-config", cfg, "set", "user", `"user001"`)
	require.NoError(t, err)
	assert.Equal(t, "\"user001\"\n", out)

	out, err = runCLI(t, "-config", cfg, "set", "data", `{"name":"John","age":12}`)
	require.NoError(t, err)
	assert.Equal(t, "{\"age\":12,\"name\":\"John\"}\n", out)

	// values survive across invocations
	out, err = runCLI(t, "-config", cfg, "-store", "profile", "get", "user")
	require.NoError(t, err)
	assert.Equal(t, "\"user001\"\n", out)

	out, err = runCLI(t, "-config", cfg, "set", "user", "null")
	require.NoError(t, err)
	assert.Equal(t, "\"guest\"\n", out)

	out, err = runCLI(t, "-config", cfg, "reset", "data")
	require.NoError(t, err)
	assert.Equal(t, "{}\n", out)

	out, err = runCLI(t, "-config", cfg, "reset-all")
	require.NoError(t, err)
	assert.Equal(t, "reset 4 keys\n", out)

	_, err = runCLI(t, "-config", cfg, "get", "other")
	assert.True(t, errors.IsInvalidKey(err))
}

func TestCommandErrors(t *testing.T) {
	cfg := writeConfig(t)

	_, err := runCLI(t, "-config", cfg)
	assert.Error(t, err)

	_, err = runCLI(t, "-config", cfg, "frobnicate")
	assert.ErrorContains(t, err, "unknown command")

	_, err = runCLI(t, "-config", cfg, "set", "user")
	assert.ErrorContains(t, err, "usage: set KEY JSON")

	_, err = runCLI(t, "-config", cfg, "set", "user", "{oops")
	assert.ErrorContains(t, err, "invalid JSON value")

	_, err = runCLI(t, "-config", cfg, "-store", "missing", "list")
	assert.Error(t, err)

	_, err = runCLI(t, "-config", filepath.Join(t.TempDir(), "none.yaml"), "list")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "-version")
	require.NoError(t, err)
	assert.Contains(t, out, "StrictStore version")
	assert.Contains(t, out, "Go version")
}
