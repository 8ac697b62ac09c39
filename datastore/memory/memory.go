/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package memory provides a process-wide in-memory driver, the ambient backing store used
// when a storage is built without an explicit driver.
package memory

import (
	"context"
	"sync"

	"github.com/suparena/strictstore/datastore"
	"github.com/suparena/strictstore/registry"
)

// Driver keeps values in a map. Values are stored and returned as-is.
type Driver struct {
	mu   sync.RWMutex
	data map[string]any
}

var (
	ambient     *Driver
	ambientOnce sync.Once
)

// New creates an empty, private Driver.
func New() *Driver {
	return &Driver{data: make(map[string]any)}
}

// Default returns the process-wide Driver shared by every storage that does not bring its own.
func Default() *Driver {
	ambientOnce.Do(func() {
		ambient = New()
	})
	return ambient
}

func init() {
	registry.RegisterDriver("memory", func(namespace string, opts registry.Options) (datastore.Driver, error) {
		if opts.Get("shared", "true") == "true" {
			return Default(), nil
		}
		return New(), nil
	})
}

// GetItem returns the stored value for key.
func (d *Driver) GetItem(_ context.Context, key string) (any, bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	value, ok := d.data[key]
	return value, ok, nil
}

// SetItem stores value under key.
func (d *Driver) SetItem(_ context.Context, key string, value any) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.data[key] = value
	return nil
}

// Len returns the number of stored keys.
func (d *Driver) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.data)
}

// Clear removes every stored value.
func (d *Driver) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.data = make(map[string]any)
}

var _ datastore.Driver = (*Driver)(nil)
