/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/strictstore/datastore"
)

// Options carries driver-specific settings, usually taken from a configuration file.
type Options map[string]string

// Get returns the value for key, or fallback when it is unset or empty.
func (o Options) Get(key, fallback string) string {
	if v, ok := o[key]; ok && v != "" {
		return v
	}
	return fallback
}

// DriverFunc builds a driver for the given namespace from its options.
type DriverFunc func(namespace string, opts Options) (datastore.Driver, error)

var (
	driverRegistry = make(map[string]DriverFunc)
	mu             sync.RWMutex
)

// RegisterDriver registers a driver constructor under a type name such as "bolt".
// If a driver is already registered for the name, it panics to prevent accidental overrides.
func RegisterDriver(name string, fn DriverFunc) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := driverRegistry[name]; exists {
		panic(fmt.Sprintf("driver registry: driver %q already registered", name))
	}
	driverRegistry[name] = fn
}

// GetDriverFunc returns the registered constructor for the given type name.
func GetDriverFunc(name string) (DriverFunc, error) {
	mu.RLock()
	defer mu.RUnlock()

	fn, ok := driverRegistry[name]
	if !ok {
		return nil, fmt.Errorf("driver registry: no driver registered for type %q", name)
	}
	return fn, nil
}

// NewDriver looks up the constructor for name and invokes it.
func NewDriver(name, namespace string, opts Options) (datastore.Driver, error) {
	fn, err := GetDriverFunc(name)
	if err != nil {
		return nil, err
	}
	return fn(namespace, opts)
}

// Drivers returns the registered type names in sorted order.
func Drivers() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(driverRegistry))
	for name := range driverRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
