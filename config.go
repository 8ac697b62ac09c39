/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package strictstore

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/suparena/strictstore/datastore"
	"github.com/suparena/strictstore/errors"
	"github.com/suparena/strictstore/observability"
	"github.com/suparena/strictstore/registry"
)

// Config describes a set of named storages.
type Config struct {
	Stores map[string]StoreConfig `yaml:"stores"`
}

// StoreConfig describes one storage. Defaults keep the key order of the document.
type StoreConfig struct {
	Driver   DriverConfig `yaml:"driver"`
	Observer string       `yaml:"observer,omitempty"`
	Defaults yaml.Node    `yaml:"defaults"`
}

// DriverConfig selects a registered driver and its options.
type DriverConfig struct {
	Type    string           `yaml:"type"`
	Options registry.Options `yaml:"options,omitempty"`
}

// LoadConfig reads a YAML configuration file. The env files, if any, are loaded into the
// process environment first so that ${VAR} references in the file can use them.
func LoadConfig(path string, envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("failed to load env files: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig expands ${VAR} references from the environment and decodes the YAML document.
func ParseConfig(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that every store names a registered driver and declares its defaults
// as a mapping.
func (c *Config) Validate() error {
	if len(c.Stores) == 0 {
		return errors.NewValidationError("stores", "no stores configured")
	}

	for _, name := range c.Names() {
		sc := c.Stores[name]
		if sc.Driver.Type != "" {
			if _, err := registry.GetDriverFunc(sc.Driver.Type); err != nil {
				return errors.NewValidationError("stores."+name+".driver", err.Error())
			}
		}
		if sc.Observer != "" {
			if _, err := observability.GetObserver(sc.Observer); err != nil {
				return errors.NewValidationError("stores."+name+".observer", err.Error())
			}
		}
		if sc.Defaults.Kind != yaml.MappingNode {
			return errors.NewValidationError("stores."+name+".defaults", "defaults must be a mapping")
		}
	}
	return nil
}

// Names returns the configured store names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Stores))
	for name := range c.Stores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the storage called name. It is not initialized. A missing driver type
// selects the shared memory driver.
func (c *Config) Build(name string, opts ...Option) (*Storage, error) {
	sc, ok := c.Stores[name]
	if !ok {
		return nil, fmt.Errorf("store %q is not configured", name)
	}

	defaults, err := sc.defaults()
	if err != nil {
		return nil, fmt.Errorf("store %q: %w", name, err)
	}

	driverType := sc.Driver.Type
	if driverType == "" {
		driverType = "memory"
	}

	base := []Option{
		WithDriverFactory(func() (datastore.Driver, error) {
			return registry.NewDriver(driverType, name, sc.Driver.Options)
		}),
	}
	if sc.Observer != "" {
		obs, err := observability.GetObserver(sc.Observer)
		if err != nil {
			return nil, fmt.Errorf("store %q: %w", name, err)
		}
		base = append(base, WithObserver(obs))
	}

	return New(defaults, append(base, opts...)...)
}

func (sc StoreConfig) defaults() (*Defaults, error) {
	node := sc.Defaults
	if node.Kind == 0 {
		return NewDefaults()
	}
	if node.Kind != yaml.MappingNode {
		return nil, errors.NewValidationError("defaults", "defaults must be a mapping")
	}

	entries := make([]Entry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return nil, fmt.Errorf("failed to decode default %q: %w", node.Content[i].Value, err)
		}
		entries = append(entries, Entry{Key: node.Content[i].Value, Value: value})
	}
	return NewDefaults(entries...)
}

// NewManagerFromConfig validates cfg and registers one storage per configured store, in
// sorted name order. The storages are not initialized.
func NewManagerFromConfig(cfg *Config, opts ...Option) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := NewManager()
	for _, name := range cfg.Names() {
		s, err := cfg.Build(name, opts...)
		if err != nil {
			return nil, err
		}
		if err := m.Register(name, s); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// CloseDriver is a DisposeFunc that closes drivers holding resources, such as bolt or sqlite.
func CloseDriver(driver datastore.Driver) error {
	if c, ok := driver.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
