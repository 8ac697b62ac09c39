/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package strictstore

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
)

// Manager is a thread-safe collection of named storages.
type Manager struct {
	mu     sync.RWMutex
	names  []string
	stores map[string]*Storage
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{
		stores: make(map[string]*Storage),
	}
}

// Register adds a storage under name.
func (m *Manager) Register(name string, s *Storage) error {
	if s == nil {
		return fmt.Errorf("storage %q is nil", name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.stores[name]; exists {
		return fmt.Errorf("storage with name %q already registered", name)
	}
	m.stores[name] = s
	m.names = append(m.names, name)
	return nil
}

// Get retrieves the storage registered under name.
func (m *Manager) Get(name string) (*Storage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, exists := m.stores[name]
	if !exists {
		return nil, fmt.Errorf("storage with name %q not found", name)
	}
	return s, nil
}

// Remove unregisters name. The storage is not disposed.
func (m *Manager) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.stores[name]; !exists {
		return fmt.Errorf("storage with name %q not found", name)
	}
	delete(m.stores, name)
	for i, n := range m.names {
		if n == name {
			m.names = append(m.names[:i], m.names[i+1:]...)
			break
		}
	}
	return nil
}

// List returns the registered names in registration order.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.names...)
}

func (m *Manager) snapshot() ([]string, []*Storage) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := append([]string(nil), m.names...)
	stores := make([]*Storage, 0, len(names))
	for _, n := range names {
		stores = append(stores, m.stores[n])
	}
	return names, stores
}

// InitializeAll initializes every uninitialized storage in registration order and stops at
// the first failure.
func (m *Manager) InitializeAll(ctx context.Context) error {
	names, stores := m.snapshot()
	for i, s := range stores {
		if s.State() != Uninitialized {
			continue
		}
		if err := s.Initialize(ctx); err != nil {
			return fmt.Errorf("initialize storage %q: %w", names[i], err)
		}
	}
	return nil
}

// DisposeAll disposes every initialized storage, running onDispose for each one.
// All storages are attempted and the failures are joined.
func (m *Manager) DisposeAll(onDispose ...DisposeFunc) error {
	names, stores := m.snapshot()

	var errs []error
	for i, s := range stores {
		if s.State() != Initialized {
			continue
		}
		if err := s.Dispose(onDispose...); err != nil {
			errs = append(errs, fmt.Errorf("dispose storage %q: %w", names[i], err))
		}
	}
	return stderrors.Join(errs...)
}
