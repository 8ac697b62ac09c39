/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a mock implementation of the Driver interface for testing
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/suparena/strictstore/datastore"
)

// Op names recorded in the call log
const (
	OpGet = "get"
	OpSet = "set"
)

// Call is one recorded driver invocation
type Call struct {
	Op    string
	Key   string
	Value any
}

// DataStore is a mock implementation of datastore.Driver for testing
type DataStore struct {
	mu          sync.RWMutex
	data        map[string]any
	calls       []Call
	latency     time.Duration
	getError    error
	setError    error
	setErrorOn  map[string]error
	inFlight    int
	maxInFlight int
}

// New creates a new mock DataStore
func New() *DataStore {
	return &DataStore{
		data:       make(map[string]any),
		setErrorOn: make(map[string]error),
	}
}

// WithLatency delays every GetItem and SetItem, simulating an asynchronous backend
func (m *DataStore) WithLatency(d time.Duration) *DataStore {
	m.latency = d
	return m
}

// WithGetError makes GetItem operations return an error
func (m *DataStore) WithGetError(err error) *DataStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getError = err
	return m
}

// WithSetError makes SetItem operations return an error
func (m *DataStore) WithSetError(err error) *DataStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setError = err
	return m
}

// WithSetErrorOn makes SetItem return an error for a single key only
func (m *DataStore) WithSetErrorOn(key string, err error) *DataStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setErrorOn[key] = err
	return m
}

// GetItem retrieves a value by key
func (m *DataStore) GetItem(ctx context.Context, key string) (any, bool, error) {
	m.enter(Call{Op: OpGet, Key: key})
	defer m.leave()

	if err := m.wait(ctx); err != nil {
		return nil, false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, false, m.getError
	}

	value, exists := m.data[key]
	return value, exists, nil
}

// SetItem stores a value
func (m *DataStore) SetItem(ctx context.Context, key string, value any) error {
	m.enter(Call{Op: OpSet, Key: key, Value: value})
	defer m.leave()

	if err := m.wait(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.setError != nil {
		return m.setError
	}
	if err, ok := m.setErrorOn[key]; ok {
		return err
	}

	m.data[key] = value
	return nil
}

func (m *DataStore) enter(c Call) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, c)
	m.inFlight++
	if m.inFlight > m.maxInFlight {
		m.maxInFlight = m.inFlight
	}
}

func (m *DataStore) leave() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight--
}

func (m *DataStore) wait(ctx context.Context) error {
	if m.latency <= 0 {
		return nil
	}

	timer := time.NewTimer(m.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Helper methods for testing

// SetData directly sets the internal data map (for testing)
func (m *DataStore) SetData(data map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make(map[string]any, len(data))
	for k, v := range data {
		m.data[k] = v
	}
}

// GetData returns a copy of the internal data map (for testing)
func (m *DataStore) GetData() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]any, len(m.data))
	for k, v := range m.data {
		result[k] = v
	}
	return result
}

// Calls returns a copy of the recorded call log
func (m *DataStore) Calls() []Call {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Call(nil), m.calls...)
}

// CallsOf returns the recorded calls for a single operation
func (m *DataStore) CallsOf(op string) []Call {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Call
	for _, c := range m.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// ResetCalls clears the call log and the in-flight high-water mark
func (m *DataStore) ResetCalls() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.maxInFlight = m.inFlight
}

// MaxInFlight returns the highest number of concurrent driver calls observed
func (m *DataStore) MaxInFlight() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.maxInFlight
}

// Count returns the number of stored values
func (m *DataStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes all data
func (m *DataStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]any)
}

var _ datastore.Driver = (*DataStore)(nil)
