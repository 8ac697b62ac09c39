/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package strictstore

import (
	"github.com/sasha-s/go-deadlock"
)

// Index is the in-memory container a Storage reads from. After Initialize it holds exactly
// the declared keys and is the authority on key validity.
type Index interface {
	Set(key string, value any)
	Get(key string) (any, bool)
	Has(key string) bool
	Clear()
	Len() int
}

// BatchIndex is implemented by indexes that can apply several entries at once.
// ResetAll uses it when available.
type BatchIndex interface {
	Index
	SetBatch(entries []Entry)
}

// MapIndex is the default Index, a map guarded by a read/write mutex.
type MapIndex struct {
	mu   deadlock.RWMutex
	data map[string]any
}

// NewMapIndex creates an empty MapIndex.
func NewMapIndex() *MapIndex {
	return &MapIndex{data: make(map[string]any)}
}

func (m *MapIndex) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

func (m *MapIndex) Get(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MapIndex) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[key]
	return ok
}

func (m *MapIndex) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]any)
}

func (m *MapIndex) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// SetBatch applies all entries under a single lock acquisition.
func (m *MapIndex) SetBatch(entries []Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		m.data[e.Key] = e.Value
	}
}

var _ BatchIndex = (*MapIndex)(nil)
