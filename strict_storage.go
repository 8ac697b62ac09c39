/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package strictstore

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/sasha-s/go-deadlock"

	"github.com/suparena/strictstore/datastore"
	"github.com/suparena/strictstore/datastore/memory"
	"github.com/suparena/strictstore/errors"
	"github.com/suparena/strictstore/observability"
)

// Undefined is written and cached verbatim, unlike nil which resets a key to its default.
var Undefined = datastore.Undefined

// IsUndefined reports whether v is Undefined.
func IsUndefined(v any) bool {
	return datastore.IsUndefined(v)
}

// DisposeFunc is invoked by Dispose with the backing store, after the storage is already disposed.
type DisposeFunc func(driver datastore.Driver) error

// Storage is a lifecycle-guarded cache over a backing store, holding a fixed set of declared keys.
//
// Reads are served from the in-memory index only. Writes reach the backing store first and
// update the index once the store has acknowledged them. Concurrent writes to the same key
// are not serialized: the last acknowledged write wins.
type Storage struct {
	id       string
	observer observability.Observer

	mu           deadlock.RWMutex
	state        State
	initializing bool
	defaults     *Defaults
	driver       datastore.Driver
	index        Index
}

// New captures the collaborators of a storage. It performs no I/O.
func New(defaults *Defaults, opts ...Option) (*Storage, error) {
	if defaults == nil {
		return nil, errors.NewValidationError("defaults", "defaults are required")
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	driver := o.driver
	if o.driverFactory != nil {
		d, err := o.driverFactory()
		if err != nil {
			return nil, err
		}
		driver = d
	}
	if driver == nil {
		driver = memory.Default()
	}

	index := o.index
	if o.indexFactory != nil {
		index = o.indexFactory()
	}
	if index == nil {
		index = NewMapIndex()
	}

	observer := o.observer
	if observer == nil {
		observer = observability.NoOpObserver{}
	}

	id := o.id
	if id == "" {
		id = uuid.NewString()
	}

	return &Storage{
		id:       id,
		observer: observer,
		state:    Uninitialized,
		defaults: defaults,
		driver:   driver,
		index:    index,
	}, nil
}

// ID identifies the storage as the source of its events.
func (s *Storage) ID() string {
	return s.id
}

// State returns the current lifecycle state.
func (s *Storage) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Initialized reports whether the storage has been initialized, including after disposal.
func (s *Storage) Initialized() bool {
	return s.State() != Uninitialized
}

// Disposed reports whether Dispose has been called successfully.
func (s *Storage) Disposed() bool {
	return s.State() == Disposed
}

// Defaults returns the defaults descriptor, or nil once the storage is disposed.
func (s *Storage) Defaults() *Defaults {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaults
}

// Initialize loads every declared key from the backing store, one key at a time in
// declaration order. Keys absent from the store are seeded with a copy of their default.
// On a store failure the storage stays uninitialized and Initialize may be retried.
func (s *Storage) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.state != Uninitialized || s.initializing {
		state := s.state
		s.mu.Unlock()
		if state == Uninitialized {
			return errors.NewStateError("Initialize", "initializing")
		}
		return errors.NewStateError("Initialize", state.String())
	}
	s.initializing = true
	defaults, driver, index := s.defaults, s.driver, s.index
	s.mu.Unlock()

	if index.Len() > 0 {
		s.clearIndex(ctx, index)
	}

	for _, key := range defaults.keys {
		value, found, err := driver.GetItem(ctx, key)
		if err != nil {
			s.storeFailure(ctx, "Initialize", key, err)
			s.clearIndex(ctx, index)
			s.mu.Lock()
			s.initializing = false
			s.mu.Unlock()
			return err
		}
		if datastore.IsAbsent(value, found) {
			value = deepCopy(defaults.shared(key))
		}
		s.setIndex(ctx, index, key, value)
	}

	s.mu.Lock()
	s.initializing = false
	s.state = Initialized
	s.mu.Unlock()

	s.stateChange(ctx, Uninitialized, Initialized)
	return nil
}

// GetItem returns the cached value of key. It never touches the backing store.
func (s *Storage) GetItem(key string) (any, error) {
	_, _, index, err := s.enable("GetItem")
	if err != nil {
		return nil, err
	}
	if err := valid("GetItem", index, key); err != nil {
		return nil, err
	}

	value, _ := index.Get(key)
	return value, nil
}

// SetItem writes value to the backing store, then to the index. Writing the value already
// cached is a no-op. A nil value resets the key to a copy of its default.
// Backing store errors are returned as-is and leave the index unchanged.
func (s *Storage) SetItem(ctx context.Context, key string, value any) error {
	defaults, driver, index, err := s.enable("SetItem")
	if err != nil {
		return err
	}
	if err := valid("SetItem", index, key); err != nil {
		return err
	}

	current, _ := index.Get(key)
	if identical(current, value) {
		return nil
	}
	if value == nil {
		value = deepCopy(defaults.shared(key))
	}

	return s.write(ctx, "SetItem", driver, index, key, value)
}

// ResetItem writes a copy of the default of key and returns the resulting cached value.
func (s *Storage) ResetItem(ctx context.Context, key string) (any, error) {
	defaults, driver, index, err := s.enable("ResetItem")
	if err != nil {
		return nil, err
	}
	if err := valid("ResetItem", index, key); err != nil {
		return nil, err
	}

	current, _ := index.Get(key)
	def := defaults.shared(key)
	if identical(current, def) {
		return current, nil
	}

	if err := s.write(ctx, "ResetItem", driver, index, key, deepCopy(def)); err != nil {
		return nil, err
	}

	value, _ := index.Get(key)
	return value, nil
}

// ResetAll writes every default to the backing store, one key at a time in declaration order,
// then applies all of them to the index at once. If a write fails nothing is applied to the
// index, though the keys written before the failure stay written in the store.
func (s *Storage) ResetAll(ctx context.Context) error {
	defaults, driver, index, err := s.enable("ResetAll")
	if err != nil {
		return err
	}

	batch := make([]Entry, 0, defaults.Len())
	for _, entry := range defaults.Entries() {
		if err := driver.SetItem(ctx, entry.Key, entry.Value); err != nil {
			s.storeFailure(ctx, "ResetAll", entry.Key, err)
			return err
		}
		batch = append(batch, entry)
	}

	return s.commitBatch(ctx, "ResetAll", index, batch)
}

// Len returns the number of cached entries.
func (s *Storage) Len() (int, error) {
	_, _, index, err := s.enable("Len")
	if err != nil {
		return 0, err
	}
	return index.Len(), nil
}

// HasItem reports whether key has an entry in the index. It is false outside the
// initialized state, matching the key check of GetItem and SetItem.
func (s *Storage) HasItem(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != Initialized {
		return false
	}
	return s.index.Has(key)
}

// Dispose moves the storage to the disposed state, runs the hooks with the backing store
// and clears the index. The backing store itself is left open: closing it is up to the hooks.
func (s *Storage) Dispose(onDispose ...DisposeFunc) error {
	ctx := context.Background()

	s.mu.Lock()
	if s.state != Initialized {
		state := s.state
		s.mu.Unlock()
		return errors.NewStateError("Dispose", state.String())
	}
	driver, index := s.driver, s.index
	s.state = Disposed
	s.defaults, s.driver, s.index = nil, nil, nil
	s.mu.Unlock()

	s.stateChange(ctx, Initialized, Disposed)

	var errs []error
	for _, hook := range onDispose {
		if hook == nil {
			continue
		}
		if err := hook(driver); err != nil {
			errs = append(errs, err)
		}
	}

	s.clearIndex(ctx, index)
	return stderrors.Join(errs...)
}

// enable returns the collaborators if the storage is initialized.
func (s *Storage) enable(op string) (*Defaults, datastore.Driver, Index, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != Initialized {
		return nil, nil, nil, errors.NewStateError(op, s.state.String())
	}
	return s.defaults, s.driver, s.index, nil
}

func valid(op string, index Index, key string) error {
	if !index.Has(key) {
		return errors.NewKeyError(op, key)
	}
	return nil
}

// write stores value, then commits it to the index unless the storage was disposed meanwhile.
func (s *Storage) write(ctx context.Context, op string, driver datastore.Driver, index Index, key string, value any) error {
	if err := driver.SetItem(ctx, key, value); err != nil {
		s.storeFailure(ctx, op, key, err)
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != Initialized {
		return errors.NewStateError(op, s.state.String())
	}
	s.setIndex(ctx, index, key, value)
	return nil
}

// Mutation points. Each one emits an event so that an observer can follow the index and the
// lifecycle without the storage knowing what it is.

func (s *Storage) setIndex(ctx context.Context, index Index, key string, value any) {
	index.Set(key, value)
	s.emit(ctx, observability.EventIndexSet, observability.LevelVerbose, map[string]any{
		"key": key,
	})
}

func (s *Storage) commitBatch(ctx context.Context, op string, index Index, batch []Entry) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != Initialized {
		return errors.NewStateError(op, s.state.String())
	}

	if b, ok := index.(BatchIndex); ok {
		b.SetBatch(batch)
	} else {
		for _, e := range batch {
			index.Set(e.Key, e.Value)
		}
	}

	keys := make([]string, 0, len(batch))
	for _, e := range batch {
		keys = append(keys, e.Key)
	}
	s.emit(ctx, observability.EventIndexBatch, observability.LevelVerbose, map[string]any{
		"count": len(batch),
		"keys":  keys,
	})
	return nil
}

func (s *Storage) clearIndex(ctx context.Context, index Index) {
	n := index.Len()
	index.Clear()
	s.emit(ctx, observability.EventIndexClear, observability.LevelVerbose, map[string]any{
		"count": n,
	})
}

func (s *Storage) stateChange(ctx context.Context, from, to State) {
	s.emit(ctx, observability.EventStateChange, observability.LevelInfo, map[string]any{
		"from": from.String(),
		"to":   to.String(),
	})
}

func (s *Storage) storeFailure(ctx context.Context, op, key string, err error) {
	s.emit(ctx, observability.EventStoreFailure, observability.LevelError, map[string]any{
		"op":    op,
		"key":   key,
		"error": err.Error(),
	})
}

func (s *Storage) emit(ctx context.Context, typ observability.EventType, level observability.Level, data map[string]any) {
	s.observer.OnEvent(ctx, observability.Event{
		Type:      typ,
		Level:     level,
		Timestamp: time.Now(),
		Source:    s.id,
		Data:      data,
	})
}
