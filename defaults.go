/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package strictstore

import (
	"sort"

	"github.com/suparena/strictstore/errors"
)

// Entry is a key/value pair, used both to declare defaults and to batch index updates.
type Entry struct {
	Key   string
	Value any
}

// Defaults is the immutable descriptor of the declared keys and their default values.
// Keys keep their declaration order, which drives Initialize and ResetAll.
type Defaults struct {
	keys   []string
	values map[string]any
}

// NewDefaults declares the given keys in order. Empty and duplicate keys are rejected.
// Values must be deep-copyable: they are cloned every time they are handed to the cache.
func NewDefaults(entries ...Entry) (*Defaults, error) {
	d := &Defaults{
		keys:   make([]string, 0, len(entries)),
		values: make(map[string]any, len(entries)),
	}
	for _, e := range entries {
		if e.Key == "" {
			return nil, errors.NewValidationError("defaults", "key cannot be empty")
		}
		if _, exists := d.values[e.Key]; exists {
			return nil, errors.NewValidationError("defaults", "duplicate key "+e.Key)
		}
		d.keys = append(d.keys, e.Key)
		d.values[e.Key] = deepCopy(e.Value)
	}
	return d, nil
}

// DefaultsFromMap declares the keys of m in sorted order.
func DefaultsFromMap(m map[string]any) (*Defaults, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Key: k, Value: m[k]})
	}
	return NewDefaults(entries...)
}

// MustDefaults is like NewDefaults but panics on invalid input.
func MustDefaults(entries ...Entry) *Defaults {
	d, err := NewDefaults(entries...)
	if err != nil {
		panic(err)
	}
	return d
}

// Keys returns the declared keys in declaration order.
func (d *Defaults) Keys() []string {
	return append([]string(nil), d.keys...)
}

// Len returns the number of declared keys.
func (d *Defaults) Len() int {
	return len(d.keys)
}

// Has reports whether key is declared.
func (d *Defaults) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Value returns a deep copy of the default for key.
func (d *Defaults) Value(key string) (any, bool) {
	v, ok := d.values[key]
	if !ok {
		return nil, false
	}
	return deepCopy(v), true
}

// Entries returns deep copies of every default in declaration order.
func (d *Defaults) Entries() []Entry {
	out := make([]Entry, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, Entry{Key: k, Value: deepCopy(d.values[k])})
	}
	return out
}

// shared returns the descriptor's own value, used for identity checks only.
func (d *Defaults) shared(key string) any {
	return d.values[key]
}
