/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package strictstore

import (
	"context"
	"reflect"

	"github.com/suparena/strictstore/errors"
)

// Key is a declared key bound to the Go type of its value.
type Key[T any] struct {
	name string
}

// NewKey binds name to T.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// Name returns the key string.
func (k Key[T]) Name() string {
	return k.name
}

// Entry pairs the key with a default value, for use with NewDefaults.
func (k Key[T]) Entry(def T) Entry {
	return Entry{Key: k.name, Value: def}
}

// GetAs returns the cached value of k as a T.
func GetAs[T any](s *Storage, k Key[T]) (T, error) {
	var zero T

	value, err := s.GetItem(k.name)
	if err != nil {
		return zero, err
	}
	return assertAs[T](k.name, value)
}

// SetAs writes value under k.
func SetAs[T any](ctx context.Context, s *Storage, k Key[T], value T) error {
	return s.SetItem(ctx, k.name, value)
}

// ResetAs resets k to its default and returns it as a T.
func ResetAs[T any](ctx context.Context, s *Storage, k Key[T]) (T, error) {
	var zero T

	value, err := s.ResetItem(ctx, k.name)
	if err != nil {
		return zero, err
	}
	return assertAs[T](k.name, value)
}

func assertAs[T any](key string, value any) (T, error) {
	if v, ok := value.(T); ok {
		return v, nil
	}

	var zero T
	if value == nil && isNillable(reflect.TypeOf((*T)(nil)).Elem()) {
		return zero, nil
	}
	return zero, errors.NewTypeMismatchError(key, reflect.TypeOf((*T)(nil)).Elem().String(), value)
}

func isNillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
