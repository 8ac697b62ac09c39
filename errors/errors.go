/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrInvalidState is returned when an operation is attempted outside its lifecycle window
	ErrInvalidState = errors.New("invalid operation for current state")

	// ErrInvalidKey is returned when a key has no entry in the in-memory index
	ErrInvalidKey = errors.New("key is an invalid value")

	// ErrTypeMismatch is returned when a cached value does not have the requested type
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// StateError represents an operation rejected by the lifecycle guard
type StateError struct {
	Op    string
	State string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("invalid operation %s: storage is %s", e.Op, e.State)
}

func (e *StateError) Is(target error) bool {
	return target == ErrInvalidState
}

// KeyError is a range-style error for a key outside the declared key set
type KeyError struct {
	Op  string
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: key %q is out of range of the declared keys", e.Op, e.Key)
}

func (e *KeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

// TypeMismatchError represents a typed read of a value with a different dynamic type
type TypeMismatchError struct {
	Key  string
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("key %q: wanted %s, got %s", e.Key, e.Want, e.Got)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewStateError creates a new StateError
func NewStateError(op, state string) error {
	return &StateError{Op: op, State: state}
}

// NewKeyError creates a new KeyError
func NewKeyError(op, key string) error {
	return &KeyError{Op: op, Key: key}
}

// NewTypeMismatchError creates a new TypeMismatchError
func NewTypeMismatchError(key, want string, got any) error {
	return &TypeMismatchError{Key: key, Want: want, Got: fmt.Sprintf("%T", got)}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsInvalidState checks if an error is a lifecycle state error
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// IsInvalidKey checks if an error is an invalid key error
func IsInvalidKey(err error) bool {
	return errors.Is(err, ErrInvalidKey)
}

// IsTypeMismatch checks if an error is a type mismatch error
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
