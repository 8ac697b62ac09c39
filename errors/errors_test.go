/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestStateError(t *testing.T) {
	err := NewStateError("GetItem", "disposed")

	expected := "invalid operation GetItem: storage is disposed"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrInvalidState) {
		t.Error("StateError should match ErrInvalidState")
	}

	if !IsInvalidState(err) {
		t.Error("IsInvalidState should return true for StateError")
	}
	if IsInvalidKey(err) {
		t.Error("IsInvalidKey should return false for StateError")
	}
}

func TestKeyError(t *testing.T) {
	err := NewKeyError("SetItem", "other")

	expected := `SetItem: key "other" is out of range of the declared keys`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrInvalidKey) {
		t.Error("KeyError should match ErrInvalidKey")
	}

	var keyErr *KeyError
	if !errors.As(err, &keyErr) || keyErr.Key != "other" {
		t.Errorf("errors.As should expose the key, got %+v", keyErr)
	}
}

func TestTypeMismatchError(t *testing.T) {
	err := NewTypeMismatchError("no", "string", 12)

	expected := `key "no": wanted string, got int`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
	if !IsTypeMismatch(err) {
		t.Error("IsTypeMismatch should return true for TypeMismatchError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "defaults",
			message:  "duplicate key",
			expected: `validation failed for field "defaults": duplicate key`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "no stores configured",
			expected: "validation failed: no stores configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}
			if !IsValidationError(err) {
				t.Error("IsValidationError should return true")
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	base := NewKeyError("GetItem", "missing")
	wrapped := fmt.Errorf("loading profile: %w", base)

	if !IsInvalidKey(wrapped) {
		t.Error("wrapped KeyError should still match ErrInvalidKey")
	}
	if IsInvalidState(wrapped) {
		t.Error("wrapped KeyError should not match ErrInvalidState")
	}
}
