/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
)

// Driver is the backing store consumed by a strict storage. Implementations may block;
// errors are propagated to the caller untouched.
type Driver interface {
	// GetItem returns the stored value for key. found is false when nothing is stored.
	GetItem(ctx context.Context, key string) (value any, found bool, err error)

	// SetItem stores value under key. It returns only after the write is acknowledged.
	SetItem(ctx context.Context, key string, value any) error
}

// Factory builds a Driver lazily, at storage construction time.
type Factory func() (Driver, error)

type undefinedValue struct{}

func (undefinedValue) String() string { return "undefined" }

// Undefined is written and cached verbatim. It never triggers the reset-to-default
// substitution that a nil value does. Persistent drivers drop the stored record for it.
var Undefined any = undefinedValue{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefinedValue)
	return ok
}

// IsAbsent reports whether a GetItem result means "no stored value".
func IsAbsent(value any, found bool) bool {
	return !found || value == nil
}
