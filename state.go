/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package strictstore

// State is the lifecycle state of a Storage. It only moves forward:
// Uninitialized → Initialized → Disposed.
type State int

const (
	Uninitialized State = iota
	Initialized
	Disposed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	case Disposed:
		return "disposed"
	default:
		return "unknown"
	}
}
