/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package observability carries the mutation and lifecycle events of a storage to logging
// or metrics backends. Level values align with OpenTelemetry SeverityNumbers.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// Level represents event severity aligned with OTel SeverityNumber ranges.
type Level int

const (
	LevelVerbose Level = 5  // OTel DEBUG (5-8)
	LevelInfo    Level = 9  // OTel INFO (9-12)
	LevelWarning Level = 13 // OTel WARN (13-16)
	LevelError   Level = 17 // OTel ERROR (17-20)
)

// String returns the OTel severity text for the level.
func (l Level) String() string {
	switch {
	case l <= 4:
		return "TRACE"
	case l <= 8:
		return "DEBUG"
	case l <= 12:
		return "INFO"
	case l <= 16:
		return "WARN"
	case l <= 20:
		return "ERROR"
	default:
		return "FATAL"
	}
}

// SlogLevel maps this level to the corresponding slog.Level.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= 8:
		return slog.LevelDebug
	case l <= 12:
		return slog.LevelInfo
	case l <= 16:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType identifies the kind of event.
type EventType string

// Events emitted by a storage.
const (
	EventStateChange  EventType = "storage.state.change"
	EventIndexSet     EventType = "storage.index.set"
	EventIndexBatch   EventType = "storage.index.batch"
	EventIndexClear   EventType = "storage.index.clear"
	EventStoreFailure EventType = "storage.store.failure"
)

// Event is an observability event. Source is the emitting storage ID.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives events for logging, tracing, or metrics. OnEvent is called
// synchronously from the mutation point and must not call back into the storage.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}
