/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/suparena/strictstore/datastore/mock"
)

func TestMockDataStore(t *testing.T) {
	ctx := context.Background()

	t.Run("BasicOperations", func(t *testing.T) {
		mockStore := mock.New()

		_, found, err := mockStore.GetItem(ctx, "user")
		if err != nil {
			t.Fatalf("GetItem failed: %v", err)
		}
		if found {
			t.Fatal("Expected missing key to be reported as not found")
		}

		if err := mockStore.SetItem(ctx, "user", "user001"); err != nil {
			t.Fatalf("SetItem failed: %v", err)
		}

		value, found, err := mockStore.GetItem(ctx, "user")
		if err != nil {
			t.Fatalf("GetItem failed: %v", err)
		}
		if !found || value != "user001" {
			t.Fatalf("Retrieved value mismatch: %v (found=%v)", value, found)
		}

		if mockStore.Count() != 1 {
			t.Fatalf("Expected 1 stored value, got %d", mockStore.Count())
		}
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		mockStore := mock.New()

		getErr := errors.New("get failed")
		mockStore.WithGetError(getErr)
		if _, _, err := mockStore.GetItem(ctx, "user"); err != getErr {
			t.Fatalf("Expected get error, got: %v", err)
		}

		setErr := errors.New("set failed")
		mockStore.WithSetError(setErr)
		if err := mockStore.SetItem(ctx, "user", "x"); err != setErr {
			t.Fatalf("Expected set error, got: %v", err)
		}
		if mockStore.Count() != 0 {
			t.Fatal("Failed SetItem must not store the value")
		}
	})

	t.Run("PerKeyError", func(t *testing.T) {
		keyErr := errors.New("no write for enable")
		mockStore := mock.New().WithSetErrorOn("enable", keyErr)

		if err := mockStore.SetItem(ctx, "user", "x"); err != nil {
			t.Fatalf("SetItem on other key failed: %v", err)
		}
		if err := mockStore.SetItem(ctx, "enable", true); err != keyErr {
			t.Fatalf("Expected per-key error, got: %v", err)
		}
	})

	t.Run("CallLog", func(t *testing.T) {
		mockStore := mock.New()
		mockStore.SetData(map[string]any{"no": 123})

		_, _, _ = mockStore.GetItem(ctx, "no")
		_ = mockStore.SetItem(ctx, "no", 5)

		calls := mockStore.Calls()
		if len(calls) != 2 {
			t.Fatalf("Expected 2 calls, got %d", len(calls))
		}
		if calls[0].Op != mock.OpGet || calls[1].Op != mock.OpSet || calls[1].Value != 5 {
			t.Fatalf("Unexpected call log: %+v", calls)
		}
		if len(mockStore.CallsOf(mock.OpSet)) != 1 {
			t.Fatal("Expected a single set call")
		}

		mockStore.ResetCalls()
		if len(mockStore.Calls()) != 0 {
			t.Fatal("ResetCalls should clear the log")
		}
	})

	t.Run("Latency", func(t *testing.T) {
		mockStore := mock.New().WithLatency(20 * time.Millisecond)

		start := time.Now()
		if err := mockStore.SetItem(ctx, "user", "x"); err != nil {
			t.Fatalf("SetItem failed: %v", err)
		}
		if time.Since(start) < 20*time.Millisecond {
			t.Fatal("Expected SetItem to be delayed")
		}

		canceled, cancel := context.WithCancel(ctx)
		cancel()
		if err := mockStore.SetItem(canceled, "user", "y"); !errors.Is(err, context.Canceled) {
			t.Fatalf("Expected context.Canceled, got: %v", err)
		}
	})

	t.Run("MaxInFlight", func(t *testing.T) {
		mockStore := mock.New().WithLatency(20 * time.Millisecond)

		var wg sync.WaitGroup
		for i := 0; i < 3; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _, _ = mockStore.GetItem(ctx, "user")
			}()
		}
		wg.Wait()

		if mockStore.MaxInFlight() < 2 {
			t.Fatalf("Expected concurrent calls to be observed, got %d", mockStore.MaxInFlight())
		}
	})

	t.Run("GetDataReturnsCopy", func(t *testing.T) {
		mockStore := mock.New()
		mockStore.SetData(map[string]any{"user": "a"})

		data := mockStore.GetData()
		data["user"] = "b"

		value, _, _ := mockStore.GetItem(ctx, "user")
		if value != "a" {
			t.Fatalf("GetData must return a copy, stored value is %v", value)
		}

		mockStore.Clear()
		if mockStore.Count() != 0 {
			t.Fatal("Clear should remove all data")
		}
	})
}
