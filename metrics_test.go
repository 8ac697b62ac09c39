/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package strictstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/suparena/strictstore/datastore/mock"
	"github.com/suparena/strictstore/observability"
)

func TestStorageIndexWriteMetrics(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })

	metrics, err := observability.NewMetricsObserver(provider.Meter("strictstore"))
	require.NoError(t, err)

	s := newProfileStorage(t, mock.New(), WithObserver(metrics), WithID("profile"))
	require.NoError(t, s.Initialize(ctx))
	require.NoError(t, s.SetItem(ctx, "user", "user001"))
	require.NoError(t, s.ResetAll(ctx))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	var writes int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "strictstore.index.writes" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				writes += dp.Value
			}
		}
	}

	// 4 seeded at initialize, 1 set, 4 in the reset batch
	assert.Equal(t, int64(9), writes)
}
