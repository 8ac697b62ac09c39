/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsObserver counts events with an OpenTelemetry counter, one series per event type
// and source.
type MetricsObserver struct {
	events  metric.Int64Counter
	entries metric.Int64Counter
}

// NewMetricsObserver creates the instruments on meter.
func NewMetricsObserver(meter metric.Meter) (*MetricsObserver, error) {
	events, err := meter.Int64Counter(
		"strictstore.events",
		metric.WithDescription("Storage lifecycle and index mutation events"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, err
	}

	entries, err := meter.Int64Counter(
		"strictstore.index.writes",
		metric.WithDescription("Entries written to the in-memory index"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, err
	}

	return &MetricsObserver{events: events, entries: entries}, nil
}

func (m *MetricsObserver) OnEvent(ctx context.Context, event Event) {
	opt := metric.WithAttributes(
		attribute.String("event.type", string(event.Type)),
		attribute.String("storage.id", event.Source),
	)
	m.events.Add(ctx, 1, opt)

	switch event.Type {
	case EventIndexSet:
		m.entries.Add(ctx, 1, opt)
	case EventIndexBatch:
		if n, ok := event.Data["count"].(int); ok {
			m.entries.Add(ctx, int64(n), opt)
		}
	}
}
