// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package otel provides introsort.Handlers for OpenTelemetry metrics and
// traces.
package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/exp/introsort"
)

// Namespace prefixes the names of all instruments and spans.
const Namespace = "introsort"

// MetricHandler is an introsort.Handler for OpenTelemetry metrics.
// It records the Stats of EndKind events and ignores all others.
type MetricHandler struct {
	attrs          metric.MeasurementOption
	sorts          metric.Int64Counter
	partitions     metric.Int64Counter
	fallbacks      metric.Int64Counter
	insertionSorts metric.Int64Counter
	comparisons    metric.Int64Histogram
	length         metric.Int64Histogram
}

var _ introsort.Handler = (*MetricHandler)(nil)

// NewMetricHandler creates the instruments of a MetricHandler with m.
// attrs are attached to every measurement.
func NewMetricHandler(m metric.Meter, attrs ...attribute.KeyValue) (*MetricHandler, error) {
	h := &MetricHandler{attrs: metric.WithAttributes(attrs...)}
	counters := []struct {
		c    *metric.Int64Counter
		name string
		desc string
		unit string
	}{
		{&h.sorts, "sorts", "Slices of two or more elements sorted", "{sort}"},
		{&h.partitions, "partitions", "Quicksort partitions performed", "{partition}"},
		{&h.fallbacks, "fallbacks", "Ranges sorted by heapsort after the depth budget ran out", "{range}"},
		{&h.insertionSorts, "insertion_sorts", "Ranges sorted by insertion sort", "{range}"},
	}
	for _, c := range counters {
		var err error
		*c.c, err = m.Int64Counter(Namespace+"."+c.name,
			metric.WithDescription(c.desc),
			metric.WithUnit(c.unit))
		if err != nil {
			return nil, err
		}
	}
	var err error
	h.comparisons, err = m.Int64Histogram(Namespace+".comparisons",
		metric.WithDescription("Calls to the less function per sort"),
		metric.WithUnit("{comparison}"))
	if err != nil {
		return nil, err
	}
	h.length, err = m.Int64Histogram(Namespace+".length",
		metric.WithDescription("Length of sorted slices"),
		metric.WithUnit("{element}"))
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (h *MetricHandler) Event(ev *introsort.Event) {
	if ev.Kind != introsort.EndKind {
		return
	}
	ctx := context.Background()
	st := ev.Stats
	h.sorts.Add(ctx, 1, h.attrs)
	h.partitions.Add(ctx, int64(st.Partitions), h.attrs)
	h.fallbacks.Add(ctx, int64(st.Fallbacks), h.attrs)
	h.insertionSorts.Add(ctx, int64(st.InsertionSorts), h.attrs)
	h.comparisons.Record(ctx, int64(st.Comparisons), h.attrs)
	h.length.Record(ctx, int64(st.Len), h.attrs)
}
