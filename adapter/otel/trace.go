// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package otel

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/introsort"
	"golang.org/x/exp/introsort/adapter"
)

// SpanName is the name of the span covering one sort.
const SpanName = Namespace + ".Sort"

// TraceHandler is an introsort.Handler that turns each sort into a span.
// Partitions, heapsorts and insertion sorts become span events and the
// final Stats become span attributes.
//
// Events that arrive while no span is open are dropped.
// A TraceHandler tracks one span at a time; give each goroutine that sorts
// concurrently its own TraceHandler.
type TraceHandler struct {
	ctx    context.Context
	tracer trace.Tracer

	mu   sync.Mutex
	span trace.Span
}

var _ introsort.Handler = (*TraceHandler)(nil)

// NewTraceHandler returns a TraceHandler whose spans are children of the
// span in ctx, if any.
func NewTraceHandler(ctx context.Context, t trace.Tracer) *TraceHandler {
	return &TraceHandler{ctx: ctx, tracer: t}
}

func (t *TraceHandler) Event(ev *introsort.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch ev.Kind {
	case introsort.StartKind:
		_, t.span = t.tracer.Start(t.ctx, SpanName,
			trace.WithAttributes(attributes(adapter.Fields(ev))...))
	case introsort.EndKind:
		if t.span == nil {
			return
		}
		t.span.SetAttributes(attributes(adapter.Fields(ev))...)
		t.span.End()
		t.span = nil
	default:
		if t.span == nil {
			return
		}
		t.span.AddEvent(ev.Kind.String(),
			trace.WithAttributes(attributes(adapter.Fields(ev))...))
	}
}

func attributes(fs []adapter.Field) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, len(fs))
	for i, f := range fs {
		attrs[i] = attribute.Int(f.Key, f.Value)
	}
	return attrs
}
