// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/exp/introsort"
	iotel "golang.org/x/exp/introsort/adapter/otel"
	"golang.org/x/xerrors"
)

const instrumentationName = "golang.org/x/exp/introsort/cmd/introsort"

// telemetry owns the OpenTelemetry providers of a run. Spans are exported
// as they end; metrics are exported once, on shutdown.
type telemetry struct {
	handlers []introsort.Handler
	tp       *sdktrace.TracerProvider
	mp       *sdkmetric.MeterProvider
}

func newTelemetry(ctx context.Context, w io.Writer, cfg *config) (*telemetry, error) {
	texp, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, xerrors.Errorf("creating trace exporter: %w", err)
	}
	mexp, err := stdoutmetric.New(stdoutmetric.WithWriter(w))
	if err != nil {
		return nil, xerrors.Errorf("creating metric exporter: %w", err)
	}
	t := &telemetry{
		tp: sdktrace.NewTracerProvider(sdktrace.WithSyncer(texp)),
		mp: sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewPeriodicReader(mexp))),
	}
	mh, err := iotel.NewMetricHandler(t.mp.Meter(instrumentationName),
		attribute.String("type", cfg.typ),
		attribute.String("strategy", cfg.strategy.String()))
	if err != nil {
		t.shutdown(ctx)
		return nil, xerrors.Errorf("creating instruments: %w", err)
	}
	t.handlers = []introsort.Handler{
		mh,
		iotel.NewTraceHandler(ctx, t.tp.Tracer(instrumentationName)),
	}
	return t, nil
}

// shutdown flushes and stops both providers.
func (t *telemetry) shutdown(ctx context.Context) error {
	terr := t.tp.Shutdown(ctx)
	merr := t.mp.Shutdown(ctx)
	if terr != nil {
		return xerrors.Errorf("shutting down tracing: %w", terr)
	}
	if merr != nil {
		return xerrors.Errorf("shutting down metrics: %w", merr)
	}
	return nil
}
