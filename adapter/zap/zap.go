// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zap provides an introsort.Handler that writes to a zap.Logger.
// The start and end of a sort are logged at info level, every partition,
// heapsort and insertion sort at debug level.
package zap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/introsort"
	"golang.org/x/exp/introsort/adapter"
)

type handler struct {
	logger *zap.Logger
}

var _ introsort.Handler = (*handler)(nil)

// NewHandler returns a Handler that logs events to l.
func NewHandler(l *zap.Logger) introsort.Handler {
	return &handler{logger: l}
}

func (h *handler) Event(ev *introsort.Event) {
	lvl := zapcore.InfoLevel
	if adapter.Verbose(ev.Kind) {
		lvl = zapcore.DebugLevel
	}
	ce := h.logger.Check(lvl, ev.Message())
	if ce == nil {
		return
	}
	fs := adapter.Fields(ev)
	fields := make([]zap.Field, len(fs))
	for i, f := range fs {
		fields[i] = zap.Int(f.Key, f.Value)
	}
	ce.Write(fields...)
}
