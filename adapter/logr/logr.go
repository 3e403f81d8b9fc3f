// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logr provides an introsort.Handler that writes to a logr.Logger.
// The start and end of a sort are logged at V(0), the phases in between at
// V(1).
package logr

import (
	"github.com/go-logr/logr"
	"golang.org/x/exp/introsort"
	"golang.org/x/exp/introsort/adapter"
)

type handler struct {
	logger logr.Logger
}

var _ introsort.Handler = (*handler)(nil)

// NewHandler returns a Handler that logs to l.
func NewHandler(l logr.Logger) introsort.Handler {
	return &handler{logger: l}
}

func (h *handler) Event(ev *introsort.Event) {
	l := h.logger
	if adapter.Verbose(ev.Kind) {
		l = l.V(1)
	}
	if !l.Enabled() {
		return
	}
	fs := adapter.Fields(ev)
	kvs := make([]interface{}, 0, 2*len(fs))
	for _, f := range fs {
		kvs = append(kvs, f.Key, f.Value)
	}
	l.Info(ev.Message(), kvs...)
}
