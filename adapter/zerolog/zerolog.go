// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zerolog provides an introsort.Handler that writes to a
// zerolog.Logger.
package zerolog

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/introsort"
	"golang.org/x/exp/introsort/adapter"
)

type handler struct {
	logger zerolog.Logger
}

var _ introsort.Handler = (*handler)(nil)

// NewHandler returns a Handler that logs to l.
func NewHandler(l zerolog.Logger) introsort.Handler {
	return &handler{logger: l}
}

func (h *handler) Event(ev *introsort.Event) {
	var e *zerolog.Event
	if adapter.Verbose(ev.Kind) {
		e = h.logger.Debug()
	} else {
		e = h.logger.Info()
	}
	if e == nil {
		return
	}
	for _, f := range adapter.Fields(ev) {
		e = e.Int(f.Key, f.Value)
	}
	e.Msg(ev.Message())
}
