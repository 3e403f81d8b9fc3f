// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gokit provides an introsort.Handler that writes to a go-kit logger.
package gokit

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"golang.org/x/exp/introsort"
	"golang.org/x/exp/introsort/adapter"
)

type handler struct {
	logger log.Logger
}

var _ introsort.Handler = (*handler)(nil)

// NewHandler returns a Handler that logs to l. Each event is a single Log
// call with a level key, a msg key and one key per event value. Errors
// returned by l are dropped.
func NewHandler(l log.Logger) introsort.Handler {
	return &handler{logger: l}
}

func (h *handler) Event(ev *introsort.Event) {
	fs := adapter.Fields(ev)
	keyvals := make([]interface{}, 0, 2+2*len(fs))
	keyvals = append(keyvals, "msg", ev.Message())
	for _, f := range fs {
		keyvals = append(keyvals, f.Key, f.Value)
	}
	l := level.Info(h.logger)
	if adapter.Verbose(ev.Kind) {
		l = level.Debug(h.logger)
	}
	_ = l.Log(keyvals...)
}
