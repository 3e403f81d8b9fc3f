// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logrus provides an introsort.Handler that writes to a logrus
// logger. Each event becomes an entry whose fields are the event's values.
package logrus

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/introsort"
	"golang.org/x/exp/introsort/adapter"
)

type handler struct {
	logger logrus.FieldLogger
}

var _ introsort.Handler = (*handler)(nil)

// NewHandler returns a Handler that logs to l. Both *logrus.Logger and
// *logrus.Entry satisfy logrus.FieldLogger.
func NewHandler(l logrus.FieldLogger) introsort.Handler {
	return &handler{logger: l}
}

func (h *handler) Event(ev *introsort.Event) {
	fields := logrus.Fields{}
	for _, f := range adapter.Fields(ev) {
		fields[f.Key] = f.Value
	}
	e := h.logger.WithFields(fields)
	if adapter.Verbose(ev.Kind) {
		e.Debug(ev.Message())
	} else {
		e.Info(ev.Message())
	}
}
