// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	stdlog "log"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-logr/stdr"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/introsort"
	"golang.org/x/exp/introsort/adapter/gokit"
	ilogr "golang.org/x/exp/introsort/adapter/logr"
	ilogrus "golang.org/x/exp/introsort/adapter/logrus"
	izap "golang.org/x/exp/introsort/adapter/zap"
	izerolog "golang.org/x/exp/introsort/adapter/zerolog"
)

// logBackends lists the accepted values of the -log flag.
var logBackends = map[string]bool{
	"none":    true,
	"zap":     true,
	"logrus":  true,
	"zerolog": true,
	"gokit":   true,
	"logr":    true,
}

// newLogHandler returns a Handler that logs every event, debug level
// included, to w. Timestamps are omitted. The logr backend logs phases at
// V(1), which stdr only prints once main has raised its verbosity.
func newLogHandler(backend string, w io.Writer) (introsort.Handler, error) {
	switch backend {
	case "zap":
		ec := zap.NewDevelopmentEncoderConfig()
		ec.TimeKey = ""
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(w), zapcore.DebugLevel)
		return izap.NewHandler(zap.New(core)), nil
	case "logrus":
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		return ilogrus.NewHandler(l), nil
	case "zerolog":
		return izerolog.NewHandler(zerolog.New(w).Level(zerolog.DebugLevel)), nil
	case "gokit":
		return gokit.NewHandler(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))), nil
	case "logr":
		return ilogr.NewHandler(stdr.New(stdlog.New(w, "", 0))), nil
	default:
		return nil, usageErrorf("unknown -log backend %q", backend)
	}
}
