// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adapter holds what the introsort.Handler implementations for
// logging and telemetry backends have in common: which values of an
// Event are reported and at what verbosity.
//
// The backend handlers live in the subdirectories of this package.
package adapter

import "golang.org/x/exp/introsort"

// A Field is a named integer value extracted from an event.
type Field struct {
	Key   string
	Value int
}

// Fields returns the values of ev worth reporting, in a fixed order.
func Fields(ev *introsort.Event) []Field {
	switch ev.Kind {
	case introsort.StartKind:
		return []Field{
			{"low", ev.Low},
			{"high", ev.High},
			{"depth", ev.Depth},
		}
	case introsort.PartitionKind:
		return []Field{
			{"low", ev.Low},
			{"high", ev.High},
			{"pivot", ev.Pivot},
			{"depth", ev.Depth},
			{"frame", ev.Frame},
		}
	case introsort.HeapsortKind:
		return []Field{
			{"low", ev.Low},
			{"high", ev.High},
			{"frame", ev.Frame},
		}
	case introsort.InsertionKind:
		return []Field{
			{"low", ev.Low},
			{"high", ev.High},
			{"depth", ev.Depth},
			{"frame", ev.Frame},
		}
	case introsort.EndKind:
		return StatsFields(ev.Stats)
	default:
		return nil
	}
}

// StatsFields returns the fields of st.
func StatsFields(st introsort.Stats) []Field {
	return []Field{
		{"len", st.Len},
		{"max_depth", st.MaxDepth},
		{"comparisons", st.Comparisons},
		{"partitions", st.Partitions},
		{"fallbacks", st.Fallbacks},
		{"insertion_sorts", st.InsertionSorts},
		{"max_frame", st.MaxFrame},
	}
}

// Verbose reports whether events of kind k describe a single range.
// Handlers log those at a debug level and the start and end of a sort at
// an informational level.
func Verbose(k introsort.Kind) bool {
	switch k {
	case introsort.PartitionKind, introsort.HeapsortKind, introsort.InsertionKind:
		return true
	}
	return false
}

// Multi returns a Handler that delivers every event to each of hs in order.
// Nil handlers are skipped.
func Multi(hs ...introsort.Handler) introsort.Handler {
	var m multi
	for _, h := range hs {
		if h != nil {
			m = append(m, h)
		}
	}
	return m
}

type multi []introsort.Handler

func (m multi) Event(ev *introsort.Event) {
	for _, h := range m {
		h.Event(ev)
	}
}
