// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adaptertest supports testing introsort.Handler implementations.
//
// Scenario runs a sort whose sequence of events is fully determined, and
// Want and Records describe what a handler should have seen.
package adaptertest

import (
	"golang.org/x/exp/introsort"
	"golang.org/x/exp/introsort/adapter"
)

// Capture is a Handler that records copies of the events it receives.
type Capture struct {
	Got []introsort.Event
}

func (c *Capture) Event(ev *introsort.Event) {
	c.Got = append(c.Got, *ev)
}

func (c *Capture) Reset() {
	if len(c.Got) > 0 {
		c.Got = c.Got[:0]
	}
}

// ScenarioLen is the length of the slice sorted by Scenario.
const ScenarioLen = 20

// Scenario sorts the integers 0 through ScenarioLen-1, already in order,
// delivering events to h. The pivot source always picks the last index of a
// range, so every partition peels off exactly one element.
func Scenario(h introsort.Handler) introsort.Stats {
	x := make([]int, ScenarioLen)
	for i := range x {
		x[i] = i
	}
	s := introsort.New[int](&introsort.Options{
		Rand:    introsort.SourceFunc(func(n int) int { return n - 1 }),
		Handler: h,
	})
	return s.Sort(x)
}

// ScenarioStats is the result of Scenario.
var ScenarioStats = introsort.Stats{
	Len:            20,
	MaxDepth:       8,
	Comparisons:    19 + 18 + 17 + 16,
	Partitions:     3,
	InsertionSorts: 1,
	MaxFrame:       1,
}

// Want returns the events delivered by Scenario.
func Want() []introsort.Event {
	return []introsort.Event{
		{Kind: introsort.StartKind, Low: 0, High: 19, Pivot: -1, Depth: 8},
		{Kind: introsort.PartitionKind, Low: 0, High: 19, Pivot: 19, Depth: 8},
		{Kind: introsort.PartitionKind, Low: 0, High: 18, Pivot: 18, Depth: 7},
		{Kind: introsort.PartitionKind, Low: 0, High: 17, Pivot: 17, Depth: 6},
		{Kind: introsort.InsertionKind, Low: 0, High: 16, Pivot: -1, Depth: 5},
		{Kind: introsort.EndKind, Low: 0, High: 19, Pivot: -1, Depth: 8, Stats: ScenarioStats},
	}
}

// A Record is the backend-neutral form of one log line.
type Record struct {
	Verbose bool
	Msg     string
	Fields  map[string]int
}

// Records returns the log records a logging handler should produce for
// Scenario.
func Records() []Record {
	var rs []Record
	for _, ev := range Want() {
		r := Record{
			Verbose: adapter.Verbose(ev.Kind),
			Msg:     ev.Message(),
			Fields:  map[string]int{},
		}
		for _, f := range adapter.Fields(&ev) {
			r.Fields[f.Key] = f.Value
		}
		rs = append(rs, r)
	}
	return rs
}
