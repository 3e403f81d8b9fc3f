// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package introsort

import "fmt"

// Kind identifies the phase an Event reports.
type Kind int

const (
	_ = Kind(iota)
	// StartKind is delivered once, before any work on a slice of two or
	// more elements.
	StartKind
	// PartitionKind reports a quicksort partition; Pivot holds the
	// pivot's final index.
	PartitionKind
	// HeapsortKind reports that the depth budget ran out and the range is
	// being sorted with heapsort.
	HeapsortKind
	// InsertionKind reports a range small enough for insertion sort.
	InsertionKind
	// EndKind is delivered once the slice is sorted. Stats is only set
	// for EndKind.
	EndKind
)

func (k Kind) String() string {
	switch k {
	case StartKind:
		return "start"
	case PartitionKind:
		return "partition"
	case HeapsortKind:
		return "heapsort"
	case InsertionKind:
		return "insertion"
	case EndKind:
		return "end"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// An Event describes one phase of a sort over the inclusive index range
// [Low, High].
type Event struct {
	Kind  Kind
	Low   int
	High  int
	Pivot int // -1 unless Kind is PartitionKind
	Depth int // remaining depth budget
	Frame int // recursion depth of the call that produced the event
	Stats Stats
}

// Message returns the log message for the event.
func (e *Event) Message() string {
	return "introsort " + e.Kind.String()
}

// Handler is the interface for something that handles sort events.
// The Event passed to a Handler is only valid for the duration of the call.
type Handler interface {
	Event(ev *Event)
}

// HandlerFunc adapts an ordinary function to a Handler.
type HandlerFunc func(ev *Event)

func (f HandlerFunc) Event(ev *Event) { f(ev) }

// Stats summarizes a single sort.
type Stats struct {
	Len            int // length of the slice
	MaxDepth       int // initial depth budget, 2*floor(log2(Len))
	Comparisons    int // calls to the less function
	Partitions     int
	Fallbacks      int // ranges finished by heapsort
	InsertionSorts int // ranges finished by insertion sort
	MaxFrame       int // deepest recursive call, 0 for the top-level call
}
