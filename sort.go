// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package introsort provides an in-place introspective sort for slices.
//
// Introsort runs a randomized quicksort, switches a range to heapsort once
// its recursion budget of 2*floor(log2(n)) partitions is spent, and finishes
// short ranges with insertion sort. The result is O(n log n) in the worst
// case with no auxiliary buffer. The sort is not stable.
//
// The top-level Sort and SortFunc functions use the default configuration.
// A Sorter created with New or NewFunc can inject the pivot source, the
// insertion sort threshold, the recursion strategy and a Handler that
// observes each phase of the algorithm.
package introsort

import (
	"math/bits"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// DefaultThreshold is the largest value of high-low for which a range
// [low, high] is handed to insertion sort instead of being partitioned.
const DefaultThreshold = 16

// Sort sorts a slice of any ordered type in ascending order.
// When sorting floating-point numbers, NaNs are ordered before other values.
// A nil or single-element slice is left untouched.
func Sort[E constraints.Ordered](x []E) {
	newRun(x, less[E], &defaultOptions).sort()
}

// SortFunc sorts the slice x in ascending order as determined by the less
// function. less must describe a strict weak ordering; if it does not, the
// resulting order is unspecified but SortFunc still terminates.
func SortFunc[E any](x []E, less func(a, b E) bool) {
	newRun(x, less, &defaultOptions).sort()
}

// IsSorted reports whether x is sorted in ascending order.
func IsSorted[E constraints.Ordered](x []E) bool {
	return IsSortedFunc(x, less[E])
}

// IsSortedFunc reports whether x is sorted in ascending order, with less as
// the comparison function.
func IsSortedFunc[E any](x []E, less func(a, b E) bool) bool {
	for i := len(x) - 1; i > 0; i-- {
		if less(x[i], x[i-1]) {
			return false
		}
	}
	return true
}

// A Source provides the randomness used to pick pivots.
// *math/rand.Rand satisfies Source.
type Source interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// SourceFunc adapts an ordinary function to a Source.
type SourceFunc func(n int) int

func (f SourceFunc) Intn(n int) int { return f(n) }

// globalSource draws from the math/rand top-level functions,
// which are safe for concurrent use.
type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

// Strategy selects which side of a partition is sorted by a recursive call;
// the other side is handled by the enclosing loop.
type Strategy int

const (
	// RightFirst always recurses on the right part and loops on the left.
	RightFirst Strategy = iota
	// SmallerFirst recurses on the smaller part and loops on the larger.
	SmallerFirst
)

func (s Strategy) String() string {
	switch s {
	case RightFirst:
		return "right"
	case SmallerFirst:
		return "smaller"
	default:
		return "Strategy(?)"
	}
}

// Options configures a Sorter. The zero value of every field selects the
// default behavior.
type Options struct {
	// Rand picks pivots. If nil, the math/rand global source is used.
	Rand Source
	// Threshold is the largest high-low handed straight to insertion sort.
	// Values below 1 select DefaultThreshold.
	Threshold int
	Strategy  Strategy
	// Handler, if non-nil, receives an Event for every phase of a sort.
	Handler Handler
}

var defaultOptions = Options{
	Rand:      globalSource{},
	Threshold: DefaultThreshold,
}

// A Sorter sorts slices of E with a fixed configuration.
// A Sorter is safe for concurrent use if its Source and Handler are.
type Sorter[E any] struct {
	less func(a, b E) bool
	opts Options
}

// New returns a Sorter for an ordered element type.
// A nil opts is equivalent to a pointer to the zero Options.
func New[E constraints.Ordered](opts *Options) *Sorter[E] {
	return NewFunc(less[E], opts)
}

// NewFunc returns a Sorter that orders elements with less.
func NewFunc[E any](less func(a, b E) bool, opts *Options) *Sorter[E] {
	s := &Sorter[E]{less: less}
	if opts != nil {
		s.opts = *opts
	}
	if s.opts.Rand == nil {
		s.opts.Rand = globalSource{}
	}
	if s.opts.Threshold < 1 {
		s.opts.Threshold = DefaultThreshold
	}
	return s
}

// Sort sorts x in place and reports what the sort did.
func (s *Sorter[E]) Sort(x []E) Stats {
	return newRun(x, s.less, &s.opts).sort()
}

// MaxDepth returns the depth budget for a slice of length n: 2*floor(log2(n)),
// or 0 if n < 2.
func MaxDepth(n int) int {
	if n < 2 {
		return 0
	}
	return 2 * (bits.Len(uint(n)) - 1)
}

func isNaN[E constraints.Ordered](x E) bool {
	return x != x
}

func less[E constraints.Ordered](a, b E) bool {
	return a < b || (isNaN(a) && !isNaN(b))
}
