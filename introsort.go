// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package introsort

// run holds the state of a single call to sort. All ranges are inclusive
// [low, high] index pairs into x.
type run[E any] struct {
	x         []E
	less      func(a, b E) bool
	rand      Source
	threshold int
	strategy  Strategy
	handler   Handler
	stats     Stats
}

func newRun[E any](x []E, less func(a, b E) bool, opts *Options) *run[E] {
	return &run[E]{
		x:         x,
		less:      less,
		rand:      opts.Rand,
		threshold: opts.Threshold,
		strategy:  opts.Strategy,
		handler:   opts.Handler,
		stats:     Stats{Len: len(x)},
	}
}

func (r *run[E]) sort() Stats {
	n := len(r.x)
	if n <= 1 {
		return r.stats
	}
	depth := MaxDepth(n)
	r.stats.MaxDepth = depth
	r.emit(StartKind, 0, n-1, -1, depth, 0)
	r.introSort(0, n-1, depth, 0)
	if r.handler != nil {
		r.handler.Event(&Event{
			Kind:  EndKind,
			Low:   0,
			High:  n - 1,
			Pivot: -1,
			Depth: depth,
			Stats: r.stats,
		})
	}
	return r.stats
}

func (r *run[E]) lt(a, b E) bool {
	r.stats.Comparisons++
	return r.less(a, b)
}

func (r *run[E]) emit(k Kind, low, high, pivot, depth, frame int) {
	if r.handler == nil {
		return
	}
	r.handler.Event(&Event{
		Kind:  k,
		Low:   low,
		High:  high,
		Pivot: pivot,
		Depth: depth,
		Frame: frame,
	})
}

// introSort sorts x[low:high+1]. depth is the number of partitions this call
// chain may still perform; frame is the recursion depth of this call.
func (r *run[E]) introSort(low, high, depth, frame int) {
	if frame > r.stats.MaxFrame {
		r.stats.MaxFrame = frame
	}
	for high-low > r.threshold {
		if depth == 0 {
			r.heapSort(low, high, frame)
			return
		}
		p := r.partition(low, high)
		r.stats.Partitions++
		r.emit(PartitionKind, low, high, p, depth, frame)
		depth--
		if r.strategy == SmallerFirst && p-low < high-p {
			r.introSort(low, p-1, depth, frame+1)
			low = p + 1
		} else {
			r.introSort(p+1, high, depth, frame+1)
			high = p - 1
		}
	}
	r.insertionSort(low, high, depth, frame)
}

// partition moves a randomly chosen pivot to its final position p in
// [low, high] using the Lomuto scheme and returns p.
// On return x[low:p] <= x[p] < x[p+1:high+1].
func (r *run[E]) partition(low, high int) int {
	x := r.x
	k := low + r.rand.Intn(high-low+1)
	x[k], x[high] = x[high], x[k]
	pivot := x[high]

	i := low - 1
	for j := low; j < high; j++ {
		if !r.lt(pivot, x[j]) {
			i++
			x[i], x[j] = x[j], x[i]
		}
	}
	x[i+1], x[high] = x[high], x[i+1]
	return i + 1
}

func (r *run[E]) heapSort(low, high, frame int) {
	r.stats.Fallbacks++
	r.emit(HeapsortKind, low, high, -1, 0, frame)

	x := r.x
	size := high - low + 1
	for root := size/2 - 1; root >= 0; root-- {
		r.siftDown(root, size, low)
	}
	for end := high; end > low; end-- {
		x[low], x[end] = x[end], x[low]
		r.siftDown(0, end-low, low)
	}
}

// siftDown restores the max-heap property below root in a heap of the given
// size whose logical index k lives at x[offset+k].
func (r *run[E]) siftDown(root, size, offset int) {
	x := r.x
	for {
		largest := root
		left, right := 2*root+1, 2*root+2
		if left < size && r.lt(x[offset+largest], x[offset+left]) {
			largest = left
		}
		if right < size && r.lt(x[offset+largest], x[offset+right]) {
			largest = right
		}
		if largest == root {
			return
		}
		x[offset+root], x[offset+largest] = x[offset+largest], x[offset+root]
		root = largest
	}
}

func (r *run[E]) insertionSort(low, high, depth, frame int) {
	if high <= low {
		return
	}
	r.stats.InsertionSorts++
	r.emit(InsertionKind, low, high, -1, depth, frame)

	x := r.x
	for i := low + 1; i <= high; i++ {
		curr := x[i]
		j := i - 1
		for ; j >= low && r.lt(curr, x[j]); j-- {
			x[j+1] = x[j]
		}
		x[j+1] = curr
	}
}
