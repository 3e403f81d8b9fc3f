// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats summarizes samples of float64 measurements, such as the
// comparison counts of repeated sorts.
//
// Quantiles are computed over a sorted copy of the sample, which is sorted
// with introsort; NaN sorts first, so a sample containing NaN has NaN
// quantiles.
package stats

// References:
//
// Hyndman, Rob J.; Fan, Yanan (November 1996).
// "Sample Quantiles in Statistical Packages".
// American Statistician. 50 (4).

import (
	"fmt"
	"math"

	"golang.org/x/exp/introsort"
)

// Mean returns the arithmetic mean of values.
// It panics if values is empty.
//
// If values contains NaN or both Inf and -Inf, it returns NaN.
func Mean(values []float64) float64 {
	return sum(values).mean()
}

// MeanAndStdDev returns the arithmetic mean and the sample standard
// deviation of values. The standard deviation of a single value is 0.
// It panics if values is empty.
func MeanAndStdDev(values []float64) (float64, float64) {
	t := sum(values)
	mean := t.mean()
	switch {
	case t.posInf || t.negInf:
		return mean, math.Inf(1)
	case math.IsNaN(mean):
		return mean, math.NaN()
	case t.n == 1:
		return mean, 0
	}
	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(sq / float64(t.n-1))
}

// A total is the sum of a sample and which infinities it contains.
type total struct {
	n              int
	sum            float64
	posInf, negInf bool
}

func sum(values []float64) total {
	if len(values) == 0 {
		panic("mean: empty slice")
	}
	t := total{n: len(values)}
	for _, v := range values {
		t.posInf = t.posInf || math.IsInf(v, 1)
		t.negInf = t.negInf || math.IsInf(v, -1)
		t.sum += v
	}
	return t
}

// mean is ±Inf whenever exactly one infinity is present, even alongside NaN.
func (t total) mean() float64 {
	switch {
	case t.posInf && t.negInf:
		return math.NaN()
	case t.posInf:
		return math.Inf(1)
	case t.negInf:
		return math.Inf(-1)
	}
	return t.sum / float64(t.n)
}

// Median returns the median of values without modifying it.
// It panics if values is empty.
func Median(values []float64) float64 { return Quantiles(values, 0.5)[0] }

// Quantiles returns the requested quantiles of values, one-to-one with
// quantiles. A quantile of 0 is the minimum, 1 the maximum.
// Quantiles does not modify values.
//
// Quantiles panics if values is empty or a quantile is outside [0, 1].
func Quantiles(values []float64, quantiles ...float64) []float64 {
	if len(values) == 0 {
		panic("quantiles: empty slice")
	}
	return quantilesSorted(sorted(values), quantiles)
}

func sorted(values []float64) []float64 {
	if introsort.IsSorted(values) {
		return values
	}
	values = append([]float64(nil), values...)
	introsort.Sort(values)
	return values
}

func quantilesSorted(values, quantiles []float64) []float64 {
	res := make([]float64, len(quantiles))
	if math.IsNaN(values[0]) {
		for i := range res {
			res[i] = math.NaN()
		}
		return res
	}
	for i, q := range quantiles {
		if !(0 <= q && q <= 1) {
			panic("quantile must be contained in the interval [0, 1]")
		}
		res[i] = hyndmanFanR7(values, q)
	}
	return res
}

// hyndmanFanR7 interpolates the q quantile of the sorted values with the
// "R-7" method, which treats the sample as containing the population's
// extremes.
func hyndmanFanR7(values []float64, q float64) float64 {
	h := float64(len(values)-1)*q + 1
	lo, hi := int(math.Floor(h-1)), int(math.Ceil(h-1))
	return values[lo] + (h-math.Floor(h))*(values[hi]-values[lo])
}

// A Summary describes a sample.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Median float64
	P90    float64
	Max    float64
}

// Summarize returns the Summary of values. It panics if values is empty.
func Summarize(values []float64) Summary {
	s := Summary{N: len(values)}
	s.Mean, s.StdDev = MeanAndStdDev(values)
	q := quantilesSorted(sorted(values), []float64{0, 0.5, 0.9, 1})
	s.Min, s.Median, s.P90, s.Max = q[0], q[1], q[2], q[3]
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.1f stddev=%.1f min=%g median=%g p90=%g max=%g",
		s.N, s.Mean, s.StdDev, s.Min, s.Median, s.P90, s.Max)
}
