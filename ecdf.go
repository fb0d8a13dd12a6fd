// Package ks computes empirical distribution statistics and performs the
// two-sample Kolmogorov-Smirnov hypothesis test over samples of any totally
// ordered type.
//
// There are two front ends over the same order-statistics semantics. Ecdf
// sorts a copy of the sample once and then answers Value in O(log n) and
// Percentile, Permille, Rank, Min and Max in O(1). The free functions ECDF,
// Percentile, Permille and Rank answer a single query without sorting, in
// O(n), and are the better choice when only a handful of queries is needed.
//
// All entry points fail fast: invalid input panics, it never returns a
// partial result.
package ks

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

type (
	// Ecdf is an empirical cumulative distribution function over a fixed
	// sample. It is immutable after construction and safe for concurrent
	// readers.
	Ecdf[T any] struct {
		sorted []T
		cmp    func(a, b T) int
	}
)

// New constructs an Ecdf for the given sample. The sample must be non-empty.
//
// Construction sorts a copy of the sample, which is prohibitive for a single
// query but amortizes over repeated use of Value and the rank queries.
func New[T constraints.Ordered](samples []T) *Ecdf[T] {
	return NewFunc(samples, compare[T])
}

// NewFloat64 constructs an Ecdf over float64 samples using CompareFloat64,
// panicking if any two values are incomparable.
func NewFloat64(samples []float64) *Ecdf[float64] {
	return NewFunc(samples, CompareFloat64)
}

// NewFunc is New with an explicit total order.
func NewFunc[T any](samples []T, cmp func(a, b T) int) *Ecdf[T] {
	if len(samples) == 0 {
		panic("ks: empty sample")
	}

	sorted := make([]T, len(samples))
	copy(sorted, samples)

	slices.SortFunc(sorted, cmp)

	return &Ecdf[T]{
		sorted: sorted,
		cmp:    cmp,
	}
}

// Value returns the fraction of samples less than or equal to t, in [0, 1].
func (e *Ecdf[T]) Value(t T) float64 {
	n := len(e.sorted)

	i, found := slices.BinarySearchFunc(e.sorted, t, e.cmp)
	if found {
		// i is the first occurrence of t. Walk to the last so that every
		// duplicate is counted, then compensate for 0-based indexing.
		for i+1 < n && e.cmp(e.sorted[i+1], t) == 0 {
			i++
		}

		i++
	}

	// If t is not a sample, i is its insertion point, which is already the
	// number of samples less than t.

	return float64(i) / float64(n)
}

// Percentile returns the p-th percentile of the sample by the nearest rank
// method. p must be between 1 and 100 inclusive, there is no 0-percentile.
func (e *Ecdf[T]) Percentile(p int) T {
	if p <= 0 || p > 100 {
		panic("ks: percentile out of range")
	}

	r := int(math.Ceil(float64(p) * float64(len(e.sorted)) / 100))

	return e.sorted[r-1]
}

// Permille returns the p-th permille of the sample by the nearest rank
// method. p must be between 1 and 1000 inclusive, there is no 0-permille.
func (e *Ecdf[T]) Permille(p int) T {
	if p <= 0 || p > 1000 {
		panic("ks: permille out of range")
	}

	r := int(math.Ceil(float64(p) * float64(len(e.sorted)) / 1000))

	return e.sorted[r-1]
}

// Rank returns the sample of the given rank. r must be between 1 and Len
// inclusive, rank 1 is the minimum and rank Len the maximum.
func (e *Ecdf[T]) Rank(r int) T {
	if r <= 0 || r > len(e.sorted) {
		panic("ks: rank out of range")
	}

	return e.sorted[r-1]
}

// Min returns the minimal sample.
func (e *Ecdf[T]) Min() T {
	return e.sorted[0]
}

// Max returns the maximal sample.
func (e *Ecdf[T]) Max() T {
	return e.sorted[len(e.sorted)-1]
}

// Len returns the sample size.
func (e *Ecdf[T]) Len() int {
	return len(e.sorted)
}

// ECDF returns the fraction of samples less than or equal to t in a single
// O(n) pass and no sorting. The sample must be non-empty.
//
// The cost does not amortize across calls the way Ecdf does. Build an Ecdf
// instead when more than a few queries are needed for the same sample.
func ECDF[T constraints.Ordered](samples []T, t T) float64 {
	return ECDFFunc(samples, t, compare[T])
}

// ECDFFunc is ECDF with an explicit total order.
func ECDFFunc[T any](samples []T, t T, cmp func(a, b T) int) float64 {
	if len(samples) == 0 {
		panic("ks: empty sample")
	}

	leq := 0

	for _, v := range samples {
		if cmp(v, t) <= 0 {
			leq++
		}
	}

	return float64(leq) / float64(len(samples))
}
