package ks

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Percentile returns the p-th percentile of the sample by the nearest rank
// method, without sorting the sample. p must be between 1 and 100 inclusive.
func Percentile[T constraints.Ordered](samples []T, p int) T {
	return PercentileFunc(samples, p, compare[T])
}

// PercentileFunc is Percentile with an explicit total order.
func PercentileFunc[T any](samples []T, p int, cmp func(a, b T) int) T {
	if p <= 0 || p > 100 {
		panic("ks: percentile out of range")
	}
	if len(samples) == 0 {
		panic("ks: empty sample")
	}

	r := int(math.Ceil(float64(p) * float64(len(samples)) / 100))

	return RankFunc(samples, r, cmp)
}

// Permille returns the p-th permille of the sample by the nearest rank
// method, without sorting the sample. p must be between 1 and 1000 inclusive.
func Permille[T constraints.Ordered](samples []T, p int) T {
	return PermilleFunc(samples, p, compare[T])
}

// PermilleFunc is Permille with an explicit total order.
func PermilleFunc[T any](samples []T, p int, cmp func(a, b T) int) T {
	if p <= 0 || p > 1000 {
		panic("ks: permille out of range")
	}
	if len(samples) == 0 {
		panic("ks: empty sample")
	}

	r := int(math.Ceil(float64(p) * float64(len(samples)) / 1000))

	return RankFunc(samples, r, cmp)
}

// Rank returns the sample of the given 1-indexed rank without sorting the
// sample, in O(n) expected time. r must be between 1 and len(samples)
// inclusive.
//
// Like ECDF, the cost does not amortize, prefer Ecdf for repeated queries.
func Rank[T constraints.Ordered](samples []T, r int) T {
	return RankFunc(samples, r, compare[T])
}

// RankFunc is Rank with an explicit total order.
func RankFunc[T any](samples []T, r int, cmp func(a, b T) int) T {
	if len(samples) == 0 {
		panic("ks: empty sample")
	}
	if r <= 0 || r > len(samples) {
		panic("ks: rank out of range")
	}

	return quickselect(samples, r, cmp)
}

// quickselect locates the element of rank r by repeated partitioning of a
// private copy. Each round partitions twice: first moving everything
// strictly smaller than the pivot left, then moving every duplicate of the
// pivot left. The second pass is what resolves ties, a rank landing
// anywhere inside a run of equal values reports the run's value.
func quickselect[T any](samples []T, r int, cmp func(a, b T) int) T {
	v := make([]T, len(samples))
	copy(v, samples)

	low, high := 0, len(v)

	for {
		pivot := v[low]

		if low >= high-1 {
			return pivot
		}

		// After this pass bottom is the number of elements smaller than the
		// pivot, and they all sit left of it.
		bottom, top := low, high-1

		for bottom < top {
			for bottom < top && cmp(v[bottom], pivot) < 0 {
				bottom++
			}
			for bottom < top && cmp(v[top], pivot) >= 0 {
				top--
			}

			if bottom < top {
				v[bottom], v[top] = v[top], v[bottom]
			}
		}

		if r <= bottom {
			// The rank item is smaller than the pivot. Exclude the pivot and
			// everything not smaller.
			high = bottom

			continue
		}

		// The rank item is the pivot or larger. Exclude the smaller
		// elements, then group the pivot duplicates left so bottom becomes
		// the number of elements less than or equal to the pivot.
		low = bottom

		bottom, top = low, high-1

		for bottom < top {
			for bottom < top && cmp(v[bottom], pivot) == 0 {
				bottom++
			}
			for bottom < top && cmp(v[top], pivot) != 0 {
				top--
			}

			if bottom < top {
				v[bottom], v[top] = v[top], v[bottom]
			}
		}

		if r <= bottom {
			return pivot
		}

		// The rank item is larger than the pivot. Exclude the pivot run.
		low = bottom
	}
}
