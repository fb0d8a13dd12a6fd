package ks

import (
	"math"

	"golang.org/x/exp/constraints"
)

// compare is the default total order for natively ordered types.
func compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case b < a:
		return 1
	default:
		return 0
	}
}

// CompareFloat64 is a total order over float64 for use with the Func entry
// points. float64 is not totally ordered on its own: NaN compares false
// against everything, which silently breaks sorting and selection. This
// comparator panics instead when either side is NaN.
func CompareFloat64(a, b float64) int {
	if math.IsNaN(a) || math.IsNaN(b) {
		panic("ks: NaN is not comparable")
	}

	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
