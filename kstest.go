package ks

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Only samples of more than 12 elements and the 0.95 confidence level are
// supported for now. The asymptotic critical value approximation below is
// not trustworthy for smaller samples, and no other confidence coefficient
// is tabulated.
const (
	minSampleSize       = 12
	supportedConfidence = 0.95
)

type (
	// TestResult is the outcome of a two-sample Kolmogorov-Smirnov test.
	TestResult struct {
		// IsRejected reports whether the hypothesis that both samples come
		// from the same distribution is rejected at the given confidence.
		IsRejected bool

		// Statistic is the maximum vertical distance between the two
		// samples' ECDFs, in [0, 1].
		Statistic float64

		// CriticalValue is the rejection threshold for Statistic. It
		// depends only on the sample sizes and the confidence level.
		CriticalValue float64

		// Confidence echoes the requested confidence level.
		Confidence float64
	}
)

// Test performs a two-sample Kolmogorov-Smirnov test on the given samples.
//
// Both samples must have more than 12 elements and confidence must be 0.95,
// anything else panics.
func Test[T constraints.Ordered](xs, ys []T, confidence float64) TestResult {
	return TestFunc(xs, ys, confidence, compare[T])
}

// TestFloat64 is Test over float64 samples using CompareFloat64. It panics
// if any two of the input values are incomparable, e.g. NaN.
func TestFloat64(xs, ys []float64, confidence float64) TestResult {
	return TestFunc(xs, ys, confidence, CompareFloat64)
}

// TestFunc is Test with an explicit total order.
func TestFunc[T any](xs, ys []T, confidence float64, cmp func(a, b T) int) TestResult {
	if len(xs) == 0 || len(ys) == 0 {
		panic("ks: empty sample")
	}
	if confidence <= 0 || confidence >= 1 {
		panic("ks: confidence out of range")
	}
	if len(xs) <= minSampleSize || len(ys) <= minSampleSize {
		panic("ks: sample too small")
	}
	if confidence != supportedConfidence {
		panic("ks: unsupported confidence level")
	}

	statistic := calculateStatistic(xs, ys, cmp)
	critical := CriticalValue(len(xs), len(ys), confidence)

	return TestResult{
		IsRejected:    statistic > critical,
		Statistic:     statistic,
		CriticalValue: critical,
		Confidence:    confidence,
	}
}

// CriticalValue returns the rejection threshold for the two-sample
// Kolmogorov-Smirnov statistic at the given sample sizes and confidence
// level, by the asymptotic approximation
//
//	1.36 * sqrt((n1 + n2) / (n1 * n2))
//
// Both sizes must be greater than 12 and confidence must be 0.95.
func CriticalValue(n1, n2 int, confidence float64) float64 {
	if n1 <= 0 || n2 <= 0 {
		panic("ks: empty sample")
	}
	if confidence <= 0 || confidence >= 1 {
		panic("ks: confidence out of range")
	}
	if n1 <= minSampleSize || n2 <= minSampleSize {
		panic("ks: sample too small")
	}
	if confidence != supportedConfidence {
		panic("ks: unsupported confidence level")
	}

	f1, f2 := float64(n1), float64(n2)

	return 1.36 * math.Sqrt((f1+f2)/(f1*f2))
}

// calculateStatistic computes the maximum vertical distance between the two
// samples' ECDFs.
//
// The supremum is attained at a sample point, so instead of the O(n*m)
// double loop over both ECDFs it sweeps the two sorted copies in one merge
// pass, keeping each side's running ECDF value as its cursor advances.
func calculateStatistic[T any](xs, ys []T, cmp func(a, b T) int) float64 {
	n, m := len(xs), len(ys)

	sx := make([]T, n)
	copy(sx, xs)
	sy := make([]T, m)
	copy(sy, ys)

	slices.SortFunc(sx, cmp)
	slices.SortFunc(sy, cmp)

	// i, j index the last occurrence of each side's current value, so each
	// distinct value is processed once per side.
	var i, j int
	var ecdfX, ecdfY float64
	var statistic float64

	for i < n && j < m {
		for i+1 < n && cmp(sx[i], sx[i+1]) == 0 {
			i++
		}
		for j+1 < m && cmp(sy[j], sy[j+1]) == 0 {
			j++
		}

		// Step to the next distinct value in the sweep, the smaller of the
		// two sides. On a tie both sides advance.
		c := cmp(sx[i], sy[j])

		if c <= 0 {
			ecdfX = float64(i+1) / float64(n)
			i++
		}
		if c >= 0 {
			ecdfY = float64(j+1) / float64(m)
			j++
		}

		if d := math.Abs(ecdfX - ecdfY); d > statistic {
			statistic = d
		}
	}

	// Once either side is exhausted its ECDF is one and the other only
	// climbs toward one, so the difference cannot grow. The rest of the
	// samples need no walking.

	return statistic
}
