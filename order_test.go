package ks

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareFloat64(t *testing.T) {
	assert.Equal(t, -1, CompareFloat64(1, 2))
	assert.Equal(t, 1, CompareFloat64(2, 1))
	assert.Equal(t, 0, CompareFloat64(1.5, 1.5))

	assert.Equal(t, -1, CompareFloat64(math.Inf(-1), 0))
	assert.Equal(t, 1, CompareFloat64(math.Inf(1), 0))
}

func TestCompareFloat64PanicsOnNaN(t *testing.T) {
	require.Panics(t, func() { CompareFloat64(math.NaN(), 0) })
	require.Panics(t, func() { CompareFloat64(0, math.NaN()) })
	require.Panics(t, func() { CompareFloat64(math.NaN(), math.NaN()) })
}

// A comparator supplied at the call site defines the order, here reversing
// every rank query.
func TestFuncVariantsHonorComparator(t *testing.T) {
	reverse := func(a, b int64) int { return compare(b, a) }

	xs := []int64{3, 1, 4, 1, 5, 9, 2, 6}

	assert.Equal(t, int64(9), RankFunc(xs, 1, reverse))
	assert.Equal(t, int64(1), RankFunc(xs, len(xs), reverse))
	assert.Equal(t, int64(1), PercentileFunc(xs, 100, reverse))

	e := NewFunc(xs, reverse)

	assert.Equal(t, int64(9), e.Min())
	assert.Equal(t, int64(1), e.Max())
	assert.Equal(t, int64(9), e.Rank(1))

	// Under the reversed order, Value(t) is the fraction of samples >= t.
	assert.Equal(t, 1.0, e.Value(1))
	assert.Equal(t, 0.125, e.Value(9))

	assert.Equal(t, e.Value(4), ECDFFunc(xs, 4, reverse))
}
