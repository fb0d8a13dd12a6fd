package ks

import (
	"math/rand/v2"
	"testing"

	"github.com/aclements/go-moremath/stats"
	"github.com/beorn7/perks/quantile"
	"github.com/stretchr/testify/assert"
)

func uniformSample(n int) []float64 {
	r := rand.New(rand.NewChaCha8([32]byte{}))

	v := make([]float64, n)
	for i := range v {
		v[i] = r.Float64()
	}

	return v
}

// Nearest-rank percentiles sit within one order-statistic gap of the
// interpolated quantiles go-moremath computes, which for a dense uniform
// sample is far below the tolerance.
func TestPercentileTracksInterpolatedQuantile(t *testing.T) {
	const N = 10000

	xs := uniformSample(N)

	e := NewFloat64(xs)

	samp := stats.Sample{Xs: append([]float64(nil), xs...)}
	samp.Sort()

	for _, p := range []int{1, 5, 25, 50, 75, 95, 99, 100} {
		assert.InDelta(t, samp.Quantile(float64(p)/100), e.Percentile(p), 0.01, "p=%d", p)
	}
}

func BenchmarkEcdfPercentile(b *testing.B) {
	b.ReportAllocs()

	e := NewFloat64(uniformSample(10000))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = e.Percentile(1 + i%100)
	}
}

func BenchmarkOneShotPercentile(b *testing.B) {
	b.ReportAllocs()

	xs := uniformSample(10000)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Percentile(xs, 1+i%100)
	}
}

func BenchmarkMoremathQuantile(b *testing.B) {
	b.ReportAllocs()

	samp := stats.Sample{Xs: uniformSample(10000)}
	samp.Sort()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = samp.Quantile(float64(1+i%100) / 100)
	}
}

func BenchmarkPerksInsertQuery(b *testing.B) {
	b.ReportAllocs()

	s := quantile.NewTargeted(map[float64]float64{
		0.5:  0.001,
		0.95: 0.001,
	})

	r := rand.New(rand.NewChaCha8([32]byte{}))

	for i := 0; i < b.N; i++ {
		s.Insert(r.Float64())
	}

	_ = s.Query(0.95)
}

func BenchmarkTestStatistic(b *testing.B) {
	b.ReportAllocs()

	xs := uniformSample(10000)
	ys := uniformSample(10000)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = TestFloat64(xs, ys, 0.95)
	}
}
