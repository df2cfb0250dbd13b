package statistics

import (
	"math"
	"math/big"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/GriffinCanCode/numengine/internal/numeric"
)

var sample = []float64{2.5, 9, -1.25, 4, 4, 7.75, 0.5, 12, 3}

func TestAgainstGonum(t *testing.T) {
	mean, err := Mean(slices.Values(sample))
	require.NoError(t, err)
	assert.InDelta(t, stat.Mean(sample, nil), mean, 1e-12)

	variance, err := Variance(slices.Values(sample))
	require.NoError(t, err)
	assert.InDelta(t, stat.PopVariance(sample, nil), variance, 1e-12)

	sd, err := StandardDeviation(slices.Values(sample))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(stat.PopVariance(sample, nil)), sd, 1e-12)

	var deviation float64
	for _, v := range sample {
		deviation += math.Abs(v - stat.Mean(sample, nil))
	}
	md, err := MeanDeviation(slices.Values(sample))
	require.NoError(t, err)
	assert.InDelta(t, deviation/float64(len(sample)), md, 1e-12)
}

func TestExactRationalMean(t *testing.T) {
	mean, err := Mean(numeric.Values(big.NewRat(1, 3), big.NewRat(1, 6), big.NewRat(1, 2)))
	require.NoError(t, err)
	assert.Equal(t, "1/3", mean.RatString())
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"even count", []float64{1, 2, 3, 4}, 2.5},
		{"single", []float64{5}, 5},
		{"odd unsorted", []float64{3, 1, 2}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Median(slices.Values(tt.values), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("custom comparator", func(t *testing.T) {
		byMagnitude := func(a, b float64) int {
			switch {
			case math.Abs(a) < math.Abs(b):
				return -1
			case math.Abs(a) > math.Abs(b):
				return 1
			}
			return 0
		}
		got, err := Median(numeric.Values(-10.0, 1, 2), byMagnitude)
		require.NoError(t, err)
		assert.Equal(t, 2.0, got)
	})

	t.Run("input is not reordered", func(t *testing.T) {
		values := []int{3, 1, 2}
		_, err := Median(slices.Values(values), nil)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 1, 2}, values)
	})
}

func TestQuantiles(t *testing.T) {
	data := []int{7, 3, 10, 1, 5, 2, 9, 4, 8, 6}

	q, err := Quantiles(slices.Values(data), 4)
	require.NoError(t, err)
	require.Len(t, q, 5)
	assert.Equal(t, 1, q[0])
	assert.Equal(t, 10, q[4])
	assert.Equal(t, []int{1, 3, 5, 7, 10}, q)
	assert.True(t, slices.IsSorted(q), "cut points must be ordered: %v", q)

	q2, err := Quantiles(numeric.Values(1.0, 2, 3, 4, 5, 6), 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, 4, 6}, q2)

	_, err = Quantiles(slices.Values(data), 0)
	assert.ErrorIs(t, err, numeric.ErrOutOfRange)

	_, err = Quantiles(numeric.Values[int](), 4)
	assert.ErrorIs(t, err, numeric.ErrEmptyInput)
}

func TestRange(t *testing.T) {
	lo, hi, err := Range(slices.Values(sample))
	require.NoError(t, err)
	assert.Equal(t, -1.25, lo)
	assert.Equal(t, 12.0, hi)

	_, _, err = Range[int](nil)
	assert.ErrorIs(t, err, numeric.ErrNilInput)
}

func TestLinearRegression2D(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6}
	ys := []float64{2.1, 3.9, 6.2, 8.1, 9.8, 12.2}

	line, err := LinearRegression2D(numeric.Pairs(xs, ys))
	require.NoError(t, err)

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	assert.InDelta(t, beta, line.Slope, 1e-12)
	assert.InDelta(t, alpha, line.Intercept, 1e-12)

	t.Run("exact line", func(t *testing.T) {
		line, err := LinearRegression2D(numeric.Pairs(
			[]*big.Rat{big.NewRat(0, 1), big.NewRat(1, 1), big.NewRat(2, 1)},
			[]*big.Rat{big.NewRat(1, 1), big.NewRat(4, 3), big.NewRat(5, 3)},
		))
		require.NoError(t, err)
		assert.Equal(t, "1/3", line.Slope.RatString())
		assert.Equal(t, "1", line.Intercept.RatString())
	})

	t.Run("too few points", func(t *testing.T) {
		_, err := LinearRegression2D(numeric.Pairs([]float64{1}, []float64{2}))
		assert.ErrorIs(t, err, numeric.ErrDomain)
	})

	t.Run("vertical", func(t *testing.T) {
		_, err := LinearRegression2D(numeric.Pairs([]float64{2, 2, 2}, []float64{1, 2, 3}))
		assert.ErrorIs(t, err, numeric.ErrDomain)
	})
}

func TestEmptyInput(t *testing.T) {
	_, err := Mean(numeric.Values[float64]())
	assert.ErrorIs(t, err, numeric.ErrEmptyInput)

	_, err = Variance(numeric.Values[float64]())
	assert.ErrorIs(t, err, numeric.ErrEmptyInput)

	_, err = Mean[float64](nil)
	assert.ErrorIs(t, err, numeric.ErrNilInput)
}

func TestMode(t *testing.T) {
	_, err := Mode(numeric.Values(1, 1, 2))
	assert.ErrorIs(t, err, numeric.ErrNotImplemented)
	assert.NotErrorIs(t, err, numeric.ErrDomain)
}
