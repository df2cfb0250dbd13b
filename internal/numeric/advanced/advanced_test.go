package advanced

import (
	"math/big"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/numengine/internal/numeric"
)

func TestIsPrime(t *testing.T) {
	tests := []struct {
		value int
		want  bool
	}{
		{97, true},
		{100, false},
		{2, true},
		{1, false},
		{0, false},
		{-7, false},
		{9, false},
		{25, false},
		{7919, true},
	}

	for _, tt := range tests {
		got, err := IsPrime(tt.value)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "IsPrime(%d)", tt.value)
	}

	t.Run("non-integer", func(t *testing.T) {
		got, err := IsPrime(7.5)
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("big.Int", func(t *testing.T) {
		got, err := IsPrime(big.NewInt(1_000_003))
		require.NoError(t, err)
		assert.True(t, got)
	})
}

func TestFactorPrimes(t *testing.T) {
	t.Run("sixty", func(t *testing.T) {
		seq, err := FactorPrimes(60)
		require.NoError(t, err)
		factors := slices.Collect(seq)
		assert.Equal(t, []int{2, 2, 3, 5}, factors)

		product := 1
		for _, f := range factors {
			product *= f
		}
		assert.Equal(t, 60, product)
	})

	t.Run("negative leads with minus one", func(t *testing.T) {
		seq, err := FactorPrimes(-18.0)
		require.NoError(t, err)
		assert.Equal(t, []float64{-1, 2, 3, 3}, slices.Collect(seq))
	})

	t.Run("large remainder", func(t *testing.T) {
		seq, err := FactorPrimes(int64(2 * 1_000_003))
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 1_000_003}, slices.Collect(seq))
	})

	t.Run("re-ranging recomputes", func(t *testing.T) {
		seq, err := FactorPrimes(12)
		require.NoError(t, err)
		assert.Equal(t, slices.Collect(seq), slices.Collect(seq))
	})

	t.Run("early break", func(t *testing.T) {
		seq, err := FactorPrimes(1024)
		require.NoError(t, err)
		n := 0
		for range seq {
			n++
			if n == 3 {
				break
			}
		}
		assert.Equal(t, 3, n)
	})

	t.Run("domain errors", func(t *testing.T) {
		_, err := FactorPrimes(0)
		assert.ErrorIs(t, err, numeric.ErrDomain)

		_, err = FactorPrimes(2.5)
		assert.ErrorIs(t, err, numeric.ErrDomain)
	})
}

func TestGreatestCommonFactorDivides(t *testing.T) {
	samples := []int{-84, -9, 1, 6, 12, 18, 35, 84, 97, 360}
	for _, a := range samples {
		for _, b := range samples {
			g, err := GreatestCommonFactor(a, b)
			require.NoError(t, err)
			assert.Positive(t, g)
			assert.Zero(t, a%g, "gcf(%d, %d) = %d", a, b, g)
			assert.Zero(t, b%g, "gcf(%d, %d) = %d", a, b, g)
		}
	}
}

func TestLeastCommonMultipleIdentity(t *testing.T) {
	samples := []int64{-12, -5, 1, 4, 6, 9, 21, 100}
	for _, a := range samples {
		for _, b := range samples {
			g, err := GreatestCommonFactor(a, b)
			require.NoError(t, err)
			l, err := LeastCommonMultiple(a, b)
			require.NoError(t, err)
			product := a * b
			if product < 0 {
				product = -product
			}
			assert.Equal(t, product, g*l, "a=%d b=%d", a, b)
		}
	}
}

func TestFactorFolds(t *testing.T) {
	g, err := GreatestCommonFactorMany(24, 36, 60, 84)
	require.NoError(t, err)
	assert.Equal(t, 12, g)

	l, err := LeastCommonMultipleMany(2, 3, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, 60, l)

	r, err := GreatestCommonFactor(big.NewRat(12, 1), big.NewRat(-18, 1))
	require.NoError(t, err)
	assert.Equal(t, "6", r.RatString())

	single, err := GreatestCommonFactorSeq(numeric.Values(-7))
	require.NoError(t, err)
	assert.Equal(t, 7, single)
}

func TestFactorErrors(t *testing.T) {
	_, err := GreatestCommonFactorSeq(numeric.Values[int]())
	assert.ErrorIs(t, err, numeric.ErrEmptyInput)

	_, err = GreatestCommonFactorSeq[int](nil)
	assert.ErrorIs(t, err, numeric.ErrNilInput)

	_, err = GreatestCommonFactor(0, 5)
	assert.ErrorIs(t, err, numeric.ErrDomain)

	_, err = LeastCommonMultiple(4, 0)
	assert.ErrorIs(t, err, numeric.ErrDomain)

	_, err = GreatestCommonFactor(4.5, 3)
	assert.ErrorIs(t, err, numeric.ErrDomain)
}

func TestFactorial(t *testing.T) {
	f, err := Factorial(5)
	require.NoError(t, err)
	assert.Equal(t, 120, f)

	f, err = Factorial(0)
	require.NoError(t, err)
	assert.Equal(t, 1, f)

	b, err := Factorial(big.NewInt(25))
	require.NoError(t, err)
	assert.Equal(t, "15511210043330985984000000", b.String())

	_, err = Factorial(-1)
	assert.ErrorIs(t, err, numeric.ErrDomain)

	_, err = Factorial(2.5)
	assert.ErrorIs(t, err, numeric.ErrDomain)
}
