package operations

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/numengine/internal/numeric"
)

func TestConvert(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		v, err := Convert[int, int](7)
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("between kinds", func(t *testing.T) {
		v, err := Convert[int, float32](3)
		require.NoError(t, err)
		assert.Equal(t, float32(3), v)

		n, err := Convert[float64, ticks](41.9)
		require.NoError(t, err)
		assert.Equal(t, ticks(41), n)
	})

	t.Run("integer into big", func(t *testing.T) {
		r, err := Convert[int, *big.Rat](-1)
		require.NoError(t, err)
		assert.Equal(t, "-1", r.RatString())

		i, err := Convert[int64, *big.Int](math.MaxInt64)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(math.MaxInt64), i)
	})

	t.Run("unsigned above int64", func(t *testing.T) {
		i, err := Convert[uint64, *big.Int](math.MaxUint64)
		require.NoError(t, err)
		assert.Equal(t, "18446744073709551615", i.String())

		r, err := Convert[uint64, *big.Rat](math.MaxUint64)
		require.NoError(t, err)
		assert.Equal(t, "18446744073709551615", r.RatString())

		w, err := Convert[uint64, wide](1<<63 + 5)
		require.NoError(t, err)
		assert.Equal(t, "9223372036854775813", w.v.String())

		small, err := Convert[uint8, wide](200)
		require.NoError(t, err)
		assert.Equal(t, "200", small.v.String())
	})

	t.Run("between big types", func(t *testing.T) {
		r, err := Convert[*big.Int, *big.Rat](big.NewInt(10))
		require.NoError(t, err)
		assert.Equal(t, "10", r.RatString())
	})

	t.Run("integer into methods", func(t *testing.T) {
		v, err := Convert[int, fixed](10)
		require.NoError(t, err)
		assert.Equal(t, fx(10), v)
	})

	t.Run("through float64", func(t *testing.T) {
		v, err := Convert[fixed, float64](fx(2.5))
		require.NoError(t, err)
		assert.Equal(t, 2.5, v)

		r, err := Convert[float64, *big.Rat](0.5)
		require.NoError(t, err)
		assert.Equal(t, "1/2", r.RatString())
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := Convert[int, counter](1)
		assert.ErrorIs(t, err, numeric.ErrTypeCapability)
	})
}

func TestRegisteredConstructors(t *testing.T) {
	type tally struct{ n int64 }
	RegisterFromInt64(func(n int64) tally { return tally{n} })

	v, err := Convert[int, tally](4)
	require.NoError(t, err)
	assert.Equal(t, tally{4}, v)
}

// wide is an unbounded integer that only adds.
type wide struct{ v *big.Int }

func (a wide) Add(b wide) wide      { return wide{new(big.Int).Add(a.v, b.v)} }
func (wide) FromInt64(n int64) wide { return wide{big.NewInt(n)} }
