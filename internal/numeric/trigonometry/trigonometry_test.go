package trigonometry

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/numengine/internal/numeric"
	"github.com/GriffinCanCode/numengine/internal/numeric/utilities"
)

var sampleAngles = []float64{-7, -math.Pi, -1, -0.25, 0, 0.5, 1, 2, math.Pi / 3, 3, 5, 10}

func TestTaylorMatchesMath(t *testing.T) {
	for _, x := range sampleAngles {
		s, err := SineTaylor(x, nil)
		require.NoError(t, err)
		assert.InDelta(t, math.Sin(x), s, 1e-9, "sin(%v)", x)

		c, err := CosineTaylor(x, nil)
		require.NoError(t, err)
		assert.InDelta(t, math.Cos(x), c, 1e-9, "cos(%v)", x)
	}
}

func TestTaylorDerived(t *testing.T) {
	x := 0.7
	tan, err := TangentTaylor(x, nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Tan(x), tan, 1e-9)

	cot, err := CotangentTaylor(x, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Tan(x), cot, 1e-9)

	csc, err := CosecantTaylor(x, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sin(x), csc, 1e-9)

	sec, err := SecantTaylor(x, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Cos(x), sec, 1e-9)

	_, err = CosecantTaylor(0.0, nil)
	assert.ErrorIs(t, err, numeric.ErrDivideByZero)

	var opErr *numeric.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "CosecantTaylor", opErr.Op)
}

func TestTaylorStopPredicate(t *testing.T) {
	calls := 0
	stop := func(float64) bool {
		calls++
		return true
	}
	s, err := SineTaylor(1.0, stop)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.InDelta(t, 1-1.0/6, s, 1e-15)
}

func TestTaylorExactTypeUsesBudget(t *testing.T) {
	s, err := SineTaylor(big.NewRat(1, 2), numeric.StopAfter[*big.Rat](8))
	require.NoError(t, err)
	f, _ := s.Float64()
	assert.InDelta(t, math.Sin(0.5), f, 1e-9)
}

func TestQuadraticIsClose(t *testing.T) {
	for _, x := range sampleAngles {
		s, err := SineQuadratic(x)
		require.NoError(t, err)
		assert.InDelta(t, math.Sin(x), s, 0.06, "sin(%v)", x)

		c, err := CosineQuadratic(x)
		require.NoError(t, err)
		assert.InDelta(t, math.Cos(x), c, 0.06, "cos(%v)", x)
	}
}

func TestQuadraticExactPoints(t *testing.T) {
	s, err := SineQuadratic(math.Pi / 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-12)

	s, err = SineQuadratic(3 * math.Pi / 2)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, s, 1e-12)

	tan, err := TangentQuadratic(math.Pi / 4)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, tan, 1e-12)

	half, err := utilities.PiOver2[float64]()
	require.NoError(t, err)
	_, err = SecantQuadratic(half)
	assert.ErrorIs(t, err, numeric.ErrDivideByZero)

	csc, err := CosecantQuadratic(math.Pi / 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, csc, 1e-12)

	cot, err := CotangentQuadratic(math.Pi / 4)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cot, 1e-12)
}

func TestNotImplemented(t *testing.T) {
	fns := map[string]func(float64) (float64, error){
		"Arcsine":              Arcsine[float64],
		"Arccosine":            Arccosine[float64],
		"Arctangent":           Arctangent[float64],
		"HyperbolicSine":       HyperbolicSine[float64],
		"HyperbolicCotangent":  HyperbolicCotangent[float64],
		"HyperbolicArctangent": HyperbolicArctangent[float64],
	}
	for name, fn := range fns {
		t.Run(name, func(t *testing.T) {
			_, err := fn(0.5)
			assert.ErrorIs(t, err, numeric.ErrNotImplemented)
			assert.NotErrorIs(t, err, numeric.ErrDomain)
		})
	}
}

func TestAngleConversion(t *testing.T) {
	r, err := DegreesToRadians(180.0)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, r, 1e-12)

	d, err := RadiansToDegrees(math.Pi / 2)
	require.NoError(t, err)
	assert.InDelta(t, 90.0, d, 1e-9)
}
