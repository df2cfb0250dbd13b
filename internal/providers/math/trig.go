package math

import (
	"github.com/GriffinCanCode/numengine/internal/numeric"
	"github.com/GriffinCanCode/numengine/internal/numeric/trigonometry"
	"github.com/GriffinCanCode/numengine/internal/providers/math/common"
	"github.com/GriffinCanCode/numengine/internal/types"
)

// trigTools returns trigonometry tool definitions
func trigTools() []types.Tool {
	angle := []types.Parameter{
		{Name: "x", Type: "number", Description: "Angle in radians", Required: true},
		{Name: "degrees", Type: "boolean", Description: "Interpret x as degrees", Required: false},
		typeParam,
	}
	series := append([]types.Parameter{termsParam}, angle...)

	return []types.Tool{
		{
			ID:          "math.sin",
			Name:        "Sine",
			Description: "Sine by Taylor series",
			Parameters:  series,
			Returns:     "number",
		},
		{
			ID:          "math.cos",
			Name:        "Cosine",
			Description: "Cosine by Taylor series",
			Parameters:  series,
			Returns:     "number",
		},
		{
			ID:          "math.tan",
			Name:        "Tangent",
			Description: "Tangent as the ratio of the sine and cosine series",
			Parameters:  series,
			Returns:     "number",
		},
		{
			ID:          "math.sin_fast",
			Name:        "Fast Sine",
			Description: "Sine by quadratic approximation, exact at multiples of pi/2",
			Parameters:  angle,
			Returns:     "number",
		},
		{
			ID:          "math.cos_fast",
			Name:        "Fast Cosine",
			Description: "Cosine by quadratic approximation, exact at multiples of pi/2",
			Parameters:  angle,
			Returns:     "number",
		},
	}
}

func (t *tools[T]) sin(params map[string]any) (map[string]any, error) {
	return t.taylor(params, trigonometry.SineTaylor[T])
}

func (t *tools[T]) cos(params map[string]any) (map[string]any, error) {
	return t.taylor(params, trigonometry.CosineTaylor[T])
}

func (t *tools[T]) tan(params map[string]any) (map[string]any, error) {
	return t.taylor(params, trigonometry.TangentTaylor[T])
}

func (t *tools[T]) sinFast(params map[string]any) (map[string]any, error) {
	return t.angle(params, trigonometry.SineQuadratic[T])
}

func (t *tools[T]) cosFast(params map[string]any) (map[string]any, error) {
	return t.angle(params, trigonometry.CosineQuadratic[T])
}

func (t *tools[T]) taylor(params map[string]any, fn func(T, numeric.Stop[T]) (T, error)) (map[string]any, error) {
	stop, err := t.stop(params)
	if err != nil {
		return nil, err
	}
	return t.angle(params, func(x T) (T, error) { return fn(x, stop) })
}

// angle reads x, converting from degrees when asked.
func (t *tools[T]) angle(params map[string]any, fn func(T) (T, error)) (map[string]any, error) {
	return t.unary(params, "x", func(x T) (T, error) {
		if common.Flag(params, "degrees") {
			r, err := trigonometry.DegreesToRadians(x)
			if err != nil {
				return r, err
			}
			x = r
		}
		return fn(x)
	})
}
