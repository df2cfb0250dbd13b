package math

import (
	"github.com/GriffinCanCode/numengine/internal/numeric/operations"
	"github.com/GriffinCanCode/numengine/internal/numeric/utilities"
	"github.com/GriffinCanCode/numengine/internal/types"
)

// constantsTools returns constant tool definitions
func constantsTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.pi",
			Name:        "Pi",
			Description: "Pi from its nested-fraction series; terms overrides the cached value",
			Parameters:  []types.Parameter{termsParam, typeParam},
			Returns:     "number",
		},
		{
			ID:          "math.tau",
			Name:        "Tau",
			Description: "Two pi",
			Parameters:  []types.Parameter{termsParam, typeParam},
			Returns:     "number",
		},
	}
}

func (t *tools[T]) pi(params map[string]any) (map[string]any, error) {
	v, err := t.computePi(params)
	if err != nil {
		return nil, err
	}
	return t.result(v), nil
}

func (t *tools[T]) tau(params map[string]any) (map[string]any, error) {
	if _, ok := params["terms"]; !ok {
		v, err := utilities.Pi2[T]()
		if err != nil {
			return nil, err
		}
		return t.result(v), nil
	}
	pi, err := t.computePi(params)
	if err != nil {
		return nil, err
	}
	v, err := operations.Add(pi, pi)
	if err != nil {
		return nil, err
	}
	return t.result(v), nil
}

// computePi returns the cached constant unless a budget is given.
func (t *tools[T]) computePi(params map[string]any) (T, error) {
	stop, err := t.stop(params)
	if err != nil {
		var zero T
		return zero, err
	}
	if stop == nil {
		return utilities.Pi[T]()
	}
	return utilities.ComputePi(stop)
}
