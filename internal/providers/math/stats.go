package math

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/GriffinCanCode/numengine/internal/numeric"
	"github.com/GriffinCanCode/numengine/internal/numeric/operations"
	"github.com/GriffinCanCode/numengine/internal/numeric/statistics"
	"github.com/GriffinCanCode/numengine/internal/providers/math/common"
	"github.com/GriffinCanCode/numengine/internal/types"
)

// statsTools returns statistics tool definitions
func statsTools() []types.Tool {
	numbers := []types.Parameter{numbersParam("Array of numbers"), typeParam}
	paired := []types.Parameter{
		{Name: "xs", Type: "array", Description: "X values", Required: true},
		{Name: "ys", Type: "array", Description: "Y values, same length as xs", Required: true},
	}
	weightedParams := append(paired, types.Parameter{
		Name: "weights", Type: "array", Description: "Optional weights, same length as xs", Required: false,
	})

	return []types.Tool{
		{
			ID:          "math.mean",
			Name:        "Mean",
			Description: "Arithmetic mean",
			Parameters:  numbers,
			Returns:     "number",
		},
		{
			ID:          "math.median",
			Name:        "Median",
			Description: "Middle value; mean of the two middle values for even counts",
			Parameters:  numbers,
			Returns:     "number",
		},
		{
			ID:          "math.variance",
			Name:        "Variance",
			Description: "Population variance",
			Parameters:  numbers,
			Returns:     "number",
		},
		{
			ID:          "math.stdev",
			Name:        "Standard Deviation",
			Description: "Population standard deviation",
			Parameters:  numbers,
			Returns:     "number",
		},
		{
			ID:          "math.mean_deviation",
			Name:        "Mean Absolute Deviation",
			Description: "Mean absolute deviation from the mean",
			Parameters:  numbers,
			Returns:     "number",
		},
		{
			ID:          "math.quantiles",
			Name:        "Quantiles",
			Description: "q+1 cut points from minimum to maximum",
			Parameters: []types.Parameter{
				numbersParam("Array of numbers"),
				{Name: "q", Type: "number", Description: "Number of intervals (default 4)", Required: false},
				typeParam,
			},
			Returns: "array",
		},
		{
			ID:          "math.range",
			Name:        "Range",
			Description: "Minimum, maximum and their difference",
			Parameters:  numbers,
			Returns:     "object",
		},
		{
			ID:          "math.min",
			Name:        "Minimum",
			Description: "Smallest value",
			Parameters:  numbers,
			Returns:     "number",
		},
		{
			ID:          "math.max",
			Name:        "Maximum",
			Description: "Largest value",
			Parameters:  numbers,
			Returns:     "number",
		},
		{
			ID:          "math.regression",
			Name:        "Linear Regression",
			Description: "Least-squares line through (x, y) points",
			Parameters:  append(paired, typeParam),
			Returns:     "object",
		},
		{
			ID:          "math.correlation",
			Name:        "Correlation",
			Description: "Weighted Pearson correlation (float64)",
			Parameters:  weightedParams,
			Returns:     "number",
		},
		{
			ID:          "math.covariance",
			Name:        "Covariance",
			Description: "Weighted sample covariance (float64)",
			Parameters:  weightedParams,
			Returns:     "number",
		},
	}
}

func (t *tools[T]) mean(params map[string]any) (map[string]any, error) {
	return t.fold(params, statistics.Mean[T])
}

func (t *tools[T]) variance(params map[string]any) (map[string]any, error) {
	return t.fold(params, statistics.Variance[T])
}

func (t *tools[T]) stdev(params map[string]any) (map[string]any, error) {
	return t.fold(params, statistics.StandardDeviation[T])
}

func (t *tools[T]) meanDeviation(params map[string]any) (map[string]any, error) {
	return t.fold(params, statistics.MeanDeviation[T])
}

func (t *tools[T]) min(params map[string]any) (map[string]any, error) {
	return t.fold(params, operations.MinimumSeq[T])
}

func (t *tools[T]) max(params map[string]any) (map[string]any, error) {
	return t.fold(params, operations.MaximumSeq[T])
}

func (t *tools[T]) median(params map[string]any) (map[string]any, error) {
	xs, err := common.Numbers(t.domain, params, "numbers")
	if err != nil {
		return nil, err
	}
	v, err := statistics.Median(numeric.Values(xs...), nil)
	if err != nil {
		return nil, err
	}
	return t.result(v), nil
}

func (t *tools[T]) quantiles(params map[string]any) (map[string]any, error) {
	xs, err := common.Numbers(t.domain, params, "numbers")
	if err != nil {
		return nil, err
	}
	q, err := common.Count(params, "q", 4, MaxQuantiles)
	if err != nil {
		return nil, err
	}
	cuts, err := statistics.Quantiles(numeric.Values(xs...), q)
	if err != nil {
		return nil, err
	}
	return map[string]any{"result": common.FormatAll(t.domain, cuts), "type": t.domain.Name}, nil
}

func (t *tools[T]) valueRange(params map[string]any) (map[string]any, error) {
	xs, err := common.Numbers(t.domain, params, "numbers")
	if err != nil {
		return nil, err
	}
	lo, hi, err := statistics.Range(numeric.Values(xs...))
	if err != nil {
		return nil, err
	}
	spread, err := operations.Subtract(hi, lo)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"min":    t.domain.Format(lo),
		"max":    t.domain.Format(hi),
		"result": t.domain.Format(spread),
		"type":   t.domain.Name,
	}, nil
}

func (t *tools[T]) regression(params map[string]any) (map[string]any, error) {
	xs, ys, err := pairs(t.domain, params)
	if err != nil {
		return nil, err
	}
	line, err := statistics.LinearRegression2D(numeric.Pairs(xs, ys))
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"slope":     t.domain.Format(line.Slope),
		"intercept": t.domain.Format(line.Intercept),
		"type":      t.domain.Name,
	}, nil
}

// correlation and covariance are float64 only and computed by gonum.
func correlation(params map[string]any) (map[string]any, error) {
	return weighted(params, stat.Correlation)
}

func covariance(params map[string]any) (map[string]any, error) {
	return weighted(params, stat.Covariance)
}

func weighted(params map[string]any, fn func(x, y, weights []float64) float64) (map[string]any, error) {
	xs, ys, err := pairs(common.Float, params)
	if err != nil {
		return nil, err
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("%w: need at least two points", numeric.ErrDomain)
	}
	var weights []float64
	if _, ok := params["weights"]; ok {
		if weights, err = common.Numbers(common.Float, params, "weights"); err != nil {
			return nil, err
		}
		if len(weights) != len(xs) {
			return nil, fmt.Errorf("%w: weights must match xs in length", common.ErrInvalidParam)
		}
	}
	return map[string]any{"result": fn(xs, ys, weights), "type": types.DomainFloat}, nil
}

func pairs[T any](d common.Domain[T], params map[string]any) ([]T, []T, error) {
	xs, err := common.Numbers(d, params, "xs")
	if err != nil {
		return nil, nil, err
	}
	ys, err := common.Numbers(d, params, "ys")
	if err != nil {
		return nil, nil, err
	}
	if len(xs) != len(ys) {
		return nil, nil, fmt.Errorf("%w: xs and ys differ in length", common.ErrInvalidParam)
	}
	return xs, ys, nil
}
