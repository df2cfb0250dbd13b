package math

import (
	"context"
	"encoding/json"
	gomath "math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/numengine/internal/types"
)

func execute(t *testing.T, p *Provider, toolID string, params map[string]any) *types.Result {
	t.Helper()
	result, err := p.Execute(context.Background(), toolID, params, &types.Context{})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func succeed(t *testing.T, p *Provider, toolID string, params map[string]any) map[string]any {
	t.Helper()
	result := execute(t, p, toolID, params)
	require.True(t, result.Success, "error: %v", result.Error)
	return result.Data
}

func fail(t *testing.T, p *Provider, toolID string, params map[string]any) string {
	t.Helper()
	result := execute(t, p, toolID, params)
	require.False(t, result.Success)
	require.NotNil(t, result.Error)
	return *result.Error
}

func TestDefinitionToolsDispatch(t *testing.T) {
	p := NewProvider()
	def := p.Definition()
	assert.Equal(t, "math", def.ID)
	assert.Equal(t, types.CategoryMath, def.Category)

	seen := map[string]bool{}
	for _, tool := range def.Tools {
		assert.False(t, seen[tool.ID], "duplicate tool %s", tool.ID)
		seen[tool.ID] = true
		if tool.ID == "math.correlation" || tool.ID == "math.covariance" {
			continue
		}
		_, ok := p.float.lookup(tool.ID)
		assert.True(t, ok, "tool %s has no implementation", tool.ID)
	}
	assert.True(t, seen["math.factor"])
}

func TestArithmeticDomains(t *testing.T) {
	p := NewProvider()

	tests := []struct {
		name   string
		tool   string
		params map[string]any
		want   any
	}{
		{"float add", "math.add", map[string]any{"numbers": []any{1.0, 2.0, 3.5}}, 6.5},
		{"int add stays exact", "math.add", map[string]any{
			"type":    "int64",
			"numbers": []any{json.Number("9007199254740993"), json.Number("1")},
		}, int64(9007199254740994)},
		{"int divide truncates", "math.divide", map[string]any{"type": "int64", "a": 7, "b": 2}, int64(3)},
		{"rational divide", "math.divide", map[string]any{"type": "rational", "a": "1", "b": "3"}, "1/3"},
		{"rational add", "math.add", map[string]any{"type": "rational", "numbers": []any{"1/3", "1/6"}}, "1/2"},
		{"modulo keeps sign", "math.modulo", map[string]any{"type": "int64", "a": -7, "b": 3}, int64(-1)},
		{"power", "math.power", map[string]any{"type": "int64", "base": 2, "exponent": 10}, int64(1024)},
		{"rational power", "math.power", map[string]any{"type": "rational", "base": "2/3", "exponent": 2}, "4/9"},
		{"negate", "math.negate", map[string]any{"x": 4.0}, -4.0},
		{"invert", "math.invert", map[string]any{"type": "rational", "x": "4"}, "1/4"},
		{"abs", "math.abs", map[string]any{"type": "int64", "x": -9}, int64(9)},
		{"clamp", "math.clamp", map[string]any{"x": 5.0, "lo": 0.0, "hi": 3.0}, 3.0},
		{"compare", "math.compare", map[string]any{"a": 1.0, "b": 2.0}, -1},
		{"lerp", "math.lerp", map[string]any{"a": 0.0, "b": 10.0, "blend": 0.25}, 2.5},
		{"sqrt", "math.sqrt", map[string]any{"x": 16.0}, 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := succeed(t, p, tt.tool, tt.params)
			assert.Equal(t, tt.want, data["result"])
		})
	}
}

func TestArithmeticFailures(t *testing.T) {
	p := NewProvider()

	tests := []struct {
		name   string
		tool   string
		params map[string]any
		want   string
	}{
		{"divide by zero", "math.divide", map[string]any{"a": 1.0, "b": 0.0}, "divide by zero"},
		{"int divide by zero", "math.divide", map[string]any{"type": "int64", "a": 1, "b": 0}, "divide by zero"},
		{"negative sqrt", "math.sqrt", map[string]any{"x": -1.0}, "domain"},
		{"fractional rational power", "math.power", map[string]any{"type": "rational", "base": 2, "exponent": "1/2"}, "not implemented"},
		{"missing operand", "math.subtract", map[string]any{"a": 1.0}, "missing parameter: b"},
		{"empty numbers", "math.add", map[string]any{"numbers": []any{}}, "empty input"},
		{"not a number", "math.negate", map[string]any{"x": true}, "invalid parameter"},
		{"non-integral int64", "math.negate", map[string]any{"type": "int64", "x": 1.5}, "not an integer"},
		{"bad rational", "math.negate", map[string]any{"type": "rational", "x": "one"}, "not a rational"},
		{"unknown type", "math.add", map[string]any{"type": "complex", "numbers": []any{1.0}}, "unknown type"},
		{"clamp bounds", "math.clamp", map[string]any{"x": 1.0, "lo": 3.0, "hi": 0.0}, "out of range"},
		{"blend out of range", "math.lerp", map[string]any{"a": 0.0, "b": 1.0, "blend": 2.0}, "out of range"},
		{"unknown tool", "math.nope", map[string]any{}, "unknown tool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, fail(t, p, tt.tool, tt.params), tt.want)
		})
	}
}

func TestEqualLeniency(t *testing.T) {
	p := NewProvider()
	params := map[string]any{"a": 0.1 + 0.2, "b": 0.3}
	assert.Equal(t, true, succeed(t, p, "math.equal", params)["result"])

	params["leniency"] = 0.0
	assert.Equal(t, false, succeed(t, p, "math.equal", params)["result"])

	strict := NewProvider(WithLeniency(0))
	delete(params, "leniency")
	assert.Equal(t, false, succeed(t, strict, "math.equal", params)["result"])

	params["leniency"] = -1.0
	assert.Contains(t, fail(t, p, "math.equal", params), "out of range")
}

func TestLogarithm(t *testing.T) {
	p := NewProvider()
	data := succeed(t, p, "math.log", map[string]any{"x": 8.0, "base": 2.0})
	assert.InDelta(t, 3.0, data["result"], 1e-12)

	data = succeed(t, p, "math.log", map[string]any{"x": gomath.E})
	assert.InDelta(t, 1.0, data["result"], 1e-12)

	assert.Contains(t, fail(t, p, "math.log", map[string]any{"x": 0.0}), "domain")
}

func TestNumberTheory(t *testing.T) {
	p := NewProvider()

	assert.Equal(t, int64(6), succeed(t, p, "math.gcf", map[string]any{"type": "int64", "numbers": []any{12, 18, 30}})["result"])
	assert.Equal(t, int64(36), succeed(t, p, "math.lcm", map[string]any{"type": "int64", "numbers": []any{12, 18}})["result"])
	assert.Equal(t, true, succeed(t, p, "math.is_prime", map[string]any{"type": "int64", "n": 97})["result"])
	assert.Equal(t, false, succeed(t, p, "math.is_prime", map[string]any{"type": "int64", "n": 91})["result"])
	assert.Equal(t, int64(120), succeed(t, p, "math.factorial", map[string]any{"type": "int64", "n": 5})["result"])

	data := succeed(t, p, "math.factor", map[string]any{"type": "int64", "n": 60})
	assert.Equal(t, []any{int64(2), int64(2), int64(3), int64(5)}, data["result"])

	data = succeed(t, p, "math.factor", map[string]any{"type": "rational", "n": "-12"})
	assert.Equal(t, []any{"-1", "2", "2", "3"}, data["result"])

	data = succeed(t, p, "math.factor", map[string]any{"type": "int64", "n": 1})
	assert.Empty(t, data["result"])

	assert.Contains(t, fail(t, p, "math.factor", map[string]any{"type": "int64", "n": 0}), "domain")
	assert.Contains(t, fail(t, p, "math.gcf", map[string]any{"type": "int64", "numbers": []any{4, 0}}), "domain")
}

func TestStreamFactor(t *testing.T) {
	p := NewProvider()
	seq, err := p.Stream(context.Background(), "math.factor", map[string]any{"type": "int64", "n": 84})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(2), int64(2), int64(3), int64(7)}, slices.Collect(seq))

	// Early stop is honored
	var first []any
	for v := range seq {
		first = append(first, v)
		break
	}
	assert.Equal(t, []any{int64(2)}, first)

	_, err = p.Stream(context.Background(), "math.add", map[string]any{})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Stream(ctx, "math.factor", map[string]any{"n": 6})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTrigonometry(t *testing.T) {
	p := NewProvider()

	for _, x := range []float64{-2, -0.5, 0, 0.5, 1, 3} {
		assert.InDelta(t, gomath.Sin(x), succeed(t, p, "math.sin", map[string]any{"x": x})["result"], 1e-9)
		assert.InDelta(t, gomath.Cos(x), succeed(t, p, "math.cos", map[string]any{"x": x})["result"], 1e-9)
		assert.InDelta(t, gomath.Sin(x), succeed(t, p, "math.sin_fast", map[string]any{"x": x})["result"], 0.06)
		assert.InDelta(t, gomath.Cos(x), succeed(t, p, "math.cos_fast", map[string]any{"x": x})["result"], 0.06)
	}

	assert.InDelta(t, gomath.Tan(1), succeed(t, p, "math.tan", map[string]any{"x": 1.0})["result"], 1e-9)
	assert.InDelta(t, 1.0, succeed(t, p, "math.sin", map[string]any{"x": 90.0, "degrees": true})["result"], 1e-9)
	assert.InDelta(t, 1.0, succeed(t, p, "math.sin_fast", map[string]any{"x": 90.0, "degrees": true})["result"], 1e-9)

	// Few terms are visibly less accurate
	coarse := succeed(t, p, "math.sin", map[string]any{"x": 3.0, "terms": 2})["result"].(float64)
	assert.Greater(t, gomath.Abs(coarse-gomath.Sin(3)), 1e-3)

	assert.Contains(t, fail(t, p, "math.sin", map[string]any{"x": 1.0, "terms": 0}), "must be positive")
}

func TestWorkLimits(t *testing.T) {
	p := NewProvider()

	tests := []struct {
		name   string
		tool   string
		params map[string]any
		want   string
	}{
		{"factorial", "math.factorial", map[string]any{"type": "int64", "n": 1e15}, "n must be at most 5000"},
		{"rational factorial", "math.factorial", map[string]any{"type": "rational", "n": "5001"}, "n must be at most 5000"},
		{"rational exponent", "math.power", map[string]any{
			"type": "rational", "base": "2", "exponent": "1000000000000",
		}, "exponent must be at most 10000"},
		{"pi terms", "math.pi", map[string]any{"terms": 2e9}, "terms must be at most 1000"},
		{"rational pi terms", "math.pi", map[string]any{"type": "rational", "terms": 101}, "terms must be at most 100"},
		{"rational taylor terms", "math.sin", map[string]any{"type": "rational", "x": "1/2", "terms": 500}, "terms must be at most 100"},
		{"quantiles", "math.quantiles", map[string]any{"numbers": []any{1.0, 2.0}, "q": 1001}, "q must be at most 1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := fail(t, p, tt.tool, tt.params)
			assert.Contains(t, msg, tt.want)
			assert.Contains(t, msg, "invalid parameter")
		})
	}

	t.Run("bounds are inclusive", func(t *testing.T) {
		data := succeed(t, p, "math.power", map[string]any{"type": "rational", "base": "1", "exponent": 10000})
		assert.Equal(t, "1", data["result"])

		data = succeed(t, p, "math.pi", map[string]any{"type": "rational", "terms": 3})
		assert.Equal(t, types.DomainRational, data["type"])

		// float64 power keeps its fast path for any exponent
		data = succeed(t, p, "math.power", map[string]any{"base": 1.0, "exponent": 1e12})
		assert.Equal(t, 1.0, data["result"])
	})
}

func TestStatistics(t *testing.T) {
	p := NewProvider()
	numbers := []any{2.0, 4.0, 4.0, 4.0, 5.0, 5.0, 7.0, 9.0}

	assert.InDelta(t, 5.0, succeed(t, p, "math.mean", map[string]any{"numbers": numbers})["result"], 1e-12)
	assert.InDelta(t, 4.5, succeed(t, p, "math.median", map[string]any{"numbers": numbers})["result"], 1e-12)
	assert.InDelta(t, 4.0, succeed(t, p, "math.variance", map[string]any{"numbers": numbers})["result"], 1e-12)
	assert.InDelta(t, 2.0, succeed(t, p, "math.stdev", map[string]any{"numbers": numbers})["result"], 1e-12)
	assert.InDelta(t, 1.5, succeed(t, p, "math.mean_deviation", map[string]any{"numbers": numbers})["result"], 1e-12)
	assert.Equal(t, 2.0, succeed(t, p, "math.min", map[string]any{"numbers": numbers})["result"])
	assert.Equal(t, 9.0, succeed(t, p, "math.max", map[string]any{"numbers": numbers})["result"])

	data := succeed(t, p, "math.range", map[string]any{"numbers": []any{3.0, -1.0, 7.0}})
	assert.Equal(t, -1.0, data["min"])
	assert.Equal(t, 7.0, data["max"])
	assert.Equal(t, 8.0, data["result"])

	data = succeed(t, p, "math.quantiles", map[string]any{"numbers": []any{5.0, 1.0, 4.0, 2.0, 3.0}})
	assert.Equal(t, []any{1.0, 2.0, 3.0, 4.0, 5.0}, data["result"])

	assert.Equal(t, "3/2", succeed(t, p, "math.mean", map[string]any{"type": "rational", "numbers": []any{1, 2}})["result"])
	assert.Contains(t, fail(t, p, "math.quantiles", map[string]any{"numbers": numbers, "q": 0}), "must be positive")
}

func TestRegression(t *testing.T) {
	p := NewProvider()
	params := map[string]any{"xs": []any{0, 1, 2}, "ys": []any{1, 3, 5}}

	data := succeed(t, p, "math.regression", params)
	assert.InDelta(t, 2.0, data["slope"], 1e-12)
	assert.InDelta(t, 1.0, data["intercept"], 1e-12)

	params["type"] = "rational"
	data = succeed(t, p, "math.regression", params)
	assert.Equal(t, "2", data["slope"])
	assert.Equal(t, "1", data["intercept"])

	assert.Contains(t, fail(t, p, "math.regression", map[string]any{"xs": []any{1, 1}, "ys": []any{1, 2}}), "domain")
	assert.Contains(t, fail(t, p, "math.regression", map[string]any{"xs": []any{1, 2}, "ys": []any{1}}), "differ in length")
}

func TestCorrelationCovariance(t *testing.T) {
	p := NewProvider()
	params := map[string]any{"xs": []any{1, 2, 3, 4}, "ys": []any{2, 4, 6, 8}}

	assert.InDelta(t, 1.0, succeed(t, p, "math.correlation", params)["result"], 1e-12)
	// Sample covariance: sum((x-2.5)(y-5)) / 3
	assert.InDelta(t, 10.0/3.0, succeed(t, p, "math.covariance", params)["result"], 1e-12)

	params["weights"] = []any{1, 1}
	assert.Contains(t, fail(t, p, "math.correlation", params), "weights")

	assert.Contains(t, fail(t, p, "math.covariance", map[string]any{"xs": []any{1}, "ys": []any{1}}), "two points")
}

func TestConstants(t *testing.T) {
	p := NewProvider()

	assert.InDelta(t, gomath.Pi, succeed(t, p, "math.pi", map[string]any{})["result"], 1e-12)
	assert.InDelta(t, 2*gomath.Pi, succeed(t, p, "math.tau", map[string]any{})["result"], 1e-12)
	assert.Equal(t, int64(3), succeed(t, p, "math.pi", map[string]any{"type": "int64"})["result"])

	coarse := succeed(t, p, "math.pi", map[string]any{"terms": 3})["result"].(float64)
	assert.GreaterOrEqual(t, coarse, 3.0)
	assert.Greater(t, gomath.Abs(coarse-gomath.Pi), 1e-6)

	tau := succeed(t, p, "math.tau", map[string]any{"terms": 3})["result"].(float64)
	assert.Equal(t, 2*coarse, tau)

	data := succeed(t, p, "math.pi", map[string]any{"type": "rational", "terms": 10})
	assert.Contains(t, data["result"], "/")
}

func TestExecuteCanceledContext(t *testing.T) {
	p := NewProvider()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Execute(ctx, "math.add", map[string]any{"numbers": []any{1}}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
