package math

import (
	"iter"
	"slices"

	"github.com/GriffinCanCode/numengine/internal/numeric/advanced"
	"github.com/GriffinCanCode/numengine/internal/providers/math/common"
	"github.com/GriffinCanCode/numengine/internal/types"
)

// theoryTools returns number theory tool definitions
func theoryTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.gcf",
			Name:        "Greatest Common Factor",
			Description: "Greatest common factor of non-zero integers",
			Parameters:  []types.Parameter{numbersParam("Non-zero integers"), typeParam},
			Returns:     "number",
		},
		{
			ID:          "math.lcm",
			Name:        "Least Common Multiple",
			Description: "Least common multiple of non-zero integers",
			Parameters:  []types.Parameter{numbersParam("Non-zero integers"), typeParam},
			Returns:     "number",
		},
		{
			ID:          "math.is_prime",
			Name:        "Is Prime",
			Description: "Primality test by trial division",
			Parameters:  []types.Parameter{nParam, typeParam},
			Returns:     "boolean",
		},
		{
			ID:          "math.factor",
			Name:        "Prime Factors",
			Description: "Prime factorization in ascending order; -1 leads for negative input",
			Parameters:  []types.Parameter{nParam, typeParam},
			Returns:     "array",
			Streams:     true,
		},
		{
			ID:          "math.factorial",
			Name:        "Factorial",
			Description: "n! for a non-negative integer n",
			Parameters:  []types.Parameter{nParam, typeParam},
			Returns:     "number",
		},
	}
}

func (t *tools[T]) gcf(params map[string]any) (map[string]any, error) {
	return t.fold(params, advanced.GreatestCommonFactorSeq[T])
}

func (t *tools[T]) lcm(params map[string]any) (map[string]any, error) {
	return t.fold(params, advanced.LeastCommonMultipleSeq[T])
}

func (t *tools[T]) isPrime(params map[string]any) (map[string]any, error) {
	return t.predicate(params, "n", advanced.IsPrime[T])
}

func (t *tools[T]) factorial(params map[string]any) (map[string]any, error) {
	return t.unary(params, "n", func(n T) (T, error) {
		if err := t.atMost("n", n, MaxFactorial); err != nil {
			return n, err
		}
		return advanced.Factorial(n)
	})
}

func (t *tools[T]) factor(params map[string]any) (map[string]any, error) {
	seq, err := t.factors(params)
	if err != nil {
		return nil, err
	}
	factors := slices.Collect(seq)
	return map[string]any{"result": common.FormatAll(t.domain, factors), "type": t.domain.Name}, nil
}

// factorSeq yields formatted factors one at a time.
func (t *tools[T]) factorSeq(params map[string]any) (iter.Seq[any], error) {
	seq, err := t.factors(params)
	if err != nil {
		return nil, err
	}
	return func(yield func(any) bool) {
		for f := range seq {
			if !yield(t.domain.Format(f)) {
				return
			}
		}
	}, nil
}

func (t *tools[T]) factors(params map[string]any) (iter.Seq[T], error) {
	n, err := common.Number(t.domain, params, "n")
	if err != nil {
		return nil, err
	}
	return advanced.FactorPrimes(n)
}
