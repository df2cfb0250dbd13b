package statistics

import (
	"fmt"
	"iter"

	"github.com/GriffinCanCode/numengine/internal/numeric"
)

// Line is y = Slope·x + Intercept.
type Line[T any] struct {
	Slope     T
	Intercept T
}

// LinearRegression2D fits a least-squares line through points. The first
// pass finds the means, the second the cross and x deviations. Fewer than
// two points, or points sharing one x, are ErrDomain.
func LinearRegression2D[T any](points iter.Seq2[T, T]) (Line[T], error) {
	l, err := regress(points)
	return l, numeric.Errorf[T]("LinearRegression2D", err)
}

func regress[T any](points iter.Seq2[T, T]) (Line[T], error) {
	var line Line[T]
	if points == nil {
		return line, numeric.ErrNilInput
	}
	o, err := resolveOps[T]()
	if err != nil {
		return line, err
	}

	zero := o.fromInt(0)
	sumX, sumY := zero, zero
	var n int64
	for x, y := range points {
		sumX, sumY = o.add(sumX, x), o.add(sumY, y)
		n++
	}
	if n < 2 {
		return line, fmt.Errorf("%w: regression needs at least two points, got %d", numeric.ErrDomain, n)
	}
	count := o.fromInt(n)
	meanX, meanY := o.div(sumX, count), o.div(sumY, count)

	cross, spread := zero, zero
	for x, y := range points {
		dx := o.sub(x, meanX)
		cross = o.add(cross, o.mul(dx, o.sub(y, meanY)))
		spread = o.add(spread, o.mul(dx, dx))
	}
	if o.cmp(spread, zero) == 0 {
		return line, fmt.Errorf("%w: regression points share one x", numeric.ErrDomain)
	}

	line.Slope = o.div(cross, spread)
	line.Intercept = o.sub(meanY, o.mul(line.Slope, meanX))
	return line, nil
}
