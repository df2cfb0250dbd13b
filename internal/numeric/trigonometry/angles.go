package trigonometry

import (
	"github.com/GriffinCanCode/numengine/internal/numeric"
	"github.com/GriffinCanCode/numengine/internal/numeric/operations"
	"github.com/GriffinCanCode/numengine/internal/numeric/utilities"
)

// DegreesToRadians converts degrees to radians.
func DegreesToRadians[T any](degrees T) (T, error) {
	v, err := scaleAngle(degrees, true)
	return v, numeric.Errorf[T]("DegreesToRadians", err)
}

// RadiansToDegrees converts radians to degrees.
func RadiansToDegrees[T any](radians T) (T, error) {
	v, err := scaleAngle(radians, false)
	return v, numeric.Errorf[T]("RadiansToDegrees", err)
}

func scaleAngle[T any](v T, toRadians bool) (T, error) {
	pi, err := utilities.Pi[T]()
	if err != nil {
		return v, err
	}
	var r operations.Resolver[T]
	mul, div := r.Multiply(), r.Divide()
	straight := r.Int(180)
	if err := r.Err(); err != nil {
		return v, err
	}
	if toRadians {
		return div(mul(v, pi), straight), nil
	}
	return div(mul(v, straight), pi), nil
}
