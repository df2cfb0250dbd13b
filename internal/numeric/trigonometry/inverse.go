package trigonometry

import "github.com/GriffinCanCode/numengine/internal/numeric"

func notImplemented[T any](name string, x T) (T, error) {
	return x, numeric.Errorf[T](name, numeric.ErrNotImplemented)
}

// Arcsine is not implemented.
func Arcsine[T any](x T) (T, error) { return notImplemented("Arcsine", x) }

// Arccosine is not implemented.
func Arccosine[T any](x T) (T, error) { return notImplemented("Arccosine", x) }

// Arctangent is not implemented.
func Arctangent[T any](x T) (T, error) { return notImplemented("Arctangent", x) }

// Arccosecant is not implemented.
func Arccosecant[T any](x T) (T, error) { return notImplemented("Arccosecant", x) }

// Arcsecant is not implemented.
func Arcsecant[T any](x T) (T, error) { return notImplemented("Arcsecant", x) }

// Arccotangent is not implemented.
func Arccotangent[T any](x T) (T, error) { return notImplemented("Arccotangent", x) }

// HyperbolicSine is not implemented.
func HyperbolicSine[T any](x T) (T, error) { return notImplemented("HyperbolicSine", x) }

// HyperbolicCosine is not implemented.
func HyperbolicCosine[T any](x T) (T, error) { return notImplemented("HyperbolicCosine", x) }

// HyperbolicTangent is not implemented.
func HyperbolicTangent[T any](x T) (T, error) { return notImplemented("HyperbolicTangent", x) }

// HyperbolicCosecant is not implemented.
func HyperbolicCosecant[T any](x T) (T, error) { return notImplemented("HyperbolicCosecant", x) }

// HyperbolicSecant is not implemented.
func HyperbolicSecant[T any](x T) (T, error) { return notImplemented("HyperbolicSecant", x) }

// HyperbolicCotangent is not implemented.
func HyperbolicCotangent[T any](x T) (T, error) { return notImplemented("HyperbolicCotangent", x) }

// HyperbolicArcsine is not implemented.
func HyperbolicArcsine[T any](x T) (T, error) { return notImplemented("HyperbolicArcsine", x) }

// HyperbolicArccosine is not implemented.
func HyperbolicArccosine[T any](x T) (T, error) { return notImplemented("HyperbolicArccosine", x) }

// HyperbolicArctangent is not implemented.
func HyperbolicArctangent[T any](x T) (T, error) { return notImplemented("HyperbolicArctangent", x) }

// HyperbolicArccosecant is not implemented.
func HyperbolicArccosecant[T any](x T) (T, error) {
	return notImplemented("HyperbolicArccosecant", x)
}

// HyperbolicArcsecant is not implemented.
func HyperbolicArcsecant[T any](x T) (T, error) { return notImplemented("HyperbolicArcsecant", x) }

// HyperbolicArccotangent is not implemented.
func HyperbolicArccotangent[T any](x T) (T, error) {
	return notImplemented("HyperbolicArccotangent", x)
}
