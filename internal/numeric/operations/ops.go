package operations

import "github.com/GriffinCanCode/numengine/internal/numeric/specialize"

// Operation identifiers used as specialization keys.
const (
	OpCapabilities specialize.Op = "Capabilities"
	OpConvert      specialize.Op = "Convert"

	OpAdd         specialize.Op = "Add"
	OpSubtract    specialize.Op = "Subtract"
	OpMultiply    specialize.Op = "Multiply"
	OpDivide      specialize.Op = "Divide"
	OpModulo      specialize.Op = "Modulo"
	OpNegate      specialize.Op = "Negate"
	OpAbsolute    specialize.Op = "AbsoluteValue"
	OpPower       specialize.Op = "Power"
	OpSquareRoot  specialize.Op = "SquareRoot"
	OpRoot        specialize.Op = "Root"
	OpLogarithm   specialize.Op = "NaturalLogarithm"
	OpMultiplyAdd specialize.Op = "MultiplyAdd"

	OpCompare   specialize.Op = "Compare"
	OpEqual     specialize.Op = "Equal"
	OpIsInteger specialize.Op = "IsInteger"
	OpFromInt   specialize.Op = "FromInt64"
	OpToFloat   specialize.Op = "ToFloat64"
)
