package math

import "github.com/GriffinCanCode/numengine/internal/types"

var (
	typeParam = types.Parameter{
		Name:        "type",
		Type:        "string",
		Description: "Numeric domain: float64 (default), int64 or rational",
		Required:    false,
	}
	termsParam = types.Parameter{
		Name:        "terms",
		Type:        "number",
		Description: "Series iterations (server default when omitted)",
		Required:    false,
	}
	xParam = types.Parameter{Name: "x", Type: "number", Description: "Operand", Required: true}
	nParam = types.Parameter{Name: "n", Type: "number", Description: "Integer operand", Required: true}
	aParam = types.Parameter{Name: "a", Type: "number", Description: "First operand", Required: true}
	bParam = types.Parameter{Name: "b", Type: "number", Description: "Second operand", Required: true}
)

func numbersParam(description string) types.Parameter {
	return types.Parameter{Name: "numbers", Type: "array", Description: description, Required: true}
}
