package common

import "github.com/GriffinCanCode/numengine/internal/types"

// Success creates a successful result
func Success(data map[string]any) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// Respond turns a tool's output into a result. Tool errors become failed
// results rather than transport errors.
func Respond(data map[string]any, err error) (*types.Result, error) {
	if err != nil {
		return Failure(err.Error())
	}
	return Success(data)
}
