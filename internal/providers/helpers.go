package providers

import "github.com/GriffinCanCode/numengine/internal/types"

func success(data map[string]any) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

func failure(message string) (*types.Result, error) {
	return &types.Result{Success: false, Error: &message}, nil
}
