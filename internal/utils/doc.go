// Package utils provides request validation for the service surface.
//
// Validation:
//   - Payload size limits and number-preserving JSON decoding (sonic)
//   - Parameter nesting depth and array length
//   - Tool ID, category and intent strings
//
// Example Usage:
//
//	var req types.ExecuteRequest
//	if err := utils.DefaultJSONValidator().Decode(body, &req); err != nil {
//		return err
//	}
//	err := utils.ValidateToolID(req.ToolID, "tool_id", true)
package utils
