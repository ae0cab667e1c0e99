// Package utils provides input validation for API request fields.
//
// Validation:
//   - String length and content validation
//   - ID and tool ID format validation
//   - Discovery query validation
//
// Example Usage:
//
//	if err := utils.ValidateToolID(req.ToolID, "tool_id", true); err != nil {
//	    return err
//	}
package utils
