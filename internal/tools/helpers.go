// Package tools implements the MCP tool handlers for the DNG operations.
//
// Each tool is a struct that receives the shared upstream client via its
// constructor and exposes a Definition for registration plus a Handle
// compatible with mcp-go's CallToolRequest signature. One file per tool.
package tools

import (
	"encoding/json"
	"fmt"
	"math"

	"dngbridge/internal/dng"

	"github.com/mark3labs/mcp-go/mcp"
)

// intArg extracts an integer argument from a tool request. JSON numbers
// arrive as float64, so a fractional value is a validation fault rather
// than a silent truncation. present reports whether the argument was
// supplied at all, letting callers tell an explicit value from an omitted
// one.
func intArg(req mcp.CallToolRequest, key string, defaultVal int) (value int, present bool, err error) {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return defaultVal, false, nil
	}
	switch v := raw.(type) {
	case int:
		return v, true, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, true, dng.NewInvalidInputError(fmt.Sprintf("'%s' must be an integer", key), nil)
		}
		return int(v), true, nil
	default:
		return 0, true, dng.NewInvalidInputError(fmt.Sprintf("'%s' must be an integer", key), nil)
	}
}

// resultJSON renders a success value as a JSON text result.
func resultJSON(v any) (*mcp.CallToolResult, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling tool result: %w", err)
	}
	return mcp.NewToolResultText(string(raw)), nil
}

// faultResult renders a typed fault as a tool error carrying the same
// error/message shape the HTTP boundary publishes, so callers see one
// taxonomy regardless of surface.
func faultResult(err error) (*mcp.CallToolResult, error) {
	fault, ok := dng.AsError(err)
	if !ok {
		return nil, err
	}
	raw, merr := json.Marshal(map[string]string{
		"error":   string(fault.Type),
		"message": fault.Message,
	})
	if merr != nil {
		return mcp.NewToolResultError(fault.Error()), nil
	}
	return mcp.NewToolResultError(string(raw)), nil
}
