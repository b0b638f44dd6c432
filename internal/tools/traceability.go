package tools

import (
	"context"
	"strings"

	"dngbridge/internal/dng"

	"github.com/mark3labs/mcp-go/mcp"
)

// TraceabilityTool handles the dng_get_requirement_traceability MCP tool.
type TraceabilityTool struct {
	client *dng.Client
}

// NewTraceabilityTool creates a TraceabilityTool over the shared client.
func NewTraceabilityTool(client *dng.Client) *TraceabilityTool {
	return &TraceabilityTool{client: client}
}

// Definition returns the MCP tool definition for registration.
func (t *TraceabilityTool) Definition() mcp.Tool {
	return mcp.NewTool("dng_get_requirement_traceability",
		mcp.WithDescription(
			"Fetch the traceability links of a requirement, grouped by relation "+
				"name (e.g. oslc_rm:validatedBy) with each target as {resource}. A "+
				"requirement with no links returns an explicit empty marker, which "+
				"is different from the requirement not existing.",
		),
		mcp.WithString("requirement_id",
			mcp.Required(),
			mcp.Description("The id of the requirement whose links to fetch."),
		),
	)
}

// Handle processes the dng_get_requirement_traceability tool call.
func (t *TraceabilityTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requirementID := strings.TrimSpace(req.GetString("requirement_id", ""))
	if requirementID == "" {
		return mcp.NewToolResultError("'requirement_id' is required"), nil
	}

	links, err := t.client.RequirementTraceability(ctx, requirementID)
	if err != nil {
		return faultResult(err)
	}
	return resultJSON(links)
}
