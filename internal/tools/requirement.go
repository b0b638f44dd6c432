package tools

import (
	"context"
	"strings"

	"dngbridge/internal/dng"

	"github.com/mark3labs/mcp-go/mcp"
)

// RequirementTool handles the dng_get_requirement MCP tool.
type RequirementTool struct {
	client *dng.Client
}

// NewRequirementTool creates a RequirementTool over the shared client.
func NewRequirementTool(client *dng.Client) *RequirementTool {
	return &RequirementTool{client: client}
}

// Definition returns the MCP tool definition for registration.
func (t *RequirementTool) Definition() mcp.Tool {
	return mcp.NewTool("dng_get_requirement",
		mcp.WithDescription(
			"Fetch the full record of one requirement as an open attribute "+
				"mapping. All upstream fields pass through unmodified; 'id' and "+
				"'title' are always present.",
		),
		mcp.WithString("requirement_id",
			mcp.Required(),
			mcp.Description("The id of the requirement to fetch."),
		),
	)
}

// Handle processes the dng_get_requirement tool call.
func (t *RequirementTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requirementID := strings.TrimSpace(req.GetString("requirement_id", ""))
	if requirementID == "" {
		return mcp.NewToolResultError("'requirement_id' is required"), nil
	}

	details, err := t.client.RequirementDetails(ctx, requirementID)
	if err != nil {
		return faultResult(err)
	}
	return resultJSON(details)
}
