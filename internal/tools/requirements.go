package tools

import (
	"context"
	"strings"

	"dngbridge/internal/dng"

	"github.com/mark3labs/mcp-go/mcp"
)

// RequirementsTool handles the dng_list_requirements MCP tool.
type RequirementsTool struct {
	client *dng.Client
}

// NewRequirementsTool creates a RequirementsTool over the shared client.
func NewRequirementsTool(client *dng.Client) *RequirementsTool {
	return &RequirementsTool{client: client}
}

// Definition returns the MCP tool definition for registration.
func (t *RequirementsTool) Definition() mcp.Tool {
	return mcp.NewTool("dng_list_requirements",
		mcp.WithDescription(
			"List the requirements of a DNG project as [{id, title}], walking "+
				"upstream pagination in order. Large projects can span many pages; "+
				"cap the fetch with max_pages when only a sample is needed.",
		),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("The id of the project area to list requirements from."),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Requirements per upstream page. Positive integer, default 100."),
		),
		mcp.WithNumber("max_pages",
			mcp.Description("Maximum number of pages to fetch. Positive integer; "+
				"omit to fetch all pages. Reaching the cap truncates the result."),
		),
	)
}

// Handle processes the dng_list_requirements tool call.
func (t *RequirementsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID := strings.TrimSpace(req.GetString("project_id", ""))
	if projectID == "" {
		return mcp.NewToolResultError("'project_id' is required — pick one from dng_list_project_areas"), nil
	}

	pageSize, _, err := intArg(req, "page_size", dng.DefaultPageSize)
	if err != nil {
		return faultResult(err)
	}
	maxPages, maxPagesSet, err := intArg(req, "max_pages", 0)
	if err != nil {
		return faultResult(err)
	}
	if maxPagesSet && maxPages <= 0 {
		// Omitted means unbounded; an explicit non-positive cap is caller error.
		return faultResult(dng.NewInvalidInputError("max_pages must be a positive integer if provided", nil))
	}

	requirements, err := t.client.Requirements(ctx, projectID, pageSize, maxPages)
	if err != nil {
		return faultResult(err)
	}
	return resultJSON(requirements)
}
