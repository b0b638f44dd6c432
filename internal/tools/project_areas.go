package tools

import (
	"context"

	"dngbridge/internal/dng"

	"github.com/mark3labs/mcp-go/mcp"
)

// ProjectAreasTool handles the dng_list_project_areas MCP tool.
type ProjectAreasTool struct {
	client *dng.Client
}

// NewProjectAreasTool creates a ProjectAreasTool over the shared client.
func NewProjectAreasTool(client *dng.Client) *ProjectAreasTool {
	return &ProjectAreasTool{client: client}
}

// Definition returns the MCP tool definition for registration.
func (t *ProjectAreasTool) Definition() mcp.Tool {
	return mcp.NewTool("dng_list_project_areas",
		mcp.WithDescription(
			"List the project areas on the DNG server. Returns the full ordered "+
				"set as [{id, name}]; the upstream endpoint is not paginated. "+
				"Use a project area id with dng_list_requirements.",
		),
	)
}

// Handle processes the dng_list_project_areas tool call.
func (t *ProjectAreasTool) Handle(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	areas, err := t.client.ProjectAreas(ctx)
	if err != nil {
		return faultResult(err)
	}
	return resultJSON(areas)
}
