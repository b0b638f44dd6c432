// Package server wires the DNG client, tools, and serving surfaces.
//
// This is the composition root: it creates the shared upstream client and
// injects it into the MCP tools and the HTTP boundary. No business logic
// lives here — only wiring.
package server

import (
	"net/http"

	"dngbridge/internal/api"
	"dngbridge/internal/config"
	"dngbridge/internal/dng"
	"dngbridge/internal/tools"

	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server with the four DNG tools registered. The
// connection configuration is validated lazily on first tool call, so the
// server comes up even when credentials are not yet set.
func New(cfg config.Config) *server.MCPServer {
	client := dng.New(cfg)

	s := server.NewMCPServer(
		"dngbridge",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	projectAreas := tools.NewProjectAreasTool(client)
	s.AddTool(projectAreas.Definition(), projectAreas.Handle)

	requirements := tools.NewRequirementsTool(client)
	s.AddTool(requirements.Definition(), requirements.Handle)

	requirement := tools.NewRequirementTool(client)
	s.AddTool(requirement.Definition(), requirement.Handle)

	traceability := tools.NewTraceabilityTool(client)
	s.AddTool(traceability.Definition(), traceability.Handle)

	return s
}

// NewHTTPHandler creates the plain-HTTP boundary over the same operations,
// for deployments that front the tools with REST routes instead of an MCP
// transport.
func NewHTTPHandler(cfg config.Config) http.Handler {
	return api.NewRouter(dng.New(cfg))
}

// serverInstructions describes the toolset to connected assistants.
func serverInstructions() string {
	return `dngbridge is a read-only bridge to an IBM DOORS Next Generation
(DNG) requirements server.

Typical flow:
1. dng_list_project_areas — discover project areas ({id, name}).
2. dng_list_requirements — list a project's requirements ({id, title});
   pass max_pages to sample large projects instead of fetching everything.
3. dng_get_requirement — fetch one requirement's full attribute record.
4. dng_get_requirement_traceability — fetch its traceability links grouped
   by relation (validation, change management, ...).

All tools are read-only and stateless; nothing is cached between calls.
Errors carry a JSON {error, message} body where error is one of
ConfigurationError, InvalidInputError, AuthenticationError, NotFoundError,
or APIError, and message names the upstream URL that failed.`
}
