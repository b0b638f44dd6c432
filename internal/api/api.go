// Package api exposes the four DNG operations over plain HTTP.
//
// The routes mirror the tool paths under /mcp/tools/dng and translate typed
// faults into the published status mapping: ConfigurationError and APIError
// → 500, InvalidInputError → 400, AuthenticationError → 401, NotFoundError
// → 404. Handlers hold no state beyond the shared upstream client; every
// request is independent.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dngbridge/internal/dng"
	"dngbridge/internal/logging"

	"github.com/go-chi/chi/v5"
)

// handlers binds the routes to the shared upstream client.
type handlers struct {
	client *dng.Client
}

// NewRouter builds the HTTP boundary over the given upstream client.
func NewRouter(client *dng.Client) http.Handler {
	h := &handlers{client: client}

	r := chi.NewRouter()
	r.Route("/mcp/tools/dng", func(r chi.Router) {
		r.Get("/project_areas", h.listProjectAreas)
		r.Get("/projects/{projectID}/requirements", h.listRequirements)
		r.Get("/requirements/{requirementID}", h.getRequirement)
		r.Get("/requirements/{requirementID}/traceability", h.getTraceability)
	})
	return r
}

func (h *handlers) listProjectAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.client.ProjectAreas(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, areas)
}

func (h *handlers) listRequirements(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	pageSize := dng.DefaultPageSize
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, dng.NewInvalidInputError("page_size must be an integer", err))
			return
		}
		pageSize = parsed
	}

	maxPages := 0
	if raw := r.URL.Query().Get("max_pages"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, dng.NewInvalidInputError("max_pages must be an integer", err))
			return
		}
		if parsed <= 0 {
			// Omitted means unbounded; an explicit non-positive cap is caller error.
			writeError(w, r, dng.NewInvalidInputError("max_pages must be a positive integer if provided", nil))
			return
		}
		maxPages = parsed
	}

	requirements, err := h.client.Requirements(r.Context(), projectID, pageSize, maxPages)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, requirements)
}

func (h *handlers) getRequirement(w http.ResponseWriter, r *http.Request) {
	details, err := h.client.RequirementDetails(r.Context(), chi.URLParam(r, "requirementID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *handlers) getTraceability(w http.ResponseWriter, r *http.Request) {
	links, err := h.client.RequirementTraceability(r.Context(), chi.URLParam(r, "requirementID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

// errorBody is the published fault shape.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError maps a fault onto its HTTP status and JSON body. Anything
// outside the closed taxonomy becomes an opaque 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	fault, ok := dng.AsError(err)
	if !ok {
		logging.Error("unexpected error", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Error:   "UnexpectedError",
			Message: "An unexpected error occurred.",
		})
		return
	}

	logging.Warn("request failed", "path", r.URL.Path, "type", fault.Type, "error", fault.Message)
	writeJSON(w, fault.Type.HTTPStatus(), errorBody{
		Error:   string(fault.Type),
		Message: fault.Message,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode response", "error", err)
	}
}
