package dng

import (
	"context"

	"dngbridge/internal/logging"
)

// ProjectArea is one top-level organizational container of requirements on
// the DNG server.
type ProjectArea struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// projectAreaEnvelopeKeys are the payload keys the project-area list may
// live under, tried in order. DNG deployments differ; "members" is the OSLC
// spelling.
var projectAreaEnvelopeKeys = []string{"project_areas", "items", "members"}

// projectAreaNameKeys are the candidate fields carrying a project area's
// display name, tried in order.
var projectAreaNameKeys = []string{"name", "title", "dcterms:title"}

// ProjectAreas fetches the full ordered list of project areas. The upstream
// endpoint is not paginated; one GET returns the whole set. A record without
// a recognizable name field yields an empty name, never a fault.
func (c *Client) ProjectAreas(ctx context.Context) ([]ProjectArea, error) {
	url := c.cfg.BaseURL + "/publish/project_areas"

	resp, err := c.get(ctx, url, "project areas")
	if err != nil {
		return nil, err
	}

	var envelope map[string]any
	if err := decode(resp, url, &envelope); err != nil {
		return nil, err
	}

	records := recordsAt(envelope, projectAreaEnvelopeKeys)
	areas := make([]ProjectArea, 0, len(records))
	for _, rec := range records {
		areas = append(areas, ProjectArea{
			ID:   stringField(rec, "id", "identifier"),
			Name: stringField(rec, projectAreaNameKeys...),
		})
	}

	logging.Debug("project areas fetched", "count", len(areas))
	return areas, nil
}
