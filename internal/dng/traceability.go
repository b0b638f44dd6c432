package dng

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"dngbridge/internal/logging"
)

// Link is one traceability target: the URI of the related artifact.
type Link struct {
	Resource string `json:"resource"`
}

// noLinksMessage is the explicit empty-result marker text. Callers must be
// able to distinguish "resolved with no links" from "not found".
const noLinksMessage = "No traceability links found for this requirement."

// TraceabilityLinks maps link-relation names to their ordered targets. A
// set with no relations serializes as the explicit empty marker, not as an
// empty object.
type TraceabilityLinks struct {
	Links map[string][]Link
}

// Empty reports whether the requirement resolved with zero link relations.
func (t *TraceabilityLinks) Empty() bool {
	return len(t.Links) == 0
}

// MarshalJSON renders either the relation mapping or the empty marker.
// Relation keys serialize in sorted order, so repeated calls against an
// unchanged upstream produce identical bytes.
func (t *TraceabilityLinks) MarshalJSON() ([]byte, error) {
	if t.Empty() {
		return json.Marshal(struct {
			Message string `json:"message"`
			Links   []Link `json:"links"`
		}{
			Message: noLinksMessage,
			Links:   []Link{},
		})
	}
	return json.Marshal(t.Links)
}

// linkRelationKeys are the relation names known to carry traceability
// links in DNG's OSLC vocabulary.
var linkRelationKeys = map[string]bool{
	"links":                           true,
	"oslc_cm:relatedChangeManagement": true,
	"oslc_rm:validatedBy":             true,
	"oslc_qm:validatedByTestCase":     true,
	"oslc_am:tracksRequirement":       true,
	"dcterms:relation":                true,
}

// linkResourceKeys are the candidate fields carrying a link target's URI
// inside an object-valued entry.
var linkResourceKeys = []string{"resource", "rdf:resource", "href", "url"}

// isLinkRelation reports whether a requirement attribute name follows the
// link-relation naming conventions: a known relation, any "oslc:"-prefixed
// key, or any key mentioning "Link".
func isLinkRelation(key string) bool {
	return linkRelationKeys[key] || strings.HasPrefix(key, "oslc:") || strings.Contains(key, "Link")
}

// RequirementTraceability fetches the traceability links of a requirement.
//
// The requirement record is resolved first and scanned for link-typed
// attributes. When the record carries none, a dedicated links sub-resource
// is consulted; a 404 there means "no links", because the requirement itself
// already resolved. A requirement that cannot be resolved at all surfaces as
// a NotFoundError describing the traceability lookup, wrapping the detail
// fetch's fault.
func (c *Client) RequirementTraceability(ctx context.Context, requirementID string) (*TraceabilityLinks, error) {
	details, err := c.RequirementDetails(ctx, requirementID)
	if err != nil {
		if IsType(err, ErrNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf(
				"traceability lookup failed: requirement %s or its links endpoint not found", requirementID), err)
		}
		return nil, err
	}

	links := map[string][]Link{}
	for key, value := range details {
		if !isLinkRelation(key) {
			continue
		}
		if entries := linkEntries(value); len(entries) > 0 {
			links[key] = entries
		}
	}

	if len(links) == 0 {
		fallback, err := c.linksEndpoint(ctx, requirementID)
		if err != nil {
			return nil, err
		}
		links = fallback
	}

	logging.Debug("traceability links resolved", "requirement", requirementID, "relations", len(links))
	return &TraceabilityLinks{Links: links}, nil
}

// linksEndpoint queries the dedicated links sub-resource. The requirement
// record already resolved without link keys, so a missing endpoint is an
// empty result rather than a fault.
func (c *Client) linksEndpoint(ctx context.Context, requirementID string) (map[string][]Link, error) {
	linksURL := fmt.Sprintf("%s/publish/requirements/%s/links", c.cfg.BaseURL, url.PathEscape(requirementID))

	resp, err := c.get(ctx, linksURL, fmt.Sprintf("links for requirement %s", requirementID))
	if err != nil {
		if IsType(err, ErrNotFound) {
			return map[string][]Link{}, nil
		}
		return nil, err
	}

	var payload any
	if err := decode(resp, linksURL, &payload); err != nil {
		return nil, err
	}

	links := map[string][]Link{}
	switch p := payload.(type) {
	case map[string]any:
		for key, value := range p {
			if entries := linkEntries(value); len(entries) > 0 {
				links[key] = entries
			}
		}
	case []any:
		if entries := linkEntries(p); len(entries) > 0 {
			links["links"] = entries
		}
	}
	return links, nil
}

// linkEntries normalizes one upstream link value into the published shape.
// Upstream represents targets as a bare URI string, an object with a
// URI-bearing field, or a list of either; unrecognizable entries are
// skipped rather than failing the call.
func linkEntries(value any) []Link {
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) != "" {
			return []Link{{Resource: v}}
		}
	case map[string]any:
		if uri := stringField(v, linkResourceKeys...); uri != "" {
			return []Link{{Resource: uri}}
		}
	case []any:
		entries := make([]Link, 0, len(v))
		for _, item := range v {
			entries = append(entries, linkEntries(item)...)
		}
		if len(entries) > 0 {
			return entries
		}
	}
	return nil
}
