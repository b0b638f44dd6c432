package dng

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"dngbridge/internal/logging"
)

// RequirementSummary is the projection of one requirement in a listing.
type RequirementSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// DefaultPageSize is the page size used when the caller does not supply one.
const DefaultPageSize = 100

// requirementEnvelopeKeys are the payload keys a requirement listing may
// live under, tried in order.
var requirementEnvelopeKeys = []string{"requirements", "items", "members"}

// requirementTitleKeys are the candidate fields carrying a requirement's
// title, tried in order.
var requirementTitleKeys = []string{"title", "name", "dcterms:title"}

// Requirements fetches the requirements of a project, walking upstream
// pagination sequentially and preserving upstream order.
//
// pageSize must be positive. maxPages caps the number of pages fetched; zero
// means unbounded. Reaching the cap truncates the result without error.
// Upstream signals continuation through a "nextPageUrl" body field or a
// Link header with rel="next"; absence of both terminates pagination. A
// malformed continuation reference is treated as "no next page".
func (c *Client) Requirements(ctx context.Context, projectID string, pageSize, maxPages int) ([]RequirementSummary, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, NewInvalidInputError("project_id must be a non-empty string", nil)
	}
	if pageSize <= 0 {
		return nil, NewInvalidInputError("page_size must be a positive integer", nil)
	}
	if maxPages < 0 {
		return nil, NewInvalidInputError("max_pages must be a positive integer if provided", nil)
	}

	listURL := fmt.Sprintf("%s/publish/projects/%s/requirements", c.cfg.BaseURL, url.PathEscape(projectID))
	next := fmt.Sprintf("%s?pageSize=%d", listURL, pageSize)
	op := fmt.Sprintf("requirements for project %s", projectID)

	requirements := []RequirementSummary{}
	page := 1

	for {
		resp, err := c.get(ctx, next, op)
		if err != nil {
			return nil, err
		}

		var envelope map[string]any
		if err := decode(resp, next, &envelope); err != nil {
			return nil, err
		}

		records := recordsAt(envelope, requirementEnvelopeKeys)
		for _, rec := range records {
			requirements = append(requirements, RequirementSummary{
				ID:    stringField(rec, "id", "identifier"),
				Title: stringField(rec, requirementTitleKeys...),
			})
		}
		logging.Debug("requirements page fetched",
			"project", projectID, "page", page, "pageItems", len(records), "total", len(requirements))

		if maxPages > 0 && page >= maxPages {
			// Cap reached: truncate without error.
			break
		}

		next = nextPageReference(envelope, resp.header)
		if next == "" {
			break
		}
		page++
	}

	return requirements, nil
}

// nextPageReference extracts the continuation reference from a listing
// response: the "nextPageUrl" body field first, then a Link header with
// rel="next". Anything malformed counts as absent.
func nextPageReference(envelope map[string]any, header http.Header) string {
	if nextURL, ok := envelope["nextPageUrl"].(string); ok && strings.TrimSpace(nextURL) != "" {
		return nextURL
	}
	return linkHeaderNext(header)
}

// linkHeaderNext parses RFC 8288 Link headers and returns the rel="next"
// target, or "" if none is present.
func linkHeaderNext(header http.Header) string {
	for _, value := range header.Values("Link") {
		for _, link := range strings.Split(value, ",") {
			parts := strings.Split(link, ";")
			if len(parts) < 2 {
				continue
			}
			target := strings.TrimSpace(parts[0])
			if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
				continue
			}
			for _, param := range parts[1:] {
				name, rel, ok := strings.Cut(strings.TrimSpace(param), "=")
				if !ok || !strings.EqualFold(strings.TrimSpace(name), "rel") {
					continue
				}
				if strings.Trim(strings.TrimSpace(rel), `"`) == "next" {
					return strings.Trim(target, "<>")
				}
			}
		}
	}
	return ""
}

// RequirementDetails fetches the full record of one requirement and returns
// it verbatim as an open attribute mapping. The upstream schema is not fully
// known in advance, so arbitrary keys (including link-typed properties) pass
// through unmodified; "id" and "title" are guaranteed present, synthesized
// as empty strings when upstream omits them.
func (c *Client) RequirementDetails(ctx context.Context, requirementID string) (map[string]any, error) {
	if strings.TrimSpace(requirementID) == "" {
		return nil, NewInvalidInputError("requirement_id must be a non-empty string", nil)
	}

	detailURL := fmt.Sprintf("%s/publish/requirements/%s", c.cfg.BaseURL, url.PathEscape(requirementID))

	resp, err := c.get(ctx, detailURL, fmt.Sprintf("requirement %s", requirementID))
	if err != nil {
		return nil, err
	}

	var details map[string]any
	if err := decode(resp, detailURL, &details); err != nil {
		return nil, err
	}
	if details == nil {
		details = map[string]any{}
	}
	if _, ok := details["id"]; !ok {
		details["id"] = ""
	}
	if _, ok := details["title"]; !ok {
		details["title"] = ""
	}
	return details, nil
}
