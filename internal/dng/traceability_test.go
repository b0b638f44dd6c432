package dng

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// traceUpstream serves a requirement detail body and, optionally, a links
// sub-resource body (404 when empty).
func traceUpstream(detail, links string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/publish/requirements/REQ-1/links" {
			if links == "" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte(links))
			return
		}
		_, _ = w.Write([]byte(detail))
	}
}

func TestRequirementTraceability_LinksInDetails(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(traceUpstream(`{
		"id": "REQ-1",
		"title": "Braking distance",
		"oslc_rm:validatedBy": [
			{"rdf:resource": "https://qm.example.com/testcases/TC-7"},
			{"rdf:resource": "https://qm.example.com/testcases/TC-8"}
		],
		"dcterms:relation": "https://dng.example.com/requirements/REQ-2",
		"oslc:serviceProvider": {"resource": "https://dng.example.com/sp/1"},
		"externalLinks": ["https://cm.example.com/changes/CR-3"],
		"priority": "high"
	}`, ""))
	defer server.Close()

	got, err := testClient(server.URL).RequirementTraceability(context.Background(), "REQ-1")
	require.NoError(t, err)
	require.False(t, got.Empty())

	assert.Equal(t, map[string][]Link{
		"oslc_rm:validatedBy": {
			{Resource: "https://qm.example.com/testcases/TC-7"},
			{Resource: "https://qm.example.com/testcases/TC-8"},
		},
		"dcterms:relation":     {{Resource: "https://dng.example.com/requirements/REQ-2"}},
		"oslc:serviceProvider": {{Resource: "https://dng.example.com/sp/1"}},
		"externalLinks":        {{Resource: "https://cm.example.com/changes/CR-3"}},
	}, got.Links)
}

func TestRequirementTraceability_IgnoresNonLinkAttributes(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(traceUpstream(`{
		"id": "REQ-1",
		"title": "Has a Link in no key",
		"priority": "high",
		"oslc_cm:relatedChangeManagement": ["https://cm.example.com/changes/CR-1"]
	}`, ""))
	defer server.Close()

	got, err := testClient(server.URL).RequirementTraceability(context.Background(), "REQ-1")
	require.NoError(t, err)

	require.Len(t, got.Links, 1)
	assert.Contains(t, got.Links, "oslc_cm:relatedChangeManagement")
}

func TestRequirementTraceability_EmptyMarker(t *testing.T) {
	t.Parallel()
	// Requirement resolves, carries no link keys, and the dedicated links
	// endpoint does not exist: that is "no links", not "not found".
	server := httptest.NewServer(traceUpstream(`{"id": "REQ-1", "title": "Lonely"}`, ""))
	defer server.Close()

	got, err := testClient(server.URL).RequirementTraceability(context.Background(), "REQ-1")
	require.NoError(t, err)
	require.True(t, got.Empty())

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"message": "No traceability links found for this requirement.", "links": []}`,
		string(raw))
}

func TestRequirementTraceability_FallbackEndpointObject(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(traceUpstream(
		`{"id": "REQ-1", "title": "Fallback"}`,
		`{"oslc_qm:validatedByTestCase": [{"href": "https://qm.example.com/testcases/TC-1"}]}`))
	defer server.Close()

	got, err := testClient(server.URL).RequirementTraceability(context.Background(), "REQ-1")
	require.NoError(t, err)
	require.False(t, got.Empty())
	assert.Equal(t, []Link{{Resource: "https://qm.example.com/testcases/TC-1"}},
		got.Links["oslc_qm:validatedByTestCase"])
}

func TestRequirementTraceability_FallbackEndpointList(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(traceUpstream(
		`{"id": "REQ-1", "title": "Fallback"}`,
		`["https://cm.example.com/changes/CR-1", {"url": "https://cm.example.com/changes/CR-2"}]`))
	defer server.Close()

	got, err := testClient(server.URL).RequirementTraceability(context.Background(), "REQ-1")
	require.NoError(t, err)
	assert.Equal(t, []Link{
		{Resource: "https://cm.example.com/changes/CR-1"},
		{Resource: "https://cm.example.com/changes/CR-2"},
	}, got.Links["links"])
}

func TestRequirementTraceability_NotFoundWrapsDetailFault(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(statusHandler(http.StatusNotFound, "no such requirement"))
	defer server.Close()
	client := testClient(server.URL)

	_, detailErr := client.RequirementDetails(context.Background(), "REQ-404")
	require.Error(t, detailErr)

	_, traceErr := client.RequirementTraceability(context.Background(), "REQ-404")
	require.Error(t, traceErr)

	assert.True(t, IsType(traceErr, ErrNotFound), "got %v", traceErr)
	assert.Contains(t, traceErr.Error(), "traceability")
	assert.NotEqual(t, detailErr.Error(), traceErr.Error(),
		"traceability not-found must be distinguishable from the detail fetch's")

	e, ok := AsError(traceErr)
	require.True(t, ok)
	require.NotNil(t, e.Cause, "traceability not-found must wrap the underlying fault")
	assert.True(t, IsType(e.Cause, ErrNotFound))
}

func TestRequirementTraceability_AuthFaultPropagates(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(statusHandler(http.StatusUnauthorized, "Unauthorized"))
	defer server.Close()

	_, err := testClient(server.URL).RequirementTraceability(context.Background(), "REQ-1")
	require.Error(t, err)
	assert.True(t, IsType(err, ErrAuthentication), "got %v", err)
}

func TestLinkEntries_SkipsUnrecognizable(t *testing.T) {
	t.Parallel()
	assert.Nil(t, linkEntries(""))
	assert.Nil(t, linkEntries(nil))
	assert.Nil(t, linkEntries(42))
	assert.Nil(t, linkEntries(map[string]any{"label": "no uri here"}))
	assert.Nil(t, linkEntries([]any{17, map[string]any{}}))

	assert.Equal(t, []Link{{Resource: "https://a"}}, linkEntries("https://a"))
	assert.Equal(t, []Link{{Resource: "https://a"}},
		linkEntries(map[string]any{"rdf:resource": "https://a"}))
}

func TestIsLinkRelation(t *testing.T) {
	t.Parallel()
	assert.True(t, isLinkRelation("links"))
	assert.True(t, isLinkRelation("oslc_rm:validatedBy"))
	assert.True(t, isLinkRelation("oslc:anything"))
	assert.True(t, isLinkRelation("customLinkSet"))
	assert.False(t, isLinkRelation("title"))
	assert.False(t, isLinkRelation("priority"))
}
