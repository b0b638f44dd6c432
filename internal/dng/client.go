// Package dng implements the read-only client for an IBM DOORS Next
// Generation (DNG) server's Reportable REST / OSLC API.
//
// The Client performs authenticated GETs and maps every upstream failure
// mode onto the closed taxonomy in errors.go. On top of it sit four resource
// fetchers (project areas, requirement listing, requirement details,
// traceability links) that translate upstream payloads into the published
// response shapes. All values are derived purely from the upstream response
// for that call; nothing is cached or merged across calls.
package dng

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"dngbridge/internal/config"
	"dngbridge/internal/logging"
)

// defaultTimeout bounds a single upstream request. There is no retry
// policy: a failed request surfaces immediately as a typed fault.
const defaultTimeout = 30 * time.Second

// Client issues authenticated requests against a DNG server. It holds only
// the immutable connection configuration and an HTTP client, so a single
// instance is safe for concurrent use across requests.
type Client struct {
	cfg  config.Config
	http *http.Client
}

// New creates a Client for the given connection configuration. The
// configuration is validated lazily on first use, not here, so a server can
// be constructed before credentials are present.
func New(cfg config.Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: defaultTimeout},
	}
}

// BaseURL returns the configured upstream root (without trailing slash).
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

// upstreamResponse carries the raw body and headers of a successful GET.
// The Link header participates in pagination (requirements.go).
type upstreamResponse struct {
	body   []byte
	header http.Header
}

// get performs exactly one authenticated GET against url and returns the
// raw response, or a typed fault. op is a short label for the resource being
// fetched, used in fault messages. No network call is made when the
// connection configuration is incomplete.
func (c *Client) get(ctx context.Context, url, op string) (*upstreamResponse, error) {
	if missing := c.cfg.Missing(); len(missing) > 0 {
		return nil, NewConfigurationError(fmt.Sprintf(
			"DNG server configuration is incomplete: set %s", strings.Join(missing, ", ")), nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewAPIError(fmt.Sprintf("failed to create request for %s", url), err)
	}
	req.SetBasicAuth(c.cfg.Username, c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("OSLC-Core-Version", "2.0")

	logging.Debug("DNG request", "op", op, "url", url)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, NewAPIError(fmt.Sprintf("request failed for %s: %v", url, err), err)
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, NewAPIError(fmt.Sprintf("failed to read response from %s: %v", url, err), err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, NewAuthenticationError(fmt.Sprintf(
			"authentication failed for %s: %s", url, statusDetail(resp, body)), nil)
	case resp.StatusCode == http.StatusNotFound:
		return nil, NewNotFoundError(fmt.Sprintf(
			"%s not found at %s: %s", op, url, statusDetail(resp, body)), nil)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, NewAPIError(fmt.Sprintf(
			"DNG API error for %s: %s", url, statusDetail(resp, body)), nil)
	}

	return &upstreamResponse{body: body, header: resp.Header}, nil
}

// decode unmarshals a response body into v, translating a malformed payload
// into an APIError naming the source URL.
func decode(r *upstreamResponse, url string, v any) error {
	if err := json.Unmarshal(r.body, v); err != nil {
		return NewAPIError(fmt.Sprintf("failed to decode JSON response from %s: %v", url, err), err)
	}
	return nil
}

// statusDetail renders the upstream status line plus the response text,
// truncated so a verbose upstream error page doesn't flood fault messages.
func statusDetail(resp *http.Response, body []byte) string {
	const maxBodyInError = 512

	text := strings.TrimSpace(string(body))
	if len(text) > maxBodyInError {
		text = text[:maxBodyInError] + "..."
	}
	if text == "" {
		return resp.Status
	}
	return fmt.Sprintf("%s %s", resp.Status, text)
}
