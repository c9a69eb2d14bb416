// Package client is the Go binding for the AIS backend consumed by
// dashboard tooling. It implements the catalog source for the filter state
// manager and the search/analytics calls the views issue.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rajstories/Aadhaar-Intelligence-System/filterstate"
)

// SearchResult is one hit from the global search endpoint.
type SearchResult struct {
	ID       string            `json:"id"`
	Type     string            `json:"type"` // region | subRegion | alert
	Title    string            `json:"title"`
	Subtitle string            `json:"subtitle,omitempty"`
	Status   string            `json:"status,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// SearchResponse is the global search payload.
type SearchResponse struct {
	Query      string         `json:"query"`
	Results    []SearchResult `json:"results"`
	TotalCount int            `json:"totalCount"`
}

// KPIOverview mirrors the analytics overview payload.
type KPIOverview struct {
	TotalEnrolments        int64   `json:"total_enrolments"`
	EnrolmentGrowthPercent float64 `json:"enrolment_growth_percent"`
	TotalUpdates           int64   `json:"total_updates"`
	UpdateGrowthPercent    float64 `json:"update_growth_percent"`
	TotalAuthentications   int64   `json:"total_authentications"`
	AuthGrowthPercent      float64 `json:"auth_growth_percent"`
	SaturationPercent      float64 `json:"saturation_percent"`
	ActiveAlerts           int     `json:"active_alerts"`
}

// apiEnvelope is the backend's standard response wrapper.
type apiEnvelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   bool            `json:"error,omitempty"`
}

// Client talks to one AIS backend instance.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client for the given base URL, e.g. "http://localhost:8081".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewWithHTTPClient allows injecting a custom transport, mainly for tests.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, http: hc}
}

// SetToken sets the admin JWT sent as a Bearer header on every request.
// Required for the /admin endpoints; the public catalog and search endpoints
// work without it.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env apiEnvelope
		if jsonErr := json.Unmarshal(body, &env); jsonErr == nil && env.Message != "" {
			return fmt.Errorf("backend returned %d: %s", resp.StatusCode, env.Message)
		}
		return fmt.Errorf("backend returned %d", resp.StatusCode)
	}

	var env apiEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}

// FetchCatalog implements filterstate.CatalogSource against the metadata
// endpoint. Failure handling (fallback substitution) lives in the manager,
// not here.
func (c *Client) FetchCatalog(ctx context.Context) (*filterstate.Catalog, error) {
	var catalog filterstate.Catalog
	if err := c.getJSON(ctx, "/api/v1/metadata/filters", &catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Search runs a global search for the given query.
func (c *Client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	var res SearchResponse
	if err := c.getJSON(ctx, "/api/v1/search?q="+url.QueryEscape(query), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// KPIOverview fetches the dashboard KPIs narrowed by the given filter query
// string (as produced by filterstate.Filters.QueryString).
func (c *Client) KPIOverview(ctx context.Context, filterQuery string) (*KPIOverview, error) {
	var kpi KPIOverview
	if err := c.getJSON(ctx, "/api/v1/admin/analytics/overview"+filterQuery, &kpi); err != nil {
		return nil, err
	}
	return &kpi, nil
}
