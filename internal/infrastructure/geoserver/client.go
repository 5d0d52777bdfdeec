// Package geoserver is a thin client for the external GeoServer WFS service.
package geoserver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultRequestTimeout = 15 * time.Second

// Client fetches city features from a GeoServer workspace over WFS.
type Client struct {
	baseURL   string
	workspace string
	http      *http.Client
}

// NewClient creates a Client for the GeoServer at baseURL (e.g.
// "http://localhost:8081/geoserver"). A nil httpClient gets a default with a
// request timeout.
func NewClient(baseURL, workspace string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}
	return &Client{baseURL: baseURL, workspace: workspace, http: httpClient}
}

// FetchCities performs a WFS GetFeature request for the cities layer filtered
// by year and returns the raw GeoJSON body.
func (c *Client) FetchCities(ctx context.Context, year int) ([]byte, error) {
	query := url.Values{}
	query.Set("service", "WFS")
	query.Set("version", "1.0.0")
	query.Set("request", "GetFeature")
	query.Set("typeName", c.workspace+":cities")
	query.Set("outputFormat", "application/json")
	query.Set("viewparams", fmt.Sprintf("year:%d", year))

	endpoint := fmt.Sprintf("%s/%s/ows?%s", c.baseURL, c.workspace, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("geoserver request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geoserver fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geoserver responded %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("geoserver body: %w", err)
	}
	return body, nil
}
