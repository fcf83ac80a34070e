package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ReverseGeocoder resolves coordinates into a display address.
// Lookups are best effort: callers must treat any error as "no address".
type ReverseGeocoder interface {
	Resolve(ctx context.Context, latitude float64, longitude float64) (string, error)
}

type httpGeocoder struct {
	baseURL string
	client  *http.Client
}

// NewHTTPGeocoder builds a client for a Nominatim-compatible reverse endpoint.
// An empty baseURL disables lookups entirely.
func NewHTTPGeocoder(baseURL string) ReverseGeocoder {
	return &httpGeocoder{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

func (g *httpGeocoder) Resolve(ctx context.Context, latitude float64, longitude float64) (string, error) {
	if g.baseURL == "" {
		return "", fmt.Errorf("reverse geocoding is not configured")
	}

	endpoint := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%s&lon=%s",
		g.baseURL,
		url.QueryEscape(fmt.Sprintf("%f", latitude)),
		url.QueryEscape(fmt.Sprintf("%f", longitude)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build reverse geocode request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode returned status %d", resp.StatusCode)
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode reverse geocode response: %w", err)
	}

	if body.DisplayName == "" {
		return "", fmt.Errorf("no address found for coordinates")
	}

	return body.DisplayName, nil
}
