// Package geocode resolves free-text addresses to coordinates through a
// Nominatim-compatible geocoding service.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jcanovas/vivenda/internal/config"
)

const geocodeTimeout = 10 * time.Second

// ErrNoMatch is returned when the geocoder finds nothing for the query.
var ErrNoMatch = errors.New("no match for address")

// Result is one forward-geocoded address.
type Result struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formattedAddress"`
}

// Client talks to the geocoding service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a geocoder client from configuration.
func NewClient(cfg config.GeocodeConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: geocodeTimeout},
	}
}

// nominatimPlace mirrors the fields we use from the service's response.
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Forward geocodes a free-text address, returning the best match.
func (c *Client) Forward(ctx context.Context, query string) (*Result, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}
	// Nominatim's usage policy requires an identifying agent.
	req.Header.Set("User-Agent", "vivenda/0.1")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoder unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}
	if len(places) == 0 {
		return nil, ErrNoMatch
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoder returned malformed latitude %q", places[0].Lat)
	}
	lng, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoder returned malformed longitude %q", places[0].Lon)
	}

	return &Result{
		Lat:              lat,
		Lng:              lng,
		FormattedAddress: places[0].DisplayName,
	}, nil
}
