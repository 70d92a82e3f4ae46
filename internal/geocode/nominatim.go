// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package geocode resolves GPS coordinates to human-readable place names
// via a Nominatim-compatible reverse-geocoding service. The lookup is the
// pipeline's only network dependency; every failure mode here must stay
// contained to a missing place name.
package geocode

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/photo-sidecar/internal/httputil"
	"github.com/pdiddy/photo-sidecar/pkg/types"
)

// DefaultBaseURL is the public Nominatim endpoint.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

const defaultZoom = 16

// Resolver converts a coordinate pair to a place name. An empty result
// with a nil error means the service answered but had no usable place.
type Resolver interface {
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}

// Client is a Resolver backed by an HTTP reverse-geocoding endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	zoom       int
}

// NewClient builds a Client from configuration, applying defaults for
// unset fields. A zero timeout leaves the request unbounded.
func NewClient(cfg types.GeocodeConfig) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	zoom := cfg.Zoom
	if zoom <= 0 {
		zoom = defaultZoom
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    base,
		userAgent:  cfg.UserAgent,
		zoom:       zoom,
	}
}

// reverseResponse is the subset of the Nominatim JSON body we consume.
type reverseResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		County  string `json:"county"`
		State   string `json:"state"`
	} `json:"address"`
}

// Reverse performs a single reverse lookup with address details and
// returns the most specific available locality: city, town, village,
// county, then state. No retry is attempted.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("zoom", strconv.Itoa(c.zoom))
	q.Set("addressdetails", "1")

	var body reverseResponse
	if err := httputil.GetJSON(ctx, c.httpClient, c.baseURL+"/reverse?"+q.Encode(), c.userAgent, &body); err != nil {
		return "", err
	}

	for _, candidate := range []string{
		body.Address.City,
		body.Address.Town,
		body.Address.Village,
		body.Address.County,
		body.Address.State,
	} {
		if candidate != "" {
			return candidate, nil
		}
	}
	return "", nil
}
