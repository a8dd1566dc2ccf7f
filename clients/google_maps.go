/*
# Module: clients/google_maps.go
Google Maps Platform client: reverse geocoding, nearby search, place details,
distance matrix.

## Linked Modules
- [types/api_types](../types/api_types.go) - Google Maps API response types

## Tags
api-client, google, maps, geolocation

## Exports
GoogleMapsClient, NewGoogleMapsClient, ReverseGeocode, NearbySearch, PlaceDetails, DistanceMatrix

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "clients/google_maps.go" ;
    code:description "Google Maps Platform client for geocoding, places, and routing" ;
    code:linksTo [
        code:name "types/api_types" ;
        code:path "../types/api_types.go" ;
        code:relationship "Google Maps API response types"
    ] ;
    code:exports :GoogleMapsClient, :NewGoogleMapsClient, :ReverseGeocode, :NearbySearch, :PlaceDetails, :DistanceMatrix ;
    code:tags "api-client", "google", "maps", "geolocation" .
<!-- End LinkedDoc RDF -->
*/
package clients

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kjanuda/cityget/types"
)

const defaultMapsBaseURL = "https://maps.googleapis.com"

// GoogleMapsClient handles Google Maps Platform API requests
type GoogleMapsClient struct {
	apiKey     string
	httpClient *http.Client

	// BaseURL defaults to the public Google Maps endpoint
	BaseURL string
}

// NewGoogleMapsClient creates a new Google Maps API client
func NewGoogleMapsClient(apiKey string) *GoogleMapsClient {
	return &GoogleMapsClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    defaultMapsBaseURL,
	}
}

// ReverseGeocode converts a coordinate pair into address results
func (c *GoogleMapsClient) ReverseGeocode(lat, lng float64) (*types.GeocodeResponse, error) {
	params := url.Values{}
	params.Add("latlng", fmt.Sprintf("%f,%f", lat, lng))

	var result types.GeocodeResponse
	if err := c.get("/maps/api/geocode/json", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// NearbySearch finds places matching a keyword within radiusMeters of the point
func (c *GoogleMapsClient) NearbySearch(lat, lng float64, radiusMeters int, keyword string) (*types.PlacesNearbyResponse, error) {
	params := url.Values{}
	params.Add("location", fmt.Sprintf("%.6f,%.6f", lat, lng))
	params.Add("radius", fmt.Sprintf("%d", radiusMeters))
	params.Add("keyword", keyword)

	var result types.PlacesNearbyResponse
	if err := c.get("/maps/api/place/nearbysearch/json", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PlaceDetails resolves a place ID into its detailed record, limited to fields
func (c *GoogleMapsClient) PlaceDetails(placeID string, fields []string) (*types.PlaceDetailsResult, error) {
	params := url.Values{}
	params.Add("place_id", placeID)
	params.Add("fields", strings.Join(fields, ","))

	var result types.PlaceDetailsResponse
	if err := c.get("/maps/api/place/details/json", params, &result); err != nil {
		return nil, err
	}
	if result.Result == nil {
		return nil, fmt.Errorf("place details missing for %s (status %s)", placeID, result.Status)
	}
	return result.Result, nil
}

// DistanceMatrix computes driving distance and duration between two points
func (c *GoogleMapsClient) DistanceMatrix(originLat, originLng, destLat, destLng float64) (*types.DistanceMatrixResponse, error) {
	params := url.Values{}
	params.Add("origins", fmt.Sprintf("%f,%f", originLat, originLng))
	params.Add("destinations", fmt.Sprintf("%f,%f", destLat, destLng))
	params.Add("mode", "driving")
	params.Add("units", "metric")

	var result types.DistanceMatrixResponse
	if err := c.get("/maps/api/distancematrix/json", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// get performs a keyed GET against a Maps API path and decodes the JSON body
func (c *GoogleMapsClient) get(path string, params url.Values, out interface{}) error {
	if c.apiKey == "" {
		return fmt.Errorf("Google Maps API key not configured")
	}
	params.Add("key", c.apiKey)

	fullURL := c.BaseURL + path + "?" + params.Encode()

	resp, err := c.httpClient.Get(fullURL)
	if err != nil {
		return fmt.Errorf("failed to call Google Maps API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Google Maps API error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse Google Maps response: %w", err)
	}
	return nil
}
