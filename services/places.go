/*
# Module: services/places.go
Expanding-radius office search and place detail fetching.

## Linked Modules
- [clients/google_maps](../clients/google_maps.go) - Google Maps API client
- [types/api_types](../types/api_types.go) - Places API types
- [cache/cache](../cache/cache.go) - Response cache

## Tags
business-logic, search, places, geolocation

## Exports
OfficeSearchService, NewOfficeSearchService, SearchAtRadius, FindNearestOffice, CompareCandidates, GetOfficeDetails

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "services/places.go" ;
    code:description "Expanding-radius office search and place detail fetching" ;
    code:linksTo [
        code:name "clients/google_maps" ;
        code:path "../clients/google_maps.go" ;
        code:relationship "Google Maps API client"
    ], [
        code:name "types/api_types" ;
        code:path "../types/api_types.go" ;
        code:relationship "Places API types"
    ] ;
    code:exports :OfficeSearchService, :NewOfficeSearchService, :SearchAtRadius, :FindNearestOffice, :CompareCandidates, :GetOfficeDetails ;
    code:tags "business-logic", "search", "places", "geolocation" .
<!-- End LinkedDoc RDF -->
*/
package services

import (
	"encoding/json"
	"log"

	"github.com/kjanuda/cityget/cache"
	"github.com/kjanuda/cityget/clients"
	"github.com/kjanuda/cityget/types"
)

const (
	// OfficeKeyword is the nearby-search keyword for the target office type
	OfficeKeyword = "Divisional Secretariat Office"

	// InitialRadiusMeters through MaxRadiusMeters bound the expanding search
	InitialRadiusMeters = 3000
	RadiusStepMeters    = 5000
	MaxRadiusMeters     = 50000

	// CompareRadiusMeters is the fixed radius for the comparison flow
	CompareRadiusMeters = 20000
)

// placeDetailFields is the fixed field list requested from the details API
var placeDetailFields = []string{
	"name",
	"formatted_address",
	"formatted_phone_number",
	"international_phone_number",
	"website",
	"url",
	"geometry",
	"opening_hours",
	"rating",
	"user_ratings_total",
}

// OfficeSearchService finds Divisional Secretariat offices near a point
type OfficeSearchService struct {
	maps  *clients.GoogleMapsClient
	cache cache.Cache
}

// NewOfficeSearchService creates a new OfficeSearchService instance
func NewOfficeSearchService(maps *clients.GoogleMapsClient, c cache.Cache) *OfficeSearchService {
	return &OfficeSearchService{maps: maps, cache: c}
}

// SearchAtRadius runs a single nearby-search tier at the given radius.
// It holds no loop state so concurrent requests cannot interfere.
func (s *OfficeSearchService) SearchAtRadius(lat, lng float64, radiusMeters int) ([]types.PlaceResult, error) {
	resp, err := s.maps.NearbySearch(lat, lng, radiusMeters, OfficeKeyword)
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// FindNearestOffice runs the expanding-radius search: 3 km to start, widening
// by 5 km per tier up to the 50 km ceiling. The provider-ranked first result
// of the first non-empty tier wins; there is no distance-based re-ranking
// across tiers. Returns the match, the radius that produced it, and how many
// offices that tier contained; a nil match means nothing was found.
func (s *OfficeSearchService) FindNearestOffice(lat, lng float64) (*types.PlaceResult, int, int, error) {
	for radius := InitialRadiusMeters; radius <= MaxRadiusMeters; radius += RadiusStepMeters {
		log.Printf("🔍 Searching within %dkm for %s...", radius/1000, OfficeKeyword)

		results, err := s.SearchAtRadius(lat, lng, radius)
		if err != nil {
			return nil, 0, 0, err
		}

		if len(results) > 0 {
			log.Printf("✅ Found %d office(s) within %dkm", len(results), radius/1000)
			match := results[0]
			return &match, radius, len(results), nil
		}
	}
	return nil, MaxRadiusMeters, 0, nil
}

// CompareCandidates fetches up to maxResults offices at the fixed comparison
// radius, in provider order
func (s *OfficeSearchService) CompareCandidates(lat, lng float64, maxResults int) ([]types.PlaceResult, error) {
	results, err := s.SearchAtRadius(lat, lng, CompareRadiusMeters)
	if err != nil {
		return nil, err
	}
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// GetOfficeDetails resolves a place ID into its detailed record. A nil return
// means the details could not be fetched; callers must treat that as fatal
// because address and coordinates are required downstream.
func (s *OfficeSearchService) GetOfficeDetails(placeID string) *types.PlaceDetailsResult {
	cacheKey := "place:" + placeID
	if s.cache != nil {
		if data, ok := s.cache.Get(cacheKey); ok {
			var cached types.PlaceDetailsResult
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached
			}
		}
	}

	details, err := s.maps.PlaceDetails(placeID, placeDetailFields)
	if err != nil {
		log.Printf("❌ Error fetching place details: %v", err)
		return nil
	}

	if s.cache != nil {
		if data, err := json.Marshal(details); err == nil {
			s.cache.Set(cacheKey, data)
		}
	}

	return details
}
