/*
# Module: services/geo.go
Reverse geocoding of coordinates into a city/district/province hierarchy.

## Linked Modules
- [clients/google_maps](../clients/google_maps.go) - Google Maps API client
- [types/location](../types/location.go) - Location data structures
- [cache/cache](../cache/cache.go) - Response cache

## Tags
business-logic, geocoding, location

## Exports
GeoService, NewGeoService, LocationFromCoordinates

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "services/geo.go" ;
    code:description "Reverse geocoding of coordinates into an administrative hierarchy" ;
    code:linksTo [
        code:name "clients/google_maps" ;
        code:path "../clients/google_maps.go" ;
        code:relationship "Google Maps API client"
    ], [
        code:name "types/location" ;
        code:path "../types/location.go" ;
        code:relationship "Location data structures"
    ] ;
    code:exports :GeoService, :NewGeoService, :LocationFromCoordinates ;
    code:tags "business-logic", "geocoding", "location" .
<!-- End LinkedDoc RDF -->
*/
package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/kjanuda/cityget/cache"
	"github.com/kjanuda/cityget/clients"
	"github.com/kjanuda/cityget/types"
)

// GeoService converts coordinate pairs into location info
type GeoService struct {
	maps  *clients.GoogleMapsClient
	cache cache.Cache
}

// NewGeoService creates a new GeoService instance
func NewGeoService(maps *clients.GoogleMapsClient, c cache.Cache) *GeoService {
	return &GeoService{maps: maps, cache: c}
}

// LocationFromCoordinates reverse-geocodes a coordinate pair. It never fails:
// on provider errors or empty results every field is filled with a sentinel
// string so the caller always has a usable LocationInfo.
func (s *GeoService) LocationFromCoordinates(lat, lng float64) types.LocationInfo {
	cacheKey := fmt.Sprintf("geo:%.4f,%.4f", lat, lng)
	if s.cache != nil {
		if data, ok := s.cache.Get(cacheKey); ok {
			var cached types.LocationInfo
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached
			}
		}
	}

	log.Printf("🗺️  Converting coordinates to city name: %f, %f", lat, lng)

	coords := types.Coordinates{Latitude: lat, Longitude: lng}

	resp, err := s.maps.ReverseGeocode(lat, lng)
	if err != nil {
		log.Printf("❌ Reverse geocoding error: %v", err)
		return types.LocationInfo{
			CityName:    "Error determining location",
			District:    "Unknown",
			Province:    "Unknown",
			FullAddress: "Error",
			Coordinates: coords,
		}
	}

	if len(resp.Results) == 0 {
		return types.LocationInfo{
			CityName:    "Unknown Location",
			District:    "Unknown",
			Province:    "Unknown",
			FullAddress: "Unable to determine",
			Coordinates: coords,
		}
	}

	best := resp.Results[0]
	fullAddress := best.FormattedAddress

	var cityName, district, province string
	for _, component := range best.AddressComponents {
		for _, t := range component.Types {
			switch t {
			case "locality":
				cityName = component.LongName
			case "administrative_area_level_2":
				district = component.LongName
			case "administrative_area_level_1":
				province = component.LongName
			}
		}
	}

	// Fallback to formatted address parsing if city not found. Taking the
	// third-from-last comma token is an accepted approximation; it can be
	// wrong for short addresses.
	if cityName == "" {
		parts := strings.Split(fullAddress, ",")
		if len(parts) >= 3 {
			cityName = strings.TrimSpace(parts[len(parts)-3])
		}
		if cityName == "" {
			cityName = "Unknown Location"
		}
	}

	if district == "" {
		district = "Unknown"
	}
	if province == "" {
		province = "Unknown"
	}

	info := types.LocationInfo{
		CityName:    cityName,
		District:    district,
		Province:    province,
		FullAddress: fullAddress,
		Coordinates: coords,
	}

	log.Printf("✅ Location identified: %s, %s, %s", info.CityName, info.District, info.Province)

	if s.cache != nil {
		if data, err := json.Marshal(info); err == nil {
			s.cache.Set(cacheKey, data)
		}
	}

	return info
}
