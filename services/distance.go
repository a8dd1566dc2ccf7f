/*
# Module: services/distance.go
Road distance and driving time between two coordinate pairs.

## Linked Modules
- [clients/google_maps](../clients/google_maps.go) - Google Maps API client
- [types/api_types](../types/api_types.go) - Distance matrix types

## Tags
business-logic, distance, routing

## Exports
DistanceService, NewDistanceService, RoadDistance

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "services/distance.go" ;
    code:description "Road distance and driving time between two coordinate pairs" ;
    code:linksTo [
        code:name "clients/google_maps" ;
        code:path "../clients/google_maps.go" ;
        code:relationship "Google Maps API client"
    ], [
        code:name "types/api_types" ;
        code:path "../types/api_types.go" ;
        code:relationship "Distance matrix types"
    ] ;
    code:exports :DistanceService, :NewDistanceService, :RoadDistance ;
    code:tags "business-logic", "distance", "routing" .
<!-- End LinkedDoc RDF -->
*/
package services

import (
	"log"

	"github.com/kjanuda/cityget/clients"
	"github.com/kjanuda/cityget/types"
)

// DistanceService computes driving distance via the distance matrix API
type DistanceService struct {
	maps *clients.GoogleMapsClient
}

// NewDistanceService creates a new DistanceService instance
func NewDistanceService(maps *clients.GoogleMapsClient) *DistanceService {
	return &DistanceService{maps: maps}
}

// RoadDistance computes the driving distance and duration from the user point
// to the office point. It never fails: any provider error or non-OK element
// status degrades to a sentinel record so callers need no error branch.
func (s *DistanceService) RoadDistance(userLat, userLng, officeLat, officeLng float64) types.DistanceInfo {
	resp, err := s.maps.DistanceMatrix(userLat, userLng, officeLat, officeLng)
	if err != nil {
		log.Printf("❌ Distance calculation error: %v", err)
		return types.DistanceInfo{
			Distance: "Error calculating distance",
			Duration: "Not available",
			Status:   "ERROR",
		}
	}

	var element *types.DistanceElement
	if len(resp.Rows) > 0 && len(resp.Rows[0].Elements) > 0 {
		element = &resp.Rows[0].Elements[0]
	}

	if element == nil || element.Status != "OK" {
		status := "UNKNOWN"
		if element != nil && element.Status != "" {
			status = element.Status
		}
		return types.DistanceInfo{
			Distance: "Not available",
			Duration: "Not available",
			Status:   status,
		}
	}

	return types.DistanceInfo{
		Distance:      element.Distance.Text,
		DistanceValue: element.Distance.Value,
		Duration:      element.Duration.Text,
		DurationValue: element.Duration.Value,
		Status:        "OK",
	}
}
