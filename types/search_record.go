/*
# Module: types/search_record.go
Persisted record of a completed office search.

## Linked Modules
(None - types package has no dependencies)

## Tags
data-types, search-log, persistence

## Exports
SearchRecord

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "types/search_record.go" ;
    code:description "Persisted record of a completed office search" ;
    code:exports :SearchRecord ;
    code:tags "data-types", "search-log", "persistence" .
<!-- End LinkedDoc RDF -->
*/
package types

import "time"

// SearchRecord captures the outcome of one /find-office request for the
// operational search log
type SearchRecord struct {
	ID                 string    `json:"id" dynamodbav:"id"`
	Latitude           float64   `json:"latitude" dynamodbav:"latitude"`
	Longitude          float64   `json:"longitude" dynamodbav:"longitude"`
	CityName           string    `json:"city_name" dynamodbav:"city_name"`
	District           string    `json:"district" dynamodbav:"district"`
	OfficeName         string    `json:"office_name" dynamodbav:"office_name"`
	OfficeAddress      string    `json:"office_address" dynamodbav:"office_address"`
	SearchRadiusMeters int       `json:"search_radius_meters" dynamodbav:"search_radius_meters"`
	OfficesFound       int       `json:"offices_found" dynamodbav:"offices_found"`
	RoadDistance       string    `json:"road_distance" dynamodbav:"road_distance"`
	DrivingTime        string    `json:"driving_time" dynamodbav:"driving_time"`
	Timestamp          time.Time `json:"timestamp" dynamodbav:"timestamp"`
}
