/*
# Module: types/location.go
Coordinate and reverse-geocoded location data structures.

## Linked Modules
(None - types package has no dependencies)

## Tags
data-types, location, geocoding

## Exports
Coordinates, LocationInfo

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "types/location.go" ;
    code:description "Coordinate and reverse-geocoded location data structures" ;
    code:exports :Coordinates, :LocationInfo ;
    code:tags "data-types", "location", "geocoding" .
<!-- End LinkedDoc RDF -->
*/
package types

// Coordinates is a latitude/longitude pair
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationInfo describes the administrative hierarchy around a coordinate pair.
// Fields hold "Unknown"/"Error" sentinel strings when reverse geocoding cannot
// resolve them, so every field is always a usable non-empty string.
type LocationInfo struct {
	CityName    string      `json:"cityName"`
	District    string      `json:"district"`
	Province    string      `json:"province"`
	FullAddress string      `json:"fullAddress"`
	Coordinates Coordinates `json:"coordinates"`
}
