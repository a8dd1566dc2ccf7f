/*
# Module: handlers/responses.go
Response body structures for the office locator API.

## Linked Modules
- [types/contact](../types/contact.go) - Contact data structures
- [types/location](../types/location.go) - Location data structures

## Tags
http, api, data-types

## Exports
FindOfficeResponse, CompareOfficesResponse, ComparedOffice

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "handlers/responses.go" ;
    code:description "Response body structures for the office locator API" ;
    code:linksTo [
        code:name "types/contact" ;
        code:path "../types/contact.go" ;
        code:relationship "Contact data structures"
    ], [
        code:name "types/location" ;
        code:path "../types/location.go" ;
        code:relationship "Location data structures"
    ] ;
    code:exports :FindOfficeResponse, :CompareOfficesResponse, :ComparedOffice ;
    code:tags "http", "api", "data-types" .
<!-- End LinkedDoc RDF -->
*/
package handlers

import "github.com/kjanuda/cityget/types"

// OfficeSummary identifies the matched office
type OfficeSummary struct {
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	Coordinates types.Coordinates `json:"coordinates"`
}

// OfficeContactBody flattens an office contact record for the response
type OfficeContactBody struct {
	Primary     types.PrimaryContact   `json:"primary"`
	AllEmails   []types.EmailContact   `json:"allEmails"`
	AllPhones   []types.PhoneContact   `json:"allPhones"`
	AllWebsites []types.WebsiteContact `json:"allWebsites"`
	Summary     types.ContactSummary   `json:"summary"`
}

// DistanceBody reports the driving route between user and office
type DistanceBody struct {
	RoadDistance      string `json:"roadDistance"`
	DrivingTime       string `json:"drivingTime"`
	DistanceInMeters  any    `json:"distanceInMeters,omitempty"`
	DurationInSeconds any    `json:"durationInSeconds,omitempty"`
}

// AdditionalInfoBody carries ratings, maps link and opening hours.
// Rating and OpeningHours mix types: numeric/list when known, sentinel
// strings otherwise.
type AdditionalInfoBody struct {
	Rating        any    `json:"rating"`
	TotalReviews  int    `json:"totalReviews"`
	GoogleMapsURL string `json:"googleMapsUrl"`
	OpeningHours  any    `json:"openingHours"`
}

// MetadataBody describes how the search was performed
type MetadataBody struct {
	SearchRadius      string `json:"searchRadius"`
	TotalOfficesFound int    `json:"totalOfficesFound"`
	DataStrategy      string `json:"dataStrategy"`
	Timestamp         string `json:"timestamp"`
}

// FindOfficeResponse is the full find-office result body
type FindOfficeResponse struct {
	UserLocation          types.LocationInfo `json:"userLocation"`
	Office                OfficeSummary      `json:"office"`
	DivisionalSecretariat struct {
		Contact OfficeContactBody `json:"contact"`
	} `json:"divisionalSecretariat"`
	PradeshiyaSabha struct {
		OfficeName string            `json:"officeName"`
		Contact    OfficeContactBody `json:"contact"`
	} `json:"pradeshiyaSabha"`
	Distance       DistanceBody       `json:"distance"`
	AdditionalInfo AdditionalInfoBody `json:"additionalInfo"`
	Metadata       MetadataBody       `json:"metadata"`
}

// ComparedOffice is one candidate in a compare-offices response
type ComparedOffice struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Distance      string `json:"distance"`
	Duration      string `json:"duration"`
	DistanceValue int    `json:"distanceValue"`
	Rating        any    `json:"rating"`
	Reviews       int    `json:"reviews"`
}

// CompareUserLocation is the trimmed location block in compare responses
type CompareUserLocation struct {
	CityName string `json:"cityName"`
	District string `json:"district"`
	Province string `json:"province"`
}

// CompareOfficesResponse is the compare-offices result body
type CompareOfficesResponse struct {
	UserLocation   CompareUserLocation `json:"userLocation"`
	Count          int                 `json:"count"`
	Offices        []ComparedOffice    `json:"offices"`
	Recommendation string              `json:"recommendation"`
	NearestCity    string              `json:"nearestCity"`
}
