/*
# Module: types/api_types.go
External API request and response data structures (Google Maps, Gemini).

## Linked Modules
(None - types package has no dependencies)

## Tags
data-types, api-client

## Exports
GeocodeResponse, PlacesNearbyResponse, PlaceResult, PlaceDetailsResponse, PlaceDetailsResult, DistanceMatrixResponse, GeminiRequest, GeminiResponse

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "types/api_types.go" ;
    code:description "External API request and response data structures" ;
    code:exports :GeocodeResponse, :PlacesNearbyResponse, :PlaceResult, :PlaceDetailsResponse, :PlaceDetailsResult, :DistanceMatrixResponse, :GeminiRequest, :GeminiResponse ;
    code:tags "data-types", "api-client" .
<!-- End LinkedDoc RDF -->
*/
package types

// LatLng is a geographic point in Google Maps API responses
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geometry wraps a place's location geometry
type Geometry struct {
	Location LatLng `json:"location"`
}

// AddressComponent is one component of a reverse-geocoded address
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// GeocodeResult is one result from the reverse geocoding API
type GeocodeResult struct {
	AddressComponents []AddressComponent `json:"address_components"`
	FormattedAddress  string             `json:"formatted_address"`
}

// GeocodeResponse represents the Google reverse geocoding API response
type GeocodeResponse struct {
	Results []GeocodeResult `json:"results"`
	Status  string          `json:"status"`
}

// PlaceResult is one place from a nearby search
type PlaceResult struct {
	Name     string   `json:"name"`
	PlaceID  string   `json:"place_id"`
	Vicinity string   `json:"vicinity,omitempty"`
	Types    []string `json:"types,omitempty"`
	Geometry Geometry `json:"geometry"`
}

// PlacesNearbyResponse represents the Google Places nearby search response
type PlacesNearbyResponse struct {
	Results []PlaceResult `json:"results"`
	Status  string        `json:"status"`
}

// PlaceOpeningHours holds a place's weekly opening hours
type PlaceOpeningHours struct {
	WeekdayText []string `json:"weekday_text"`
}

// PlaceDetailsResult is the detailed record for a single place
type PlaceDetailsResult struct {
	Name                     string             `json:"name"`
	FormattedAddress         string             `json:"formatted_address"`
	FormattedPhoneNumber     string             `json:"formatted_phone_number"`
	InternationalPhoneNumber string             `json:"international_phone_number"`
	Website                  string             `json:"website"`
	URL                      string             `json:"url"`
	Geometry                 Geometry           `json:"geometry"`
	OpeningHours             *PlaceOpeningHours `json:"opening_hours"`
	Rating                   float64            `json:"rating"`
	UserRatingsTotal         int                `json:"user_ratings_total"`
}

// PlaceDetailsResponse represents the Google Place Details API response
type PlaceDetailsResponse struct {
	Result *PlaceDetailsResult `json:"result"`
	Status string              `json:"status"`
}

// TextValue is a human-readable text paired with its numeric value
type TextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// DistanceElement is one origin/destination element of a distance matrix
type DistanceElement struct {
	Status   string    `json:"status"`
	Distance TextValue `json:"distance"`
	Duration TextValue `json:"duration"`
}

// DistanceMatrixRow is one row of distance matrix elements
type DistanceMatrixRow struct {
	Elements []DistanceElement `json:"elements"`
}

// DistanceMatrixResponse represents the Google Distance Matrix API response
type DistanceMatrixResponse struct {
	Rows   []DistanceMatrixRow `json:"rows"`
	Status string              `json:"status"`
}

// DistanceInfo is the road distance result handed to callers.
// Status is the provider element status, or "ERROR"/"UNKNOWN" sentinels.
type DistanceInfo struct {
	Distance      string `json:"distance"`
	DistanceValue int    `json:"distanceValue,omitempty"`
	Duration      string `json:"duration"`
	DurationValue int    `json:"durationValue,omitempty"`
	Status        string `json:"status"`
}

// GeminiPart is one part of a Gemini content block
type GeminiPart struct {
	Text string `json:"text"`
}

// GeminiContent is a role-tagged content block in Gemini API format
type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

// GeminiTool enables a tool for a Gemini request; the empty google_search
// object turns on web-search grounding
type GeminiTool struct {
	GoogleSearch *struct{} `json:"google_search,omitempty"`
}

// GeminiGenerationConfig tunes Gemini output generation
type GeminiGenerationConfig struct {
	Temperature float64 `json:"temperature"`
}

// GeminiRequest represents a request to the Gemini generateContent API
type GeminiRequest struct {
	Contents         []GeminiContent         `json:"contents"`
	Tools            []GeminiTool            `json:"tools,omitempty"`
	GenerationConfig *GeminiGenerationConfig `json:"generationConfig,omitempty"`
}

// GeminiResponse represents a response from the Gemini generateContent API
type GeminiResponse struct {
	Candidates []struct {
		Content GeminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
