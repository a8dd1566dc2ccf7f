/*
# Module: handlers/office.go
HTTP handlers for the office locator API: location lookup, nearest-office
search with full contact discovery, office comparison, and search history.

## Linked Modules
- [services/geo](../services/geo.go) - Reverse geocoding
- [services/places](../services/places.go) - Office search
- [services/discovery](../services/discovery.go) - AI contact discovery
- [services/aggregate](../services/aggregate.go) - Contact merging
- [services/distance](../services/distance.go) - Road distance
- [storage/repository](../storage/repository.go) - Search log persistence

## Tags
http, api, orchestration

## Exports
OfficeHandler, NewOfficeHandler, HandleGetLocation, HandleFindOffice, HandleCompareOffices, HandleRecentSearches

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "handlers/office.go" ;
    code:description "HTTP handlers for the office locator API" ;
    code:linksTo [
        code:name "services/geo" ;
        code:path "../services/geo.go" ;
        code:relationship "Reverse geocoding"
    ], [
        code:name "services/places" ;
        code:path "../services/places.go" ;
        code:relationship "Office search"
    ], [
        code:name "services/discovery" ;
        code:path "../services/discovery.go" ;
        code:relationship "AI contact discovery"
    ], [
        code:name "services/distance" ;
        code:path "../services/distance.go" ;
        code:relationship "Road distance"
    ], [
        code:name "storage/repository" ;
        code:path "../storage/repository.go" ;
        code:relationship "Search log persistence"
    ] ;
    code:exports :OfficeHandler, :NewOfficeHandler, :HandleGetLocation, :HandleFindOffice, :HandleCompareOffices, :HandleRecentSearches ;
    code:tags "http", "api", "orchestration" .
<!-- End LinkedDoc RDF -->
*/
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kjanuda/cityget/services"
	"github.com/kjanuda/cityget/storage"
	"github.com/kjanuda/cityget/types"
)

const dataStrategy = "Reverse Geocoding + Google Maps + Gemini Multi-Source Search (DS & PS Separated)"

// GeoResolver converts coordinates into location info
type GeoResolver interface {
	LocationFromCoordinates(lat, lng float64) types.LocationInfo
}

// OfficeSearcher finds and details Divisional Secretariat offices
type OfficeSearcher interface {
	FindNearestOffice(lat, lng float64) (*types.PlaceResult, int, int, error)
	CompareCandidates(lat, lng float64, maxResults int) ([]types.PlaceResult, error)
	GetOfficeDetails(placeID string) *types.PlaceDetailsResult
}

// ContactSearcher runs the AI contact facet searches
type ContactSearcher interface {
	SearchContacts(name, address, cityName string) (*types.EmailSearchResult, *types.PhoneSearchResult, *types.WebsiteSearchResult)
}

// DistanceEstimator computes driving distance between two points
type DistanceEstimator interface {
	RoadDistance(userLat, userLng, officeLat, officeLng float64) types.DistanceInfo
}

// OfficeHandler holds the collaborators behind the office locator endpoints
type OfficeHandler struct {
	geo       GeoResolver
	offices   OfficeSearcher
	contacts  ContactSearcher
	distances DistanceEstimator
	searchLog storage.SearchLogRepository
}

// NewOfficeHandler creates a new OfficeHandler instance. searchLog may be nil
// when search history persistence is disabled.
func NewOfficeHandler(geo GeoResolver, offices OfficeSearcher, contacts ContactSearcher, distances DistanceEstimator, searchLog storage.SearchLogRepository) *OfficeHandler {
	return &OfficeHandler{
		geo:       geo,
		offices:   offices,
		contacts:  contacts,
		distances: distances,
		searchLog: searchLog,
	}
}

type coordinateRequest struct {
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	MaxResults int      `json:"maxResults"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func decodeCoordinates(w http.ResponseWriter, r *http.Request) (coordinateRequest, bool) {
	var req coordinateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Latitude == nil || req.Longitude == nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Missing latitude or longitude",
			"example": map[string]float64{"latitude": 6.9271, "longitude": 79.8612},
		})
		return req, false
	}
	return req, true
}

// HandleGetLocation handles POST /get-location
// Converts coordinates to a city name and administrative hierarchy
func (h *OfficeHandler) HandleGetLocation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	req, ok := decodeCoordinates(w, r)
	if !ok {
		return
	}

	location := h.geo.LocationFromCoordinates(*req.Latitude, *req.Longitude)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"location": location,
	})
}

// HandleFindOffice handles POST /find-office
// Finds the nearest Divisional Secretariat office, discovers its contact
// details and the related Pradeshiya Sabha's, and reports driving distance
func (h *OfficeHandler) HandleFindOffice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	req, ok := decodeCoordinates(w, r)
	if !ok {
		return
	}
	latitude, longitude := *req.Latitude, *req.Longitude

	log.Printf("📍 === NEW SEARCH REQUEST ===")
	log.Printf("User Location: %f, %f", latitude, longitude)

	location := h.geo.LocationFromCoordinates(latitude, longitude)
	log.Printf("📍 Location identified: %s, %s", location.CityName, location.District)

	nearest, radiusUsed, totalFound, err := h.offices.FindNearestOffice(latitude, longitude)
	if err != nil {
		log.Printf("❌ Office search error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Internal server error",
			"message": err.Error(),
		})
		return
	}
	if nearest == nil {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":    "No Divisional Secretariat office found within 50 km of " + location.CityName,
			"location": location,
		})
		return
	}

	details := h.offices.GetOfficeDetails(nearest.PlaceID)
	if details == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch office details",
		})
		return
	}

	name := details.Name
	if name == "" {
		name = "Not available"
	}
	address := details.FormattedAddress
	if address == "" {
		address = "Not available"
	}
	officeLat := details.Geometry.Location.Lat
	officeLng := details.Geometry.Location.Lng

	// Some places list only an international-format number
	mapsPhone := details.FormattedPhoneNumber
	if mapsPhone == "" {
		mapsPhone = details.InternationalPhoneNumber
	}

	googleMapsURL := details.URL
	if googleMapsURL == "" {
		googleMapsURL = "https://www.google.com/maps?q=" +
			strconv.FormatFloat(officeLat, 'f', -1, 64) + "," +
			strconv.FormatFloat(officeLng, 'f', -1, 64)
	}

	// Contact discovery and distance calculation are independent of each
	// other; run them in parallel.
	var (
		emailData    *types.EmailSearchResult
		phoneData    *types.PhoneSearchResult
		websiteData  *types.WebsiteSearchResult
		distanceInfo types.DistanceInfo
	)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		emailData, phoneData, websiteData = h.contacts.SearchContacts(name, address, location.CityName)
	}()
	go func() {
		defer wg.Done()
		distanceInfo = h.distances.RoadDistance(latitude, longitude, officeLat, officeLng)
	}()
	wg.Wait()

	log.Printf("✅ Distance: %s, Duration: %s", distanceInfo.Distance, distanceInfo.Duration)

	contactInfo := services.BuildContactInfo(name, mapsPhone, details.Website, emailData, phoneData, websiteData)

	resp := FindOfficeResponse{
		UserLocation: location,
		Office: OfficeSummary{
			Name:    name,
			Address: address,
			Coordinates: types.Coordinates{
				Latitude:  officeLat,
				Longitude: officeLng,
			},
		},
		Distance: DistanceBody{
			RoadDistance: distanceInfo.Distance,
			DrivingTime:  distanceInfo.Duration,
		},
		AdditionalInfo: AdditionalInfoBody{
			Rating:        ratingOrNotRated(details.Rating),
			TotalReviews:  details.UserRatingsTotal,
			GoogleMapsURL: googleMapsURL,
			OpeningHours:  openingHoursOrNotAvailable(details.OpeningHours),
		},
		Metadata: MetadataBody{
			SearchRadius:      strconv.Itoa(radiusUsed/1000) + " km",
			TotalOfficesFound: totalFound,
			DataStrategy:      dataStrategy,
			Timestamp:         time.Now().UTC().Format(time.RFC3339),
		},
	}
	resp.DivisionalSecretariat.Contact = contactBody(contactInfo.DivisionalSecretariat)
	resp.PradeshiyaSabha.OfficeName = contactInfo.PradeshiyaSabha.OfficeName
	resp.PradeshiyaSabha.Contact = contactBody(contactInfo.PradeshiyaSabha)
	if distanceInfo.Status == "OK" {
		resp.Distance.DistanceInMeters = distanceInfo.DistanceValue
		resp.Distance.DurationInSeconds = distanceInfo.DurationValue
	}

	h.logSearch(latitude, longitude, location, name, address, radiusUsed, totalFound, distanceInfo)

	log.Printf("✅ === COMPLETE RESULTS ===")
	log.Printf("🏢 NEAREST OFFICE: %s", name)
	log.Printf("📧 DS primary email: %s (%d found, %d verified)",
		contactInfo.DivisionalSecretariat.Primary.Email,
		contactInfo.DivisionalSecretariat.Summary.TotalEmails,
		contactInfo.DivisionalSecretariat.Summary.VerifiedEmails)
	log.Printf("📧 PS (%s) primary email: %s (%d found)",
		contactInfo.PradeshiyaSabha.OfficeName,
		contactInfo.PradeshiyaSabha.Primary.Email,
		contactInfo.PradeshiyaSabha.Summary.TotalEmails)

	writeJSON(w, http.StatusOK, resp)
}

// HandleCompareOffices handles POST /compare-offices
// Details and ranks up to maxResults nearby offices by driving distance
func (h *OfficeHandler) HandleCompareOffices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	req, ok := decodeCoordinates(w, r)
	if !ok {
		return
	}
	latitude, longitude := *req.Latitude, *req.Longitude

	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = 3
	}

	location := h.geo.LocationFromCoordinates(latitude, longitude)
	log.Printf("🔍 Comparing offices near %s...", location.CityName)

	candidates, err := h.offices.CompareCandidates(latitude, longitude, maxResults)
	if err != nil {
		log.Printf("❌ Error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Error comparing offices"})
		return
	}
	if len(candidates) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":    "No offices found near " + location.CityName,
			"location": location,
		})
		return
	}

	compared := make([]ComparedOffice, len(candidates))
	var g errgroup.Group
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			compared[i] = h.compareOne(latitude, longitude, candidate)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("❌ Error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Error comparing offices"})
		return
	}

	sort.Slice(compared, func(a, b int) bool {
		return compared[a].DistanceValue < compared[b].DistanceValue
	})

	writeJSON(w, http.StatusOK, CompareOfficesResponse{
		UserLocation: CompareUserLocation{
			CityName: location.CityName,
			District: location.District,
			Province: location.Province,
		},
		Count:          len(compared),
		Offices:        compared,
		Recommendation: compared[0].Name,
		NearestCity:    location.CityName,
	})
}

func (h *OfficeHandler) compareOne(latitude, longitude float64, candidate types.PlaceResult) ComparedOffice {
	office := ComparedOffice{
		Name:          "Unknown",
		Address:       "Not available",
		Phone:         "Not available",
		Distance:      "Not available",
		Duration:      "Not available",
		DistanceValue: 999999,
		Rating:        "Not rated",
	}

	details := h.offices.GetOfficeDetails(candidate.PlaceID)
	if details == nil {
		return office
	}

	if details.Name != "" {
		office.Name = details.Name
	}
	if details.FormattedAddress != "" {
		office.Address = details.FormattedAddress
	}
	if details.FormattedPhoneNumber != "" {
		office.Phone = details.FormattedPhoneNumber
	}
	office.Rating = ratingOrNotRated(details.Rating)
	office.Reviews = details.UserRatingsTotal

	distanceInfo := h.distances.RoadDistance(latitude, longitude,
		details.Geometry.Location.Lat, details.Geometry.Location.Lng)
	office.Distance = distanceInfo.Distance
	office.Duration = distanceInfo.Duration
	if distanceInfo.Status == "OK" {
		office.DistanceValue = distanceInfo.DistanceValue
	}

	return office
}

// HandleRecentSearches handles GET /api/searches
// Returns the most recent search log records
func (h *OfficeHandler) HandleRecentSearches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}
	if h.searchLog == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "Search history is not enabled"})
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := h.searchLog.GetRecent(limit)
	if err != nil {
		log.Printf("❌ Failed to fetch search history: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch search history"})
		return
	}
	if records == nil {
		records = []types.SearchRecord{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(records),
		"searches": records,
	})
}

// logSearch persists a search record without blocking the response
func (h *OfficeHandler) logSearch(latitude, longitude float64, location types.LocationInfo, officeName, officeAddress string, radiusUsed, totalFound int, distanceInfo types.DistanceInfo) {
	if h.searchLog == nil {
		return
	}

	record := types.SearchRecord{
		ID:                 uuid.New().String(),
		Latitude:           latitude,
		Longitude:          longitude,
		CityName:           location.CityName,
		District:           location.District,
		OfficeName:         officeName,
		OfficeAddress:      officeAddress,
		SearchRadiusMeters: radiusUsed,
		OfficesFound:       totalFound,
		RoadDistance:       distanceInfo.Distance,
		DrivingTime:        distanceInfo.Duration,
		Timestamp:          time.Now().UTC(),
	}

	go func() {
		if err := h.searchLog.Save(record); err != nil {
			log.Printf("⚠️  Failed to save search record: %v", err)
		}
	}()
}

func contactBody(record types.OfficeContactRecord) OfficeContactBody {
	return OfficeContactBody{
		Primary:     record.Primary,
		AllEmails:   record.All.Emails,
		AllPhones:   record.All.Phones,
		AllWebsites: record.All.Websites,
		Summary:     record.Summary,
	}
}

func ratingOrNotRated(rating float64) any {
	if rating == 0 {
		return "Not rated"
	}
	return rating
}

func openingHoursOrNotAvailable(hours *types.PlaceOpeningHours) any {
	if hours == nil || len(hours.WeekdayText) == 0 {
		return "Not available"
	}
	return hours.WeekdayText
}
