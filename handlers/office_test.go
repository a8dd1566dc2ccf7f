package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjanuda/cityget/types"
)

// --- Fakes ---

type fakeGeo struct {
	location types.LocationInfo
}

func (f *fakeGeo) LocationFromCoordinates(lat, lng float64) types.LocationInfo {
	return f.location
}

type fakeOffices struct {
	nearest    *types.PlaceResult
	radiusUsed int
	totalFound int
	err        error
	candidates []types.PlaceResult
	details    map[string]*types.PlaceDetailsResult
}

func (f *fakeOffices) FindNearestOffice(lat, lng float64) (*types.PlaceResult, int, int, error) {
	return f.nearest, f.radiusUsed, f.totalFound, f.err
}

func (f *fakeOffices) CompareCandidates(lat, lng float64, maxResults int) ([]types.PlaceResult, error) {
	if len(f.candidates) > maxResults {
		return f.candidates[:maxResults], nil
	}
	return f.candidates, f.err
}

func (f *fakeOffices) GetOfficeDetails(placeID string) *types.PlaceDetailsResult {
	return f.details[placeID]
}

type fakeContacts struct{}

func (f *fakeContacts) SearchContacts(name, address, cityName string) (*types.EmailSearchResult, *types.PhoneSearchResult, *types.WebsiteSearchResult) {
	return nil, nil, nil
}

// fakeDistances keys distance off the destination latitude
type fakeDistances struct {
	byLat map[float64]types.DistanceInfo
}

func (f *fakeDistances) RoadDistance(userLat, userLng, officeLat, officeLng float64) (info types.DistanceInfo) {
	info, ok := f.byLat[officeLat]
	if !ok {
		info = types.DistanceInfo{Distance: "Not available", Duration: "Not available", Status: "UNKNOWN"}
	}
	return info
}

func colomboLocation() types.LocationInfo {
	return types.LocationInfo{
		CityName:    "Colombo",
		District:    "Colombo District",
		Province:    "Western Province",
		FullAddress: "Colombo, Sri Lanka",
		Coordinates: types.Coordinates{Latitude: 6.9271, Longitude: 79.8612},
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

// --- Tests ---

func TestHandleGetLocation(t *testing.T) {
	h := NewOfficeHandler(&fakeGeo{location: colomboLocation()}, &fakeOffices{}, &fakeContacts{}, &fakeDistances{}, nil)

	rec := postJSON(t, h.HandleGetLocation, `{"latitude":6.9271,"longitude":79.8612}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success  bool               `json:"success"`
		Location types.LocationInfo `json:"location"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Colombo", body.Location.CityName)
}

func TestHandleGetLocationMissingCoordinates(t *testing.T) {
	h := NewOfficeHandler(&fakeGeo{location: colomboLocation()}, &fakeOffices{}, &fakeContacts{}, &fakeDistances{}, nil)

	rec := postJSON(t, h.HandleGetLocation, `{"latitude":6.9271}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Missing latitude or longitude", body["error"])
	assert.Contains(t, body, "example")
}

func TestHandleFindOfficeNotFound(t *testing.T) {
	h := NewOfficeHandler(&fakeGeo{location: colomboLocation()}, &fakeOffices{}, &fakeContacts{}, &fakeDistances{}, nil)

	rec := postJSON(t, h.HandleFindOffice, `{"latitude":6.9271,"longitude":79.8612}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Error    string             `json:"error"`
		Location types.LocationInfo `json:"location"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "50 km")
	assert.Contains(t, body.Error, "Colombo")
	assert.Equal(t, "Colombo", body.Location.CityName)
}

func TestHandleFindOfficeMethodNotAllowed(t *testing.T) {
	h := NewOfficeHandler(&fakeGeo{}, &fakeOffices{}, &fakeContacts{}, &fakeDistances{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/find-office", nil)
	rec := httptest.NewRecorder()
	h.HandleFindOffice(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleFindOfficeFull(t *testing.T) {
	offices := &fakeOffices{
		nearest:    &types.PlaceResult{Name: "Homagama Divisional Secretariat", PlaceID: "place-1"},
		radiusUsed: 8000,
		totalFound: 2,
		details: map[string]*types.PlaceDetailsResult{
			"place-1": {
				Name:                 "Homagama Divisional Secretariat",
				FormattedAddress:     "Homagama, Sri Lanka",
				FormattedPhoneNumber: "0112855000",
				Geometry:             types.Geometry{Location: types.LatLng{Lat: 6.8448, Lng: 80.0035}},
				Rating:               4.2,
				UserRatingsTotal:     31,
			},
		},
	}
	distances := &fakeDistances{byLat: map[float64]types.DistanceInfo{
		6.8448: {Distance: "14.2 km", DistanceValue: 14200, Duration: "32 mins", DurationValue: 1920, Status: "OK"},
	}}
	h := NewOfficeHandler(&fakeGeo{location: colomboLocation()}, offices, &fakeContacts{}, distances, nil)

	rec := postJSON(t, h.HandleFindOffice, `{"latitude":6.9271,"longitude":79.8612}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	office := body["office"].(map[string]any)
	assert.Equal(t, "Homagama Divisional Secretariat", office["name"])

	distance := body["distance"].(map[string]any)
	assert.Equal(t, "14.2 km", distance["roadDistance"])
	assert.Equal(t, float64(14200), distance["distanceInMeters"])

	// no maps URL in details falls back to a coordinate link
	additional := body["additionalInfo"].(map[string]any)
	assert.True(t, strings.HasPrefix(additional["googleMapsUrl"].(string), "https://www.google.com/maps?q="))
	assert.Equal(t, 4.2, additional["rating"])
	assert.Equal(t, "Not available", additional["openingHours"])

	metadata := body["metadata"].(map[string]any)
	assert.Equal(t, "8 km", metadata["searchRadius"])
	assert.Equal(t, float64(2), metadata["totalOfficesFound"])

	// with no discovered contacts the DS record still carries the maps phone
	// and the pattern-generated emails
	ds := body["divisionalSecretariat"].(map[string]any)["contact"].(map[string]any)
	primary := ds["primary"].(map[string]any)
	assert.Equal(t, "0112855000", primary["phone"])
	assert.Equal(t, "homagama@ds.gov.lk", primary["email"])

	ps := body["pradeshiyaSabha"].(map[string]any)
	assert.Equal(t, "Related Pradeshiya Sabha", ps["officeName"])
}

func TestHandleFindOfficeInternationalPhoneFallback(t *testing.T) {
	offices := &fakeOffices{
		nearest:    &types.PlaceResult{Name: "Homagama Divisional Secretariat", PlaceID: "place-1"},
		radiusUsed: 3000,
		totalFound: 1,
		details: map[string]*types.PlaceDetailsResult{
			"place-1": {
				Name:                     "Homagama Divisional Secretariat",
				FormattedAddress:         "Homagama, Sri Lanka",
				InternationalPhoneNumber: "+94 11 285 5000",
				Geometry:                 types.Geometry{Location: types.LatLng{Lat: 6.8448, Lng: 80.0035}},
			},
		},
	}
	h := NewOfficeHandler(&fakeGeo{location: colomboLocation()}, offices, &fakeContacts{}, &fakeDistances{}, nil)

	rec := postJSON(t, h.HandleFindOffice, `{"latitude":6.9271,"longitude":79.8612}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// with no formatted number the international one still counts as the
	// maps-provided phone
	ds := body["divisionalSecretariat"].(map[string]any)["contact"].(map[string]any)
	primary := ds["primary"].(map[string]any)
	assert.Equal(t, "+94 11 285 5000", primary["phone"])

	phones := ds["allPhones"].([]any)
	require.NotEmpty(t, phones)
	first := phones[0].(map[string]any)
	assert.Equal(t, "+94 11 285 5000", first["number"])
	assert.Equal(t, true, first["verified"])
}

func TestHandleFindOfficeDetailsFailure(t *testing.T) {
	offices := &fakeOffices{
		nearest: &types.PlaceResult{Name: "X", PlaceID: "gone"},
		details: map[string]*types.PlaceDetailsResult{},
	}
	h := NewOfficeHandler(&fakeGeo{location: colomboLocation()}, offices, &fakeContacts{}, &fakeDistances{}, nil)

	rec := postJSON(t, h.HandleFindOffice, `{"latitude":6.9271,"longitude":79.8612}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to fetch office details", body["error"])
}

func TestHandleCompareOfficesSortsByDistance(t *testing.T) {
	offices := &fakeOffices{
		candidates: []types.PlaceResult{
			{Name: "Middle", PlaceID: "m"},
			{Name: "Nearest", PlaceID: "n"},
			{Name: "Farthest", PlaceID: "f"},
		},
		details: map[string]*types.PlaceDetailsResult{
			"m": {Name: "Middle", FormattedAddress: "M", Geometry: types.Geometry{Location: types.LatLng{Lat: 1}}},
			"n": {Name: "Nearest", FormattedAddress: "N", Geometry: types.Geometry{Location: types.LatLng{Lat: 2}}},
			"f": {Name: "Farthest", FormattedAddress: "F", Geometry: types.Geometry{Location: types.LatLng{Lat: 3}}},
		},
	}
	distances := &fakeDistances{byLat: map[float64]types.DistanceInfo{
		1: {Distance: "5.0 km", DistanceValue: 5000, Duration: "10 mins", DurationValue: 600, Status: "OK"},
		2: {Distance: "2.0 km", DistanceValue: 2000, Duration: "5 mins", DurationValue: 300, Status: "OK"},
		3: {Distance: "8.0 km", DistanceValue: 8000, Duration: "16 mins", DurationValue: 960, Status: "OK"},
	}}
	h := NewOfficeHandler(&fakeGeo{location: colomboLocation()}, offices, &fakeContacts{}, distances, nil)

	rec := postJSON(t, h.HandleCompareOffices, `{"latitude":6.9271,"longitude":79.8612}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body CompareOfficesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Equal(t, 3, body.Count)
	assert.Equal(t, []int{2000, 5000, 8000}, []int{
		body.Offices[0].DistanceValue,
		body.Offices[1].DistanceValue,
		body.Offices[2].DistanceValue,
	})
	assert.Equal(t, "Nearest", body.Recommendation)
	assert.Equal(t, "Colombo", body.NearestCity)
}

func TestHandleCompareOfficesUnresolvableCandidateSinksLast(t *testing.T) {
	offices := &fakeOffices{
		candidates: []types.PlaceResult{
			{Name: "Known", PlaceID: "k"},
			{Name: "Gone", PlaceID: "gone"},
		},
		details: map[string]*types.PlaceDetailsResult{
			"k": {Name: "Known", Geometry: types.Geometry{Location: types.LatLng{Lat: 1}}},
		},
	}
	distances := &fakeDistances{byLat: map[float64]types.DistanceInfo{
		1: {Distance: "5.0 km", DistanceValue: 5000, Duration: "10 mins", DurationValue: 600, Status: "OK"},
	}}
	h := NewOfficeHandler(&fakeGeo{location: colomboLocation()}, offices, &fakeContacts{}, distances, nil)

	rec := postJSON(t, h.HandleCompareOffices, `{"latitude":6.9271,"longitude":79.8612}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body CompareOfficesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Equal(t, 2, body.Count)
	assert.Equal(t, "Known", body.Offices[0].Name)
	assert.Equal(t, "Unknown", body.Offices[1].Name)
	assert.Equal(t, 999999, body.Offices[1].DistanceValue)
	assert.Equal(t, "Known", body.Recommendation)
}

func TestHandleCompareOfficesNoneFound(t *testing.T) {
	h := NewOfficeHandler(&fakeGeo{location: colomboLocation()}, &fakeOffices{}, &fakeContacts{}, &fakeDistances{}, nil)

	rec := postJSON(t, h.HandleCompareOffices, `{"latitude":6.9271,"longitude":79.8612}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "No offices found near Colombo")
}

func TestHandleRecentSearchesDisabled(t *testing.T) {
	h := NewOfficeHandler(&fakeGeo{}, &fakeOffices{}, &fakeContacts{}, &fakeDistances{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/searches", nil)
	rec := httptest.NewRecorder()
	h.HandleRecentSearches(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
