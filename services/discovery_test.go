package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjanuda/cityget/clients"
	"github.com/kjanuda/cityget/types"
)

func newTestGeminiClient(t *testing.T, replyText string) *clients.GeminiClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{
					"role":  "model",
					"parts": []map[string]string{{"text": replyText}},
				}},
			},
		})
	}))
	t.Cleanup(srv.Close)

	client := clients.NewGeminiClient("test-key")
	client.BaseURL = srv.URL
	return client
}

func TestSearchEmailsParsesStructuredReply(t *testing.T) {
	reply := "Here is what I found:\n```json\n" + `{
		"divisionalSecretariat": {
			"emails": [{"address": "homagama@ds.gov.lk", "type": "general", "verified": true}],
			"primaryEmail": "homagama@ds.gov.lk"
		},
		"pradeshiyaSabha": {
			"emails": [{"address": "info@homagama.ps.gov.lk", "type": "general", "verified": false}],
			"primaryEmail": "info@homagama.ps.gov.lk",
			"officeName": "Homagama Pradeshiya Sabha"
		},
		"totalFound": 2,
		"searchSummary": "Found on official sources"
	}` + "\n```"

	svc := NewContactDiscoveryService(newTestGeminiClient(t, reply))
	result := svc.SearchEmails("Homagama Divisional Secretariat", "Homagama, Sri Lanka", "Homagama")

	require.NotNil(t, result)
	require.Len(t, result.DivisionalSecretariat.Emails, 1)
	assert.Equal(t, "homagama@ds.gov.lk", result.DivisionalSecretariat.PrimaryEmail)
	assert.Equal(t, "Homagama Pradeshiya Sabha", result.PradeshiyaSabha.OfficeName)
	assert.Equal(t, 2, result.TotalFound)
}

func TestSearchEmailsFallsBackToTextExtraction(t *testing.T) {
	reply := "I could not produce structured data, but the office can be reached at ds.homagama@gov.lk."

	svc := NewContactDiscoveryService(newTestGeminiClient(t, reply))
	result := svc.SearchEmails("Homagama Divisional Secretariat", "Homagama, Sri Lanka", "Homagama")

	require.NotNil(t, result)
	require.Len(t, result.DivisionalSecretariat.Emails, 1)
	assert.Equal(t, "ds.homagama@gov.lk", result.DivisionalSecretariat.Emails[0].Address)
	assert.Equal(t, "Extracted and categorized from text", result.SearchSummary)
}

func TestSearchEmailsNilOnAPIError(t *testing.T) {
	// no API key configured, so the Gemini call errors out
	svc := NewContactDiscoveryService(clients.NewGeminiClient(""))
	assert.Nil(t, svc.SearchEmails("X", "Y", "Z"))
}

func TestSearchPhonesFallsBackToTextExtraction(t *testing.T) {
	reply := "The main office line is +94112855000 and there is no structured listing."

	svc := NewContactDiscoveryService(newTestGeminiClient(t, reply))
	result := svc.SearchPhones("Homagama Divisional Secretariat", "Homagama, Sri Lanka", "Homagama")

	require.NotNil(t, result)
	require.Len(t, result.DivisionalSecretariat.Phones, 1)
	assert.Equal(t, "+94112855000", result.DivisionalSecretariat.Phones[0].Number)
	assert.Empty(t, result.PradeshiyaSabha.Phones)
}

func TestSearchWebsitesEmptyOnUnparseableReply(t *testing.T) {
	reply := "No structured data available for websites."

	svc := NewContactDiscoveryService(newTestGeminiClient(t, reply))
	result := svc.SearchWebsites("Homagama Divisional Secretariat", "Homagama, Sri Lanka", "Homagama")

	require.NotNil(t, result)
	assert.Empty(t, result.DivisionalSecretariat.Websites)
	assert.Empty(t, result.PradeshiyaSabha.Websites)
}

func TestSearchContactsRunsAllFacets(t *testing.T) {
	reply := "contact ds.office@gov.lk or call +94112345678"

	svc := NewContactDiscoveryService(newTestGeminiClient(t, reply))
	emailData, phoneData, websiteData := svc.SearchContacts("Homagama Divisional Secretariat", "Homagama, Sri Lanka", "Homagama")

	require.NotNil(t, emailData)
	require.NotNil(t, phoneData)
	require.NotNil(t, websiteData)
	assert.Len(t, emailData.DivisionalSecretariat.Emails, 1)
	assert.Len(t, phoneData.DivisionalSecretariat.Phones, 1)
	assert.IsType(t, &types.WebsiteSearchResult{}, websiteData)
}
