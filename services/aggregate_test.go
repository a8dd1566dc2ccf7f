package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjanuda/cityget/types"
)

func TestBuildContactInfoPatternEmails(t *testing.T) {
	info := BuildContactInfo("Example Divisional Secretariat", "", "", nil, nil, nil)

	ds := info.DivisionalSecretariat
	require.Len(t, ds.All.Emails, 2)
	assert.Equal(t, "example@ds.gov.lk", ds.All.Emails[0].Address)
	assert.Equal(t, "info@example.ds.gov.lk", ds.All.Emails[1].Address)
	assert.False(t, ds.All.Emails[0].Verified)
	assert.False(t, ds.All.Emails[1].Verified)

	assert.Equal(t, "example@ds.gov.lk", ds.Primary.Email)
	assert.Equal(t, "Not available", ds.Primary.Phone)
	assert.Equal(t, "Not available", ds.Primary.Website)

	assert.Equal(t, "Related Pradeshiya Sabha", info.PradeshiyaSabha.OfficeName)
	assert.Equal(t, "Not available", info.PradeshiyaSabha.Primary.Email)
}

func TestBuildContactInfoPatternEmailsSkippedWhenDiscovered(t *testing.T) {
	emailData := &types.EmailSearchResult{}
	emailData.DivisionalSecretariat.Emails = []types.EmailContact{
		{Address: "homagama@ds.gov.lk", Type: "general", Verified: true},
	}
	emailData.DivisionalSecretariat.PrimaryEmail = "homagama@ds.gov.lk"

	info := BuildContactInfo("Homagama Divisional Secretariat", "", "", emailData, nil, nil)

	require.Len(t, info.DivisionalSecretariat.All.Emails, 1)
	assert.Equal(t, "homagama@ds.gov.lk", info.DivisionalSecretariat.Primary.Email)
}

func TestBuildContactInfoMapsPhonePrepended(t *testing.T) {
	phoneData := &types.PhoneSearchResult{}
	phoneData.DivisionalSecretariat.Phones = []types.PhoneContact{
		{Number: "+94 112 222 333", Type: "landline", Verified: false},
	}

	info := BuildContactInfo("Example Divisional Secretariat", "0112345678", "", nil, phoneData, nil)

	phones := info.DivisionalSecretariat.All.Phones
	require.Len(t, phones, 2)
	assert.Equal(t, "0112345678", phones[0].Number)
	assert.True(t, phones[0].Verified)
	assert.Equal(t, "From Google Maps", phones[0].Description)
	assert.Equal(t, "0112345678", info.DivisionalSecretariat.Primary.Phone)
}

func TestBuildContactInfoMapsPhoneNotDuplicated(t *testing.T) {
	phoneData := &types.PhoneSearchResult{}
	phoneData.DivisionalSecretariat.Phones = []types.PhoneContact{
		{Number: "0112345678 ext 2", Type: "landline", Verified: false},
	}

	info := BuildContactInfo("Example Divisional Secretariat", "0112345678", "", nil, phoneData, nil)

	require.Len(t, info.DivisionalSecretariat.All.Phones, 1)
}

func TestBuildContactInfoMapsWebsitePrepended(t *testing.T) {
	websiteData := &types.WebsiteSearchResult{}
	websiteData.DivisionalSecretariat.Websites = []types.WebsiteContact{
		{URL: "https://www.facebook.com/exampleds", Type: "social", Platform: "facebook"},
	}

	info := BuildContactInfo("Example Divisional Secretariat", "", "https://example.ds.gov.lk", nil, nil, websiteData)

	websites := info.DivisionalSecretariat.All.Websites
	require.Len(t, websites, 2)
	assert.Equal(t, "https://example.ds.gov.lk", websites[0].URL)
	assert.True(t, websites[0].Verified)
	assert.Equal(t, "official", websites[0].Type)
	assert.Equal(t, "https://example.ds.gov.lk", info.DivisionalSecretariat.Primary.Website)

	// same URL again is not prepended twice
	again := BuildContactInfo("Example Divisional Secretariat", "", "https://www.facebook.com/exampleds", nil, nil, websiteData)
	require.Len(t, again.DivisionalSecretariat.All.Websites, 1)
}

func TestBuildContactInfoSummaryCounts(t *testing.T) {
	emailData := &types.EmailSearchResult{}
	emailData.DivisionalSecretariat.Emails = []types.EmailContact{
		{Address: "a@ds.gov.lk", Verified: true},
		{Address: "b@ds.gov.lk", Verified: false},
	}
	phoneData := &types.PhoneSearchResult{}
	phoneData.DivisionalSecretariat.Phones = []types.PhoneContact{
		{Number: "+94112223344", Verified: true},
	}

	info := BuildContactInfo("Example Divisional Secretariat", "", "", emailData, phoneData, nil)

	summary := info.DivisionalSecretariat.Summary
	assert.Equal(t, 2, summary.TotalEmails)
	assert.Equal(t, 1, summary.VerifiedEmails)
	assert.Equal(t, 1, summary.TotalPhones)
	assert.Equal(t, 1, summary.VerifiedPhones)
	assert.Equal(t, 0, summary.TotalWebsites)
}

func TestBuildContactInfoPSOfficeNameFromFacets(t *testing.T) {
	phoneData := &types.PhoneSearchResult{}
	phoneData.PradeshiyaSabha.OfficeName = "Homagama Pradeshiya Sabha"
	phoneData.PradeshiyaSabha.Phones = []types.PhoneContact{
		{Number: "+94112757575"},
	}
	phoneData.PradeshiyaSabha.PrimaryPhone = "+94112757575"

	info := BuildContactInfo("Homagama Divisional Secretariat", "", "", nil, phoneData, nil)

	assert.Equal(t, "Homagama Pradeshiya Sabha", info.PradeshiyaSabha.OfficeName)
	assert.Equal(t, "+94112757575", info.PradeshiyaSabha.Primary.Phone)
}

func TestBuildContactInfoPSOfficeNameFromWebsiteFacet(t *testing.T) {
	websiteData := &types.WebsiteSearchResult{}
	websiteData.PradeshiyaSabha.OfficeName = "Homagama Pradeshiya Sabha"
	websiteData.PradeshiyaSabha.Websites = []types.WebsiteContact{
		{URL: "https://homagama.ps.gov.lk", Type: "official"},
	}

	info := BuildContactInfo("Homagama Divisional Secretariat", "", "", nil, nil, websiteData)

	// the website facet is the last link in the name chain but still wins
	// when the email and phone facets are unavailable
	assert.Equal(t, "Homagama Pradeshiya Sabha", info.PradeshiyaSabha.OfficeName)
	assert.Equal(t, "https://homagama.ps.gov.lk", info.PradeshiyaSabha.Primary.Website)
}
