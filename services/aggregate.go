/*
# Module: services/aggregate.go
Merges Google Maps contact fields with AI-discovered contacts into the final
per-office contact structures.

## Linked Modules
- [types/contact](../types/contact.go) - Contact data structures
- [types/search_result](../types/search_result.go) - Facet search result structures

## Tags
business-logic, aggregation, contact-discovery

## Exports
BuildContactInfo

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "services/aggregate.go" ;
    code:description "Merges maps-provided and AI-discovered contacts" ;
    code:linksTo [
        code:name "types/contact" ;
        code:path "../types/contact.go" ;
        code:relationship "Contact data structures"
    ], [
        code:name "types/search_result" ;
        code:path "../types/search_result.go" ;
        code:relationship "Facet search result structures"
    ] ;
    code:exports :BuildContactInfo ;
    code:tags "business-logic", "aggregation", "contact-discovery" .
<!-- End LinkedDoc RDF -->
*/
package services

import (
	"regexp"
	"strings"

	"github.com/kjanuda/cityget/types"
)

const notAvailable = "Not available"

var slugPattern = regexp.MustCompile(`[^a-z0-9]`)

// BuildContactInfo merges the Google Maps phone/website with the AI facet
// results into the two per-office contact records. It is a pure function:
// nil facet results simply contribute nothing.
func BuildContactInfo(officeName, mapsPhone, mapsWebsite string, emailData *types.EmailSearchResult, phoneData *types.PhoneSearchResult, websiteData *types.WebsiteSearchResult) types.ContactInfo {
	dsEmails := []types.EmailContact{}
	psEmails := []types.EmailContact{}
	if emailData != nil {
		dsEmails = append(dsEmails, emailData.DivisionalSecretariat.Emails...)
		psEmails = append(psEmails, emailData.PradeshiyaSabha.Emails...)
	}

	dsPhones := []types.PhoneContact{}
	psPhones := []types.PhoneContact{}
	if phoneData != nil {
		dsPhones = append(dsPhones, phoneData.DivisionalSecretariat.Phones...)
		psPhones = append(psPhones, phoneData.PradeshiyaSabha.Phones...)
	}

	dsWebsites := []types.WebsiteContact{}
	psWebsites := []types.WebsiteContact{}
	if websiteData != nil {
		dsWebsites = append(dsWebsites, websiteData.DivisionalSecretariat.Websites...)
		psWebsites = append(psWebsites, websiteData.PradeshiyaSabha.Websites...)
	}

	// Maps-provided contacts are authoritative: prepend as verified unless
	// already present.
	if mapsPhone != "" && !containsPhone(dsPhones, mapsPhone) {
		dsPhones = append([]types.PhoneContact{{
			Number:      mapsPhone,
			Type:        "landline",
			Description: "From Google Maps",
			Verified:    true,
		}}, dsPhones...)
	}
	if mapsWebsite != "" && !containsWebsite(dsWebsites, mapsWebsite) {
		dsWebsites = append([]types.WebsiteContact{{
			URL:         mapsWebsite,
			Type:        "official",
			Platform:    "website",
			Description: "Official website from Google Maps",
			Verified:    true,
		}}, dsWebsites...)
	}

	// With no discovered DS emails, fall back to the .gov.lk naming
	// convention used by Divisional Secretariat offices.
	if len(dsEmails) == 0 {
		slug := slugPattern.ReplaceAllString(
			strings.ReplaceAll(strings.ToLower(officeName), "divisional secretariat", ""), "")
		if slug != "" {
			dsEmails = append(dsEmails,
				types.EmailContact{
					Address:     slug + "@ds.gov.lk",
					Type:        "general",
					Description: "Pattern-generated main email",
					Verified:    false,
				},
				types.EmailContact{
					Address:     "info@" + slug + ".ds.gov.lk",
					Type:        "general",
					Description: "Pattern-generated alternative",
					Verified:    false,
				})
		}
	}

	psOfficeName := fallbackPSOfficeName
	if emailData != nil && emailData.PradeshiyaSabha.OfficeName != "" {
		psOfficeName = emailData.PradeshiyaSabha.OfficeName
	} else if phoneData != nil && phoneData.PradeshiyaSabha.OfficeName != "" {
		psOfficeName = phoneData.PradeshiyaSabha.OfficeName
	} else if websiteData != nil && websiteData.PradeshiyaSabha.OfficeName != "" {
		psOfficeName = websiteData.PradeshiyaSabha.OfficeName
	}

	dsPrimary := types.PrimaryContact{
		Phone:   firstNonEmpty(mapsPhone, firstPhone(dsPhones)),
		Email:   notAvailable,
		Website: mapsWebsite,
	}
	if emailData != nil && emailData.DivisionalSecretariat.PrimaryEmail != "" {
		dsPrimary.Email = emailData.DivisionalSecretariat.PrimaryEmail
	} else if len(dsEmails) > 0 {
		dsPrimary.Email = dsEmails[0].Address
	}
	if dsPrimary.Website == "" {
		if websiteData != nil && websiteData.DivisionalSecretariat.PrimaryWebsite != "" {
			dsPrimary.Website = websiteData.DivisionalSecretariat.PrimaryWebsite
		} else {
			dsPrimary.Website = firstNonEmpty(firstWebsite(dsWebsites))
		}
	}

	psPrimary := types.PrimaryContact{
		Phone:   notAvailable,
		Email:   notAvailable,
		Website: notAvailable,
	}
	if phoneData != nil && phoneData.PradeshiyaSabha.PrimaryPhone != "" {
		psPrimary.Phone = phoneData.PradeshiyaSabha.PrimaryPhone
	} else if len(psPhones) > 0 {
		psPrimary.Phone = psPhones[0].Number
	}
	if emailData != nil && emailData.PradeshiyaSabha.PrimaryEmail != "" {
		psPrimary.Email = emailData.PradeshiyaSabha.PrimaryEmail
	} else if len(psEmails) > 0 {
		psPrimary.Email = psEmails[0].Address
	}
	if websiteData != nil && websiteData.PradeshiyaSabha.PrimaryWebsite != "" {
		psPrimary.Website = websiteData.PradeshiyaSabha.PrimaryWebsite
	} else if len(psWebsites) > 0 {
		psPrimary.Website = psWebsites[0].URL
	}

	return types.ContactInfo{
		DivisionalSecretariat: types.OfficeContactRecord{
			OfficeName: officeName,
			Primary:    dsPrimary,
			All: types.ContactLists{
				Emails:   dsEmails,
				Phones:   dsPhones,
				Websites: dsWebsites,
			},
			Summary: summarize(dsEmails, dsPhones, dsWebsites),
		},
		PradeshiyaSabha: types.OfficeContactRecord{
			OfficeName: psOfficeName,
			Primary:    psPrimary,
			All: types.ContactLists{
				Emails:   psEmails,
				Phones:   psPhones,
				Websites: psWebsites,
			},
			Summary: summarize(psEmails, psPhones, psWebsites),
		},
	}
}

func containsPhone(phones []types.PhoneContact, number string) bool {
	for _, p := range phones {
		if strings.Contains(p.Number, number) {
			return true
		}
	}
	return false
}

func containsWebsite(websites []types.WebsiteContact, url string) bool {
	for _, w := range websites {
		if w.URL == url {
			return true
		}
	}
	return false
}

func firstPhone(phones []types.PhoneContact) string {
	if len(phones) > 0 {
		return phones[0].Number
	}
	return ""
}

func firstWebsite(websites []types.WebsiteContact) string {
	if len(websites) > 0 {
		return websites[0].URL
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return notAvailable
}

func summarize(emails []types.EmailContact, phones []types.PhoneContact, websites []types.WebsiteContact) types.ContactSummary {
	s := types.ContactSummary{
		TotalEmails:   len(emails),
		TotalPhones:   len(phones),
		TotalWebsites: len(websites),
	}
	for _, e := range emails {
		if e.Verified {
			s.VerifiedEmails++
		}
	}
	for _, p := range phones {
		if p.Verified {
			s.VerifiedPhones++
		}
	}
	for _, w := range websites {
		if w.Verified {
			s.VerifiedWebsites++
		}
	}
	return s
}
