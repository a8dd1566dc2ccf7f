/*
# Module: services/discovery.go
AI-assisted contact discovery: three web-search facets (emails, phones,
websites) scoped to the Divisional Secretariat and Pradeshiya Sabha offices.

## Linked Modules
- [clients/gemini](../clients/gemini.go) - Gemini API client
- [services/extract](./extract.go) - JSON extraction and regex fallbacks
- [types/search_result](../types/search_result.go) - Facet search result structures

## Tags
business-logic, search, ai, contact-discovery

## Exports
ContactDiscoveryService, NewContactDiscoveryService, SearchContacts, SearchEmails, SearchPhones, SearchWebsites

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "services/discovery.go" ;
    code:description "AI-assisted contact discovery across three parallel facets" ;
    code:linksTo [
        code:name "clients/gemini" ;
        code:path "../clients/gemini.go" ;
        code:relationship "Gemini API client"
    ], [
        code:name "services/extract" ;
        code:path "./extract.go" ;
        code:relationship "JSON extraction and regex fallbacks"
    ], [
        code:name "types/search_result" ;
        code:path "../types/search_result.go" ;
        code:relationship "Facet search result structures"
    ] ;
    code:exports :ContactDiscoveryService, :NewContactDiscoveryService, :SearchContacts, :SearchEmails, :SearchPhones, :SearchWebsites ;
    code:tags "business-logic", "search", "ai", "contact-discovery" .
<!-- End LinkedDoc RDF -->
*/
package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/kjanuda/cityget/clients"
	"github.com/kjanuda/cityget/types"
)

// ContactDiscoveryService runs the AI-assisted facet searches
type ContactDiscoveryService struct {
	gemini *clients.GeminiClient
}

// NewContactDiscoveryService creates a new ContactDiscoveryService instance
func NewContactDiscoveryService(gemini *clients.GeminiClient) *ContactDiscoveryService {
	return &ContactDiscoveryService{gemini: gemini}
}

// SearchContacts runs the email, phone, and website facet searches
// concurrently and joins them. A nil facet result means that facet was
// unavailable; callers merge whatever came back.
func (s *ContactDiscoveryService) SearchContacts(name, address, cityName string) (*types.EmailSearchResult, *types.PhoneSearchResult, *types.WebsiteSearchResult) {
	var (
		emailData   *types.EmailSearchResult
		phoneData   *types.PhoneSearchResult
		websiteData *types.WebsiteSearchResult
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		emailData = s.SearchEmails(name, address, cityName)
	}()
	go func() {
		defer wg.Done()
		phoneData = s.SearchPhones(name, address, cityName)
	}()
	go func() {
		defer wg.Done()
		websiteData = s.SearchWebsites(name, address, cityName)
	}()
	wg.Wait()

	return emailData, phoneData, websiteData
}

// SearchEmails finds email addresses for both offices. Structured parse
// failures fall back to regex extraction over the raw text; collaborator
// errors yield nil.
func (s *ContactDiscoveryService) SearchEmails(name, address, cityName string) *types.EmailSearchResult {
	log.Printf("📧 Searching for ALL email addresses for: %s in %s", name, cityName)

	prompt := fmt.Sprintf(`
Search the web thoroughly and find ALL email addresses for BOTH:
1. Divisional Secretariat office
2. Pradeshiya Sabha (local council) in the same area

Office Information:
- Name: %s
- Address: %s
- City: %s
- Country: Sri Lanka

For DIVISIONAL SECRETARIAT, find:
- General office email (ds@, info@, contact@)
- Director/Divisional Secretary email
- Department emails (land, births/deaths, welfare, etc.)
- Administrative emails
- Public inquiry emails

For PRADESHIYA SABHA (same area), find:
- Main Pradeshiya Sabha office email
- Chairman email
- Secretary email
- Department emails
- Administrative emails

Search in:
- Official government websites (.gov.lk domains)
- Local government directories
- Provincial council websites
- Official announcements and press releases
- Government contact directories

Return ONLY a JSON object:
{
  "divisionalSecretariat": {
    "emails": [
      {
        "address": "email@ds.gov.lk",
        "type": "general/director/department/administrative",
        "department": "name of department if applicable",
        "description": "what this email is for",
        "verified": true/false
      }
    ],
    "primaryEmail": "main DS email"
  },
  "pradeshiyaSabha": {
    "emails": [
      {
        "address": "email@ps.gov.lk",
        "type": "general/chairman/secretary/department",
        "department": "name of department if applicable",
        "description": "what this email is for",
        "verified": true/false
      }
    ],
    "primaryEmail": "main PS email",
    "officeName": "name of the Pradeshiya Sabha"
  },
  "totalFound": number,
  "searchSummary": "summary of findings"
}

CRITICAL:
- ONLY return emails directly related to Divisional Secretariat or Pradeshiya Sabha
- DO NOT include emails from other organizations, ministries, or unrelated offices
- Mark verified: true only if found on official .gov.lk sources
- If no Pradeshiya Sabha found, return empty array for that section
`, name, address, cityName)

	text, err := s.gemini.GenerateWithSearch(prompt)
	if err != nil {
		log.Printf("❌ Email search error: %v", err)
		return nil
	}

	if raw, ok := ExtractJSONObject(text); ok {
		var result types.EmailSearchResult
		if err := json.Unmarshal([]byte(raw), &result); err == nil {
			log.Printf("✅ Found %d DS email(s) and %d PS email(s)",
				len(result.DivisionalSecretariat.Emails), len(result.PradeshiyaSabha.Emails))
			return &result
		}
	}

	log.Printf("⚠️  Extracting emails from text...")
	return ExtractEmailsFromText(text)
}

// SearchPhones finds phone numbers for both offices, with the same fallback
// behavior as SearchEmails
func (s *ContactDiscoveryService) SearchPhones(name, address, cityName string) *types.PhoneSearchResult {
	log.Printf("📞 Searching for phone numbers (DS & PS only) for: %s in %s", name, cityName)

	prompt := fmt.Sprintf(`
Search the web and find phone numbers for ONLY these offices:
1. Divisional Secretariat
2. Pradeshiya Sabha in the same area

Office Information:
- Name: %s
- Address: %s
- City: %s
- Country: Sri Lanka

Find phone numbers for:
DIVISIONAL SECRETARIAT:
- Main office landline
- Director's office
- Department phones
- Fax numbers

PRADESHIYA SABHA:
- Main office phone
- Chairman's office
- Secretary's office
- Department phones

Return ONLY a JSON object:
{
  "divisionalSecretariat": {
    "phones": [
      {
        "number": "phone with +94 code",
        "type": "landline/mobile/fax",
        "description": "office/department name",
        "verified": true/false
      }
    ],
    "primaryPhone": "main DS phone"
  },
  "pradeshiyaSabha": {
    "phones": [
      {
        "number": "phone with +94 code",
        "type": "landline/mobile/fax",
        "description": "office/department name",
        "verified": true/false
      }
    ],
    "primaryPhone": "main PS phone",
    "officeName": "PS name"
  },
  "totalFound": number
}

CRITICAL: Only include phones for DS and PS offices, not other organizations.
Format all numbers with +94 country code.
`, name, address, cityName)

	text, err := s.gemini.GenerateWithSearch(prompt)
	if err != nil {
		log.Printf("❌ Phone search error: %v", err)
		return nil
	}

	if raw, ok := ExtractJSONObject(text); ok {
		var result types.PhoneSearchResult
		if err := json.Unmarshal([]byte(raw), &result); err == nil {
			log.Printf("✅ Found %d DS phone(s) and %d PS phone(s)",
				len(result.DivisionalSecretariat.Phones), len(result.PradeshiyaSabha.Phones))
			return &result
		}
	}

	return ExtractPhonesFromText(text)
}

// SearchWebsites finds websites for both offices. There is no text-level
// fallback for websites: a failed parse yields an empty result structure and
// a collaborator error yields nil.
func (s *ContactDiscoveryService) SearchWebsites(name, address, cityName string) *types.WebsiteSearchResult {
	log.Printf("🌐 Searching for websites (DS & PS only) for: %s in %s", name, cityName)

	prompt := fmt.Sprintf(`
Search the web and find websites for ONLY these offices:
1. Divisional Secretariat
2. Pradeshiya Sabha in the same area

Office Information:
- Name: %s
- Address: %s
- City: %s

Find:
DIVISIONAL SECRETARIAT:
- Official government website
- District/Provincial portal pages
- Social media (Facebook, Twitter)
- Contact/directory pages

PRADESHIYA SABHA:
- Official website
- Social media pages
- Government portal listings

Return ONLY a JSON object:
{
  "divisionalSecretariat": {
    "websites": [
      {
        "url": "full URL with https://",
        "type": "official/social/directory/portal",
        "platform": "website/facebook/twitter/etc",
        "description": "brief description",
        "verified": true/false
      }
    ],
    "primaryWebsite": "main website"
  },
  "pradeshiyaSabha": {
    "websites": [
      {
        "url": "full URL",
        "type": "official/social/directory",
        "platform": "website/facebook/etc",
        "description": "brief description",
        "verified": true/false
      }
    ],
    "primaryWebsite": "main website",
    "officeName": "PS name"
  },
  "totalFound": number
}

CRITICAL: Only include websites for DS and PS offices, not other organizations.
`, name, address, cityName)

	text, err := s.gemini.GenerateWithSearch(prompt)
	if err != nil {
		log.Printf("❌ Website search error: %v", err)
		return nil
	}

	if raw, ok := ExtractJSONObject(text); ok {
		var result types.WebsiteSearchResult
		if err := json.Unmarshal([]byte(raw), &result); err == nil {
			log.Printf("✅ Found %d DS website(s) and %d PS website(s)",
				len(result.DivisionalSecretariat.Websites), len(result.PradeshiyaSabha.Websites))
			return &result
		}
	}

	empty := &types.WebsiteSearchResult{}
	empty.DivisionalSecretariat.Websites = []types.WebsiteContact{}
	empty.PradeshiyaSabha.Websites = []types.WebsiteContact{}
	empty.PradeshiyaSabha.OfficeName = fallbackPSOfficeName
	return empty
}
