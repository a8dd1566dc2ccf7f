/*
# Module: types/search_result.go
Parsed results of the AI-assisted facet searches (emails, phones, websites).

## Linked Modules
- [types/contact](./contact.go) - Contact item structures

## Tags
data-types, search, ai

## Exports
EmailSection, PhoneSection, WebsiteSection, EmailSearchResult, PhoneSearchResult, WebsiteSearchResult

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "types/search_result.go" ;
    code:description "Parsed results of the AI-assisted facet searches" ;
    code:linksTo [
        code:name "types/contact" ;
        code:path "./contact.go" ;
        code:relationship "Contact item structures"
    ] ;
    code:exports :EmailSearchResult, :PhoneSearchResult, :WebsiteSearchResult ;
    code:tags "data-types", "search", "ai" .
<!-- End LinkedDoc RDF -->
*/
package types

// EmailSection is one office's share of an email facet search result
type EmailSection struct {
	Emails       []EmailContact `json:"emails"`
	PrimaryEmail string         `json:"primaryEmail"`
	OfficeName   string         `json:"officeName,omitempty"`
}

// PhoneSection is one office's share of a phone facet search result
type PhoneSection struct {
	Phones       []PhoneContact `json:"phones"`
	PrimaryPhone string         `json:"primaryPhone"`
	OfficeName   string         `json:"officeName,omitempty"`
}

// WebsiteSection is one office's share of a website facet search result
type WebsiteSection struct {
	Websites       []WebsiteContact `json:"websites"`
	PrimaryWebsite string           `json:"primaryWebsite"`
	OfficeName     string           `json:"officeName,omitempty"`
}

// EmailSearchResult mirrors the JSON object the email facet search returns
type EmailSearchResult struct {
	DivisionalSecretariat EmailSection `json:"divisionalSecretariat"`
	PradeshiyaSabha       EmailSection `json:"pradeshiyaSabha"`
	TotalFound            int          `json:"totalFound"`
	SearchSummary         string       `json:"searchSummary,omitempty"`
}

// PhoneSearchResult mirrors the JSON object the phone facet search returns
type PhoneSearchResult struct {
	DivisionalSecretariat PhoneSection `json:"divisionalSecretariat"`
	PradeshiyaSabha       PhoneSection `json:"pradeshiyaSabha"`
	TotalFound            int          `json:"totalFound"`
}

// WebsiteSearchResult mirrors the JSON object the website facet search returns
type WebsiteSearchResult struct {
	DivisionalSecretariat WebsiteSection `json:"divisionalSecretariat"`
	PradeshiyaSabha       WebsiteSection `json:"pradeshiyaSabha"`
	TotalFound            int            `json:"totalFound"`
}
