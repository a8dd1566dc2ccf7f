/*
# Module: types/contact.go
Contact data structures for Divisional Secretariat and Pradeshiya Sabha offices.

## Linked Modules
(None - types package has no dependencies)

## Tags
data-types, contact, government

## Exports
EmailContact, PhoneContact, WebsiteContact, PrimaryContact, ContactLists, ContactSummary, OfficeContactRecord, ContactInfo

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "types/contact.go" ;
    code:description "Contact data structures for Divisional Secretariat and Pradeshiya Sabha offices" ;
    code:exports :EmailContact, :PhoneContact, :WebsiteContact, :PrimaryContact, :ContactLists, :ContactSummary, :OfficeContactRecord, :ContactInfo ;
    code:tags "data-types", "contact", "government" .
<!-- End LinkedDoc RDF -->
*/
package types

// EmailContact is a single discovered email address with provenance.
// Verified is true only for addresses confirmed against official sources.
type EmailContact struct {
	Address     string `json:"address"`
	Type        string `json:"type"`
	Department  string `json:"department,omitempty"`
	Description string `json:"description"`
	Verified    bool   `json:"verified"`
}

// PhoneContact is a single discovered phone number with provenance
type PhoneContact struct {
	Number      string `json:"number"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Verified    bool   `json:"verified"`
}

// WebsiteContact is a single discovered website or social page with provenance
type WebsiteContact struct {
	URL         string `json:"url"`
	Type        string `json:"type"`
	Platform    string `json:"platform,omitempty"`
	Description string `json:"description"`
	Verified    bool   `json:"verified"`
}

// PrimaryContact holds the single best-available value per facet
type PrimaryContact struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

// ContactLists holds every discovered contact per facet, highest-trust first
type ContactLists struct {
	Emails   []EmailContact   `json:"emails"`
	Phones   []PhoneContact   `json:"phones"`
	Websites []WebsiteContact `json:"websites"`
}

// ContactSummary counts total and verified entries per facet.
// Totals always equal the corresponding list lengths.
type ContactSummary struct {
	TotalEmails      int `json:"totalEmails"`
	TotalPhones      int `json:"totalPhones"`
	TotalWebsites    int `json:"totalWebsites"`
	VerifiedEmails   int `json:"verifiedEmails"`
	VerifiedPhones   int `json:"verifiedPhones"`
	VerifiedWebsites int `json:"verifiedWebsites"`
}

// OfficeContactRecord is the merged contact record for one office category
type OfficeContactRecord struct {
	OfficeName string         `json:"officeName"`
	Primary    PrimaryContact `json:"primary"`
	All        ContactLists   `json:"all"`
	Summary    ContactSummary `json:"summary"`
}

// ContactInfo pairs the two per-request office contact records
type ContactInfo struct {
	DivisionalSecretariat OfficeContactRecord `json:"divisionalSecretariat"`
	PradeshiyaSabha       OfficeContactRecord `json:"pradeshiyaSabha"`
}
