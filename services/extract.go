/*
# Module: services/extract.go
Structured-text parsing: JSON extraction from free-form AI output plus the
regex fallbacks that categorize raw contact tokens.

## Linked Modules
- [types/search_result](../types/search_result.go) - Facet search result structures
- [types/contact](../types/contact.go) - Contact item structures

## Tags
business-logic, parsing, regex, fallback

## Exports
ExtractJSONObject, ExtractEmailsFromText, ExtractPhonesFromText

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "services/extract.go" ;
    code:description "JSON extraction from AI output and regex contact fallbacks" ;
    code:linksTo [
        code:name "types/search_result" ;
        code:path "../types/search_result.go" ;
        code:relationship "Facet search result structures"
    ], [
        code:name "types/contact" ;
        code:path "../types/contact.go" ;
        code:relationship "Contact item structures"
    ] ;
    code:exports :ExtractJSONObject, :ExtractEmailsFromText, :ExtractPhonesFromText ;
    code:tags "business-logic", "parsing", "regex", "fallback" .
<!-- End LinkedDoc RDF -->
*/
package services

import (
	"regexp"
	"strings"

	"github.com/kjanuda/cityget/types"
)

const fallbackPSOfficeName = "Related Pradeshiya Sabha"

var (
	fencedJSONPattern = regexp.MustCompile("```(?:json)?\\s*(\\{[\\s\\S]*?\\})\\s*```")
	emailPattern      = regexp.MustCompile(`[\w.+-]+@[\w.-]+\.[a-zA-Z]{2,}`)
	phonePattern      = regexp.MustCompile(`\+94[\d\s-]{9,}|0[\d\s-]{9,}`)
)

// ExtractJSONObject pulls a JSON object out of free-form model output.
// It prefers a fenced code block; failing that it takes the first
// brace-balanced object found anywhere in the text.
func ExtractJSONObject(text string) (string, bool) {
	if m := fencedJSONPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}

	start := strings.Index(text, "{")
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

// ExtractEmailsFromText pulls email tokens out of raw text, deduplicates, and
// categorizes them into Pradeshiya Sabha vs Divisional Secretariat buckets by
// keyword. Unclassified .gov.lk addresses default to the DS bucket; anything
// else is discarded.
func ExtractEmailsFromText(text string) *types.EmailSearchResult {
	found := emailPattern.FindAllString(text, -1)

	seen := make(map[string]bool)
	dsEmails := []types.EmailContact{}
	psEmails := []types.EmailContact{}

	for _, email := range found {
		if seen[email] {
			continue
		}
		seen[email] = true

		emailLower := strings.ToLower(email)

		switch {
		case strings.Contains(emailLower, "ps.") ||
			strings.Contains(emailLower, "pradeshiya") ||
			strings.Contains(emailLower, "sabha") ||
			strings.Contains(emailLower, "chairman") ||
			strings.Contains(emailLower, "localcouncil"):
			psEmails = append(psEmails, types.EmailContact{
				Address:     email,
				Type:        "general",
				Description: "Extracted from search results - Pradeshiya Sabha",
				Verified:    false,
			})
		case strings.Contains(emailLower, "ds.") ||
			strings.Contains(emailLower, "divisional") ||
			strings.Contains(emailLower, "secretariat") ||
			strings.Contains(emailLower, "secretary@") ||
			strings.Contains(emailLower, "district"):
			dsEmails = append(dsEmails, types.EmailContact{
				Address:     email,
				Type:        "general",
				Description: "Extracted from search results - Divisional Secretariat",
				Verified:    false,
			})
		case strings.Contains(emailLower, ".gov.lk"):
			dsEmails = append(dsEmails, types.EmailContact{
				Address:     email,
				Type:        "general",
				Description: "Extracted from search results",
				Verified:    false,
			})
		}
	}

	result := &types.EmailSearchResult{
		TotalFound:    len(dsEmails) + len(psEmails),
		SearchSummary: "Extracted and categorized from text",
	}
	result.DivisionalSecretariat.Emails = dsEmails
	result.PradeshiyaSabha.Emails = psEmails
	result.PradeshiyaSabha.OfficeName = fallbackPSOfficeName
	if len(dsEmails) > 0 {
		result.DivisionalSecretariat.PrimaryEmail = dsEmails[0].Address
	}
	if len(psEmails) > 0 {
		result.PradeshiyaSabha.PrimaryEmail = psEmails[0].Address
	}
	return result
}

// ExtractPhonesFromText pulls phone-number tokens out of raw text and
// deduplicates them. All extracted numbers land in the Divisional Secretariat
// bucket; the text gives no reliable signal to split them toward the
// Pradeshiya Sabha.
func ExtractPhonesFromText(text string) *types.PhoneSearchResult {
	found := phonePattern.FindAllString(text, -1)

	seen := make(map[string]bool)
	phones := []types.PhoneContact{}
	for _, raw := range found {
		number := strings.TrimSpace(raw)
		if seen[number] {
			continue
		}
		seen[number] = true

		phones = append(phones, types.PhoneContact{
			Number:      number,
			Type:        "general",
			Description: "Extracted from search results",
			Verified:    false,
		})
	}

	result := &types.PhoneSearchResult{
		TotalFound: len(phones),
	}
	result.DivisionalSecretariat.Phones = phones
	if len(phones) > 0 {
		result.DivisionalSecretariat.PrimaryPhone = phones[0].Number
	}
	result.PradeshiyaSabha.Phones = []types.PhoneContact{}
	result.PradeshiyaSabha.OfficeName = fallbackPSOfficeName
	return result
}
