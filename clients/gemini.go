/*
# Module: clients/gemini.go
Gemini generateContent API client with Google Search grounding enabled.

## Linked Modules
- [types/api_types](../types/api_types.go) - Gemini API types

## Tags
api-client, gemini, ai, llm, web-search

## Exports
GeminiClient, NewGeminiClient, GenerateWithSearch

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "clients/gemini.go" ;
    code:description "Gemini generateContent API client with Google Search grounding" ;
    code:linksTo [
        code:name "types/api_types" ;
        code:path "../types/api_types.go" ;
        code:relationship "Gemini API types"
    ] ;
    code:exports :GeminiClient, :NewGeminiClient, :GenerateWithSearch ;
    code:tags "api-client", "gemini", "ai", "llm", "web-search" .
<!-- End LinkedDoc RDF -->
*/
package clients

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kjanuda/cityget/types"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-2.0-flash-exp"

	// Low temperature keeps the search output close to deterministic so the
	// JSON extraction downstream stays stable.
	geminiTemperature = 0.1
)

// GeminiClient handles Gemini API requests
type GeminiClient struct {
	apiKey     string
	model      string
	httpClient *http.Client

	// BaseURL defaults to the public Generative Language endpoint
	BaseURL string
}

// NewGeminiClient creates a new Gemini API client
func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		model:      defaultGeminiModel,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		BaseURL:    defaultGeminiBaseURL,
	}
}

// GenerateWithSearch sends a prompt to Gemini with web-search grounding
// enabled and returns the generated text
func (c *GeminiClient) GenerateWithSearch(prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("Gemini API key not configured")
	}

	reqBody := types.GeminiRequest{
		Contents: []types.GeminiContent{
			{
				Role:  "user",
				Parts: []types.GeminiPart{{Text: prompt}},
			},
		},
		Tools: []types.GeminiTool{
			{GoogleSearch: &struct{}{}},
		},
		GenerationConfig: &types.GeminiGenerationConfig{
			Temperature: geminiTemperature,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.BaseURL, c.model, c.apiKey)

	req, err := http.NewRequest("POST", endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API error (status %d): %s", resp.StatusCode, string(body))
	}

	var geminiResp types.GeminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if geminiResp.Error != nil {
		return "", fmt.Errorf("Gemini API error: %s", geminiResp.Error.Message)
	}

	if len(geminiResp.Candidates) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}

	var sb strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
