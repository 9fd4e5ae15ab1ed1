// Package deepseek provides the DeepSeek gateway. DeepSeek speaks the
// OpenAI chat completions protocol, so the gateway is the shared
// OpenAI-compatible client pointed at the DeepSeek endpoint.
package deepseek

import (
	ai "github.com/spetersoncode/relay"
	"github.com/spetersoncode/relay/internal/provider/openai"
)

// DefaultBaseURL is the DeepSeek API endpoint.
const DefaultBaseURL = "https://api.deepseek.com"

// New creates a DeepSeek gateway with the given API key.
func New(apiKey string) *openai.Client {
	return NewWithBaseURL(DefaultBaseURL, apiKey)
}

// NewWithBaseURL creates a DeepSeek gateway against a custom endpoint,
// e.g. a regional mirror or a test server.
func NewWithBaseURL(baseURL, apiKey string) *openai.Client {
	return openai.NewCompatible(ai.ProviderDeepSeek, baseURL, apiKey)
}
