// Package google translates envelopes to and from the Gemini API.
package google

import (
	"context"

	ai "github.com/spetersoncode/relay"
	"google.golang.org/genai"
)

// Client wraps the Google GenAI SDK to implement ai.Gateway. The SDK
// client is constructed once and injected; no lazy initialization
// happens after New returns.
type Client struct {
	client *genai.Client
}

// New creates a gateway with the given API key.
func New(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, ai.NewProviderError(ai.ProviderGoogle, "init", err)
	}
	return &Client{client: client}, nil
}

// NewWithClient creates a gateway around an existing SDK client.
func NewWithClient(client *genai.Client) *Client {
	return &Client{client: client}
}

// Send translates the envelope into a GenerateContent call and the
// response back into a RawCompletion. Any SDK failure is returned as a
// *ai.ProviderError.
func (c *Client) Send(ctx context.Context, env *ai.Envelope) (*ai.RawCompletion, error) {
	contents, systemParts := convertTurns(env.Turns)

	config := &genai.GenerateContentConfig{}
	if len(systemParts) > 0 {
		config.SystemInstruction = &genai.Content{Parts: systemParts}
	}
	if env.Temperature != nil {
		temp := float32(*env.Temperature)
		config.Temperature = &temp
	}
	if len(env.Tools) > 0 {
		config.Tools = convertTools(env.Tools)
		if env.ToolChoice != "" {
			config.ToolConfig = convertToolChoice(env.ToolChoice)
		}
	}
	if env.ResponseFormat == ai.ResponseFormatJSON {
		config.ResponseMIMEType = "application/json"
	}

	resp, err := c.client.Models.GenerateContent(ctx, env.Model, contents, config)
	if err != nil {
		return nil, ai.NewProviderError(ai.ProviderGoogle, "chat", err)
	}

	content := ""
	var toolCall *ai.ToolCall
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.Text != "" {
				content += part.Text
			}
		}
		toolCall = extractToolCall(resp.Candidates[0].Content.Parts)
	}

	finish := ai.FinishCompleted
	if toolCall != nil {
		finish = ai.FinishToolCall
	}

	usage := ai.Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}

	return &ai.RawCompletion{
		FinishReason: finish,
		Content:      content,
		ToolCall:     toolCall,
		Usage:        usage,
	}, nil
}

var _ ai.Gateway = (*Client)(nil)
