// Package openai translates envelopes to and from the OpenAI chat
// completions API. It also backs any OpenAI-compatible provider: pass a
// base URL override at construction and tag the gateway with that
// provider id so wrapped errors carry the right provenance.
package openai

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	ai "github.com/spetersoncode/relay"
)

// Client wraps the OpenAI SDK to implement ai.Gateway. The SDK client is
// constructed once and injected; no lazy initialization happens after
// New returns.
type Client struct {
	client   *openai.Client
	provider ai.Provider
}

// New creates a gateway against the OpenAI API with the given key.
func New(apiKey string, opts ...ClientOption) *Client {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return newClient(&client, ai.ProviderOpenAI, opts...)
}

// NewCompatible creates a gateway against an OpenAI-compatible endpoint,
// attributing failures to the given provider.
func NewCompatible(provider ai.Provider, baseURL, apiKey string, opts ...ClientOption) *Client {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	)
	return newClient(&client, provider, opts...)
}

func newClient(client *openai.Client, provider ai.Provider, opts ...ClientOption) *Client {
	c := &Client{
		client:   client,
		provider: provider,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientOption configures the gateway.
type ClientOption func(*Client)

// Send translates the envelope into a chat completion call and the
// response back into a RawCompletion. Any SDK failure is returned as a
// *ai.ProviderError.
func (c *Client) Send(ctx context.Context, env *ai.Envelope) (*ai.RawCompletion, error) {
	params := openai.ChatCompletionNewParams{
		Model:    env.Model,
		Messages: convertTurns(env.Turns),
	}
	if env.Temperature != nil {
		params.Temperature = openai.Float(*env.Temperature)
	}
	if len(env.Tools) > 0 {
		params.Tools = convertTools(env.Tools)
		if env.ToolChoice != "" {
			params.ToolChoice = convertToolChoice(env.ToolChoice)
		}
	}
	if env.ResponseFormat == ai.ResponseFormatJSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{
				Type: "json_object",
			},
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, ai.NewProviderError(c.provider, "chat", err)
	}

	// Compatible backends can return an empty choice list under content
	// filtering or load shedding.
	if len(resp.Choices) == 0 {
		return nil, ai.NewProviderError(c.provider, "chat", errors.New("response contained no choices"))
	}

	choice := resp.Choices[0]

	var toolCall *ai.ToolCall
	if len(choice.Message.ToolCalls) > 0 {
		tc := choice.Message.ToolCalls[0]
		toolCall = &ai.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		}
	}

	finish := ai.FinishCompleted
	if toolCall != nil {
		finish = ai.FinishToolCall
	}

	return &ai.RawCompletion{
		FinishReason: finish,
		Content:      choice.Message.Content,
		ToolCall:     toolCall,
		Usage: ai.Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
	}, nil
}

var _ ai.Gateway = (*Client)(nil)
