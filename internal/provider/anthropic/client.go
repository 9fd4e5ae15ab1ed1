// Package anthropic translates envelopes to and from the Anthropic
// Messages API.
package anthropic

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	ai "github.com/spetersoncode/relay"
)

const defaultMaxTokens = 4096

// Client wraps the Anthropic SDK to implement ai.Gateway. The SDK client
// is constructed once and injected; no lazy initialization happens after
// New returns.
type Client struct {
	client    *anthropic.Client
	maxTokens int64
}

// New creates a gateway with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return newClient(&client, opts...)
}

// NewWithClient creates a gateway around an existing SDK client.
func NewWithClient(client *anthropic.Client, opts ...ClientOption) *Client {
	return newClient(client, opts...)
}

func newClient(client *anthropic.Client, opts ...ClientOption) *Client {
	c := &Client{
		client:    client,
		maxTokens: defaultMaxTokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientOption configures the Anthropic gateway.
type ClientOption func(*Client)

// WithMaxTokens sets the generation cap sent with every request.
func WithMaxTokens(n int64) ClientOption {
	return func(c *Client) {
		c.maxTokens = n
	}
}

// Send translates the envelope into an Anthropic messages call and the
// response back into a RawCompletion. Any SDK failure is returned as a
// *ai.ProviderError.
func (c *Client) Send(ctx context.Context, env *ai.Envelope) (*ai.RawCompletion, error) {
	msgs, system := convertTurns(env.Turns)
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(env.Model),
		MaxTokens: c.maxTokens,
		Messages:  msgs,
	}
	if len(system) > 0 {
		params.System = system
	}
	if env.Temperature != nil {
		params.Temperature = anthropic.Float(*env.Temperature)
	}

	useJSONTool := env.ResponseFormat == ai.ResponseFormatJSON

	if useJSONTool {
		jsonTool, jsonToolChoice := buildJSONTool()
		if len(env.Tools) > 0 {
			params.Tools = append(convertTools(env.Tools), jsonTool)
		} else {
			params.Tools = []anthropic.ToolUnionParam{jsonTool}
		}
		params.ToolChoice = jsonToolChoice
	} else if len(env.Tools) > 0 {
		params.Tools = convertTools(env.Tools)
		if env.ToolChoice != "" && env.ToolChoice != ai.ToolChoiceNone {
			params.ToolChoice = convertToolChoice(env.ToolChoice)
		}
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, ai.NewProviderError(ai.ProviderAnthropic, "chat", err)
	}

	content := ""
	var toolCall *ai.ToolCall
	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			content += block.Text
		case "tool_use":
			if useJSONTool && block.Name == jsonResponseToolName {
				content = string(block.Input)
			} else if toolCall == nil {
				toolCall = &ai.ToolCall{
					ID:        block.ID,
					Name:      block.Name,
					Arguments: string(block.Input),
				}
			}
		}
	}

	finish := ai.FinishCompleted
	if toolCall != nil {
		finish = ai.FinishToolCall
	}

	return &ai.RawCompletion{
		FinishReason: finish,
		Content:      content,
		ToolCall:     toolCall,
		Usage: ai.Usage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
		},
	}, nil
}

var _ ai.Gateway = (*Client)(nil)
