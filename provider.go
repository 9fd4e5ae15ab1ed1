package relay

import "context"

// Provider identifies an LLM provider.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported providers.
const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderGoogle    Provider = "google"
	ProviderDeepSeek  Provider = "deepseek"
)

// Gateway is the per-provider capability contract. A gateway translates
// an envelope into its provider's wire shape and back, and never leaks
// provider-specific error types: any transport, auth, or quota failure
// is returned as a *ProviderError.
type Gateway interface {
	Send(ctx context.Context, env *Envelope) (*RawCompletion, error)
}

// FinishReason classifies how a provider ended a completion.
type FinishReason string

const (
	// FinishCompleted means the model produced a final answer.
	FinishCompleted FinishReason = "completed"
	// FinishToolCall means the model wants a tool executed before answering.
	FinishToolCall FinishReason = "tool_call"
)

// RawCompletion is a gateway's translation of one provider response.
type RawCompletion struct {
	// FinishReason is FinishCompleted or FinishToolCall.
	FinishReason FinishReason
	// Content holds the textual or structured answer when completed.
	Content string
	// ToolCall is the requested tool invocation when FinishReason is
	// FinishToolCall, nil otherwise.
	ToolCall *ToolCall
	// Usage carries the provider-reported token counts.
	Usage Usage
}

// ResponseFormat requests a specific output shape from the provider.
type ResponseFormat string

const (
	// ResponseFormatText is the default free-text output.
	ResponseFormatText ResponseFormat = "text"
	// ResponseFormatJSON asks the provider for a JSON object response.
	ResponseFormatJSON ResponseFormat = "json"
)
