package model

import ai "github.com/spetersoncode/relay"

// Descriptor is one registry entry: a model's owning provider, pricing,
// and capability flags. Immutable after load.
type Descriptor struct {
	// ID is the provider-facing model identifier.
	ID string `yaml:"id"`
	// Provider owns this model and determines gateway routing.
	Provider ai.Provider `yaml:"provider"`
	// InputPerMillion is the input token price per million tokens (USD).
	InputPerMillion float64 `yaml:"input_per_million"`
	// OutputPerMillion is the output token price per million tokens (USD).
	OutputPerMillion float64 `yaml:"output_per_million"`
	// TemperatureEnabled reports whether the model honors sampling
	// temperature. When false, temperature is suppressed entirely from
	// envelopes built for this model.
	TemperatureEnabled bool `yaml:"temperature_enabled"`
}

// DeepSeek models.
// Model pricing last verified: August 2026.
var (
	DeepSeekChat     = Descriptor{ID: "deepseek-chat", Provider: ai.ProviderDeepSeek, InputPerMillion: 0.27, OutputPerMillion: 1.10, TemperatureEnabled: true}
	DeepSeekReasoner = Descriptor{ID: "deepseek-reasoner", Provider: ai.ProviderDeepSeek, InputPerMillion: 0.55, OutputPerMillion: 2.19, TemperatureEnabled: false}
)

// Anthropic Claude models.
var (
	ClaudeOpus45   = Descriptor{ID: "claude-opus-4-5", Provider: ai.ProviderAnthropic, InputPerMillion: 5.00, OutputPerMillion: 25.00, TemperatureEnabled: true}
	ClaudeSonnet45 = Descriptor{ID: "claude-sonnet-4-5", Provider: ai.ProviderAnthropic, InputPerMillion: 3.00, OutputPerMillion: 15.00, TemperatureEnabled: true}
	ClaudeHaiku45  = Descriptor{ID: "claude-haiku-4-5", Provider: ai.ProviderAnthropic, InputPerMillion: 1.00, OutputPerMillion: 5.00, TemperatureEnabled: true}
)

// OpenAI models. The o-series reasoning models ignore temperature.
var (
	GPT52   = Descriptor{ID: "gpt-5.2", Provider: ai.ProviderOpenAI, InputPerMillion: 1.75, OutputPerMillion: 14.00, TemperatureEnabled: true}
	GPT51   = Descriptor{ID: "gpt-5.1", Provider: ai.ProviderOpenAI, InputPerMillion: 1.25, OutputPerMillion: 10.00, TemperatureEnabled: true}
	GPT5Min = Descriptor{ID: "gpt-5-mini", Provider: ai.ProviderOpenAI, InputPerMillion: 0.25, OutputPerMillion: 1.00, TemperatureEnabled: true}
	O3      = Descriptor{ID: "o3", Provider: ai.ProviderOpenAI, InputPerMillion: 2.00, OutputPerMillion: 16.00, TemperatureEnabled: false}
	O4Mini  = Descriptor{ID: "o4-mini", Provider: ai.ProviderOpenAI, InputPerMillion: 0.50, OutputPerMillion: 2.00, TemperatureEnabled: false}
)

// Google Gemini models.
var (
	Gemini3Pro        = Descriptor{ID: "gemini-3.0-pro", Provider: ai.ProviderGoogle, InputPerMillion: 2.00, OutputPerMillion: 12.00, TemperatureEnabled: true}
	Gemini25Flash     = Descriptor{ID: "gemini-2.5-flash", Provider: ai.ProviderGoogle, InputPerMillion: 0.15, OutputPerMillion: 0.60, TemperatureEnabled: true}
	Gemini25FlashLite = Descriptor{ID: "gemini-2.5-flash-lite", Provider: ai.ProviderGoogle, InputPerMillion: 0.075, OutputPerMillion: 0.30, TemperatureEnabled: true}
)

// Catalog returns the built-in descriptor set.
func Catalog() []Descriptor {
	return []Descriptor{
		DeepSeekChat, DeepSeekReasoner,
		ClaudeOpus45, ClaudeSonnet45, ClaudeHaiku45,
		GPT52, GPT51, GPT5Min, O3, O4Mini,
		Gemini3Pro, Gemini25Flash, Gemini25FlashLite,
	}
}
