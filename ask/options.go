package ask

import (
	ai "github.com/spetersoncode/relay"
	"github.com/spetersoncode/relay/history"
	"github.com/spetersoncode/relay/tool"
)

// DefaultTemperature is applied when the caller does not set one.
const DefaultTemperature = 0.1

// Option configures a single Execute call.
type Option func(*requestOptions)

type requestOptions struct {
	instructions    []string
	tools           *tool.Registry
	sessionKey      string
	temperature     float64
	toolChoice      ai.ToolChoice
	historyText     string
	conversationID  string
	anchor          string
	recencyLimit    int
	similarityLimit int
	threshold       float64
	responseFormat  ai.ResponseFormat
}

func applyOptions(opts ...Option) *requestOptions {
	options := &requestOptions{
		temperature:     DefaultTemperature,
		recencyLimit:    history.DefaultRecencyLimit,
		similarityLimit: history.DefaultSimilarityLimit,
		threshold:       history.DefaultSimilarityThreshold,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// selectOptions translates request options into assembler options.
func (r *requestOptions) selectOptions() []history.SelectOption {
	opts := []history.SelectOption{
		history.WithRecencyLimit(r.recencyLimit),
		history.WithSimilarityLimit(r.similarityLimit),
		history.WithSimilarityThreshold(r.threshold),
	}
	if r.anchor != "" {
		opts = append(opts, history.WithAnchor(r.anchor))
	}
	return opts
}

// WithInstructions sets the system instructions for the request.
func WithInstructions(instructions ...string) Option {
	return func(r *requestOptions) {
		r.instructions = append(r.instructions, instructions...)
	}
}

// WithTools makes the registry's tools available to the model.
func WithTools(tools *tool.Registry) Option {
	return func(r *requestOptions) {
		r.tools = tools
	}
}

// WithSessionKey attaches a session key to the request.
func WithSessionKey(key string) Option {
	return func(r *requestOptions) {
		r.sessionKey = key
	}
}

// WithTemperature sets the sampling temperature. It is ignored for
// models that do not accept one.
func WithTemperature(t float64) Option {
	return func(r *requestOptions) {
		r.temperature = t
	}
}

// WithToolChoice controls how the model may use the provided tools.
func WithToolChoice(choice ai.ToolChoice) Option {
	return func(r *requestOptions) {
		r.toolChoice = choice
	}
}

// WithHistoryText supplies pre-rendered conversation history verbatim,
// bypassing the assembler.
func WithHistoryText(text string) Option {
	return func(r *requestOptions) {
		r.historyText = text
	}
}

// WithConversation selects stored turns from the named conversation and
// renders them into the prompt. Requires an assembler on the
// Orchestrator.
func WithConversation(id string) Option {
	return func(r *requestOptions) {
		r.conversationID = id
	}
}

// WithAnchor switches conversation selection from recency to
// similarity against the stored embedding named by embeddingID.
func WithAnchor(embeddingID string) Option {
	return func(r *requestOptions) {
		r.anchor = embeddingID
	}
}

// WithRecencyLimit caps the number of recent turns selected.
func WithRecencyLimit(n int) Option {
	return func(r *requestOptions) {
		r.recencyLimit = n
	}
}

// WithSimilarityLimit caps the number of similar turns selected.
func WithSimilarityLimit(n int) Option {
	return func(r *requestOptions) {
		r.similarityLimit = n
	}
}

// WithSimilarityThreshold sets the cosine distance cutoff for
// similarity selection.
func WithSimilarityThreshold(t float64) Option {
	return func(r *requestOptions) {
		r.threshold = t
	}
}

// WithResponseFormat requests a structured response payload.
func WithResponseFormat(format ai.ResponseFormat) Option {
	return func(r *requestOptions) {
		r.responseFormat = format
	}
}
