package openai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	ai "github.com/spetersoncode/relay"
)

// DefaultEmbeddingModel is used when no model is configured.
const DefaultEmbeddingModel = "text-embedding-3-small"

// Embedder computes embeddings via OpenAI's embedding API. It implements
// the history.Embedder collaborator contract.
type Embedder struct {
	client *openai.Client
	model  string
}

// NewEmbedder creates an Embedder with the given API key.
func NewEmbedder(apiKey string, opts ...EmbedderOption) *Embedder {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	e := &Embedder{
		client: &client,
		model:  DefaultEmbeddingModel,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EmbedderOption configures the Embedder.
type EmbedderOption func(*Embedder)

// WithEmbeddingModel overrides the embedding model.
func WithEmbeddingModel(model string) EmbedderOption {
	return func(e *Embedder) {
		e.model = model
	}
}

// Embed returns the embedding vector for text and the token count
// consumed computing it.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float64, int, error) {
	resp, err := e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(e.model),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: []string{text},
		},
	})
	if err != nil {
		return nil, 0, ai.NewProviderError(ai.ProviderOpenAI, "embed", err)
	}
	if len(resp.Data) == 0 {
		return nil, 0, ai.NewProviderError(ai.ProviderOpenAI, "embed", ai.ErrEmptyInput)
	}
	return resp.Data[0].Embedding, int(resp.Usage.PromptTokens), nil
}
