package history

import (
	"context"

	ai "github.com/spetersoncode/relay"
)

// Turn is one prior conversation message, read-only to this package.
type Turn struct {
	Role    ai.Role `json:"role"`
	Content string  `json:"content"`
	// EmbeddingID references the turn's stored embedding vector, empty
	// if the turn was never embedded.
	EmbeddingID string `json:"embeddingId,omitempty"`
}

// TurnSource is the external read accessor for conversation turns.
type TurnSource interface {
	// GetRecent returns the most recent limit turns of the conversation
	// in chronological order.
	GetRecent(ctx context.Context, conversationID string, limit int) ([]Turn, error)

	// GetBySimilarity returns turns of the conversation that have a
	// stored embedding and whose cosine distance to anchor is strictly
	// less than threshold, ordered ascending by distance and capped to
	// limit.
	GetBySimilarity(ctx context.Context, conversationID string, anchor []float64, threshold float64, limit int) ([]Turn, error)
}

// EmbeddingSource fetches stored embedding vectors by identifier.
type EmbeddingSource interface {
	GetEmbedding(ctx context.Context, id string) ([]float64, error)
}

// Embedder computes a fixed-length vector plus the token count consumed
// for a piece of text. Embedding computation is an external collaborator.
type Embedder interface {
	Embed(ctx context.Context, text string) (vector []float64, tokens int, err error)
}
