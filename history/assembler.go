package history

import (
	"context"
	"fmt"
)

// Default selection parameters.
const (
	DefaultRecencyLimit        = 10
	DefaultSimilarityLimit     = 20
	DefaultSimilarityThreshold = 0.3
)

// Assembler selects the prior turns that accompany a new request.
type Assembler struct {
	turns      TurnSource
	embeddings EmbeddingSource
}

// NewAssembler creates an Assembler over the given accessors.
func NewAssembler(turns TurnSource, embeddings EmbeddingSource) *Assembler {
	return &Assembler{
		turns:      turns,
		embeddings: embeddings,
	}
}

// selection holds the resolved parameters for one Assemble call.
type selection struct {
	anchorEmbeddingID   string
	recencyLimit        int
	similarityLimit     int
	similarityThreshold float64
}

// SelectOption configures one Assemble call.
type SelectOption func(*selection)

// WithAnchor switches selection from recency to embedding similarity
// against the stored vector identified by embeddingID.
func WithAnchor(embeddingID string) SelectOption {
	return func(s *selection) {
		s.anchorEmbeddingID = embeddingID
	}
}

// WithRecencyLimit caps the recency window.
func WithRecencyLimit(limit int) SelectOption {
	return func(s *selection) {
		s.recencyLimit = limit
	}
}

// WithSimilarityLimit caps the similarity window.
func WithSimilarityLimit(limit int) SelectOption {
	return func(s *selection) {
		s.similarityLimit = limit
	}
}

// WithSimilarityThreshold sets the strict cosine-distance cutoff.
func WithSimilarityThreshold(threshold float64) SelectOption {
	return func(s *selection) {
		s.similarityThreshold = threshold
	}
}

// Assemble returns the ordered sequence of prior turns to inject as
// context. Without an anchor it returns the most recent turns in
// chronological order; with an anchor it returns the semantically
// closest turns. An empty sequence is a normal outcome.
func (a *Assembler) Assemble(ctx context.Context, conversationID string, opts ...SelectOption) ([]Turn, error) {
	sel := &selection{
		recencyLimit:        DefaultRecencyLimit,
		similarityLimit:     DefaultSimilarityLimit,
		similarityThreshold: DefaultSimilarityThreshold,
	}
	for _, opt := range opts {
		opt(sel)
	}

	if sel.anchorEmbeddingID == "" {
		return a.turns.GetRecent(ctx, conversationID, sel.recencyLimit)
	}

	anchor, err := a.embeddings.GetEmbedding(ctx, sel.anchorEmbeddingID)
	if err != nil {
		return nil, fmt.Errorf("history: fetch anchor embedding %s: %w", sel.anchorEmbeddingID, err)
	}
	return a.turns.GetBySimilarity(ctx, conversationID, anchor, sel.similarityThreshold, sel.similarityLimit)
}
