package history

import "context"

// ShouldEmbed decides whether a turn's content is worth embedding before
// it is persisted. The predicate must stay in sync with the read-side
// threshold logic: only enriched turns are eligible for semantic
// selection later.
type ShouldEmbed func(content string) bool

// MinLengthPredicate returns a ShouldEmbed that skips contents shorter
// than n bytes. Very short turns carry too little signal to retrieve.
func MinLengthPredicate(n int) ShouldEmbed {
	return func(content string) bool {
		return len(content) >= n
	}
}

// Enricher computes and attaches embeddings to turns at write time.
type Enricher struct {
	embedder  Embedder
	predicate ShouldEmbed
}

// NewEnricher creates an Enricher. A nil predicate embeds every turn.
func NewEnricher(embedder Embedder, predicate ShouldEmbed) *Enricher {
	if predicate == nil {
		predicate = func(string) bool { return true }
	}
	return &Enricher{
		embedder:  embedder,
		predicate: predicate,
	}
}

// Enrich computes the embedding for a turn whose content satisfies the
// predicate. It returns the vector, the token count consumed, and
// whether embedding happened at all. The caller owns storing the vector
// and setting the turn's EmbeddingID before persisting it.
func (e *Enricher) Enrich(ctx context.Context, t Turn) (vector []float64, tokens int, embedded bool, err error) {
	if !e.predicate(t.Content) {
		return nil, 0, false, nil
	}
	vector, tokens, err = e.embedder.Embed(ctx, t.Content)
	if err != nil {
		return nil, 0, false, err
	}
	return vector, tokens, true, nil
}
