// Package history selects and renders prior conversation turns for
// inclusion in a new request.
//
// With no anchor, the most recent turns of the conversation are returned
// in chronological order. With an anchor embedding, turns are selected by
// cosine distance to the anchor (closest first, strictly under the
// threshold) for semantic retrieval. An empty selection is a normal
// outcome, not an error.
//
//	assembler := history.NewAssembler(turns, embeddings)
//	selected, err := assembler.Assemble(ctx, conversationID,
//	    history.WithAnchor(anchorEmbeddingID),
//	)
//	block := history.Render(selected)
//
// The write side is covered by [Enricher]: turns whose content satisfies
// a caller-supplied predicate get an embedding computed and attached
// before persistence, making them eligible for semantic selection later.
package history
