package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/spetersoncode/relay/history"
)

// TurnStore keeps conversation turns and their embedding vectors in
// memory. It implements history.TurnSource and history.EmbeddingSource.
type TurnStore struct {
	mu         sync.RWMutex
	turns      map[string][]history.Turn
	embeddings map[string][]float64
}

// NewTurnStore creates an empty TurnStore.
func NewTurnStore() *TurnStore {
	return &TurnStore{
		turns:      make(map[string][]history.Turn),
		embeddings: make(map[string][]float64),
	}
}

// Append adds a turn to the end of a conversation.
func (s *TurnStore) Append(conversationID string, turn history.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[conversationID] = append(s.turns[conversationID], turn)
}

// AppendEmbedded adds a turn along with its embedding vector and
// returns the generated embedding identifier.
func (s *TurnStore) AppendEmbedded(conversationID string, turn history.Turn, vector []float64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	stored := make([]float64, len(vector))
	copy(stored, vector)
	s.embeddings[id] = stored

	turn.EmbeddingID = id
	s.turns[conversationID] = append(s.turns[conversationID], turn)
	return id
}

// GetRecent returns the most recent limit turns of the conversation in
// chronological order. An unknown conversation yields an empty slice.
func (s *TurnStore) GetRecent(_ context.Context, conversationID string, limit int) ([]history.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.turns[conversationID]
	if limit < 0 {
		limit = 0
	}
	if limit < len(all) {
		all = all[len(all)-limit:]
	}
	out := make([]history.Turn, len(all))
	copy(out, all)
	return out, nil
}

// GetBySimilarity returns turns with a stored embedding whose cosine
// distance to anchor is strictly below threshold, closest first.
func (s *TurnStore) GetBySimilarity(_ context.Context, conversationID string, anchor []float64, threshold float64, limit int) ([]history.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type scored struct {
		turn     history.Turn
		distance float64
	}

	var matches []scored
	for _, turn := range s.turns[conversationID] {
		if turn.EmbeddingID == "" {
			continue
		}
		vector, ok := s.embeddings[turn.EmbeddingID]
		if !ok {
			continue
		}
		distance := history.CosineDistance(anchor, vector)
		if distance < threshold {
			matches = append(matches, scored{turn: turn, distance: distance})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})
	if limit < len(matches) {
		matches = matches[:limit]
	}

	out := make([]history.Turn, len(matches))
	for i, m := range matches {
		out[i] = m.turn
	}
	return out, nil
}

// GetEmbedding returns the stored vector for an embedding identifier.
func (s *TurnStore) GetEmbedding(_ context.Context, id string) ([]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vector, ok := s.embeddings[id]
	if !ok {
		return nil, fmt.Errorf("store: embedding not found: %s", id)
	}
	out := make([]float64, len(vector))
	copy(out, vector)
	return out, nil
}
