package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	ai "github.com/spetersoncode/relay"
)

// ResultStore keeps ask results in memory keyed by generated
// identifiers. It implements ask.ResultRepository.
type ResultStore struct {
	mu      sync.RWMutex
	results map[string]*ai.Result
	owners  map[string]string
}

// NewResultStore creates an empty ResultStore.
func NewResultStore() *ResultStore {
	return &ResultStore{
		results: make(map[string]*ai.Result),
		owners:  make(map[string]string),
	}
}

// Create stores a result for the given user and returns its assigned
// identifier.
func (s *ResultStore) Create(_ context.Context, result *ai.Result, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	s.results[id] = result
	s.owners[id] = userID
	return id, nil
}

// Get returns a previously stored result.
func (s *ResultStore) Get(_ context.Context, id string) (*ai.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.results[id]
	if !ok {
		return nil, fmt.Errorf("store: result not found: %s", id)
	}
	return result, nil
}

// Owner returns the user that a result was stored for.
func (s *ResultStore) Owner(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owner, ok := s.owners[id]
	return owner, ok
}
