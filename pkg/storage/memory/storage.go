package memory

import (
	"context"
	"sync"

	"github.com/fadedpez/parlor/pkg/storage"
)

// Store keeps the score in process memory only; it is lost on exit
type Store struct {
	mu    sync.RWMutex
	value int64
}

var _ storage.ScoreStore = (*Store)(nil)

// New creates a store holding initial
func New(initial int64) *Store {
	return &Store{value: initial}
}

// Load returns the held value
func (s *Store) Load(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, nil
}

// Save replaces the held value
func (s *Store) Save(ctx context.Context, value int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	return nil
}
