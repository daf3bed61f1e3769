package history

import (
	"context"
	"sync"

	"github.com/fadedpez/parlor/pkg/entities"
)

// MemoryRepository implements Repository with in-memory storage
type MemoryRepository struct {
	mu     sync.RWMutex
	rounds map[string][]*entities.RoundRecord // game -> rounds, oldest first
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		rounds: make(map[string][]*entities.RoundRecord),
	}
}

// SaveRound stores a copy of record
func (r *MemoryRepository) SaveRound(ctx context.Context, record *entities.RoundRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	recordCopy := *record
	r.rounds[record.Game] = append(r.rounds[record.Game], &recordCopy)
	return nil
}

// RecentRounds returns up to limit rounds, newest first
func (r *MemoryRepository) RecentRounds(ctx context.Context, game string, limit int) ([]*entities.RoundRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rounds := r.rounds[game]
	result := make([]*entities.RoundRecord, 0, min(limit, len(rounds)))
	for i := len(rounds) - 1; i >= 0 && len(result) < limit; i-- {
		recordCopy := *rounds[i]
		result = append(result, &recordCopy)
	}
	return result, nil
}

// Stats aggregates all rounds of game
func (r *MemoryRepository) Stats(ctx context.Context, game string) (*entities.RoundStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &entities.RoundStatistics{Game: game}
	for _, record := range r.rounds[game] {
		stats.Add(record)
	}
	return stats, nil
}

// Close is a no-op for memory repository
func (r *MemoryRepository) Close() error {
	return nil
}
