package score

import (
	"context"
	"time"

	"github.com/fadedpez/parlor/internal/logging"
	"github.com/fadedpez/parlor/internal/types"
	"github.com/fadedpez/parlor/pkg/entities"
	"github.com/fadedpez/parlor/pkg/repositories/history"
	"github.com/fadedpez/parlor/pkg/storage"
	"github.com/google/uuid"
)

// RoundResult is what a finished round contributes to the score
type RoundResult struct {
	Outcome entities.Outcome
	Delta   int64
	Detail  string
}

// Service owns the running score of one game. It reads the store once at
// startup and writes it back after every round.
type Service struct {
	game    string
	store   storage.ScoreStore
	history history.Repository
	log     *logging.Logger
	current int64
	now     func() time.Time
}

// NewService creates a score service. history may be nil.
func NewService(game string, store storage.ScoreStore, hist history.Repository, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Service{
		game:    game,
		store:   store,
		history: hist,
		log:     logger,
		now:     time.Now,
	}
}

// Game returns the game this score belongs to
func (s *Service) Game() string {
	return s.game
}

// Load reads the persisted score. Any failure is treated as a fresh score of 0.
func (s *Service) Load(ctx context.Context) int64 {
	value, err := s.store.Load(ctx)
	if err != nil {
		s.log.Warn("[SCORE] Could not load %s score, starting from 0: %v", s.game, err)
		value = 0
	}

	s.current = value
	s.log.Debug("[SCORE] Loaded %s score: %d", s.game, value)
	return value
}

// Current returns the in-memory score
func (s *Service) Current() int64 {
	return s.current
}

// Apply adds the round's delta, saves the new score and records the round.
// A failed save is returned; a failed history write is only logged.
func (s *Service) Apply(ctx context.Context, result RoundResult) (*entities.RoundRecord, error) {
	s.current += result.Delta

	record := &entities.RoundRecord{
		ID:          uuid.New().String(),
		Game:        s.game,
		Outcome:     result.Outcome,
		Delta:       result.Delta,
		ScoreAfter:  s.current,
		Detail:      result.Detail,
		CompletedAt: s.now(),
	}

	if err := s.store.Save(ctx, s.current); err != nil {
		return record, types.WrapError(types.ErrStorageError, "failed to save "+s.game+" score", err)
	}
	s.log.Debug("[SCORE] Saved %s score %d (delta %+d)", s.game, s.current, result.Delta)

	if s.history != nil {
		if err := s.history.SaveRound(ctx, record); err != nil {
			s.log.Warn("[SCORE] Could not record %s round %s: %v", s.game, record.ID, err)
		}
	}

	return record, nil
}

// Stats returns aggregated history, or empty totals when history is off
func (s *Service) Stats(ctx context.Context) (*entities.RoundStatistics, error) {
	if s.history == nil {
		return &entities.RoundStatistics{Game: s.game}, nil
	}
	return s.history.Stats(ctx, s.game)
}
