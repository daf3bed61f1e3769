package statistics

import (
	"context"

	"github.com/fadedpez/parlor/pkg/entities"
	"github.com/fadedpez/parlor/pkg/repositories/history"
)

// DefaultRecent is how many rounds a summary looks back for the streak
const DefaultRecent = 10

// Service provides methods for retrieving and processing round statistics
type Service struct {
	repository history.Repository
}

// NewService creates a new statistics service
func NewService(repository history.Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// Summary is a game's record plus its most recent rounds
type Summary struct {
	*entities.RoundStatistics
	WinRate float64                 `json:"win_rate"`
	Recent  []*entities.RoundRecord `json:"recent"`
	// Streak counts the latest run of one outcome: positive for wins,
	// negative for losses, 0 when the last round was a push
	Streak int `json:"streak"`
}

// GetSummary aggregates every recorded round of game and the streak among the last recent rounds
func (s *Service) GetSummary(ctx context.Context, game string, recent int) (*Summary, error) {
	if recent < 1 {
		recent = DefaultRecent
	}

	stats, err := s.repository.Stats(ctx, game)
	if err != nil {
		return nil, err
	}

	rounds, err := s.repository.RecentRounds(ctx, game, recent)
	if err != nil {
		return nil, err
	}

	return &Summary{
		RoundStatistics: stats,
		WinRate:         stats.WinRate(),
		Recent:          rounds,
		Streak:          streak(rounds),
	}, nil
}

// streak reads rounds newest first
func streak(rounds []*entities.RoundRecord) int {
	if len(rounds) == 0 {
		return 0
	}

	latest := rounds[0].Outcome
	if latest == entities.OutcomePush {
		return 0
	}

	count := 0
	for _, round := range rounds {
		if round.Outcome != latest {
			break
		}
		count++
	}

	if latest == entities.OutcomeLoss {
		return -count
	}
	return count
}
