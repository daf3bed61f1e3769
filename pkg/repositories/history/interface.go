package history

import (
	"context"

	"github.com/fadedpez/parlor/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_history

// Repository stores completed rounds and answers simple questions about them
type Repository interface {
	// SaveRound records one completed round
	SaveRound(ctx context.Context, record *entities.RoundRecord) error

	// RecentRounds returns up to limit rounds of game, newest first
	RecentRounds(ctx context.Context, game string, limit int) ([]*entities.RoundRecord, error)

	// Stats aggregates every recorded round of game
	Stats(ctx context.Context, game string) (*entities.RoundStatistics, error)

	// Close closes any resources used by the repository
	Close() error
}
