package blackjack

import (
	"math/rand"

	"github.com/fadedpez/parlor/internal/games"
	"github.com/fadedpez/parlor/internal/logging"
	"github.com/fadedpez/parlor/pkg/console"
	"github.com/fadedpez/parlor/pkg/entities"
	"github.com/fadedpez/parlor/pkg/services/score"
)

// Factory creates blackjack games
type Factory struct {
	rng *rand.Rand
}

// NewFactory creates a new blackjack factory. A nil rng shuffles with a time-seeded source.
func NewFactory(rng *rand.Rand) *Factory {
	return &Factory{rng: rng}
}

// CreateGame creates a new blackjack game
func (f *Factory) CreateGame(con *console.Console, scores *score.Service, logger *logging.Logger) games.Game {
	return NewGame(con, scores, logger, func() *entities.Deck {
		return entities.NewShuffledDeck(f.rng)
	})
}
