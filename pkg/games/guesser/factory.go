package guesser

import (
	"math/rand"

	"github.com/fadedpez/parlor/internal/games"
	"github.com/fadedpez/parlor/internal/logging"
	"github.com/fadedpez/parlor/pkg/console"
	service "github.com/fadedpez/parlor/pkg/services/guesser"
	"github.com/fadedpez/parlor/pkg/services/score"
)

// Factory creates number guesser games
type Factory struct {
	rng *rand.Rand
}

// NewFactory creates a new number guesser factory. A nil rng uses a time-seeded source.
func NewFactory(rng *rand.Rand) *Factory {
	return &Factory{rng: rng}
}

// CreateGame creates a new number guesser game
func (f *Factory) CreateGame(con *console.Console, scores *score.Service, logger *logging.Logger) games.Game {
	return NewGame(con, scores, logger, func() *service.Game {
		return service.NewGame(f.rng)
	})
}
