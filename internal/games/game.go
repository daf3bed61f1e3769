package games

import (
	"context"

	"github.com/fadedpez/parlor/internal/logging"
	"github.com/fadedpez/parlor/pkg/console"
	"github.com/fadedpez/parlor/pkg/services/score"
)

// Game is an interactive game played on a console
type Game interface {
	// Name returns the game's key, which is also the key of its score
	Name() string

	// Run plays until the player quits or input ends. A closed input is not an error.
	Run(ctx context.Context) error
}

// Factory creates new game instances
type Factory interface {
	// CreateGame creates a game that talks through con and keeps its score in scores
	CreateGame(con *console.Console, scores *score.Service, logger *logging.Logger) Game
}
