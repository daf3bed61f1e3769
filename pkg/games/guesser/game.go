package guesser

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fadedpez/parlor/internal/games"
	"github.com/fadedpez/parlor/internal/logging"
	"github.com/fadedpez/parlor/pkg/console"
	"github.com/fadedpez/parlor/pkg/entities"
	service "github.com/fadedpez/parlor/pkg/services/guesser"
	"github.com/fadedpez/parlor/pkg/services/score"
)

// Game is a single session of the number guesser
type Game struct {
	con     *console.Console
	scores  *score.Service
	log     *logging.Logger
	newGame func() *service.Game
}

var _ games.Game = (*Game)(nil)

// NewGame creates a number guesser session. newGame picks the target.
func NewGame(con *console.Console, scores *score.Service, logger *logging.Logger, newGame func() *service.Game) *Game {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Game{
		con:     con,
		scores:  scores,
		log:     logger,
		newGame: newGame,
	}
}

// Name returns the game key
func (g *Game) Name() string {
	return entities.GameNumberGuesser
}

// Run plays one game: up to five guesses, then the score is saved
func (g *Game) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	game := g.newGame()
	g.log.Debug("[GUESSER] New game, %d attempts", game.MaxAttempts())

	g.con.Title("Welcome to the Number Guessing Game!")
	g.con.Printf("Guess the number between %d and %d. You have %d attempts.\n",
		service.MinTarget, service.MaxTarget, game.MaxAttempts())

	for !game.Over() {
		label := fmt.Sprintf("Attempt %d/%d - Your guess: ", game.Attempts()+1, game.MaxAttempts())
		guess, err := console.Ask(g.con, label, service.ParseGuess)
		if err != nil {
			if errors.Is(err, io.EOF) {
				g.log.Debug("[GUESSER] Input closed after %d attempts", game.Attempts())
				return nil
			}
			return err
		}

		feedback, err := game.Guess(guess)
		if err != nil {
			return err
		}

		switch feedback {
		case service.FeedbackTooLow:
			g.con.Notice("Too low!")
		case service.FeedbackTooHigh:
			g.con.Notice("Too high!")
		case service.FeedbackCorrect:
			g.con.Success("Congratulations! You've guessed the correct number %d!", game.Target())
		}
	}

	if game.Status() == service.StatusLost {
		g.con.Failure("Sorry, you've used all your attempts. The correct number was %d.", game.Target())
	}

	if _, err := g.scores.Apply(ctx, score.RoundResult{
		Outcome: game.Outcome(),
		Delta:   game.ScoreDelta(),
		Detail:  game.Detail(),
	}); err != nil {
		return err
	}

	g.con.Printf("%s %d\n", g.con.Label("Your score:"), g.scores.Current())
	return nil
}
