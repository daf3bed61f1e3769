package blackjack

import (
	"context"
	"errors"
	"io"

	"github.com/fadedpez/parlor/internal/games"
	"github.com/fadedpez/parlor/internal/logging"
	"github.com/fadedpez/parlor/pkg/console"
	"github.com/fadedpez/parlor/pkg/entities"
	service "github.com/fadedpez/parlor/pkg/services/blackjack"
	"github.com/fadedpez/parlor/pkg/services/score"
)

// ReshuffleBelow is the deck size under which a fresh deck is brought in
// before the next round.
const ReshuffleBelow = 15

const (
	hitOrStandPrompt = "Do you want to [h]it or [s]tand? "
	playAgainPrompt  = "\nDo you want to play again? [y/n]: "
)

// Game is a blackjack table for one player against the dealer
type Game struct {
	con     *console.Console
	scores  *score.Service
	log     *logging.Logger
	newDeck func() *entities.Deck
	deck    *entities.Deck
	rounds  int
}

// Ensure Game implements the games.Game interface
var _ games.Game = (*Game)(nil)

// NewGame creates a blackjack table. newDeck supplies a shuffled deck each
// time the current one runs low.
func NewGame(con *console.Console, scores *score.Service, logger *logging.Logger, newDeck func() *entities.Deck) *Game {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Game{
		con:     con,
		scores:  scores,
		log:     logger,
		newDeck: newDeck,
	}
}

// Name returns the game key
func (g *Game) Name() string {
	return entities.GameBlackjack
}

// Rounds returns how many rounds were completed
func (g *Game) Rounds() int {
	return g.rounds
}

// Run plays rounds until the player declines another one
func (g *Game) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := g.playRound(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				g.log.Debug("[BLACKJACK] Input closed after %d rounds", g.rounds)
				return nil
			}
			return err
		}
		g.rounds++

		answer, err := g.con.Prompt(playAgainPrompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !service.ParsePlayAgain(answer) {
			return nil
		}
	}
}

func (g *Game) playRound(ctx context.Context) error {
	if g.deck == nil || g.deck.Remaining() < ReshuffleBelow {
		g.deck = g.newDeck()
		g.log.Debug("[BLACKJACK] New deck with %d cards", g.deck.Remaining())
	}

	round := service.NewRound(g.deck)
	if err := round.Deal(); err != nil {
		return err
	}

	g.con.Println()
	g.con.Title("Welcome to Blackjack!")
	upCard, _ := round.DealerUpCard()
	g.showHand("Dealer", []entities.Card{upCard})
	g.showHand("Player", round.Player.Cards)
	if service.IsNatural(round.Player.Cards) {
		g.con.Notice("Blackjack!")
	}

	if err := g.playerTurn(round); err != nil {
		return err
	}

	if !round.PlayerBusted() {
		drawn, err := round.PlayDealer()
		if err != nil {
			return err
		}
		if len(drawn) > 0 {
			g.con.Println()
			g.con.Println("Dealer's turn:")
			for _, card := range drawn {
				g.con.Printf("Dealer drew: %s\n", g.con.Card(card))
			}
		}
		g.con.Println()
		g.showHand("Dealer", round.Dealer.Cards)
	}

	result, _ := round.Result()
	g.announce(round, result)

	if _, err := g.scores.Apply(ctx, score.RoundResult{
		Outcome: result.Outcome(),
		Delta:   result.Delta(),
		Detail:  round.Detail(),
	}); err != nil {
		return err
	}

	g.con.Println()
	g.con.Printf("%s %d\n", g.con.Label("Your total winnings:"), g.scores.Current())
	return nil
}

func (g *Game) playerTurn(round *service.Round) error {
	for round.Phase() == service.PhasePlayerTurn {
		g.con.Println()
		g.con.Printf("%s %s\n", g.con.Label("Your hand:"), g.con.Cards(round.Player.Cards))
		g.con.Printf("Your total hand value: %d\n", round.Player.Value())

		action, err := console.Ask(g.con, hitOrStandPrompt, service.ParseAction)
		if err != nil {
			return err
		}

		switch action {
		case service.ActionHit:
			card, err := round.Hit()
			if err != nil {
				return err
			}
			g.con.Printf("You drew: %s\n", g.con.Card(card))
			if round.PlayerBusted() {
				g.con.Failure("Your hand value is %d. You busted!", round.Player.Value())
			}
		case service.ActionStand:
			if err := round.Stand(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Game) showHand(who string, cards []entities.Card) {
	g.con.Printf("%s %s (Value: %d)\n", g.con.Label(who+"'s hand:"), g.con.Cards(cards), service.HandValue(cards))
}

func (g *Game) announce(round *service.Round, result service.Result) {
	if round.PlayerBusted() {
		return
	}

	switch {
	case result == service.ResultWin && round.Dealer.IsBust():
		g.con.Success("Dealer busts! You win this round!")
	case result == service.ResultWin:
		g.con.Success("You win this round!")
	case result == service.ResultLose:
		g.con.Failure("Dealer wins this round!")
	default:
		g.con.Notice("It's a tie!")
	}
}
