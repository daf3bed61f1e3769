package blackjack

import (
	"errors"
	"fmt"

	"github.com/fadedpez/parlor/internal/types"
	"github.com/fadedpez/parlor/pkg/entities"
)

// Phase is the state of a round
type Phase string

const (
	PhaseDealing    Phase = "DEALING"
	PhasePlayerTurn Phase = "PLAYER_TURN"
	PhaseBusted     Phase = "BUSTED"
	PhaseDealerTurn Phase = "DEALER_TURN"
	PhaseResolved   Phase = "RESOLVED"
)

// Round is one hand of blackjack between the player and the dealer.
// It holds no I/O; callers drive it phase by phase.
type Round struct {
	Player *Hand
	Dealer *Hand

	deck   *entities.Deck
	phase  Phase
	result Result
}

// NewRound creates a round that draws from deck
func NewRound(deck *entities.Deck) *Round {
	return &Round{
		Player: NewHand(RolePlayer),
		Dealer: NewHand(RoleDealer),
		deck:   deck,
		phase:  PhaseDealing,
	}
}

// Phase returns the current phase
func (r *Round) Phase() Phase {
	return r.phase
}

// Deal gives two cards to the player and then two to the dealer
func (r *Round) Deal() error {
	if err := r.expect(PhaseDealing); err != nil {
		return err
	}

	for _, hand := range []*Hand{r.Player, r.Player, r.Dealer, r.Dealer} {
		if _, err := r.drawInto(hand); err != nil {
			return err
		}
	}

	r.phase = PhasePlayerTurn
	return nil
}

// DealerUpCard is the only dealer card shown during the player's turn
func (r *Round) DealerUpCard() (entities.Card, bool) {
	if len(r.Dealer.Cards) == 0 {
		return entities.Card{}, false
	}
	return r.Dealer.Cards[0], true
}

// Hit draws one card for the player. Going over 21 ends the round as a loss
// and the dealer does not play.
func (r *Round) Hit() (entities.Card, error) {
	if err := r.expect(PhasePlayerTurn); err != nil {
		return entities.Card{}, err
	}

	card, err := r.drawInto(r.Player)
	if err != nil {
		return entities.Card{}, err
	}

	if r.Player.IsBust() {
		r.phase = PhaseBusted
		r.resolve()
	}
	return card, nil
}

// Stand ends the player's turn
func (r *Round) Stand() error {
	if err := r.expect(PhasePlayerTurn); err != nil {
		return err
	}
	if err := r.Player.Stand(); err != nil {
		return types.WrapError(types.ErrInvalidState, "player cannot stand", err)
	}

	r.phase = PhaseDealerTurn
	return nil
}

// PlayDealer draws for the dealer while below 17, then resolves the round.
// It returns the cards the dealer drew, in order.
func (r *Round) PlayDealer() ([]entities.Card, error) {
	if err := r.expect(PhaseDealerTurn); err != nil {
		return nil, err
	}

	var drawn []entities.Card
	for DealerShouldHit(r.Dealer.Cards) {
		card, err := r.drawInto(r.Dealer)
		if err != nil {
			return drawn, err
		}
		drawn = append(drawn, card)
	}
	if !r.Dealer.IsBust() {
		// The dealer can only be PLAYING here
		_ = r.Dealer.Stand()
	}

	r.resolve()
	return drawn, nil
}

// Result returns the outcome once the round is resolved
func (r *Round) Result() (Result, bool) {
	if r.phase != PhaseResolved {
		return "", false
	}
	return r.result, true
}

// PlayerBusted reports whether the round ended on a player bust
func (r *Round) PlayerBusted() bool {
	return r.Player.IsBust()
}

// Detail summarizes the finished round for history
func (r *Round) Detail() string {
	if r.PlayerBusted() {
		return fmt.Sprintf("player bust with %d", r.Player.Value())
	}
	return fmt.Sprintf("player %d vs dealer %d", r.Player.Value(), r.Dealer.Value())
}

func (r *Round) resolve() {
	r.result = Resolve(r.Player.Cards, r.Dealer.Cards)
	r.phase = PhaseResolved
}

func (r *Round) expect(phase Phase) error {
	if r.phase != phase {
		return types.NewGameError(types.ErrInvalidState,
			fmt.Sprintf("cannot do that during %s, round is in %s", phase, r.phase))
	}
	return nil
}

func (r *Round) drawInto(hand *Hand) (entities.Card, error) {
	card, err := r.deck.Draw()
	if err != nil {
		if errors.Is(err, entities.ErrDeckEmpty) {
			return entities.Card{}, types.WrapError(types.ErrDeckExhausted, "the deck ran out of cards", err)
		}
		return entities.Card{}, err
	}
	if err := hand.AddCard(card); err != nil {
		return entities.Card{}, types.WrapError(types.ErrInvalidState,
			fmt.Sprintf("cannot add a card to the %s hand", hand.Role), err)
	}
	return card, nil
}
