package blackjack

import (
	"github.com/fadedpez/parlor/pkg/entities"
)

const (
	Blackjack      = 21 // Highest hand value that is not a bust
	DealerStandsOn = 17 // Dealer draws while below this value, soft or hard
	Payout         = 10 // Fixed amount won or lost per round
)

// Result represents the outcome of a blackjack round from the player's side
type Result string

const (
	ResultWin  Result = "WIN"
	ResultLose Result = "LOSE"
	ResultPush Result = "PUSH"
)

// String returns the string representation of the result
func (r Result) String() string {
	return string(r)
}

// IsWin returns true if this result represents a win
func (r Result) IsWin() bool {
	return r == ResultWin
}

// Delta returns the change to the player's winnings for this result
func (r Result) Delta() int64 {
	switch r {
	case ResultWin:
		return Payout
	case ResultLose:
		return -Payout
	}
	return 0
}

// Outcome maps the result onto the history outcome
func (r Result) Outcome() entities.Outcome {
	switch r {
	case ResultWin:
		return entities.OutcomeWin
	case ResultLose:
		return entities.OutcomeLoss
	}
	return entities.OutcomePush
}

// HandValue returns the best total for cards. Aces start at 11 and are lowered
// to 1 one at a time while the total is over 21.
func HandValue(cards []entities.Card) int {
	value := 0
	aces := 0

	for _, card := range cards {
		value += card.Value()
		if card.IsAce() {
			aces++
		}
	}

	for value > Blackjack && aces > 0 {
		value -= 10
		aces--
	}

	return value
}

// IsNatural reports a two-card 21. It is shown to the player but pays the same
// as any other winning hand.
func IsNatural(cards []entities.Card) bool {
	return len(cards) == 2 && HandValue(cards) == Blackjack
}

// IsBust checks if a hand exceeds 21
func IsBust(cards []entities.Card) bool {
	return HandValue(cards) > Blackjack
}

// DealerShouldHit reports whether the dealer policy draws another card
func DealerShouldHit(cards []entities.Card) bool {
	return HandValue(cards) < DealerStandsOn
}

// Resolve compares a finished player hand against a finished dealer hand
func Resolve(player, dealer []entities.Card) Result {
	if IsBust(player) {
		return ResultLose
	}
	if IsBust(dealer) {
		return ResultWin
	}

	playerValue := HandValue(player)
	dealerValue := HandValue(dealer)
	switch {
	case playerValue > dealerValue:
		return ResultWin
	case playerValue < dealerValue:
		return ResultLose
	}
	return ResultPush
}
