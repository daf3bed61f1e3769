package blackjack

import (
	"errors"
	"strings"

	"github.com/fadedpez/parlor/pkg/entities"
)

var (
	ErrHandBust  = errors.New("hand is bust")
	ErrHandStand = errors.New("hand is stand")
)

// Role identifies who holds a hand
type Role string

const (
	RolePlayer Role = "Player"
	RoleDealer Role = "Dealer"
)

// Status represents the current state of the hand
type Status string

const (
	StatusPlaying Status = "PLAYING"
	StatusBust    Status = "BUST"
	StatusStand   Status = "STAND"
)

// Hand represents one side's cards in a round of blackjack

type Hand struct {
	Role   Role
	Cards  []entities.Card
	Status Status
}

// NewHand creates a new empty hand for role
func NewHand(role Role) *Hand {
	return &Hand{
		Role:   role,
		Cards:  make([]entities.Card, 0, 4),
		Status: StatusPlaying,
	}
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card entities.Card) error {
	if h.Status != StatusPlaying {
		switch h.Status {
		case StatusBust:
			return ErrHandBust
		case StatusStand:
			return ErrHandStand
		}
	}

	h.Cards = append(h.Cards, card)

	// Auto-bust if score exceeds 21
	if IsBust(h.Cards) {
		h.Status = StatusBust
	}

	return nil
}

// Stand marks the hand as stood
func (h *Hand) Stand() error {
	if h.Status != StatusPlaying {
		switch h.Status {
		case StatusBust:
			return ErrHandBust
		case StatusStand:
			return ErrHandStand
		}
	}

	h.Status = StatusStand
	return nil
}

// Value returns the best possible score for the hand
func (h *Hand) Value() int {
	return HandValue(h.Cards)
}

// IsBust reports whether the hand went over 21
func (h *Hand) IsBust() bool {
	return h.Status == StatusBust
}

// String lists the cards, e.g. "Ace of Spades, 9 of Hearts"
func (h *Hand) String() string {
	return FormatCards(h.Cards)
}

// FormatCards joins card names with commas
func FormatCards(cards []entities.Card) string {
	names := make([]string, len(cards))
	for i, card := range cards {
		names[i] = card.String()
	}
	return strings.Join(names, ", ")
}
