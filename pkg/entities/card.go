package entities

import "fmt"

// Suit represents a card suit

type Suit string

const (
	Hearts   Suit = "Hearts"
	Diamonds Suit = "Diamonds"
	Clubs    Suit = "Clubs"
	Spades   Suit = "Spades"
)

// Suits lists every suit in deck order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	switch s {
	case Hearts, Diamonds, Clubs, Spades:
		return true
	}
	return false
}

// Red reports whether the suit is printed in red
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank

type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "Jack"
	Queen Rank = "Queen"
	King  Rank = "King"
	Ace   Rank = "Ace"
)

// Ranks lists every rank in deck order
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Value returns the nominal blackjack value of the rank. Aces count 11 here;
// hands lower them to 1 as needed. Unknown ranks are worth 0.
func (r Rank) Value() int {
	switch r {
	case Two:
		return 2
	case Three:
		return 3
	case Four:
		return 4
	case Five:
		return 5
	case Six:
		return 6
	case Seven:
		return 7
	case Eight:
		return 8
	case Nine:
		return 9
	case Ten, Jack, Queen, King:
		return 10
	case Ace:
		return 11
	}
	return 0
}

// Valid reports whether r is one of the thirteen ranks
func (r Rank) Valid() bool {
	return r.Value() != 0
}

// Card represents a playing card

type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card

func NewCard(suit Suit, rank Rank) Card {
	return Card{
		Suit: suit,
		Rank: rank,
	}
}

// Value returns the nominal value of the card's rank
func (c Card) Value() int {
	return c.Rank.Value()
}

// IsAce reports whether the card is an ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// Valid reports whether both suit and rank are known
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

// String returns the string representation of the card

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
