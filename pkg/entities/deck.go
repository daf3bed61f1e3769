package entities

import (
	"errors"
	"math/rand"
	"time"
)

// DeckSize is the number of cards in a full deck
const DeckSize = 52

// ErrDeckEmpty is returned when drawing from a deck with no cards left
var ErrDeckEmpty = errors.New("deck is empty")

type Deck struct {
	Cards []Card
}

// NewDeck creates a new deck of 52 cards, one of each rank and suit, unshuffled
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)

	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}

	return &Deck{Cards: cards}
}

// NewShuffledDeck creates a full deck permuted by r. A nil r uses a time-seeded source.
func NewShuffledDeck(r *rand.Rand) *Deck {
	d := NewDeck()
	d.Shuffle(r)
	return d
}

// Shuffle permutes the remaining cards
func (d *Deck) Shuffle(r *rand.Rand) {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	r.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Draw removes and returns the top card from the deck
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrDeckEmpty
	}
	card := d.Cards[0]
	d.Cards = d.Cards[1:]
	return card, nil
}

// Remaining returns the number of cards left to draw
func (d *Deck) Remaining() int {
	return len(d.Cards)
}
