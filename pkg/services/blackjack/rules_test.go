package blackjack

import (
	"math/rand"
	"testing"

	"github.com/fadedpez/parlor/pkg/entities"
	"github.com/stretchr/testify/assert"
)

func cards(ranks ...entities.Rank) []entities.Card {
	out := make([]entities.Card, len(ranks))
	for i, rank := range ranks {
		out[i] = entities.NewCard(entities.Suits[i%len(entities.Suits)], rank)
	}
	return out
}

func TestHandValue(t *testing.T) {
	testCases := []struct {
		name     string
		hand     []entities.Card
		expected int
	}{
		{"empty hand", nil, 0},
		{"two faces", cards(entities.King, entities.Queen), 20},
		{"ace ace nine", cards(entities.Ace, entities.Ace, entities.Nine), 21},
		{"natural", cards(entities.Ace, entities.Jack), 21},
		{"soft seventeen", cards(entities.Ace, entities.Six), 17},
		{"ace lowered once", cards(entities.Ace, entities.Six, entities.Nine), 16},
		{"four aces", cards(entities.Ace, entities.Ace, entities.Ace, entities.Ace), 14},
		{"unavoidable bust", cards(entities.King, entities.Queen, entities.Ace, entities.Ace), 22},
		{"plain bust", cards(entities.Ten, entities.Nine, entities.Five), 24},
		{"numeric", cards(entities.Two, entities.Three, entities.Four), 9},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, HandValue(tc.hand))
		})
	}
}

// bestByEnumeration tries every 1-or-11 choice for each ace
func bestByEnumeration(hand []entities.Card) int {
	base := 0
	aces := 0
	for _, c := range hand {
		if c.IsAce() {
			aces++
			base++
		} else {
			base += c.Value()
		}
	}
	best := -1
	for high := 0; high <= aces; high++ {
		total := base + 10*high
		if total <= Blackjack && total > best {
			best = total
		}
	}
	if best < 0 {
		return base
	}
	return best
}

func TestHandValueMatchesEnumeration(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		n := 1 + r.Intn(7)
		hand := make([]entities.Card, n)
		for j := range hand {
			hand[j] = entities.NewCard(entities.Spades, entities.Ranks[r.Intn(len(entities.Ranks))])
		}
		assert.Equal(t, bestByEnumeration(hand), HandValue(hand), "hand %s", FormatCards(hand))
	}
}

func TestIsNaturalAndBust(t *testing.T) {
	assert.True(t, IsNatural(cards(entities.Ace, entities.King)))
	assert.False(t, IsNatural(cards(entities.Seven, entities.Seven, entities.Seven)))
	assert.True(t, IsBust(cards(entities.King, entities.Queen, entities.Two)))
	assert.False(t, IsBust(cards(entities.King, entities.Ace)))
}

func TestDealerShouldHit(t *testing.T) {
	assert.True(t, DealerShouldHit(cards(entities.Ten, entities.Six)))
	assert.False(t, DealerShouldHit(cards(entities.Ten, entities.Seven)))
	assert.False(t, DealerShouldHit(cards(entities.Ace, entities.Six)), "soft 17 stands")
	assert.False(t, DealerShouldHit(cards(entities.Ten, entities.Six, entities.Nine)))
}

func TestResolve(t *testing.T) {
	testCases := []struct {
		name     string
		player   []entities.Card
		dealer   []entities.Card
		expected Result
	}{
		{"player higher", cards(entities.Ten, entities.Nine), cards(entities.Ten, entities.Eight), ResultWin},
		{"dealer higher", cards(entities.Ten, entities.Nine), cards(entities.Ten, entities.Six, entities.Five), ResultLose},
		{"tie", cards(entities.Ten, entities.Eight), cards(entities.Nine, entities.Nine), ResultPush},
		{"dealer bust", cards(entities.Ten, entities.Two), cards(entities.Ten, entities.Six, entities.King), ResultWin},
		{"player bust beats nothing", cards(entities.Ten, entities.Six, entities.King), cards(entities.Ten, entities.Six, entities.King), ResultLose},
		{"natural is an ordinary 21", cards(entities.Ace, entities.King), cards(entities.Seven, entities.Seven, entities.Seven), ResultPush},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Resolve(tc.player, tc.dealer))
		})
	}
}

func TestResultDelta(t *testing.T) {
	assert.Equal(t, int64(10), ResultWin.Delta())
	assert.Equal(t, int64(-10), ResultLose.Delta())
	assert.Equal(t, int64(0), ResultPush.Delta())

	assert.Equal(t, entities.OutcomeWin, ResultWin.Outcome())
	assert.Equal(t, entities.OutcomeLoss, ResultLose.Outcome())
	assert.Equal(t, entities.OutcomePush, ResultPush.Outcome())
	assert.True(t, ResultWin.IsWin())
	assert.Equal(t, "PUSH", ResultPush.String())
}
