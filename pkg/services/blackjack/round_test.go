package blackjack

import (
	"testing"

	"github.com/fadedpez/parlor/internal/types"
	"github.com/fadedpez/parlor/pkg/entities"
	"github.com/stretchr/testify/suite"
)

type RoundTestSuite struct {
	suite.Suite
}

func TestRoundSuite(t *testing.T) {
	suite.Run(t, new(RoundTestSuite))
}

// stacked returns a deck that draws the given ranks in order
func stacked(ranks ...entities.Rank) *entities.Deck {
	return &entities.Deck{Cards: cards(ranks...)}
}

func (s *RoundTestSuite) TestDealOrderAndUpCard() {
	round := NewRound(stacked(entities.Ten, entities.Nine, entities.King, entities.Six))
	s.Equal(PhaseDealing, round.Phase())

	_, ok := round.DealerUpCard()
	s.False(ok, "no up card before the deal")

	s.Require().NoError(round.Deal())
	s.Equal(PhasePlayerTurn, round.Phase())
	s.Equal(19, round.Player.Value())
	s.Equal(16, round.Dealer.Value())

	up, ok := round.DealerUpCard()
	s.True(ok)
	s.Equal(entities.King, up.Rank)

	_, resolved := round.Result()
	s.False(resolved)
}

func (s *RoundTestSuite) TestStandDealerDrawsToTwentyOne() {
	// Player 10+9, dealer 10+6 then draws a 5
	round := NewRound(stacked(entities.Ten, entities.Nine, entities.Ten, entities.Six, entities.Five, entities.King))
	s.Require().NoError(round.Deal())
	s.Require().NoError(round.Stand())
	s.Equal(PhaseDealerTurn, round.Phase())

	drawn, err := round.PlayDealer()
	s.Require().NoError(err)
	s.Len(drawn, 1, "dealer stops at 21")
	s.Equal(21, round.Dealer.Value())

	result, ok := round.Result()
	s.True(ok)
	s.Equal(ResultLose, result)
	s.Equal(int64(-10), result.Delta())
	s.Equal("player 19 vs dealer 21", round.Detail())
	s.Equal(1, round.deck.Remaining(), "only the needed cards are drawn")
}

func (s *RoundTestSuite) TestDealerStandsOnSeventeen() {
	round := NewRound(stacked(entities.Ten, entities.Eight, entities.Ten, entities.Seven, entities.Five))
	s.Require().NoError(round.Deal())
	s.Require().NoError(round.Stand())

	drawn, err := round.PlayDealer()
	s.Require().NoError(err)
	s.Empty(drawn, "dealer never draws at 17 or more")

	result, _ := round.Result()
	s.Equal(ResultWin, result)
	s.Equal(StatusStand, round.Dealer.Status)
}

func (s *RoundTestSuite) TestDealerBust() {
	round := NewRound(stacked(entities.Ten, entities.Two, entities.Ten, entities.Six, entities.King))
	s.Require().NoError(round.Deal())
	s.Require().NoError(round.Stand())

	drawn, err := round.PlayDealer()
	s.Require().NoError(err)
	s.Len(drawn, 1)
	s.True(round.Dealer.IsBust())

	result, _ := round.Result()
	s.Equal(ResultWin, result, "dealer bust is checked explicitly")
}

func (s *RoundTestSuite) TestPush() {
	round := NewRound(stacked(entities.Ten, entities.Eight, entities.Nine, entities.Nine))
	s.Require().NoError(round.Deal())
	s.Require().NoError(round.Stand())
	_, err := round.PlayDealer()
	s.Require().NoError(err)

	result, _ := round.Result()
	s.Equal(ResultPush, result)
	s.Equal(int64(0), result.Delta())
}

func (s *RoundTestSuite) TestPlayerBustSkipsDealer() {
	round := NewRound(stacked(entities.Ten, entities.Six, entities.Two, entities.Three, entities.King, entities.Four))
	s.Require().NoError(round.Deal())

	card, err := round.Hit()
	s.Require().NoError(err)
	s.Equal(entities.King, card.Rank)
	s.True(round.PlayerBusted())
	s.Equal(PhaseResolved, round.Phase())

	result, ok := round.Result()
	s.True(ok)
	s.Equal(ResultLose, result)
	s.Len(round.Dealer.Cards, 2, "dealer turn is skipped")
	s.Equal("player bust with 26", round.Detail())

	_, err = round.PlayDealer()
	s.True(types.IsGameError(err, types.ErrInvalidState))
}

func (s *RoundTestSuite) TestHitWithoutBustKeepsTurn() {
	round := NewRound(stacked(entities.Two, entities.Three, entities.Ten, entities.Seven, entities.Ace, entities.Five))
	s.Require().NoError(round.Deal())

	_, err := round.Hit()
	s.Require().NoError(err)
	s.Equal(16, round.Player.Value())
	s.Equal(PhasePlayerTurn, round.Phase())

	_, err = round.Hit()
	s.Require().NoError(err)
	s.Equal(21, round.Player.Value())
	s.Equal(PhasePlayerTurn, round.Phase(), "reaching 21 does not end the turn")
}

func (s *RoundTestSuite) TestWrongPhase() {
	round := NewRound(stacked(entities.Ten, entities.Nine, entities.Ten, entities.Seven))

	_, err := round.Hit()
	s.True(types.IsGameError(err, types.ErrInvalidState))
	s.True(types.IsGameError(round.Stand(), types.ErrInvalidState))

	s.Require().NoError(round.Deal())
	s.True(types.IsGameError(round.Deal(), types.ErrInvalidState))
	_, err = round.PlayDealer()
	s.True(types.IsGameError(err, types.ErrInvalidState))
}

func (s *RoundTestSuite) TestDeckExhausted() {
	round := NewRound(stacked(entities.Ten, entities.Nine, entities.Ten))
	err := round.Deal()
	s.True(types.IsGameError(err, types.ErrDeckExhausted))
	s.ErrorIs(err, entities.ErrDeckEmpty)
}
