package entities

import "time"

// Game names used to key persisted scores and history
const (
	GameBlackjack     = "blackjack"
	GameNumberGuesser = "numberguesser"
)

// Outcome is the result of one finished round, as recorded in history
type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeLoss Outcome = "LOSS"
	OutcomePush Outcome = "PUSH"
)

// IsWin returns true if this outcome represents a win
func (o Outcome) IsWin() bool {
	return o == OutcomeWin
}

// RoundRecord describes one completed round of either game
type RoundRecord struct {
	ID          string
	Game        string
	Outcome     Outcome
	Delta       int64 // change applied to the persisted score
	ScoreAfter  int64
	Detail      string // e.g. "player 19 vs dealer 21" or "guessed 62 in 5"
	CompletedAt time.Time
}
