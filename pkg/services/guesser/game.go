package guesser

import (
	"fmt"
	"math/big"
	"math/rand"
	"regexp"
	"time"

	"github.com/fadedpez/parlor/internal/types"
	"github.com/fadedpez/parlor/pkg/entities"
)

const (
	MinTarget   = 1
	MaxTarget   = 100
	MaxAttempts = 5
)

// Feedback is the response to one valid guess
type Feedback string

const (
	FeedbackTooLow  Feedback = "TOO_LOW"
	FeedbackTooHigh Feedback = "TOO_HIGH"
	FeedbackCorrect Feedback = "CORRECT"
)

// Status of a game
type Status string

const (
	StatusPlaying Status = "PLAYING"
	StatusWon     Status = "WON"
	StatusLost    Status = "LOST"
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// Game is one round of the number guesser: a hidden target and a fixed
// number of attempts.
type Game struct {
	target      *big.Int
	maxAttempts int
	attempts    int
	status      Status
}

// NewGame picks a target uniformly in [1,100]. A nil r uses a time-seeded source.
func NewGame(r *rand.Rand) *Game {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return NewGameWithTarget(int64(MinTarget + r.Intn(MaxTarget-MinTarget+1)))
}

// NewGameWithTarget starts a game with a known target
func NewGameWithTarget(target int64) *Game {
	return &Game{
		target:      big.NewInt(target),
		maxAttempts: MaxAttempts,
		status:      StatusPlaying,
	}
}

// ParseGuess accepts only a non-empty run of ASCII digits and reads it with
// arbitrary precision. Signs, spaces and anything else are rejected.
func ParseGuess(input string) (*big.Int, error) {
	if !digitsOnly.MatchString(input) {
		return nil, types.NewGameError(types.ErrInvalidInput, "Invalid guess! Please enter a positive integer.")
	}
	n, ok := new(big.Int).SetString(input, 10)
	if !ok {
		return nil, types.NewGameError(types.ErrInvalidInput, "Invalid guess! Please enter a positive integer.")
	}
	return n, nil
}

// Guess compares n to the target and uses up one attempt
func (g *Game) Guess(n *big.Int) (Feedback, error) {
	if g.status != StatusPlaying {
		return "", types.NewGameError(types.ErrInvalidState, fmt.Sprintf("game is over (%s)", g.status))
	}
	if n == nil {
		return "", types.NewGameError(types.ErrInvalidInput, "no guess given")
	}

	g.attempts++

	var feedback Feedback
	switch n.Cmp(g.target) {
	case -1:
		feedback = FeedbackTooLow
	case 1:
		feedback = FeedbackTooHigh
	default:
		g.status = StatusWon
		return FeedbackCorrect, nil
	}

	if g.attempts >= g.maxAttempts {
		g.status = StatusLost
	}
	return feedback, nil
}

// Attempts returns the number of valid guesses made so far
func (g *Game) Attempts() int {
	return g.attempts
}

// MaxAttempts returns the attempt budget
func (g *Game) MaxAttempts() int {
	return g.maxAttempts
}

// Status returns the game status
func (g *Game) Status() Status {
	return g.status
}

// Over reports whether no more guesses are accepted
func (g *Game) Over() bool {
	return g.status != StatusPlaying
}

// Target returns the hidden number
func (g *Game) Target() int64 {
	return g.target.Int64()
}

// ScoreDelta is 1 for a won game and 0 otherwise
func (g *Game) ScoreDelta() int64 {
	if g.status == StatusWon {
		return 1
	}
	return 0
}

// Outcome maps the status onto the history outcome
func (g *Game) Outcome() entities.Outcome {
	if g.status == StatusWon {
		return entities.OutcomeWin
	}
	return entities.OutcomeLoss
}

// Detail summarizes the finished game for history
func (g *Game) Detail() string {
	if g.status == StatusWon {
		return fmt.Sprintf("guessed %d in %d", g.Target(), g.attempts)
	}
	return fmt.Sprintf("missed %d after %d", g.Target(), g.attempts)
}
