package blackjack

import (
	"strings"

	"github.com/fadedpez/parlor/internal/types"
)

// Action is the player's choice during their turn
type Action string

const (
	ActionHit   Action = "h"
	ActionStand Action = "s"
)

// ParseAction validates a hit/stand answer. Matching is case-insensitive.
func ParseAction(input string) (Action, error) {
	switch Action(strings.ToLower(input)) {
	case ActionHit:
		return ActionHit, nil
	case ActionStand:
		return ActionStand, nil
	}
	return "", types.NewGameError(types.ErrInvalidInput,
		"Invalid input. Please enter 'h' for hit or 's' for stand.")
}

// ParsePlayAgain reports whether the answer asks for another round.
// Only "y" (any case) does; everything else quits.
func ParsePlayAgain(input string) bool {
	return strings.ToLower(input) == "y"
}
