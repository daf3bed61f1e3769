package blackjack

import (
	"testing"

	"github.com/fadedpez/parlor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	valid := map[string]Action{"h": ActionHit, "H": ActionHit, "s": ActionStand, "S": ActionStand}
	for input, expected := range valid {
		action, err := ParseAction(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, action)
	}

	for _, input := range []string{"", "hit", "x", " h", "stand"} {
		_, err := ParseAction(input)
		assert.True(t, types.IsGameError(err, types.ErrInvalidInput), "input %q", input)
	}
}

func TestParsePlayAgain(t *testing.T) {
	assert.True(t, ParsePlayAgain("y"))
	assert.True(t, ParsePlayAgain("Y"))
	assert.False(t, ParsePlayAgain("n"))
	assert.False(t, ParsePlayAgain("yes"))
	assert.False(t, ParsePlayAgain(""))
}
