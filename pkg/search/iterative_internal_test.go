package search

import (
	"testing"

	"github.com/joansala/owarego/pkg/oware"
	"github.com/stretchr/testify/assert"
)

func TestSeedKeysAlternatesTurnWalkingBackward(t *testing.T) {
	b0 := oware.Board{4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 0, 0}
	b1 := oware.Board{0, 5, 5, 5, 5, 5, 4, 4, 4, 4, 4, 4, 0, 0}

	// The position being searched is one ply after b1, with North to move.
	// So at b1 it must have been South to move (South's move produced the
	// North-to-move root), and at b0, one ply further back, North to move
	// again.
	keys := seedKeys([]oware.Board{b0, b1}, oware.North)

	assert.Equal(t, []Key{
		{Board: b0, Turn: oware.North},
		{Board: b1, Turn: oware.South},
	}, keys)
}

func TestSeedKeysEmptyHistory(t *testing.T) {
	assert.Empty(t, seedKeys(nil, oware.South))
}
