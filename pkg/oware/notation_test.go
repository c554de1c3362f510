package oware_test

import (
	"testing"

	"github.com/joansala/owarego/pkg/oware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardNotationRoundTrip(t *testing.T) {
	b := oware.InitialBoard()

	notation := oware.ToBoardNotation(b, oware.South)
	assert.Equal(t, "4-4-4-4-4-4-4-4-4-4-4-4-0-0-S", notation)

	out, turn, err := oware.ToPosition(notation)
	require.NoError(t, err)
	assert.Equal(t, b, out)
	assert.Equal(t, oware.South, turn)
}

func TestToPositionRejectsGarbage(t *testing.T) {
	_, _, err := oware.ToPosition("not a board")
	require.Error(t, err)
	assert.IsType(t, &oware.InvalidNotation{}, err)
}

func TestMoveNotationRoundTrip(t *testing.T) {
	tests := []struct {
		move oware.Move
		tok  string
	}{
		{0, "A"}, {5, "F"}, {6, "a"}, {11, "f"},
	}
	for _, tt := range tests {
		tok, err := oware.ToMoveNotation(tt.move)
		require.NoError(t, err)
		assert.Equal(t, tt.tok, tok)

		m, err := oware.ToMove(tt.tok)
		require.NoError(t, err)
		assert.Equal(t, tt.move, m)
	}
}

func TestToMoveRejectsBadToken(t *testing.T) {
	_, err := oware.ToMove("Z")
	require.Error(t, err)
}

func TestMovesNotationRoundTrip(t *testing.T) {
	moves := []oware.Move{0, 6, 1, 7}

	notation, err := oware.ToMovesNotation(moves)
	require.NoError(t, err)
	assert.Equal(t, "AaBb", notation)

	out, err := oware.ToMoves(notation)
	require.NoError(t, err)
	assert.Equal(t, moves, out)
}

func TestToMovesRejectsNonAlternating(t *testing.T) {
	_, err := oware.ToMoves("AB")
	require.Error(t, err)
}
