package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/joansala/owarego/pkg/oware"
	"github.com/joansala/owarego/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestIterativeDeepeningNoLegalMoveReturnsNullMove(t *testing.T) {
	rules := oware.NewRules()
	b := oware.Board{0, 0, 0, 0, 0, 0, 4, 4, 4, 4, 4, 4, 0, 0}

	it := search.NewIterativeDeepening(rules)
	got := it.Search(context.Background(), b, oware.South, search.MinDepth, time.Second, nil)

	assert.Equal(t, oware.NullMove, got)
}

func TestIterativeDeepeningReturnsALegalRootMove(t *testing.T) {
	rules := oware.NewRules()
	b := oware.InitialBoard()

	it := search.NewIterativeDeepening(rules)
	got := it.Search(context.Background(), b, oware.South, search.MinDepth, 2*time.Second, nil)

	assert.Contains(t, rules.XLegalMoves(b, oware.South), got)
}

// TestIterativeDeepeningLineOfPlayUsesPerPositionTurn is spec.md §8 scenario
// 5: the line of play is a set of (board, turn) keys, not board-only, so a
// historical position one ply before the root must be keyed by the root
// turn's opponent, not the root turn itself. child was reached by South
// playing from b, so North is to move at child -- that is the exact key the
// recursive search below queries, and it must hit.
func TestIterativeDeepeningLineOfPlayUsesPerPositionTurn(t *testing.T) {
	rules := oware.NewRules()
	b := oware.InitialBoard()
	move := rules.XLegalMoves(b, oware.South)[0]
	child := rules.ComputeBoard(b, move)

	line := search.NewLineOfPlay()
	line.Seed([]search.Key{{Board: child, Turn: oware.North}})

	assert.True(t, line.Contains(child, oware.North))
	assert.False(t, line.Contains(child, oware.South))

	n := &search.Negamax{Game: rules, Flag: search.NewFlag(), Line: line}
	got := n.Search(child, oware.North, -search.Infinity, search.Infinity, search.MinDepth)
	assert.Equal(t, int(oware.North)*rules.GetFinalScore(child), got)
}

// countingGame wraps *oware.Rules and raises flag once its ComputeBoard call
// count reaches threshold -- a deterministic, non-wall-clock stand-in for the
// moveTime timer, used to force an abort at an exact, reproducible point in
// the search rather than racing a real clock.
type countingGame struct {
	*oware.Rules
	calls     *int
	threshold int
	flag      *search.Flag
}

func (g *countingGame) ComputeBoard(b oware.Board, m oware.Move) oware.Board {
	*g.calls++
	if g.flag != nil && *g.calls >= g.threshold {
		g.flag.Set()
	}
	return g.Rules.ComputeBoard(b, m)
}

// TestIterativeDeepeningAbortPreservesLastCompletedIteration is spec.md §8
// scenario 6 ("Abort preserves best"): once the abort flag is raised mid
// iteration, the driver must return the move (and implicitly the score) from
// the last *fully completed* iteration rather than a partial result from the
// in-flight one.
//
// The abort is forced deterministically rather than via wall-clock timing:
// a reference depth-4-only (MinDepth) search establishes both the
// iteration's move and the exact number of ComputeBoard calls it consumes.
// A second, depth-6 search then raises the abort flag exactly one
// ComputeBoard call later -- i.e. during evaluation of the depth-6
// iteration's very first root move, before that move's score can be
// compared against the still-initial bestScore sentinel. At that point
// iterative.go's fallback condition (lastScore >= bestScore) always holds,
// so the depth-6 iteration's move must be discarded in favor of the
// depth-4 iteration's.
func TestIterativeDeepeningAbortPreservesLastCompletedIteration(t *testing.T) {
	rules := oware.NewRules()
	b := oware.InitialBoard()

	refCalls := 0
	refGame := &countingGame{Rules: rules, calls: &refCalls, threshold: 1 << 30}
	refIt := search.NewIterativeDeepening(refGame)
	refGame.flag = refIt.Flag()
	refMove := refIt.Search(context.Background(), b, oware.South, search.MinDepth, time.Hour, nil)

	calls := 0
	game := &countingGame{Rules: rules, calls: &calls, threshold: refCalls + 1}
	it := search.NewIterativeDeepening(game)
	game.flag = it.Flag()

	got := it.Search(context.Background(), b, oware.South, search.MinDepth+2, time.Hour, nil)

	assert.Equal(t, refMove, got)
}
