package search

import (
	"context"
	"time"

	"github.com/joansala/owarego/pkg/oware"
	"github.com/seekerror/logw"
)

// IterativeDeepening is the root search driver: iterative deepening negamax
// with alpha-beta, time-bounded by a cooperative abort Flag, preserving the
// last fully-completed iteration's move whenever a later iteration is
// aborted before it improves on that score (spec.md §4.3 step 6).
type IterativeDeepening struct {
	game Game
	flag *Flag
}

// NewIterativeDeepening returns a driver over game, with a fresh abort flag.
func NewIterativeDeepening(game Game) *IterativeDeepening {
	return &IterativeDeepening{
		game: game,
		flag: NewFlag(),
	}
}

// Flag exposes the abort flag so a facade can implement stop_computation.
func (it *IterativeDeepening) Flag() *Flag {
	return it.flag
}

// Search runs iterative deepening from board/turn up to maxDepth plies,
// bounded by moveTime, with history seeding the line-of-play repetition set.
// It always returns within moveTime plus one scheduler tick. If board/turn has
// no legal move, it returns oware.NullMove.
func (it *IterativeDeepening) Search(ctx context.Context, board oware.Board, turn oware.Side, maxDepth int, moveTime time.Duration, history []oware.Board) oware.Move {
	it.flag.Reset()
	timer := time.AfterFunc(moveTime, it.flag.Set)
	defer timer.Stop()

	line := NewLineOfPlay()
	line.Seed(seedKeys(history, turn))

	moves := it.game.XLegalMoves(board, turn)
	if len(moves) == 0 {
		return oware.NullMove
	}

	nm := &Negamax{Game: it.game, Flag: it.flag, Line: line}

	depth := MinDepth
	alpha := -Infinity

	var lastMove oware.Move
	var lastScore int

	for {
		start := time.Now()
		bestMove := moves[0]
		bestScore := -Infinity
		aborted := false

		for _, m := range moves {
			child := it.game.ComputeBoard(board, m)
			score := -nm.Search(child, turn.Opponent(), alpha, -bestScore, depth)

			if it.flag.IsSet() && depth > MinDepth {
				if lastScore >= bestScore {
					bestMove = lastMove
				}
				aborted = true
				break
			}

			if score > bestScore {
				bestMove = m
				bestScore = score
			}
		}

		logw.Debugf(ctx, "Searched depth=%v best=%v score=%v time=%v", depth, bestMove, bestScore, time.Since(start))

		if aborted {
			return bestMove
		}
		if depth >= maxDepth {
			return bestMove
		}

		lastMove, lastScore = bestMove, bestScore
		depth += 2
	}
}

// seedKeys pairs each historical board with its own side to move. Turns
// alternate one ply at a time, so history[len-1] (the position immediately
// preceding board/turn) was played by turn's opponent, history[len-2] by
// turn, and so on walking backward -- a single shared turn cannot describe
// the whole history (spec.md §3's line of play is a set of (board, turn)
// keys, not board-only).
func seedKeys(history []oware.Board, turn oware.Side) []Key {
	keys := make([]Key, len(history))
	t := turn
	for i := len(history) - 1; i >= 0; i-- {
		t = t.Opponent()
		keys[i] = Key{Board: history[i], Turn: t}
	}
	return keys
}
