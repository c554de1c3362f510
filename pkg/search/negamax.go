package search

import "github.com/joansala/owarego/pkg/oware"

// Infinity is the heuristic-score bound. Terminal scores are ±10000
// (oware.WinScore), which exceed it by design so a terminal result always
// dominates an alpha-beta comparison against a heuristic one (spec.md §4.3).
const Infinity = 1000

// MinDepth is the initial, and minimum, search depth in plies.
const MinDepth = 4

// Negamax is the recursive alpha-beta search, fail-hard on beta. It carries no
// mutable state of its own beyond the shared Flag and LineOfPlay references,
// so a single value can be reused, and even shared, across root moves within
// one iteration.
type Negamax struct {
	Game Game
	Flag *Flag
	Line *LineOfPlay
}

// Search evaluates board/turn to depth plies within the [alpha, beta] window,
// from turn's perspective (the negamax sign convention: positive is good for
// the side to move).
func (n *Negamax) Search(board oware.Board, turn oware.Side, alpha, beta, depth int) int {
	if n.Flag.IsSet() {
		return -Infinity
	}

	if n.Game.IsEnd(board, turn) || n.Line.Contains(board, turn) {
		return int(turn) * n.Game.GetFinalScore(board)
	}
	if depth == 0 {
		return int(turn) * n.Game.GetScore(board)
	}

	n.Line.Push(board, turn)
	defer n.Line.Pop(board, turn)

	for _, m := range n.Game.XLegalMoves(board, turn) {
		child := n.Game.ComputeBoard(board, m)
		score := -n.Search(child, turn.Opponent(), -beta, -alpha, depth-1)

		if score >= beta {
			alpha = beta
			break
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
