// Package search implements iterative-deepening negamax with alpha-beta
// pruning over any game satisfying the Game capability interface.
package search

import "github.com/joansala/owarego/pkg/oware"

// Game is the capability interface the search package needs from a rules
// engine: move generation, board transition, terminal classification and the
// two evaluators. *oware.Rules satisfies it structurally -- search never
// imports a concrete rules type, so it could drive any game exposing the same
// five operations.
type Game interface {
	XLegalMoves(b oware.Board, turn oware.Side) []oware.Move
	ComputeBoard(b oware.Board, move oware.Move) oware.Board
	IsEnd(b oware.Board, turn oware.Side) bool
	GetScore(b oware.Board) int
	GetFinalScore(b oware.Board) int
}
