package search

import "github.com/joansala/owarego/pkg/oware"

// Key identifies a position for repetition detection: the board plus the
// side to move.
type Key struct {
	Board oware.Board
	Turn  oware.Side
}

// LineOfPlay is the set of (board, turn) keys already visited along the
// current line being evaluated, including positions supplied as the
// game-history prefix. Encountering a key already in the set is treated as a
// terminal repetition (spec.md Glossary, §4.3 step 2).
type LineOfPlay struct {
	seen map[Key]int
}

// NewLineOfPlay returns an empty line of play.
func NewLineOfPlay() *LineOfPlay {
	return &LineOfPlay{seen: make(map[Key]int)}
}

// Seed marks positions as already visited -- they represent positions reached
// before the current search began. Each seeded entry counts as one occurrence,
// so a Push/Pop pair on the same key leaves it in place. Each entry
// carries its own side to move: the turn alternates ply by ply along a line
// of play, so a single shared turn cannot describe the whole history.
func (l *LineOfPlay) Seed(history []Key) {
	for _, k := range history {
		l.seen[k]++
	}
}

// Push records b/turn as visited along the current recursion path.
func (l *LineOfPlay) Push(b oware.Board, turn oware.Side) {
	l.seen[Key{Board: b, Turn: turn}]++
}

// Pop removes one occurrence of b/turn from the current recursion path.
func (l *LineOfPlay) Pop(b oware.Board, turn oware.Side) {
	k := Key{Board: b, Turn: turn}
	l.seen[k]--
	if l.seen[k] <= 0 {
		delete(l.seen, k)
	}
}

// Contains reports whether b/turn has already occurred along the line of play.
func (l *LineOfPlay) Contains(b oware.Board, turn oware.Side) bool {
	return l.seen[Key{Board: b, Turn: turn}] > 0
}
