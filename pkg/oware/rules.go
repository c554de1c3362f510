package oware

// WinScore is the terminal evaluation magnitude returned by GetFinalScore. It
// comfortably exceeds any heuristic score the search layer produces, so
// terminal results always dominate alpha-beta comparisons (spec.md §4.3).
const WinScore = 10000

// Rules implements the Oware Abapa move generator, capture detector, terminal
// classifier and evaluator (spec.md §4.2). It is the concrete type the search
// package's Game capability interface is satisfied by -- every method it needs
// (XLegalMoves, ComputeBoard, IsEnd, GetScore, GetFinalScore) is defined here,
// plus the auxiliary predicates (IsCapture, HasLegalMoves, FinalBoard,
// GetWinner) the rest of the engine and its tests rely on.
type Rules struct {
	t *Tables
}

// NewRules builds the precomputed tables once and returns a ready Rules value.
func NewRules() *Rules {
	return &Rules{t: NewTables()}
}

// InitialBoard returns the starting position: four seeds in every house, empty
// stores.
func InitialBoard() Board {
	var b Board
	for h := 0; h < NumPits; h++ {
		b[h] = 4
	}
	return b
}

// isRowEmpty reports whether every house in the six-house row starting at
// start holds zero seeds.
func isRowEmpty(b Board, start Move) bool {
	for h := start; h < start+NumHouses; h++ {
		if b[h] != 0 {
			return false
		}
	}
	return true
}

// HasLegalMoves reports whether turn has at least one legal move on b. A house
// is playable if it holds seeds and, when the opponent's row is entirely
// empty, sowing from it reaches the opponent's side (the forced-feeding rule).
func (r *Rules) HasLegalMoves(b Board, turn Side) bool {
	start := turn.rowStart()
	if isRowEmpty(b, start) {
		return false
	}

	oppStart := turn.Opponent().rowStart()
	if !isRowEmpty(b, oppStart) {
		return true
	}

	last := start + NumHouses - 1
	for h := last; h >= start; h-- {
		threshold := int8(last - h)
		if b[h] > 0 && b[h] > threshold {
			return true
		}
	}
	return false
}

// IsEnd reports whether b is a terminal position for turn: either store has
// exceeded 24 seeds, or turn has no legal move.
func (r *Rules) IsEnd(b Board, turn Side) bool {
	if b[12] > 24 || b[13] > 24 {
		return true
	}
	return !r.HasLegalMoves(b, turn)
}

// FinalBoard normalizes an endgame position. If the game already ended by a
// captured-seed majority (either store > 24, or both equal 24) b is returned
// unchanged; otherwise every seed still on the board is swept into its owner's
// store.
func (r *Rules) FinalBoard(b Board) Board {
	if b[12] > 24 || b[13] > 24 {
		return b
	}
	if b[12] == 24 && b[13] == 24 {
		return b
	}

	var south, north int8
	for h := Move(0); h < NumHouses; h++ {
		south += b[h]
	}
	for h := Move(NumHouses); h < NumPits; h++ {
		north += b[h]
	}

	var out Board
	out[12] = b[12] + south
	out[13] = b[13] + north
	return out
}

// GetWinner returns the winner of a finished game, or Undecided if turn still
// has a legal move.
func (r *Rules) GetWinner(b Board, turn Side) Outcome {
	if b[12] > 24 {
		return SouthWins
	}
	if b[13] > 24 {
		return NorthWins
	}
	if r.HasLegalMoves(b, turn) {
		return Undecided
	}

	f := r.FinalBoard(b)
	switch {
	case f[12] > f[13]:
		return SouthWins
	case f[12] < f[13]:
		return NorthWins
	default:
		return Draw
	}
}

// GetScore is the midgame heuristic evaluator: the captured-seed differential.
func (r *Rules) GetScore(b Board) int {
	return int(b[12]) - int(b[13])
}

// GetFinalScore is the terminal evaluator, from South's perspective: +WinScore
// if South wins (by store majority or sweep), -WinScore if North wins, 0 on a
// draw.
func (r *Rules) GetFinalScore(b Board) int {
	if b[12] > 24 {
		return WinScore
	}
	if b[13] > 24 {
		return -WinScore
	}

	score := int(b[12])
	for h := Move(0); h < NumHouses; h++ {
		score += int(b[h])
	}

	switch {
	case score > 24:
		return WinScore
	case score < 24:
		return -WinScore
	default:
		return 0
	}
}

// IsCapture reports whether sowing from move captures at least one seed. The
// algorithm is ported from original_source/res/scripts/prototype/oware.py's
// is_capture, keyed by seed count (not house index -- see DESIGN.md's Open
// Question resolution): Reaper gives a fast reject for (move, seeds) pairs
// that cannot possibly land in the opponent's territory or whose seed count
// exceeds the table's range, and the lap-bucketed Forbidden set answers the
// Grand Slam question without simulating the sow.
func (r *Rules) IsCapture(b Board, move Move) bool {
	seeds := b[move]
	entry, ok := r.t.Reaper[move][seeds]
	if !ok {
		return false
	}

	last := entry.Last
	if b[last] > 2 {
		return false
	}

	if (b[last] == 0) != (seeds < 12) || (seeds > 11 && seeds < 23 && b[last] == 1) {
		var row [NumHouses]int8
		if move < NumHouses {
			copy(row[:], b[6:12])
		} else {
			copy(row[:], b[0:6])
		}
		if _, grandSlam := entry.Forbidden[row]; grandSlam {
			return false
		}
		return true
	}
	return false
}

// ComputeBoard applies move to b and returns the resulting board. This is the
// authoritative capture executor: it simulates the sow directly and, if the
// final pit lands in the opponent's row holding 2 or 3 seeds, walks the
// Harvest chain backwards gathering seeds while each pit also holds 2 or 3 --
// discarding the whole capture if it would empty the opponent's entire row
// (the Grand Slam prohibition), exactly as
// original_source/res/scripts/prototype/engine.py's compute_board does.
func (r *Rules) ComputeBoard(b Board, move Move) Board {
	seeds := b[move]

	nb := b
	nb[move] = 0
	if seeds == 0 {
		return nb
	}

	seq := r.t.SowSeq[move]
	var last Move
	for i := int8(0); i < seeds; i++ {
		h := seq[i]
		nb[h]++
		last = h
	}

	if nb[last] != 2 && nb[last] != 3 {
		return nb
	}

	switch {
	case move < NumHouses && last >= NumHouses:
		return r.harvest(nb, last, 12, NumHouses)
	case move >= NumHouses && last < NumHouses:
		return r.harvest(nb, last, 13, 0)
	default:
		return nb
	}
}

// harvest gathers seeds backwards along the Harvest chain from last into the
// store at storeIdx, stopping at the first pit that doesn't hold 2 or 3 seeds.
// If the capture would leave the entire row starting at rowStart empty (Grand
// Slam), the capture is discarded and the pre-capture board b is returned.
func (r *Rules) harvest(b Board, last Move, storeIdx, rowStart Move) Board {
	gathered := b
	for _, h := range r.t.Harvest[last] {
		if gathered[h] != 2 && gathered[h] != 3 {
			break
		}
		gathered[storeIdx] += gathered[h]
		gathered[h] = 0
	}

	if isRowEmpty(gathered, rowStart) {
		return b
	}
	return gathered
}

// XLegalMoves returns the legal source houses for turn, ordered to improve
// alpha-beta pruning: capturing moves first (scanned from the mover's highest
// house down), then either small vulnerable pits then larger pits (ascending,
// when the opponent has seeds), or only forced-feeding moves (ascending, when
// the opponent's row is empty).
func (r *Rules) XLegalMoves(b Board, turn Side) []Move {
	start := turn.rowStart()
	last := start + NumHouses - 1
	oppStart := turn.Opponent().rowStart()

	moves := make([]Move, 0, NumHouses)

	for h := last; h >= start; h-- {
		threshold := int8(last - h)
		if b[h] > 0 && b[h] > threshold && r.IsCapture(b, h) {
			moves = append(moves, h)
		}
	}

	if !isRowEmpty(b, oppStart) {
		for h := start; h <= last; h++ {
			if b[h] > 0 && b[h] < 3 && !r.IsCapture(b, h) {
				moves = append(moves, h)
			}
		}
		for h := start; h <= last; h++ {
			if b[h] > 2 && !r.IsCapture(b, h) {
				moves = append(moves, h)
			}
		}
	} else {
		for h := start; h <= last; h++ {
			threshold := int8(last - h)
			if b[h] > 0 && b[h] > threshold && !r.IsCapture(b, h) {
				moves = append(moves, h)
			}
		}
	}

	return moves
}

// XDisruptiveMoves returns only the capturing moves, in the same order
// XLegalMoves would yield them in.
func (r *Rules) XDisruptiveMoves(b Board, turn Side) []Move {
	start := turn.rowStart()
	last := start + NumHouses - 1

	var moves []Move
	for h := last; h >= start; h-- {
		threshold := int8(last - h)
		if b[h] > 0 && b[h] > threshold && r.IsCapture(b, h) {
			moves = append(moves, h)
		}
	}
	return moves
}
