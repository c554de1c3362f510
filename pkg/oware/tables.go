package oware

// Tables holds the three precomputed lookup tables the rules engine consumes:
// sowing sequences, harvest chains and capture-feasibility maps (spec.md §3,
// §4.1). Construction is deterministic and pure -- ported from
// original_source/res/scripts/util/machinery.py -- and the result is immutable
// once built, shared by reference across Rules and Search.
type Tables struct {
	// SowSeq[m] is the cyclic sequence of the next 48 landing houses for a sow
	// starting at house m, skipping m itself.
	SowSeq [NumPits][]Move

	// Harvest[h] is the ordered chain of houses to gather when a capture ends
	// at landing house h: h, h-1, ... back to the territory boundary.
	Harvest [NumPits][]Move

	// Reaper[m] maps a seed count to the landing house and the opponent-row
	// configurations ("Grand Slam" positions) that would make a capture from
	// house m with that many seeds illegal. Present only for (m, seeds) pairs
	// that land in the opponent's territory; absent entries mean "cannot
	// capture" and are used as a fast reject before any board simulation.
	Reaper [NumPits]map[int8]ReaperEntry
}

// ReaperEntry is one (move, seeds) capture-feasibility record.
type ReaperEntry struct {
	// Last is the final landing house of the sow.
	Last Move
	// Forbidden is the set of opponent-row 6-tuples (ordered low house to high
	// house within the row) that would leave the entire opponent row empty if
	// captured -- the Grand Slam case -- for sows with this lap count.
	Forbidden map[[NumHouses]int8]struct{}
}

// NewTables builds the three tables once. Call it at startup; the result can be
// shared across any number of Rules/Board instances.
func NewTables() *Tables {
	t := &Tables{}
	t.buildSowSeq()
	t.buildHarvest()
	t.buildReaper()
	return t
}

// buildSowSeq fills SowSeq[m] with the cyclic order houses 0..11 are visited in
// when sowing from m, skipping m, truncated to 48 entries (machinery.py SEED_DRILL).
func (t *Tables) buildSowSeq() {
	for m := Move(0); m < NumPits; m++ {
		lap := make([]Move, 0, NumPits-1)
		for k := 1; k < NumPits; k++ {
			lap = append(lap, Move((int(m)+k)%NumPits))
		}

		seq := make([]Move, 0, TotalSeeds)
		for len(seq) < TotalSeeds {
			seq = append(seq, lap...)
		}
		t.SowSeq[m] = seq[:TotalSeeds]
	}
}

// buildHarvest fills Harvest[h] with the back-chain from h to its row's boundary
// house (machinery.py HARVESTER).
func (t *Tables) buildHarvest() {
	for h := Move(0); h < NumPits; h++ {
		boundary := Move(0)
		if h >= 6 {
			boundary = 6
		}

		chain := make([]Move, 0, NumHouses)
		for cur := h; ; cur-- {
			chain = append(chain, cur)
			if cur == boundary {
				break
			}
		}
		t.Harvest[h] = chain
	}
}

// rowCombos returns the set of 6-tuples whose first `length` entries each take
// every value in {a, b} and whose remaining entries are zero (machinery.py
// xboard_positions, specialized to the two-element alphabets it is always
// called with).
func rowCombos(a, b int8, length int) map[[NumHouses]int8]struct{} {
	out := make(map[[NumHouses]int8]struct{})
	combos := 1 << uint(length)
	for i := 0; i < combos; i++ {
		var row [NumHouses]int8
		for j := 0; j < length; j++ {
			if i&(1<<uint(j)) != 0 {
				row[j] = b
			} else {
				row[j] = a
			}
		}
		out[row] = struct{}{}
	}
	return out
}

// buildReaper ports machinery.py's REAPER construction: for each source house
// and each seed count that lands in the opponent's territory, record the
// landing house and the Grand Slam forbidden-position set appropriate to how
// many times the sow laps the board (one lap: seeds < 12; two laps: seeds in
// [12, 23) and the landing house is the row's far corner; three laps: seeds in
// [23, 34)). Beyond 33 seeds no entry is recorded: with 48 seeds conserved
// across the board, a source house never legitimately needs a capture lookup
// past that point (see original_source machinery.py's own range(1, 34) cap).
func (t *Tables) buildReaper() {
	var onePass, twoPass [NumHouses]map[[NumHouses]int8]struct{}
	zeroPass := map[[NumHouses]int8]struct{}{{}: {}}
	for n := 0; n < NumHouses; n++ {
		onePass[n] = rowCombos(1, 2, n+1)
		twoPass[n] = rowCombos(0, 1, n+1)
	}

	for m := Move(0); m < NumPits; m++ {
		entries := make(map[int8]ReaperEntry)

		for seeds := int8(1); seeds < 34; seeds++ {
			last := t.SowSeq[m][seeds-1]
			if !landsInOpponentTerritory(m, last) {
				continue
			}

			n := int(last)
			if last >= 6 {
				n -= 6
			}

			switch {
			case seeds < 12:
				entries[seeds] = ReaperEntry{Last: last, Forbidden: onePass[n]}
			case last == 5 || last == 11:
				if seeds < 23 {
					entries[seeds] = ReaperEntry{Last: last, Forbidden: twoPass[n]}
				} else {
					entries[seeds] = ReaperEntry{Last: last, Forbidden: zeroPass}
				}
			default:
				entries[seeds] = ReaperEntry{Last: last, Forbidden: map[[NumHouses]int8]struct{}{}}
			}
		}

		t.Reaper[m] = entries
	}
}

// landsInOpponentTerritory reports whether a sow starting at source ends in the
// opponent's row.
func landsInOpponentTerritory(source, last Move) bool {
	sourceSouth := source < 6
	lastSouth := last < 6
	return sourceSouth != lastSouth
}
