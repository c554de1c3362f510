// Package binomial implements position ranking/unranking via the
// combinatorial number system: converting a fixed-sum tuple (such as an Oware
// board of 48 seeds across 14 slots) to and from a single dense integer rank.
// It exists for position hashing and is not used by the live engine
// (spec.md §6).
package binomial

// Coeff computes the binomial coefficient C(n, r) using the standard
// multiply-then-divide-by-index recurrence, which keeps every intermediate
// value integral and avoids the factorial overflow the original
// factorial(n)/(factorial(r)*factorial(n-r)) formulation is prone to.
func Coeff(n, r int) uint64 {
	if r < 0 || r > n {
		return 0
	}
	if r > n-r {
		r = n - r
	}

	var c uint64 = 1
	for i := 0; i < r; i++ {
		c = c * uint64(n-i) / uint64(i+1)
	}
	return c
}

// CountCombinations counts the number of ways to distribute exactly items
// identical items into boxes distinguishable boxes.
func CountCombinations(items, boxes int) uint64 {
	return Coeff(items+boxes-1, boxes-1)
}

// Coefficients precomputes the table Rank and Unrank need: coeffs[zeros][i]
// is C(r+i+1, r) where r = items-zeros-1, for zeros in [0, items) and i in
// [0, boxes-1).
func Coefficients(items, boxes int) [][]uint64 {
	coeffs := make([][]uint64, items)
	for zeros := 0; zeros < items; zeros++ {
		row := make([]uint64, boxes-1)
		r := items - zeros - 1
		for index := 1; index < boxes; index++ {
			row[index-1] = Coeff(r+index, r)
		}
		coeffs[zeros] = row
	}
	return coeffs
}

// Rank computes the dense rank of array, a tuple of boxes non-negative
// integers summing to items, given the table Coefficients(items, boxes)
// produced.
func Rank(array []int, items int, coeffs [][]uint64) uint64 {
	boxes := len(array)
	var rank uint64
	n := array[boxes-1]

	for i := boxes - 2; i >= 0; i-- {
		if n >= items {
			break
		}
		rank += coeffs[n][i]
		n += array[i]
	}
	return rank
}

// Unrank inverts Rank: given a rank produced for a tuple of the given items
// total across boxes slots, it reconstructs that tuple.
func Unrank(rank uint64, items, boxes int, coeffs [][]uint64) []int {
	array := make([]int, boxes)
	i := boxes - 2
	elem := 0
	n := 0

	for i >= 0 && n < items {
		value := coeffs[n][i]
		if rank >= value {
			rank -= value
			array[i+1] = elem
			elem = 0
			i--
		} else {
			elem++
			n++
		}
	}
	array[i+1] = items - n + elem

	return array
}
