package oware

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var boardNotationPattern = regexp.MustCompile(`^((?:[1-4]?[0-9]-){14})(S|N)$`)
var moveNotationPattern = regexp.MustCompile(`^[A-Fa-f]$`)
var movesNotationPattern = regexp.MustCompile(`^(?:([A-F]([a-f][A-F])*[a-f]?)|([a-f]([A-F][a-f])*[A-F]?))$`)

// ToBoardNotation renders b and the side to move as a dash-separated decimal
// string terminated by a side marker, e.g. "4-4-4-4-4-4-4-4-4-4-4-4-0-0-S".
func ToBoardNotation(b Board, turn Side) string {
	var sb strings.Builder
	for _, v := range b {
		sb.WriteString(strconv.Itoa(int(v)))
		sb.WriteByte('-')
	}
	sb.WriteString(turn.String())
	return sb.String()
}

// ToPosition parses a board-notation string back into a Board and Side.
func ToPosition(s string) (Board, Side, error) {
	var b Board
	if !boardNotationPattern.MatchString(s) {
		return b, 0, &InvalidNotation{Input: s, Expected: "14 dash-separated integers followed by -S or -N"}
	}

	parts := strings.Split(s, "-")
	for i := 0; i < NumPits+2; i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return b, 0, &InvalidNotation{Input: s, Expected: "14 dash-separated integers followed by -S or -N"}
		}
		b[i] = int8(n)
	}

	switch parts[NumPits+2] {
	case "S":
		return b, South, nil
	case "N":
		return b, North, nil
	default:
		return b, 0, &InvalidNotation{Input: s, Expected: "side marker S or N"}
	}
}

// ToMoveNotation renders a house index as its single-letter token: A-F for
// South's houses 0-5, a-f for North's houses 6-11.
func ToMoveNotation(m Move) (string, error) {
	switch {
	case m >= 0 && m < NumHouses:
		return string(rune('A' + int(m))), nil
	case m >= NumHouses && m < NumPits:
		return string(rune('a' + int(m) - NumHouses)), nil
	default:
		return "", &InvalidNotation{Input: fmt.Sprintf("%d", m), Expected: "a house index 0-11"}
	}
}

// ToMove parses a single move-notation letter back into a house index.
func ToMove(s string) (Move, error) {
	if !moveNotationPattern.MatchString(s) {
		return NullMove, &InvalidNotation{Input: s, Expected: "a single letter A-F or a-f"}
	}

	c := s[0]
	switch {
	case c >= 'A' && c <= 'F':
		return Move(c - 65), nil
	default:
		return Move(c - 91), nil
	}
}

// ToMovesNotation concatenates a sequence of moves into their single-letter
// tokens.
func ToMovesNotation(ms []Move) (string, error) {
	var sb strings.Builder
	for _, m := range ms {
		tok, err := ToMoveNotation(m)
		if err != nil {
			return "", err
		}
		sb.WriteString(tok)
	}
	return sb.String(), nil
}

// ToMoves parses a move-sequence notation string, requiring it to alternate
// sides throughout (spec.md §6).
func ToMoves(s string) ([]Move, error) {
	if s == "" {
		return nil, nil
	}
	if !movesNotationPattern.MatchString(s) {
		return nil, &InvalidNotation{Input: s, Expected: "a side-alternating sequence of A-F/a-f tokens"}
	}

	moves := make([]Move, 0, len(s))
	for i := 0; i < len(s); i++ {
		m, err := ToMove(s[i : i+1])
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}
