package chess

import (
	"fmt"

	"github.com/lgbarn/minichess-go/internal/errors"
)

// Constants for board dimensions and coordinates.
//
// The board is a 10x12 mailbox: one hedge file on each side and two hedge
// ranks above and below, so that knight jumps and slider rays leaving the
// board land on an Off cell instead of outside the array.
const (
	BoardSize   = 8
	BoardWidth  = 10
	BoardHeight = 12
	BoardCells  = BoardWidth * BoardHeight

	firstSquare = 21 // a1
	lastSquare  = 98 // h8
)

// Square is an index into the padded board.
type Square int

// NoSquare marks the absence of a square (e.g. no en-passant target).
// It is a hedge cell, so it never names a playable square.
const NoSquare Square = 0

const (
	A1 Square = iota + 21
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A2 Square = iota + 31
	B2
	C2
	D2
	E2
	F2
	G2
	H2
)

const (
	A3 Square = iota + 41
	B3
	C3
	D3
	E3
	F3
	G3
	H3
)

const (
	A4 Square = iota + 51
	B4
	C4
	D4
	E4
	F4
	G4
	H4
)

const (
	A5 Square = iota + 61
	B5
	C5
	D5
	E5
	F5
	G5
	H5
)

const (
	A6 Square = iota + 71
	B6
	C6
	D6
	E6
	F6
	G6
	H6
)

const (
	A7 Square = iota + 81
	B7
	C7
	D7
	E7
	F7
	G7
	H7
)

const (
	A8 Square = iota + 91
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// Board directions.
const (
	North = BoardWidth
	South = -BoardWidth
	East  = 1
	West  = -1
)

// NewSquare builds a square from a 0-based file and rank.
func NewSquare(file, rank int) Square {
	return Square(firstSquare + rank*BoardWidth + file)
}

// File returns the 0-based file (0 = a).
func (s Square) File() int {
	return int(s)%BoardWidth - 1
}

// Rank returns the 0-based rank (0 = rank 1).
func (s Square) Rank() int {
	return int(s)/BoardWidth - 2
}

// OnBoard reports whether s is one of the 64 playable squares.
func (s Square) OnBoard() bool {
	if s < firstSquare || s > lastSquare {
		return false
	}
	f := int(s) % BoardWidth
	return f >= 1 && f <= BoardSize
}

// RelativeRank returns the rank as seen from colour's side (0 = own back rank).
func (s Square) RelativeRank(colour Colour) int {
	if colour == White {
		return s.Rank()
	}
	return BoardSize - 1 - s.Rank()
}

// String returns algebraic notation such as "e4", or "-" for off-board values.
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 || text[0] < 'a' || text[0] > 'h' || text[1] < '1' || text[1] > '8' {
		return NoSquare, fmt.Errorf("square %q: %w", text, errors.ErrSquareOutOfRange)
	}
	return NewSquare(int(text[0]-'a'), int(text[1]-'1')), nil
}

// SquareFromView converts a renderer view index (0-63, rank-major, a1 = 0,
// h1 = 7, a8 = 56) to a board square.
func SquareFromView(view int) (Square, error) {
	if view < 0 || view >= BoardSize*BoardSize {
		return NoSquare, fmt.Errorf("view index %d: %w", view, errors.ErrSquareOutOfRange)
	}
	return NewSquare(view%BoardSize, view/BoardSize), nil
}

// ViewFromSquare converts a board square to its renderer view index.
// It is the inverse of SquareFromView.
func ViewFromSquare(s Square) (int, error) {
	if !s.OnBoard() {
		return -1, fmt.Errorf("square %d: %w", int(s), errors.ErrSquareOutOfRange)
	}
	return s.Rank()*BoardSize + s.File(), nil
}
