package chess

import (
	"fmt"

	"github.com/lgbarn/minichess-go/internal/errors"
)

// Move is a (from, to, promotion) triple. Promotion is NoKind unless a pawn
// reaches its last rank.
type Move struct {
	From      Square
	To        Square
	Promotion Kind
}

// NullMove is the zero Move; it is never generated.
var NullMove = Move{}

// IsNull reports whether m is the zero move.
func (m Move) IsNull() bool {
	return m == NullMove
}

// String returns coordinate notation: "e2e4", "e7e8q".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// ParseMove parses coordinate notation such as "g1f3" or "a7a8n".
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return NullMove, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMoveText)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return NullMove, fmt.Errorf("move %q: bad from square: %w", text, errors.ErrInvalidMoveText)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return NullMove, fmt.Errorf("move %q: bad to square: %w", text, errors.ErrInvalidMoveText)
	}
	m := Move{From: from, To: to}
	if len(text) == 5 {
		m.Promotion = KindFromLetter(text[4])
		if !m.Promotion.IsPromotion() {
			return NullMove, fmt.Errorf("move %q: bad promotion %q: %w", text, text[4], errors.ErrInvalidMoveText)
		}
	}
	return m, nil
}

// CastlingRights is a 4-bit set of remaining castling options.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// String returns the FEN castling field ("KQkq", "Kq", "-").
func (c CastlingRights) String() string {
	if c == NoCastling {
		return "-"
	}
	var b []byte
	for _, r := range []struct {
		right  CastlingRights
		letter byte
	}{{WhiteKingside, 'K'}, {WhiteQueenside, 'Q'}, {BlackKingside, 'k'}, {BlackQueenside, 'q'}} {
		if c.Has(r.right) {
			b = append(b, r.letter)
		}
	}
	return string(b)
}

// KingsideRight returns the kingside right for colour.
func KingsideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideRight returns the queenside right for colour.
func QueensideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// MoveResult is the set of flags describing the outcome of a move request.
// Exactly one of OK and Illegal is set; the rest only accompany OK.
type MoveResult uint8

const (
	Illegal MoveResult = 1 << iota
	OK
	Check
	Mate
	Capture
	CastleKingside
	CastleQueenside
	Draw
)

// Has reports whether every flag in f is set.
func (r MoveResult) Has(f MoveResult) bool {
	return r&f == f
}

// String lists the set flags, e.g. "ok|capture|check".
func (r MoveResult) String() string {
	names := []struct {
		flag MoveResult
		name string
	}{
		{Illegal, "illegal"}, {OK, "ok"}, {Check, "check"}, {Mate, "mate"},
		{Capture, "capture"}, {CastleKingside, "castle-kingside"},
		{CastleQueenside, "castle-queenside"}, {Draw, "draw"},
	}
	s := ""
	for _, n := range names {
		if r.Has(n.flag) {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	if s == "" {
		return "none"
	}
	return s
}

// GameStatus summarises a position for the side to move.
type GameStatus int

const (
	Ongoing GameStatus = iota
	CheckmateStatus
	StalemateStatus
	DrawByHalfmoveClock
	DrawByRepetition
	DrawByInsufficientMaterial
)

// String returns the status name.
func (s GameStatus) String() string {
	switch s {
	case CheckmateStatus:
		return "checkmate"
	case StalemateStatus:
		return "stalemate"
	case DrawByHalfmoveClock:
		return "draw (halfmove clock)"
	case DrawByRepetition:
		return "draw (repetition)"
	case DrawByInsufficientMaterial:
		return "draw (insufficient material)"
	}
	return "ongoing"
}

// IsDraw reports whether s is one of the drawn outcomes.
func (s GameStatus) IsDraw() bool {
	return s == StalemateStatus || s == DrawByHalfmoveClock ||
		s == DrawByRepetition || s == DrawByInsufficientMaterial
}
