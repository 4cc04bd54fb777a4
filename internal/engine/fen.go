// Package engine provides chess move generation, validation, and search.
package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/minichess-go/internal/chess"
	"github.com/lgbarn/minichess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenError builds a ParseError wrapping ErrInvalidFEN.
func fenError(field, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Field:    field,
		Expected: expected,
		Got:      got,
	}
}

// ParseFEN creates a position from a FEN string.
//
// The placement, side, castling and en-passant fields are required; the two
// clock fields may be omitted and default to "0 1". Any malformed field fails
// the whole parse, so a caller never sees a partially built position.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, fenError("fields", "4 to 6 space-separated fields", strconv.Itoa(len(parts))+" fields")
	}

	p := newEmptyPosition()

	if err := parsePiecePositions(p, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(p, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(p, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(p, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(p, parts[4:]); err != nil {
		return nil, err
	}
	if err := validatePosition(p); err != nil {
		return nil, err
	}

	return p, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(p *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fenError("placement", "8 ranks", placement)
	}

	for i, rankText := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(rankText); j++ {
			c := rankText[j]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece := chess.PieceFromLetter(c)
				if piece == chess.Empty {
					return fenError("placement", "piece letter or digit", string(c))
				}
				if file >= chess.BoardSize {
					return fenError("placement", "8 squares per rank", rankText)
				}
				if piece.Kind() == chess.Pawn && (rank == 0 || rank == chess.BoardSize-1) {
					return fenError("placement", "no pawns on the first or last rank", rankText)
				}
				p.put(chess.NewSquare(file, rank), piece)
				file++
			}
		}
		if file != chess.BoardSize {
			return fenError("placement", "8 squares per rank", rankText)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(p *Position, field string) error {
	switch field {
	case "w":
		p.side = chess.White
	case "b":
		p.side = chess.Black
	default:
		return fenError("side to move", "w or b", field)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Rights whose
// king or rook is not on its home square are dropped.
func parseCastlingRights(p *Position, field string) error {
	p.castling = chess.NoCastling
	if field == "-" {
		return nil
	}

	for i := 0; i < len(field); i++ {
		var right chess.CastlingRights
		switch field[i] {
		case 'K':
			right = chess.WhiteKingside
		case 'Q':
			right = chess.WhiteQueenside
		case 'k':
			right = chess.BlackKingside
		case 'q':
			right = chess.BlackQueenside
		default:
			return fenError("castling", "subset of KQkq or -", field)
		}
		if p.castling.Has(right) {
			return fenError("castling", "each of KQkq at most once", field)
		}
		p.castling |= right
	}

	for _, c := range castlings {
		if p.castling.Has(c.right) &&
			(!p.board[c.kingFrom].Is(c.colour, chess.King) || !p.board[c.rookFrom].Is(c.colour, chess.Rook)) {
			p.castling &^= c.right
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(p *Position, field string) error {
	p.enPassant = chess.NoSquare
	if field == "-" {
		return nil
	}

	sq, err := chess.ParseSquare(field)
	if err != nil {
		return fenError("en passant", "square or -", field)
	}

	// The target sits behind a pawn of the side that just moved.
	mover := p.side.Opposite()
	if sq.RelativeRank(mover) != 2 {
		return fenError("en passant", "square on the third or sixth rank behind the pushed pawn", field)
	}
	pawn := sq + forward(mover)
	if p.board[sq] != chess.Empty || p.board[sq-forward(mover)] != chess.Empty ||
		!p.board[pawn].Is(mover, chess.Pawn) {
		return fenError("en passant", "a pawn that has just made a double step", field)
	}

	p.enPassant = sq
	return nil
}

// parseClocks parses the optional halfmove clock and fullmove number fields.
func parseClocks(p *Position, fields []string) error {
	p.halfmoveClock = 0
	p.moveNumber = 1

	if len(fields) >= 1 {
		n, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return fenError("halfmove clock", "non-negative integer", fields[0])
		}
		p.halfmoveClock = uint(n)
	}
	if len(fields) >= 2 {
		n, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil || n == 0 {
			return fenError("fullmove number", "positive integer", fields[1])
		}
		p.moveNumber = uint(n)
	}
	return nil
}

// validatePosition rejects positions that cannot arise in a game the
// engine can continue: wrong king count or the side not to move in check.
func validatePosition(p *Position) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		kings := 0
		for _, ps := range p.pieces[colour] {
			if ps.Piece.Kind() == chess.King {
				kings++
			}
		}
		if kings != 1 {
			return fenError("placement", "exactly one "+strings.ToLower(colour.String())+" king", strconv.Itoa(kings))
		}
	}

	if p.IsInCheck(p.side.Opposite()) {
		return fenError("placement", "side not to move not in check", p.side.Opposite().String()+" in check")
	}
	return nil
}

// FEN converts the position to a FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, p)
	sb.WriteByte(' ')
	if p.side == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(p.halfmoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(p.moveNumber), 10))

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, p *Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := p.board[chess.NewSquare(file, rank)]
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
