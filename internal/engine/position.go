package engine

import (
	"github.com/lgbarn/minichess-go/internal/chess"
)

// PieceSquare pairs a piece with the square it stands on.
type PieceSquare struct {
	Piece  chess.Piece
	Square chess.Square
}

// Position holds all state needed to generate and play moves.
//
// A Position is mutated in place through MakeMove/UnmakeMove, which must be
// strictly nested. It is not safe for concurrent use; give each goroutine
// its own copy via Clone.
type Position struct {
	// The 10x12 board. Hedge cells hold chess.Off and never change.
	board [chess.BoardCells]chess.Piece

	// Piece lists per colour, mirroring board at every stable point.
	pieces [2][]PieceSquare

	// Who has the next move.
	side chess.Colour

	// Remaining castling options.
	castling chess.CastlingRights

	// Square a pawn may capture onto en passant, or chess.NoSquare.
	enPassant chess.Square

	// Half-moves since the last pawn move or capture.
	halfmoveClock uint

	// The current full move number, starting at 1.
	moveNumber uint

	// Cached evaluation tables; rebuilt by prepare when prepared is false.
	eval     evaluation
	prepared bool
}

// newEmptyPosition creates a position with hedges in place and no pieces.
func newEmptyPosition() *Position {
	p := &Position{
		side:       chess.White,
		enPassant:  chess.NoSquare,
		moveNumber: 1,
	}
	// The zero value of every cell is chess.Off; open up the playable squares.
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			p.board[chess.NewSquare(file, rank)] = chess.Empty
		}
	}
	return p
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p, err := ParseFEN(InitialFEN)
	if err != nil {
		panic("engine: initial FEN does not parse: " + err.Error())
	}
	return p
}

// Clone returns an independent deep copy.
func (p *Position) Clone() *Position {
	c := *p
	for colour := range p.pieces {
		c.pieces[colour] = append([]PieceSquare(nil), p.pieces[colour]...)
	}
	return &c
}

// PieceAt returns the cell value at sq. Off-board squares yield chess.Off.
func (p *Position) PieceAt(sq chess.Square) chess.Piece {
	if sq < 0 || int(sq) >= chess.BoardCells {
		return chess.Off
	}
	return p.board[sq]
}

// SideToMove returns the colour to move.
func (p *Position) SideToMove() chess.Colour {
	return p.side
}

// Castling returns the remaining castling rights.
func (p *Position) Castling() chess.CastlingRights {
	return p.castling
}

// EnPassant returns the en-passant target square, or chess.NoSquare.
func (p *Position) EnPassant() chess.Square {
	return p.enPassant
}

// HalfmoveClock returns the number of half-moves since the last pawn move or capture.
func (p *Position) HalfmoveClock() uint {
	return p.halfmoveClock
}

// MoveNumber returns the full move number.
func (p *Position) MoveNumber() uint {
	return p.moveNumber
}

// Pieces returns a copy of colour's piece list.
func (p *Position) Pieces(colour chess.Colour) []PieceSquare {
	return append([]PieceSquare(nil), p.pieces[colour]...)
}

// KingSquare returns the square of colour's king, or chess.NoSquare.
func (p *Position) KingSquare(colour chess.Colour) chess.Square {
	king := chess.MakePiece(colour, chess.King)
	for _, ps := range p.pieces[colour] {
		if ps.Piece == king {
			return ps.Square
		}
	}
	return chess.NoSquare
}

// invalidate marks the cached evaluation as stale.
func (p *Position) invalidate() {
	p.prepared = false
}

// put places a piece on an empty square, appending it to the piece list.
// Only used while setting up a position.
func (p *Position) put(sq chess.Square, piece chess.Piece) {
	p.board[sq] = piece
	p.pieces[piece.Colour()] = append(p.pieces[piece.Colour()], PieceSquare{Piece: piece, Square: sq})
}

// indexOf returns the piece-list index of the piece on sq, or -1.
func (p *Position) indexOf(colour chess.Colour, sq chess.Square) int {
	for i, ps := range p.pieces[colour] {
		if ps.Square == sq {
			return i
		}
	}
	return -1
}

// removeAt deletes entry i from colour's piece list, preserving order.
func (p *Position) removeAt(colour chess.Colour, i int) {
	list := p.pieces[colour]
	copy(list[i:], list[i+1:])
	p.pieces[colour] = list[:len(list)-1]
}

// insertAt re-inserts an entry at index i, preserving order.
func (p *Position) insertAt(colour chess.Colour, i int, ps PieceSquare) {
	list := append(p.pieces[colour], PieceSquare{})
	copy(list[i+1:], list[i:])
	list[i] = ps
	p.pieces[colour] = list
}

// forward returns the board offset of one step forward for colour's pawns.
func forward(colour chess.Colour) chess.Square {
	return chess.Square(chess.North * chess.ColourOffset(colour))
}
