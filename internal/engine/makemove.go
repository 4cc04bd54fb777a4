package engine

import "github.com/lgbarn/minichess-go/internal/chess"

// UndoRecord holds everything UnmakeMove needs to restore a position.
type UndoRecord struct {
	Move  chess.Move
	Moved chess.Piece

	// Captured is chess.Empty when the move captured nothing. CaptureSquare
	// differs from Move.To only for en passant.
	Captured      chess.Piece
	CaptureSquare chess.Square

	// RookFrom and RookTo are chess.NoSquare unless the move castled.
	RookFrom chess.Square
	RookTo   chess.Square

	Side          chess.Colour
	Castling      chess.CastlingRights
	EnPassant     chess.Square
	HalfmoveClock uint
	MoveNumber    uint

	// Piece-list slots, so unmake restores list order exactly.
	movedIndex    int
	capturedIndex int
	rookIndex     int
}

// IsCapture reports whether the recorded move took a piece.
func (u *UndoRecord) IsCapture() bool {
	return u.Captured != chess.Empty
}

// IsCastle reports whether the recorded move castled.
func (u *UndoRecord) IsCastle() bool {
	return u.RookFrom != chess.NoSquare
}

// MakeMove plays m on the position in place and returns the record needed to
// take it back. The mover is the colour of the piece on m.From. MakeMove does
// not check legality, and it does not refresh the cached evaluation tables.
//
// En passant, castling and promotion are handled here. A pawn reaching its last
// rank without a promotion kind becomes a queen.
func (p *Position) MakeMove(m chess.Move) UndoRecord {
	from, to := m.From, m.To
	moved := p.board[from]
	colour := moved.Colour()
	enemy := colour.Opposite()
	kind := moved.Kind()

	u := UndoRecord{
		Move:          m,
		Moved:         moved,
		Captured:      chess.Empty,
		CaptureSquare: to,
		RookFrom:      chess.NoSquare,
		RookTo:        chess.NoSquare,
		Side:          p.side,
		Castling:      p.castling,
		EnPassant:     p.enPassant,
		HalfmoveClock: p.halfmoveClock,
		MoveNumber:    p.moveNumber,
		capturedIndex: -1,
		rookIndex:     -1,
	}

	// A diagonal pawn step onto the empty target takes the pawn beside it.
	if kind == chess.Pawn && to == p.enPassant && p.board[to] == chess.Empty && from.File() != to.File() {
		u.CaptureSquare = to - forward(colour)
	}

	if victim := p.board[u.CaptureSquare]; victim.IsPiece() {
		u.Captured = victim
		u.capturedIndex = p.indexOf(enemy, u.CaptureSquare)
		p.removeAt(enemy, u.capturedIndex)
		p.board[u.CaptureSquare] = chess.Empty
	}

	placed := moved
	if kind == chess.Pawn && to.RelativeRank(colour) == chess.BoardSize-1 {
		promotion := m.Promotion
		if !promotion.IsPromotion() {
			promotion = chess.Queen
		}
		placed = chess.MakePiece(colour, promotion)
	}

	u.movedIndex = p.indexOf(colour, from)
	p.pieces[colour][u.movedIndex] = PieceSquare{Piece: placed, Square: to}
	p.board[from] = chess.Empty
	p.board[to] = placed

	if kind == chess.King {
		if c, ok := castlingFor(from, to); ok && p.board[c.rookFrom].Is(colour, chess.Rook) {
			rook := p.board[c.rookFrom]
			u.RookFrom, u.RookTo = c.rookFrom, c.rookTo
			u.rookIndex = p.indexOf(colour, c.rookFrom)
			p.pieces[colour][u.rookIndex].Square = c.rookTo
			p.board[c.rookFrom] = chess.Empty
			p.board[c.rookTo] = rook
		}
	}

	p.castling &^= castlingLoss[from] | castlingLoss[to]

	p.enPassant = chess.NoSquare
	if kind == chess.Pawn && (to-from == 2*chess.North || from-to == 2*chess.North) {
		p.enPassant = (from + to) / 2
	}

	if kind == chess.Pawn || u.IsCapture() {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if colour == chess.Black {
		p.moveNumber++
	}
	p.side = enemy

	return u
}

// UnmakeMove reverses the MakeMove that produced u. Calls must be strictly
// nested: u has to come from the most recent MakeMove not yet undone.
func (p *Position) UnmakeMove(u UndoRecord) {
	colour := u.Moved.Colour()

	if u.IsCastle() {
		rook := p.board[u.RookTo]
		p.board[u.RookTo] = chess.Empty
		p.board[u.RookFrom] = rook
		p.pieces[colour][u.rookIndex].Square = u.RookFrom
	}

	p.board[u.Move.To] = chess.Empty
	p.board[u.Move.From] = u.Moved
	p.pieces[colour][u.movedIndex] = PieceSquare{Piece: u.Moved, Square: u.Move.From}

	if u.IsCapture() {
		p.board[u.CaptureSquare] = u.Captured
		p.insertAt(u.Captured.Colour(), u.capturedIndex, PieceSquare{Piece: u.Captured, Square: u.CaptureSquare})
	}

	p.side = u.Side
	p.castling = u.Castling
	p.enPassant = u.EnPassant
	p.halfmoveClock = u.HalfmoveClock
	p.moveNumber = u.MoveNumber
}
