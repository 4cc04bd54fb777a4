package engine

import "github.com/lgbarn/minichess-go/internal/chess"

// Board offsets on the 10x12 mailbox.
var (
	knightOffsets = [8]chess.Square{-21, -19, -12, -8, 8, 12, 19, 21}
	kingOffsets   = [8]chess.Square{-11, -10, -9, -1, 1, 9, 10, 11}
	diagonalDirs  = [4]chess.Square{-11, -9, 9, 11}
	straightDirs  = [4]chess.Square{-10, -1, 1, 10}
)

// IsInCheck returns true if the given colour's king is attacked.
// A position without that king is never in check.
func (p *Position) IsInCheck(colour chess.Colour) bool {
	king := p.KingSquare(colour)
	if king == chess.NoSquare {
		return false
	}
	return p.IsSquareAttacked(king, colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
// Rays stop at the first occupied cell; hedge cells stop them too, so no
// bounds checks are needed.
func (p *Position) IsSquareAttacked(sq chess.Square, byColour chess.Colour) bool {
	board := &p.board

	// Pawns attack from one rank behind, relative to their own direction.
	pawn := chess.MakePiece(byColour, chess.Pawn)
	behind := sq - forward(byColour)
	if board[behind-1] == pawn || board[behind+1] == pawn {
		return true
	}

	knight := chess.MakePiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if board[sq+off] == knight {
			return true
		}
	}

	king := chess.MakePiece(byColour, chess.King)
	for _, off := range kingOffsets {
		if board[sq+off] == king {
			return true
		}
	}

	queen := chess.MakePiece(byColour, chess.Queen)

	bishop := chess.MakePiece(byColour, chess.Bishop)
	for _, dir := range diagonalDirs {
		t := sq + dir
		for board[t] == chess.Empty {
			t += dir
		}
		if board[t] == bishop || board[t] == queen {
			return true
		}
	}

	rook := chess.MakePiece(byColour, chess.Rook)
	for _, dir := range straightDirs {
		t := sq + dir
		for board[t] == chess.Empty {
			t += dir
		}
		if board[t] == rook || board[t] == queen {
			return true
		}
	}

	return false
}
