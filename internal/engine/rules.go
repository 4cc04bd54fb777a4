package engine

import (
	"github.com/lgbarn/minichess-go/internal/chess"
)

// HasInsufficientMaterial returns true if neither side can possibly mate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func (p *Position) HasInsufficientMaterial() bool {
	var minors [2][]PieceSquare

	for colour := range p.pieces {
		for _, ps := range p.pieces[colour] {
			switch ps.Piece.Kind() {
			case chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			}
			minors[colour] = append(minors[colour], ps)
		}
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1, len(black) == 0 && len(white) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0].Piece.Kind() == chess.Bishop && black[0].Piece.Kind() == chess.Bishop &&
			isLightSquare(white[0].Square) == isLightSquare(black[0].Square)
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}

// HasStandardMaterial reports whether both sides have exactly the
// starting set of pieces.
func (p *Position) HasStandardMaterial() bool {
	expected := map[chess.Kind]int{
		chess.Pawn: 8, chess.Rook: 2, chess.Knight: 2,
		chess.Bishop: 2, chess.Queen: 1, chess.King: 1,
	}
	for colour := range p.pieces {
		counts := make(map[chess.Kind]int)
		for _, ps := range p.pieces[colour] {
			counts[ps.Piece.Kind()]++
		}
		for kind, n := range expected {
			if counts[kind] != n {
				return false
			}
		}
	}
	return true
}
