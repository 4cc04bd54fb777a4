package engine

import "github.com/lgbarn/minichess-go/internal/chess"

// LegalMoves returns colour's moves that do not leave its own king in check.
// Each pseudo-legal move is tried with MakeMove and taken back again.
func (p *Position) LegalMoves(colour chess.Colour) []chess.Move {
	moves := p.GenerateMoves(colour)
	legal := moves[:0]
	for _, m := range moves {
		if p.isLegalFor(colour, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (p *Position) HasLegalMoves(colour chess.Colour) bool {
	for _, m := range p.GenerateMoves(colour) {
		if p.isLegalFor(colour, m) {
			return true
		}
	}
	return false
}

// isLegalFor reports whether playing m keeps colour's king safe.
func (p *Position) isLegalFor(colour chess.Colour, m chess.Move) bool {
	u := p.MakeMove(m)
	safe := !p.IsInCheck(colour)
	p.UnmakeMove(u)
	return safe
}

// FindLegalMove looks up the legal move of the side to move going from -> to.
// For a promotion, promotion picks the piece; chess.NoKind selects
// defaultPromotion.
func (p *Position) FindLegalMove(from, to chess.Square, promotion, defaultPromotion chess.Kind) (chess.Move, bool) {
	if !from.OnBoard() || !to.OnBoard() {
		return chess.NullMove, false
	}
	if promotion == chess.NoKind {
		promotion = defaultPromotion
	}
	for _, m := range p.LegalMoves(p.side) {
		if m.From != from || m.To != to {
			continue
		}
		if m.Promotion != chess.NoKind && m.Promotion != promotion {
			continue
		}
		return m, true
	}
	return chess.NullMove, false
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func (p *Position) IsCheckmate() bool {
	return p.IsInCheck(p.side) && !p.HasLegalMoves(p.side)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func (p *Position) IsStalemate() bool {
	return !p.IsInCheck(p.side) && !p.HasLegalMoves(p.side)
}
