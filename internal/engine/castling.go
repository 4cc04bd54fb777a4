package engine

import "github.com/lgbarn/minichess-go/internal/chess"

// castling describes one of the four castling moves.
type castling struct {
	right    chess.CastlingRights
	colour   chess.Colour
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
	// empty lists the squares between king and rook.
	empty []chess.Square
	// safe lists the squares the king stands on or crosses, start and end included.
	safe []chess.Square
}

var castlings = [4]castling{
	{
		right: chess.WhiteKingside, colour: chess.White,
		kingFrom: chess.E1, kingTo: chess.G1, rookFrom: chess.H1, rookTo: chess.F1,
		empty: []chess.Square{chess.F1, chess.G1},
		safe:  []chess.Square{chess.E1, chess.F1, chess.G1},
	},
	{
		right: chess.WhiteQueenside, colour: chess.White,
		kingFrom: chess.E1, kingTo: chess.C1, rookFrom: chess.A1, rookTo: chess.D1,
		empty: []chess.Square{chess.D1, chess.C1, chess.B1},
		safe:  []chess.Square{chess.E1, chess.D1, chess.C1},
	},
	{
		right: chess.BlackKingside, colour: chess.Black,
		kingFrom: chess.E8, kingTo: chess.G8, rookFrom: chess.H8, rookTo: chess.F8,
		empty: []chess.Square{chess.F8, chess.G8},
		safe:  []chess.Square{chess.E8, chess.F8, chess.G8},
	},
	{
		right: chess.BlackQueenside, colour: chess.Black,
		kingFrom: chess.E8, kingTo: chess.C8, rookFrom: chess.A8, rookTo: chess.D8,
		empty: []chess.Square{chess.D8, chess.C8, chess.B8},
		safe:  []chess.Square{chess.E8, chess.D8, chess.C8},
	},
}

// castlingLoss maps a square to the rights lost when a piece leaves or is
// captured on it.
var castlingLoss = func() (loss [chess.BoardCells]chess.CastlingRights) {
	for _, c := range castlings {
		loss[c.kingFrom] |= c.right
		loss[c.rookFrom] |= c.right
	}
	return loss
}()

// castlingFor returns the castling whose king move is from -> to, if any.
func castlingFor(from, to chess.Square) (castling, bool) {
	for _, c := range castlings {
		if c.kingFrom == from && c.kingTo == to {
			return c, true
		}
	}
	return castling{}, false
}

// canCastle reports whether the castling is currently available: the right is
// held, the squares between king and rook are empty, and no square the king
// touches is attacked. Attacks are probed directly rather than by trial moves.
func (p *Position) canCastle(c castling) bool {
	if !p.castling.Has(c.right) {
		return false
	}
	if !p.board[c.kingFrom].Is(c.colour, chess.King) || !p.board[c.rookFrom].Is(c.colour, chess.Rook) {
		return false
	}
	for _, sq := range c.empty {
		if p.board[sq] != chess.Empty {
			return false
		}
	}
	enemy := c.colour.Opposite()
	for _, sq := range c.safe {
		if p.IsSquareAttacked(sq, enemy) {
			return false
		}
	}
	return true
}
