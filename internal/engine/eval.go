package engine

import (
	"math"

	"github.com/lgbarn/minichess-go/internal/chess"
)

// Material values in centipawns.
const (
	PawnValue   = 100
	KnightValue = 300
	BishopValue = 305
	RookValue   = 500
	QueenValue  = 900

	// KingValue is the score of capturing a king. Search scores at or beyond
	// WinScore mean a forced win.
	KingValue = 40000
	WinScore  = KingValue / 2

	// winDecay is shed by a winning score at every ply, so nearer wins score higher.
	winDecay = 1500
)

var rawValues = [chess.NumKinds]int{
	chess.Pawn:   PawnValue,
	chess.Knight: KnightValue,
	chess.Bishop: BishopValue,
	chess.Rook:   RookValue,
	chess.Queen:  QueenValue,
}

// Shared positional tables, built once at package initialisation.
var (
	// centrality is 0 on the edge rising to 6 on the four centre squares.
	centrality [chess.BoardCells]int

	// knightOutposts adds to centrality for the squares a knight covers best.
	knightOutposts [chess.BoardCells]int

	// pawnAdvance is indexed by the pawn's relative rank.
	pawnAdvance = [chess.BoardSize]int{0, 0, 3, 6, 12, 24, 48, 0}
)

func init() {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.NewSquare(file, rank)
			df := abs(2*file - 7)
			dr := abs(2*rank - 7)
			centrality[sq] = (14 - df - dr) / 2
			if df <= 3 && dr <= 3 {
				knightOutposts[sq] = 8
			} else if df <= 5 && dr <= 5 {
				knightOutposts[sq] = 4
			}
		}
	}
}

// evaluation caches the per-position weight tables.
type evaluation struct {
	// weights[c][kind][sq] is the value of colour c's piece of kind on sq,
	// material plus placement.
	weights [2][chess.NumKinds][chess.BoardCells]int

	// values[c][kind] is the scaled material value.
	values [2][chess.NumKinds]int

	// stalemate[c] is the score for c when c has no legal move and is not in check.
	stalemate [2]int
}

// Material returns colour's raw material, kings excluded.
func (p *Position) Material(colour chess.Colour) int {
	total := 0
	for _, ps := range p.pieces[colour] {
		total += rawValues[ps.Piece.Kind()]
	}
	return total
}

// prepare rebuilds the evaluation tables if a real move has made them stale.
//
// Each side's material is scaled by a mop-up multiplier,
//
//	mul[c] = 2*(material[opponent]+Q) / (material[white]+material[black]+2Q),
//
// which is 1 with equal material and falls below 1 for the side that is ahead,
// so that side loses little by trading and gains more by capturing.
func (p *Position) prepare() {
	if p.prepared {
		return
	}

	material := [2]int{p.Material(chess.Black), p.Material(chess.White)}
	sum := float64(material[chess.White] + material[chess.Black] + 2*QueenValue)

	earliness := 0
	if p.moveNumber <= 50 {
		earliness = int(6 * math.Exp(-0.07*float64(p.moveNumber)))
	}
	emptiness := 4 * QueenValue / sum

	e := &p.eval
	for _, colour := range [2]chess.Colour{chess.Black, chess.White} {
		mul := 2 * float64(material[colour.Opposite()]+QueenValue) / sum
		for kind := chess.Pawn; kind < chess.King; kind++ {
			e.values[colour][kind] = int(math.Round(float64(rawValues[kind]) * mul))
		}
		e.stalemate[colour] = int(math.Round((mul - 1) * 2 * QueenValue))

		for rank := 0; rank < chess.BoardSize; rank++ {
			for file := 0; file < chess.BoardSize; file++ {
				sq := chess.NewSquare(file, rank)
				for kind := chess.Pawn; kind <= chess.King; kind++ {
					e.weights[colour][kind][sq] = e.values[colour][kind] +
						placement(colour, kind, sq, earliness, emptiness, p.moveNumber)
				}
			}
		}
	}

	p.prepared = true
}

// placement is the positional part of a weight.
func placement(colour chess.Colour, kind chess.Kind, sq chess.Square, earliness int, emptiness float64, moveNumber uint) int {
	centre := centrality[sq]
	switch kind {
	case chess.Pawn:
		bonus := int(float64(pawnAdvance[sq.RelativeRank(colour)]) * (1 + emptiness))
		if f := sq.File(); f >= 2 && f <= 5 {
			bonus += centre * earliness / 2
		}
		return bonus
	case chess.Knight:
		return knightOutposts[sq] + centre*earliness/2
	case chess.Bishop:
		return centre + centre*earliness/2
	case chess.Rook, chess.Queen:
		return centre * earliness / 4
	case chess.King:
		if moveNumber < 12 {
			if sq.RelativeRank(colour) == 0 {
				return 2 * (3 - centre)
			}
			return -centre * 4
		}
		return int(float64(centre) * 2 * emptiness)
	}
	return 0
}

// Evaluate returns the static score for the side to move: its weight total
// minus the opponent's.
func (p *Position) Evaluate() int {
	p.prepare()
	return p.weightTotal(p.side) - p.weightTotal(p.side.Opposite())
}

func (p *Position) weightTotal(colour chess.Colour) int {
	w := &p.eval.weights[colour]
	total := 0
	for _, ps := range p.pieces[colour] {
		total += w[ps.Piece.Kind()][ps.Square]
	}
	return total
}

// StalemateScore returns the score colour receives when stalemated.
func (p *Position) StalemateScore(colour chess.Colour) int {
	p.prepare()
	return p.eval.stalemate[colour]
}

// moveDelta returns how much m changes the mover's evaluation, using the
// prepared weights. It must be called before m is made.
func (p *Position) moveDelta(m chess.Move) int {
	moved := p.board[m.From]
	colour := moved.Colour()
	kind := moved.Kind()
	w := &p.eval.weights

	delta := w[colour][kind][m.To] - w[colour][kind][m.From]

	captureSq := m.To
	if kind == chess.Pawn && m.To == p.enPassant && p.board[m.To] == chess.Empty && m.From.File() != m.To.File() {
		captureSq = m.To - forward(colour)
	}
	if victim := p.board[captureSq]; victim.IsPiece() {
		delta += w[victim.Colour()][victim.Kind()][captureSq]
	}

	if kind == chess.Pawn && m.To.RelativeRank(colour) == chess.BoardSize-1 {
		promotion := m.Promotion
		if !promotion.IsPromotion() {
			promotion = chess.Queen
		}
		delta += w[colour][promotion][m.To] - w[colour][chess.Pawn][m.To]
	}

	if kind == chess.King {
		if c, ok := castlingFor(m.From, m.To); ok {
			delta += w[colour][chess.Rook][c.rookTo] - w[colour][chess.Rook][c.rookFrom]
		}
	}
	return delta
}
