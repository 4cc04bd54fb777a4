package engine

import (
	"sort"

	"github.com/lgbarn/minichess-go/internal/chess"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
func (p *Position) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves(p.side)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		u := p.MakeMove(m)
		nodes += p.Perft(depth - 1)
		p.UnmakeMove(u)
	}
	return nodes
}

// MoveCount is one line of a Divide report.
type MoveCount struct {
	Move  chess.Move
	Nodes uint64
}

// Divide returns the perft count below each legal root move, sorted by move text.
func (p *Position) Divide(depth int) []MoveCount {
	if depth < 1 {
		depth = 1
	}
	moves := p.LegalMoves(p.side)
	counts := make([]MoveCount, 0, len(moves))
	for _, m := range moves {
		u := p.MakeMove(m)
		counts = append(counts, MoveCount{Move: m, Nodes: p.Perft(depth - 1)})
		p.UnmakeMove(u)
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Move.String() < counts[j].Move.String()
	})
	return counts
}
