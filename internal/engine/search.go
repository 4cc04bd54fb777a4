package engine

import (
	"context"
	"math"

	"github.com/lgbarn/minichess-go/internal/chess"
	"github.com/lgbarn/minichess-go/internal/errors"
)

// ctxCheckInterval is how many nodes pass between context polls. The first
// node always polls.
const ctxCheckInterval = 1024

const infinity = math.MaxInt32

// SearchResult reports the outcome of a search.
type SearchResult struct {
	Move  chess.Move
	Score int
	Nodes uint64
	Depth int
}

// searcher carries the per-search state through the recursion.
type searcher struct {
	pos      *Position
	ctx      context.Context
	maxNodes uint64
	nodes    uint64
	aborted  bool
}

// Search runs a depth-limited alpha-beta search for the side to move and
// returns its best move with the score from that side's point of view.
//
// Leaves are scored by the best single capture available there, or the
// standing score if no capture gains; exchanges beyond the horizon are not
// followed. Root moves are restricted to legal moves.
//
// The search stops early when ctx is done or more than maxNodes nodes have
// been visited (0 means no limit). It then returns ErrSearchAborted along
// with the best root move found so far, or the first legal move if none
// finished. The position is always left as it was.
func (p *Position) Search(ctx context.Context, depth int, maxNodes uint64) (SearchResult, error) {
	if depth < 1 {
		depth = 1
	}
	moves := p.LegalMoves(p.side)
	if len(moves) == 0 {
		return SearchResult{Depth: depth}, errors.ErrNoLegalMoves
	}

	p.prepare()
	s := &searcher{pos: p, ctx: ctx, maxNodes: maxNodes}
	score := p.Evaluate()

	result := SearchResult{Move: chess.NullMove, Score: -infinity, Depth: depth}
	alpha := -infinity
	for _, m := range moves {
		d := p.moveDelta(m)
		u := p.MakeMove(m)
		v := -s.negamax(depth-1, -infinity, -alpha, -(score + d))
		p.UnmakeMove(u)
		if s.aborted {
			break
		}
		if v > result.Score {
			result.Move, result.Score = m, v
			if v > alpha {
				alpha = v
			}
		}
	}
	result.Nodes = s.nodes

	if s.aborted {
		if result.Move.IsNull() {
			result.Move, result.Score = moves[0], 0
		}
		return result, errors.ErrSearchAborted
	}
	return result, nil
}

// negamax returns the score of the position for the side to move.
func (s *searcher) negamax(depth, alpha, beta, score int) int {
	if s.tick() {
		return 0
	}
	p := s.pos
	side := p.side

	// The previous move left its own king en prise.
	if p.IsInCheck(side.Opposite()) {
		return KingValue
	}

	if depth <= 0 {
		return s.leaf(score)
	}

	best := -infinity
	for _, m := range p.GenerateMoves(side) {
		d := p.moveDelta(m)
		u := p.MakeMove(m)
		v := -s.negamax(depth-1, -beta, -alpha, -(score + d))
		p.UnmakeMove(u)
		if s.aborted {
			return 0
		}
		if v > best {
			best = v
			if v > alpha {
				alpha = v
				if alpha >= beta {
					break
				}
			}
		}
	}

	// Every move lost the king: mate, or stalemate if not in check now.
	if best <= -KingValue {
		if p.IsInCheck(side) {
			best = -KingValue
		} else {
			best = p.eval.stalemate[side]
		}
	}

	if best > WinScore {
		best -= winDecay
	} else if best < -WinScore {
		best += winDecay
	}
	return best
}

// leaf scores a horizon node by the best immediate capture.
func (s *searcher) leaf(score int) int {
	p := s.pos
	best := score
	for _, m := range p.GenerateCaptures(p.side) {
		if v := score + p.moveDelta(m); v > best {
			best = v
		}
	}
	return best
}

// tick counts a node and reports whether the search must stop.
func (s *searcher) tick() bool {
	if s.aborted {
		return true
	}
	s.nodes++
	if s.maxNodes > 0 && s.nodes > s.maxNodes {
		s.aborted = true
	} else if s.nodes%ctxCheckInterval == 1 && s.ctx.Err() != nil {
		s.aborted = true
	}
	return s.aborted
}

// MateDistance converts a Search score into plies until mate. It is positive
// when the side to move delivers mate and negative when it gets mated; ok is
// false for scores that are not mate scores.
func MateDistance(score int) (plies int, ok bool) {
	if score > -WinScore && score < WinScore {
		return 0, false
	}
	// Every ply below the root takes winDecay off a mate score; the root
	// itself does not, so being mated is one ply further than it looks.
	n := (KingValue - abs(score) + winDecay/2) / winDecay
	if score > 0 {
		return n, true
	}
	return -(n + 1), true
}
