package engine

import (
	"context"
	"math/rand"
	"time"

	"github.com/lgbarn/minichess-go/internal/chess"
	"github.com/lgbarn/minichess-go/internal/config"
	"github.com/lgbarn/minichess-go/internal/errors"
	"github.com/lgbarn/minichess-go/internal/hashing"
)

// Game is one game in progress: a position, its rules and the computer
// player's random source. A Game is not safe for concurrent use; use Clone
// to hand a copy to another goroutine.
type Game struct {
	pos         *Position
	cfg         *config.Config
	rng         *rand.Rand
	repetitions *hashing.RepetitionTracker
	history     []chess.Move
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the configuration. A nil config keeps the defaults.
func WithConfig(cfg *config.Config) Option {
	return func(g *Game) {
		if cfg != nil {
			g.cfg = cfg
		}
	}
}

// WithRand sets the random source used for random and low-level moves.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// NewGame starts a game from the standard arrangement.
func NewGame(opts ...Option) *Game {
	return newGame(NewPosition(), opts)
}

// ImportPosition starts a game from a FEN string. Malformed input returns a
// *errors.ParseError wrapping errors.ErrInvalidFEN and no game.
func ImportPosition(fen string, opts ...Option) (*Game, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(pos, opts), nil
}

func newGame(pos *Position, opts []Option) *Game {
	g := &Game{
		pos:         pos,
		cfg:         config.NewConfig(),
		repetitions: hashing.NewRepetitionTracker(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		seed := g.cfg.Search.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}
	g.repetitions.Record(hashing.Zobrist(pos))
	return g
}

// Clone returns an independent copy of the game. The copy shares the
// configuration and gets its own random source seeded from this one.
func (g *Game) Clone() *Game {
	return &Game{
		pos:         g.pos.Clone(),
		cfg:         g.cfg,
		rng:         rand.New(rand.NewSource(g.rng.Int63())),
		repetitions: g.repetitions.Clone(),
		history:     append([]chess.Move(nil), g.history...),
	}
}

// Position returns a copy of the current position.
func (g *Game) Position() *Position {
	return g.pos.Clone()
}

// Config returns the game's configuration.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return g.pos.FEN()
}

// SideToMove returns the colour to move.
func (g *Game) SideToMove() chess.Colour {
	return g.pos.side
}

// History returns the moves played since the game started.
func (g *Game) History() []chess.Move {
	return append([]chess.Move(nil), g.history...)
}

// LegalMoves returns the legal moves of the side to move.
func (g *Game) LegalMoves() []chess.Move {
	return g.pos.LegalMoves(g.pos.side)
}

// Move plays from -> to for the side to move if that is legal. For a pawn
// reaching the last rank, promotion names the new piece; chess.NoKind means
// the configured default. An illegal request returns chess.Illegal and leaves
// the game untouched.
func (g *Game) Move(from, to chess.Square, promotion chess.Kind) chess.MoveResult {
	m, ok := g.pos.FindLegalMove(from, to, promotion, g.cfg.Rules.DefaultPromotion)
	if !ok {
		g.cfg.Logf(2, "illegal move %s%s", from, to)
		return chess.Illegal
	}
	return g.play(m)
}

// MoveView is Move with squares given as renderer view indices (a1 = 0,
// h8 = 63). Indices outside 0..63 return chess.Illegal and an error wrapping
// errors.ErrSquareOutOfRange.
func (g *Game) MoveView(from, to int, promotion chess.Kind) (chess.MoveResult, error) {
	fromSq, err := chess.SquareFromView(from)
	if err != nil {
		return chess.Illegal, err
	}
	toSq, err := chess.SquareFromView(to)
	if err != nil {
		return chess.Illegal, err
	}
	return g.Move(fromSq, toSq, promotion), nil
}

// ParseAndMove plays a move in coordinate notation such as "e2e4" or "e7e8n".
// Unparseable text wraps errors.ErrInvalidMoveText; a well-formed but illegal
// move wraps errors.ErrIllegalMove.
func (g *Game) ParseAndMove(text string) (chess.MoveResult, error) {
	m, err := chess.ParseMove(text)
	if err != nil {
		return chess.Illegal, err
	}
	result := g.Move(m.From, m.To, m.Promotion)
	if result.Has(chess.Illegal) {
		return result, errors.Wrapf(errors.ErrIllegalMove, "move %s", text)
	}
	return result, nil
}

// play applies a legal move and computes its result flags.
func (g *Game) play(m chess.Move) chess.MoveResult {
	p := g.pos
	u := p.MakeMove(m)
	p.invalidate()
	g.history = append(g.history, m)

	result := chess.OK
	if u.IsCapture() {
		result |= chess.Capture
	}
	if u.IsCastle() {
		if m.To.File() == chess.G1.File() {
			result |= chess.CastleKingside
		} else {
			result |= chess.CastleQueenside
		}
	}

	// Positions before a pawn move or capture can never recur.
	if p.halfmoveClock == 0 {
		g.repetitions.Reset()
	}
	seen := g.repetitions.Record(hashing.Zobrist(p))

	side := p.side
	inCheck := p.IsInCheck(side)
	hasMoves := p.HasLegalMoves(side)
	switch {
	case inCheck && !hasMoves:
		result |= chess.Check | chess.Mate
	case inCheck:
		result |= chess.Check
	}
	if !result.Has(chess.Mate) {
		rules := g.cfg.Rules
		if !hasMoves ||
			p.halfmoveClock >= rules.DrawHalfmoveLimit ||
			(rules.RepetitionLimit > 0 && seen >= rules.RepetitionLimit) ||
			p.HasInsufficientMaterial() {
			result |= chess.Draw
		}
	}

	g.cfg.Logf(2, "%s: %s", m, result)
	return result
}

// Status reports whether the game is over and how.
func (g *Game) Status() chess.GameStatus {
	p := g.pos
	if !p.HasLegalMoves(p.side) {
		if p.IsInCheck(p.side) {
			return chess.CheckmateStatus
		}
		return chess.StalemateStatus
	}
	rules := g.cfg.Rules
	if p.halfmoveClock >= rules.DrawHalfmoveLimit {
		return chess.DrawByHalfmoveClock
	}
	if rules.RepetitionLimit > 0 && g.repetitions.Count(hashing.Zobrist(p)) >= rules.RepetitionLimit {
		return chess.DrawByRepetition
	}
	if p.HasInsufficientMaterial() {
		return chess.DrawByInsufficientMaterial
	}
	return chess.Ongoing
}

// FindMove picks a move for the side to move without playing it.
//
// Level 0 or below plays a uniformly random legal move. Higher levels use the
// configured difficulty: a random move with the level's probability, otherwise
// an alpha-beta search at the level's depth. If the search hits the configured
// timeout or node budget, the best move found so far is returned together with
// errors.ErrSearchAborted.
func (g *Game) FindMove(ctx context.Context, level int) (chess.Move, error) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return chess.NullMove, errors.ErrNoLegalMoves
	}

	if level <= 0 {
		m := moves[g.rng.Intn(len(moves))]
		g.cfg.Logf(2, "level %d: random move %s", level, m)
		return m, nil
	}

	d := g.cfg.Search.Level(level)
	if d.RandomMoveProbability > 0 && g.rng.Float64() < d.RandomMoveProbability {
		m := moves[g.rng.Intn(len(moves))]
		g.cfg.Logf(2, "level %d: random move %s", level, m)
		return m, nil
	}

	res, err := g.Analyze(ctx, d.Depth)
	return res.Move, err
}

// Analyze searches the current position to depth with the configured timeout
// and node budget.
func (g *Game) Analyze(ctx context.Context, depth int) (SearchResult, error) {
	if timeout := g.cfg.Search.Timeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := g.pos.Search(ctx, depth, g.cfg.Search.MaxNodes)
	switch {
	case errors.Is(err, errors.ErrSearchAborted):
		g.cfg.Logf(1, "search aborted after %d nodes (%v), playing %s", res.Nodes, time.Since(start), res.Move)
	case err == nil:
		g.cfg.Logf(2, "depth %d: %s score %d nodes %d (%v)", res.Depth, res.Move, res.Score, res.Nodes, time.Since(start))
	}
	return res, err
}

// Perft counts leaf nodes of the legal move tree from the current position.
func (g *Game) Perft(depth int) uint64 {
	return g.pos.Perft(depth)
}

// Divide reports the perft count below each legal move.
func (g *Game) Divide(depth int) []MoveCount {
	return g.pos.Divide(depth)
}
