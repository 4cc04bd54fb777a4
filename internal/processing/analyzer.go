// Package processing replays a move list and reports what happened in it:
// draw-rule triggers, underpromotions and how the game started.
package processing

import (
	"fmt"

	"github.com/lgbarn/minichess-go/internal/chess"
	"github.com/lgbarn/minichess-go/internal/config"
	"github.com/lgbarn/minichess-go/internal/engine"
	"github.com/lgbarn/minichess-go/internal/errors"
	"github.com/lgbarn/minichess-go/internal/hashing"
)

// GameAnalysis holds the results of replaying a game.
type GameAnalysis struct {
	Final    *engine.Position
	Status   chess.GameStatus
	Plies    int
	Captures int
	Checks   int

	HasFiftyMoveRule        bool
	Has75MoveRule           bool
	HasRepetition           bool
	Has5FoldRepetition      bool
	HasUnderpromotion       bool
	HasInsufficientMaterial bool
	HasMaterialOdds         bool // the start position lacks some standard material

	Positions []uint64 // Zobrist hashes, start position first
}

// Features lists the flags that are set, for reporting.
func (ga *GameAnalysis) Features() []string {
	var out []string
	flags := []struct {
		set  bool
		name string
	}{
		{ga.HasFiftyMoveRule, "fifty-move"},
		{ga.Has75MoveRule, "seventy-five-move"},
		{ga.HasRepetition, "repetition"},
		{ga.Has5FoldRepetition, "fivefold-repetition"},
		{ga.HasUnderpromotion, "underpromotion"},
		{ga.HasInsufficientMaterial, "insufficient-material"},
		{ga.HasMaterialOdds, "material-odds"},
	}
	for _, f := range flags {
		if f.set {
			out = append(out, f.name)
		}
	}
	return out
}

// Thresholds reported as features regardless of the configured draw rules.
const (
	seventyFiveMoveClock = 150
	fivefoldRepetition   = 5
)

// AnalyzeGame replays moves from fen (the standard start when empty) under
// cfg's rules. Moves naming no promotion piece promote to
// cfg.Rules.DefaultPromotion. Replay stops at the first illegal move; the
// analysis covers the moves before it and the error wraps
// errors.ErrIllegalMove.
func AnalyzeGame(cfg *config.Config, fen string, moves []chess.Move) (*GameAnalysis, error) {
	g := engine.NewGame(engine.WithConfig(cfg))
	if fen != "" {
		var err error
		if g, err = engine.ImportPosition(fen, engine.WithConfig(cfg)); err != nil {
			return nil, err
		}
	}
	rules := cfg.Rules

	pos := g.Position()
	analysis := &GameAnalysis{
		HasMaterialOdds: !pos.HasStandardMaterial(),
	}
	positions := hashing.NewRepetitionTracker()
	positions.Record(hashing.Zobrist(pos))

	var replayErr error
	for i, m := range moves {
		mover := pos.PieceAt(m.From)
		result := g.Move(m.From, m.To, m.Promotion)
		if result.Has(chess.Illegal) {
			replayErr = errors.Wrapf(errors.ErrIllegalMove, "ply %d: %s", i+1, m)
			break
		}
		pos = g.Position()
		analysis.Plies++

		if result.Has(chess.Capture) {
			analysis.Captures++
		}
		if result.Has(chess.Check) {
			analysis.Checks++
		}
		if promoted := pos.PieceAt(m.To).Kind(); mover.Kind() == chess.Pawn && promoted != chess.Pawn && promoted != chess.Queen {
			analysis.HasUnderpromotion = true
		}

		if pos.HalfmoveClock() >= rules.DrawHalfmoveLimit {
			analysis.HasFiftyMoveRule = true
		}
		if pos.HalfmoveClock() >= seventyFiveMoveClock {
			analysis.Has75MoveRule = true
		}

		count := positions.Record(hashing.Zobrist(pos))
		if rules.RepetitionLimit > 0 && count >= rules.RepetitionLimit {
			analysis.HasRepetition = true
		}
		if count >= fivefoldRepetition {
			analysis.Has5FoldRepetition = true
		}
	}

	analysis.Positions = positions.History()
	analysis.HasInsufficientMaterial = pos.HasInsufficientMaterial()
	analysis.Status = g.Status()
	analysis.Final = pos
	return analysis, replayErr
}

// Summary is a one-line description of the analysis.
func (ga *GameAnalysis) Summary() string {
	s := fmt.Sprintf("%d ply(s), %d capture(s), %d check(s), %s", ga.Plies, ga.Captures, ga.Checks, ga.Status)
	for i, f := range ga.Features() {
		if i == 0 {
			s += "; "
		} else {
			s += ", "
		}
		s += f
	}
	return s
}
