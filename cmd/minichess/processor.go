package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/lgbarn/minichess-go/internal/chess"
	"github.com/lgbarn/minichess-go/internal/config"
	"github.com/lgbarn/minichess-go/internal/engine"
	"github.com/lgbarn/minichess-go/internal/errors"
	"github.com/lgbarn/minichess-go/internal/output"
	"github.com/lgbarn/minichess-go/internal/processing"
	"github.com/lgbarn/minichess-go/internal/worker"
)

// runOptions lists the actions of one invocation. Single-game actions run in
// this order: load, replay moves, perft, self-play, best move.
type runOptions struct {
	FEN       string
	Moves     string
	Perft     int
	Divide    bool
	Level     int
	BestMove  bool
	Play      int
	BatchFile string
	Workers   int
}

// run carries out opts, writing reports to cfg.OutputFile.
func run(ctx context.Context, cfg *config.Config, opts runOptions) error {
	w := output.NewReportWriter(cfg.OutputFile, cfg)

	var err error
	if opts.BatchFile != "" {
		err = runBatch(ctx, cfg, opts, w)
	} else {
		err = runGame(ctx, cfg, opts, w)
	}
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	return err
}

// runGame handles every action that works on a single game.
func runGame(ctx context.Context, cfg *config.Config, opts runOptions, w output.ReportWriter) error {
	g, err := loadGame(cfg, opts.FEN)
	if err != nil {
		return err
	}

	if err := playMoves(g, opts.Moves, w); err != nil {
		return err
	}
	if len(g.History()) > 0 && cfg.Verbosity > 0 {
		logGameAnalysis(cfg, opts.FEN, g.History())
	}

	if opts.Perft > 0 {
		report := output.PerftReport{FEN: g.FEN(), Depth: opts.Perft}
		if opts.Divide {
			report.Divide = g.Divide(opts.Perft)
			for _, mc := range report.Divide {
				report.Nodes += mc.Nodes
			}
		} else {
			report.Nodes = g.Perft(opts.Perft)
		}
		if err := w.WritePerft(report); err != nil {
			return err
		}
	}

	if opts.Play > 0 {
		if err := selfPlay(ctx, g, opts.Play, opts.Level, w); err != nil {
			return err
		}
	}

	if opts.BestMove {
		if err := w.WriteAnalysis(analyse(ctx, g, opts.Level)); err != nil {
			return err
		}
	}

	return w.WritePosition(g.Position(), g.Status())
}

// loadGame starts from fen, or the standard position when fen is empty.
func loadGame(cfg *config.Config, fen string) (*engine.Game, error) {
	if fen == "" {
		return engine.NewGame(engine.WithConfig(cfg)), nil
	}
	return engine.ImportPosition(fen, engine.WithConfig(cfg))
}

// playMoves replays space-separated coordinate moves. The first illegal or
// unreadable move stops the replay with an error.
func playMoves(g *engine.Game, moves string, w output.ReportWriter) error {
	for _, text := range strings.Fields(moves) {
		result, err := g.ParseAndMove(text)
		if errors.Is(err, errors.ErrInvalidMoveText) {
			return err
		}
		m, _ := chess.ParseMove(text)
		report := output.MoveReport{Move: m, Result: result}
		if !result.Has(chess.Illegal) {
			report.FEN = g.FEN()
			report.Status = g.Status()
		}
		if werr := w.WriteMove(report); werr != nil {
			return werr
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// logGameAnalysis replays the moves played so far and logs what happened.
func logGameAnalysis(cfg *config.Config, fen string, moves []chess.Move) {
	ga, err := processing.AnalyzeGame(cfg, fen, moves)
	if err != nil {
		cfg.Logf(1, "analysis failed: %v", err)
		return
	}
	cfg.Logf(1, "moves: %s", ga.Summary())
}

// selfPlay lets the computer play up to plies moves, stopping early when the
// game ends.
func selfPlay(ctx context.Context, g *engine.Game, plies, level int, w output.ReportWriter) error {
	cfg := g.Config()
	start := len(g.History())
	startPos := g.Position()

	for i := 0; i < plies && g.Status() == chess.Ongoing; i++ {
		m, err := g.FindMove(ctx, level)
		if err != nil && !errors.Is(err, errors.ErrSearchAborted) {
			return err
		}
		result := g.Move(m.From, m.To, m.Promotion)
		report := output.MoveReport{Move: m, Result: result, FEN: g.FEN(), Status: g.Status()}
		if err := w.WriteMove(report); err != nil {
			return err
		}
		if ctx.Err() != nil {
			break
		}
	}

	if cfg.Verbosity > 0 {
		played := g.History()[start:]
		fmt.Fprintf(cfg.LogFile, "%d ply(s) played, %s\n", len(played), g.Status())
		output.WriteMoves(cfg.LogFile, played, startPos.MoveNumber(), startPos.SideToMove(), int(cfg.Output.MaxLineLength))
	}
	return nil
}

// analyse searches the game's position at the given level. Random levels
// report the move without a score.
func analyse(ctx context.Context, g *engine.Game, level int) output.AnalysisReport {
	report := output.AnalysisReport{FEN: g.FEN(), Status: g.Status()}
	if report.Status != chess.Ongoing {
		return report
	}

	if level <= 0 {
		report.Move, report.Err = g.FindMove(ctx, level)
		return report
	}

	res, err := g.Analyze(ctx, g.Config().Search.Level(level).Depth)
	report.Move = res.Move
	report.Score = res.Score
	report.Depth = res.Depth
	report.Nodes = res.Nodes
	report.Err = err
	return report
}

// runBatch analyses every position in opts.BatchFile on a worker pool and
// writes the reports in file order.
func runBatch(ctx context.Context, cfg *config.Config, opts runOptions, w output.ReportWriter) error {
	file, err := os.Open(opts.BatchFile) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return errors.Wrapf(err, "opening batch file %s", opts.BatchFile)
	}
	defer file.Close() //nolint:errcheck // read-only

	items, err := worker.ReadItems(file)
	if err != nil {
		return errors.Wrapf(err, "reading batch file %s", opts.BatchFile)
	}

	numWorkers := opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	depth := cfg.Search.Level(opts.Level).Depth
	if opts.Level <= 0 {
		depth = 1
	}

	pool := worker.NewPool(
		worker.Analyzer(ctx, cfg, depth),
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(numWorkers*2),
	)
	results := pool.Run(items)

	failed := 0
	for _, r := range results {
		if r.Error != nil && !errors.Is(r.Error, errors.ErrSearchAborted) {
			failed++
		}
		report := output.AnalysisReport{
			FEN:    r.FEN,
			Move:   r.Move,
			Score:  r.Score,
			Depth:  r.Depth,
			Nodes:  r.Nodes,
			Status: r.Status,
			Err:    r.Error,
		}
		if err := w.WriteAnalysis(report); err != nil {
			return err
		}
	}

	cfg.Logf(1, "%d position(s) analysed with %d worker(s), %d error(s)", len(results), numWorkers, failed)
	return nil
}
