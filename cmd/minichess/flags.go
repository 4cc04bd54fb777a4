// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/minichess-go/internal/config"
)

var (
	// Position options
	fenFlag   = flag.String("fen", "", "Starting position in FEN (default: standard start)")
	movesFlag = flag.String("moves", "", "Moves to play first, e.g. \"e2e4 e7e5\"")

	// Analysis options
	perftDepth = flag.Int("perft", 0, "Count leaf nodes of the move tree to depth N")
	divide     = flag.Bool("divide", false, "With -perft, list the count below each root move")
	level      = flag.Int("level", 3, "Computer strength: 0 = random, 1-5 = difficulty table, higher = search depth")
	bestMove   = flag.Bool("bestmove", false, "Search the final position and report the best move")
	playPlies  = flag.Int("play", 0, "Let the computer play N plies against itself")
	batchFile  = flag.String("batch", "", "Analyse every FEN in this file (one per line, # for comments)")
	workers    = flag.Int("workers", 0, "Number of worker threads for -batch (0 = auto-detect based on CPU cores)")

	// Search limits
	maxNodes = flag.Uint64("nodes", 0, "Abort a search after N nodes (0 = unlimited)")
	timeout  = flag.Duration("timeout", 0, "Abort a search after this long, e.g. 2s (0 = no limit)")
	seed     = flag.Int64("seed", 0, "Seed for random moves (0 = seed from the clock)")

	// Rules
	drawClock   = flag.Uint("drawclock", config.DefaultDrawHalfmoveLimit, "Halfmove clock value that draws the game")
	repetitions = flag.Int("repetitions", config.DefaultRepetitionLimit, "Occurrences of a position that draw the game (0 = off)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	noBoard    = flag.Bool("noboard", false, "Don't draw the final position")
	noFEN      = flag.Bool("nofen", false, "Don't print the FEN of the final position")
	lineLength = flag.Int("w", 80, "Maximum line length for logged move lists")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Diagnostic detail: 0 = none, 1 = summaries, 2 = every move and search")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applySearchFlags(cfg)
	applyRuleFlags(cfg)
	applyOutputFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applySearchFlags configures search limits.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.MaxNodes = *maxNodes
	cfg.Search.Timeout = *timeout
	cfg.Search.Seed = *seed
}

// applyRuleFlags configures draw rules.
func applyRuleFlags(cfg *config.Config) {
	cfg.Rules.DrawHalfmoveLimit = *drawClock
	cfg.Rules.RepetitionLimit = *repetitions
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ShowFEN = !*noFEN
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
}

// optionsFromFlags collects the actions requested on the command line.
func optionsFromFlags() runOptions {
	return runOptions{
		FEN:       *fenFlag,
		Moves:     *movesFlag,
		Perft:     *perftDepth,
		Divide:    *divide,
		Level:     *level,
		BestMove:  *bestMove,
		Play:      *playPlies,
		BatchFile: *batchFile,
		Workers:   *workers,
	}
}
