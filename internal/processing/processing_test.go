package processing

import (
	"io"
	"testing"

	"github.com/lgbarn/minichess-go/internal/chess"
	"github.com/lgbarn/minichess-go/internal/config"
	"github.com/lgbarn/minichess-go/internal/errors"
	"github.com/lgbarn/minichess-go/internal/testutil"
)

func quietConfig() *config.Config {
	return config.NewConfigBuilder().WithLog(io.Discard).Build()
}

func TestAnalyzeGame(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		moves    string
		status   chess.GameStatus
		features []string
		plies    int
	}{
		{
			name:   "opening",
			moves:  "e2e4 e7e5 g1f3 b8c6 f1b5 a7a6",
			status: chess.Ongoing,
			plies:  6,
		},
		{
			name:   "fool's mate",
			moves:  "f2f3 e7e5 g2g4 d8h4",
			status: chess.CheckmateStatus,
			plies:  4,
		},
		{
			name:     "knight dance",
			moves:    "g1f3 g8f6 f3g1 f6g8 g1f3 g8f6 f3g1 f6g8",
			status:   chess.DrawByRepetition,
			features: []string{"repetition"},
			plies:    8,
		},
		{
			name:     "underpromotion",
			fen:      "8/P6k/8/8/8/8/8/K7 w - - 0 1",
			moves:    "a7a8n",
			status:   chess.DrawByInsufficientMaterial,
			features: []string{"underpromotion", "insufficient-material", "material-odds"},
			plies:    1,
		},
		{
			name:     "fifty moves",
			fen:      "4k3/8/8/8/8/8/8/R3K3 w - - 99 80",
			moves:    "a1a2",
			status:   chess.DrawByHalfmoveClock,
			features: []string{"fifty-move", "material-odds"},
			plies:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ga, err := AnalyzeGame(quietConfig(), tt.fen, testutil.MustParseMoves(t, tt.moves))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, ga.Status, tt.status)
			testutil.AssertEqual(t, ga.Features(), tt.features)
			testutil.AssertEqual(t, ga.Plies, tt.plies)
			testutil.AssertEqual(t, len(ga.Positions), tt.plies+1)
		})
	}
}

func TestAnalyzeGame_ConfiguredRules(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		fen      string
		moves    string
		status   chess.GameStatus
		features []string
	}{
		{
			name:     "short halfmove limit",
			cfg:      config.NewConfigBuilder().WithLog(io.Discard).WithDrawHalfmoveLimit(10).Build(),
			fen:      "4k3/8/8/8/8/8/8/R3K3 w - - 9 40",
			moves:    "a1a2",
			status:   chess.DrawByHalfmoveClock,
			features: []string{"fifty-move", "material-odds"},
		},
		{
			name:     "twofold repetition",
			cfg:      config.NewConfigBuilder().WithLog(io.Discard).WithRepetitionLimit(2).Build(),
			moves:    "g1f3 g8f6 f3g1 f6g8",
			status:   chess.DrawByRepetition,
			features: []string{"repetition"},
		},
		{
			name:   "repetition disabled",
			cfg:    config.NewConfigBuilder().WithLog(io.Discard).WithRepetitionLimit(0).Build(),
			moves:  "g1f3 g8f6 f3g1 f6g8 g1f3 g8f6 f3g1 f6g8",
			status: chess.Ongoing,
		},
		{
			name:     "configured underpromotion",
			cfg:      config.NewConfigBuilder().WithLog(io.Discard).WithDefaultPromotion(chess.Rook).Build(),
			fen:      "8/P6k/7p/8/8/8/8/K7 w - - 0 1",
			moves:    "a7a8",
			status:   chess.Ongoing,
			features: []string{"underpromotion", "material-odds"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ga, err := AnalyzeGame(tt.cfg, tt.fen, testutil.MustParseMoves(t, tt.moves))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, ga.Status, tt.status)
			testutil.AssertEqual(t, ga.Features(), tt.features)
		})
	}
}

func TestAnalyzeGame_RepetitionAfterDoublePush(t *testing.T) {
	ga, err := AnalyzeGame(quietConfig(), "", testutil.MustParseMoves(t, "e2e4 g8f6 g1f3 f6g8 f3g1 g8f6 g1f3 f6g8 f3g1"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, ga.Status, chess.DrawByRepetition)
	testutil.AssertEqual(t, ga.Features(), []string{"repetition"})
}

func TestAnalyzeGame_Counts(t *testing.T) {
	ga, err := AnalyzeGame(quietConfig(), "", testutil.MustParseMoves(t, "e2e4 d7d5 e4d5 d8d5 b1c3 d5e5"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, ga.Captures, 2)
	testutil.AssertEqual(t, ga.Checks, 1)
	testutil.AssertEqual(t, ga.Summary(), "6 ply(s), 2 capture(s), 1 check(s), ongoing")
}

func TestAnalyzeGame_IllegalMove(t *testing.T) {
	ga, err := AnalyzeGame(quietConfig(), "", testutil.MustParseMoves(t, "e2e4 e7e5 e4e5 d7d6"))
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertContains(t, err.Error(), "ply 3")
	testutil.AssertEqual(t, ga.Plies, 2)
	testutil.AssertEqual(t, ga.Final.FEN(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
}

func TestAnalyzeGame_BadFEN(t *testing.T) {
	ga, err := AnalyzeGame(quietConfig(), "8/8 w - -", nil)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
	testutil.AssertNil(t, ga)
}

func TestGameAnalysis_Summary(t *testing.T) {
	ga := &GameAnalysis{Plies: 3, Status: chess.StalemateStatus, HasRepetition: true, HasUnderpromotion: true}
	testutil.AssertEqual(t, ga.Summary(), "3 ply(s), 0 capture(s), 0 check(s), stalemate; repetition, underpromotion")
}
