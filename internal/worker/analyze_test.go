package worker

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/lgbarn/minichess-go/internal/chess"
	"github.com/lgbarn/minichess-go/internal/config"
	"github.com/lgbarn/minichess-go/internal/errors"
	"github.com/lgbarn/minichess-go/internal/testutil"
)

func TestReadItems(t *testing.T) {
	input := `# test positions
rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1

   6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1
`
	items, err := ReadItems(strings.NewReader(input))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, items, []WorkItem{
		{FEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", Index: 0},
		{FEN: "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", Index: 1},
	})
}

func TestAnalyzer(t *testing.T) {
	cfg := config.NewConfigBuilder().WithLog(io.Discard).Build()
	items := []WorkItem{
		{FEN: "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", Index: 0},
		{FEN: "not a position", Index: 1},
		{FEN: "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1", Index: 2},
		{FEN: "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Index: 3},
		{FEN: "r5k1/8/8/8/8/8/5PPP/6K1 b - - 0 1", Index: 4},
	}

	results := NewPool(Analyzer(context.Background(), cfg, 2), WithWorkers(3)).Run(items)
	testutil.AssertEqual(t, len(results), len(items))

	testutil.AssertNoError(t, results[0].Error)
	testutil.AssertEqual(t, results[0].Move.String(), "a1a8")
	testutil.AssertEqual(t, results[0].Depth, 2)

	testutil.AssertErrorIs(t, results[1].Error, errors.ErrInvalidFEN)

	testutil.AssertEqual(t, results[2].Move.String(), "d1d5")

	testutil.AssertNoError(t, results[3].Error)
	testutil.AssertEqual(t, results[3].Status, chess.StalemateStatus)
	testutil.AssertTrue(t, results[3].Move.IsNull(), "finished position has no move")

	testutil.AssertEqual(t, results[4].Move.String(), "a8a1")
}

func TestAnalyzer_Aborted(t *testing.T) {
	cfg := config.NewConfigBuilder().WithLog(io.Discard).WithNodeBudget(20).Build()
	fn := Analyzer(context.Background(), cfg, 5)

	r := fn(WorkItem{FEN: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"})
	testutil.AssertErrorIs(t, r.Error, errors.ErrSearchAborted)
	testutil.AssertFalse(t, r.Move.IsNull())
}

func TestAnalyzer_SharedLog(t *testing.T) {
	var log bytes.Buffer
	cfg := config.NewConfigBuilder().WithLog(&log).WithVerbosity(2).Build()
	fens := []string{
		"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
		"4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1",
		"r5k1/8/8/8/8/8/5PPP/6K1 b - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	}
	var items []WorkItem
	for i := 0; i < 3; i++ {
		for _, fen := range fens {
			items = append(items, WorkItem{FEN: fen, Index: len(items)})
		}
	}

	results := NewPool(Analyzer(context.Background(), cfg, 2), WithWorkers(4)).Run(items)
	for _, r := range results {
		testutil.AssertNoError(t, r.Error, "item %d", r.Index)
	}
	testutil.AssertEqual(t, strings.Count(log.String(), "depth 2: "), len(items))
}
