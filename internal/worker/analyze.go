package worker

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/lgbarn/minichess-go/internal/chess"
	"github.com/lgbarn/minichess-go/internal/config"
	"github.com/lgbarn/minichess-go/internal/engine"
)

// Analyzer returns a ProcessFunc that imports each item's FEN into a fresh
// Game and searches it to depth. An aborted search still reports the move it
// found along with errors.ErrSearchAborted.
func Analyzer(ctx context.Context, cfg *config.Config, depth int) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		res := ProcessResult{Index: item.Index, FEN: item.FEN}

		g, err := engine.ImportPosition(item.FEN, engine.WithConfig(cfg))
		if err != nil {
			res.Error = err
			return res
		}
		res.Status = g.Status()
		if res.Status != chess.Ongoing {
			return res
		}

		sr, err := g.Analyze(ctx, depth)
		res.Move = sr.Move
		res.Score = sr.Score
		res.Nodes = sr.Nodes
		res.Depth = sr.Depth
		res.Error = err
		return res
	}
}

// ReadItems reads one FEN per line. Blank lines and lines starting with '#'
// are skipped; Index is the zero-based count of accepted lines.
func ReadItems(r io.Reader) ([]WorkItem, error) {
	var items []WorkItem
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, WorkItem{FEN: line, Index: len(items)})
	}
	return items, scanner.Err()
}
