package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/minichess-go/internal/chess"
)

// parseMoves parses space-separated coordinate moves ("e2e4 e7e5"),
// stopping at the first bad one.
func parseMoves(text string) ([]chess.Move, error) {
	fields := strings.Fields(text)
	moves := make([]chess.Move, 0, len(fields))
	for _, f := range fields {
		m, err := chess.ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// MustParseMoves parses space-separated coordinate moves, failing the test
// on the first one that does not parse.
func MustParseMoves(t *testing.T, text string) []chess.Move {
	t.Helper()
	moves, err := parseMoves(text)
	if err != nil {
		t.Fatalf("parsing test moves %q: %v", text, err)
	}
	return moves
}

// MustParseMove parses a single coordinate move.
func MustParseMove(t *testing.T, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", text, err)
	}
	return m
}

// MoveStrings renders moves in coordinate notation, for comparisons.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
