package engine

import (
	"testing"

	"github.com/lgbarn/minichess-go/internal/chess"
	"github.com/lgbarn/minichess-go/internal/testutil"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
		long  bool
	}{
		{"initial depth 1", InitialFEN, 1, 20, false},
		{"initial depth 2", InitialFEN, 2, 400, false},
		{"initial depth 3", InitialFEN, 3, 8902, false},
		{"initial depth 4", InitialFEN, 4, 197281, true},
		{"kiwipete depth 1", kiwipeteFEN, 1, 48, false},
		{"kiwipete depth 2", kiwipeteFEN, 2, 2039, false},
		{"kiwipete depth 3", kiwipeteFEN, 3, 97862, true},
		{"position 3 depth 1", position3FEN, 1, 14, false},
		{"position 3 depth 2", position3FEN, 2, 191, false},
		{"position 3 depth 3", position3FEN, 3, 2812, false},
		{"position 4 depth 1", position4FEN, 1, 6, false},
		{"position 4 depth 2", position4FEN, 2, 264, false},
		{"position 4 depth 3", position4FEN, 3, 9467, true},
		{"position 5 depth 1", position5FEN, 1, 44, false},
		{"position 5 depth 2", position5FEN, 2, 1486, false},
		{"promotions depth 1", promotionFEN, 1, 24, false},
		{"promotions depth 2", promotionFEN, 2, 496, false},
		{"promotions depth 3", promotionFEN, 3, 9483, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.long && testing.Short() {
				t.Skip("skipping deep perft in short mode")
			}
			p := mustParseFEN(t, tt.fen)
			before := stateOf(p)

			if got := p.Perft(tt.depth); got != tt.want {
				t.Errorf("Perft(%d) = %d, want %d", tt.depth, got, tt.want)
			}
			testutil.AssertEqual(t, stateOf(p), before, "position changed by Perft")
		})
	}
}

func TestDivide(t *testing.T) {
	p := NewPosition()
	counts := p.Divide(2)

	testutil.AssertEqual(t, len(counts), 20)
	var total uint64
	for i, mc := range counts {
		total += mc.Nodes
		if mc.Nodes != 20 {
			t.Errorf("%s: %d nodes, want 20", mc.Move, mc.Nodes)
		}
		if i > 0 && counts[i-1].Move.String() >= mc.Move.String() {
			t.Errorf("Divide not sorted at %s", mc.Move)
		}
	}
	testutil.AssertEqual(t, total, uint64(400))
}

func TestGenerateMoves_CapturesFirst(t *testing.T) {
	for name, fen := range trickyFENs {
		t.Run(name, func(t *testing.T) {
			p := mustParseFEN(t, fen)
			moves := p.GenerateMoves(p.side)
			captures := p.GenerateCaptures(p.side)

			testutil.AssertEqual(t, testutil.MoveStrings(moves[:len(captures)]), testutil.MoveStrings(captures))
			for _, m := range moves[len(captures):] {
				if isCaptureMove(p, m) {
					t.Errorf("capture %s listed among quiet moves", m)
				}
			}
			for _, m := range captures {
				if !isCaptureMove(p, m) {
					t.Errorf("quiet move %s listed among captures", m)
				}
			}
		})
	}
}

// isCaptureMove reports whether m takes a piece, en passant included.
func isCaptureMove(p *Position, m chess.Move) bool {
	if p.board[m.To].IsPiece() {
		return true
	}
	return p.board[m.From].Kind() == chess.Pawn && m.To == p.enPassant && m.From.File() != m.To.File()
}

func TestGenerateMoves_Promotions(t *testing.T) {
	p := mustParseFEN(t, "8/P6k/8/8/8/8/8/K7 w - - 0 1")
	var promotions []chess.Move
	for _, m := range p.LegalMoves(chess.White) {
		if m.Promotion != chess.NoKind {
			promotions = append(promotions, m)
		}
	}
	testutil.AssertMoveSet(t, promotions, []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n"})
}

func TestCastling_AttackedSquares(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		allowed []string
		denied  []string
	}{
		{
			name:    "both sides free",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			allowed: []string{"e1g1", "e1c1"},
		},
		{
			name:    "transit square f1 attacked",
			fen:     "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1",
			allowed: []string{"e1c1"},
			denied:  []string{"e1g1"},
		},
		{
			name:    "transit square d1 attacked",
			fen:     "3rk3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			allowed: []string{"e1g1"},
			denied:  []string{"e1c1"},
		},
		{
			name:    "king in check",
			fen:     "4k3/4r3/8/8/8/8/8/R3K2R w KQ - 0 1",
			denied:  []string{"e1g1", "e1c1"},
		},
		{
			name:    "destination attacked",
			fen:     "4k1r1/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			allowed: []string{"e1c1"},
			denied:  []string{"e1g1"},
		},
		{
			name:    "b1 attacked does not stop queenside",
			fen:     "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			allowed: []string{"e1c1", "e1g1"},
		},
		{
			name:    "piece between king and rook",
			fen:     "4k3/8/8/8/8/8/8/RN2K1NR w KQ - 0 1",
			denied:  []string{"e1g1", "e1c1"},
		},
		{
			name:    "no rights",
			fen:     "4k3/8/8/8/8/8/8/R3K2R w - - 0 1",
			denied:  []string{"e1g1", "e1c1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParseFEN(t, tt.fen)
			legal := make(map[string]bool)
			for _, m := range p.LegalMoves(p.side) {
				legal[m.String()] = true
			}
			for _, m := range tt.allowed {
				if !legal[m] {
					t.Errorf("%s should be legal", m)
				}
			}
			for _, m := range tt.denied {
				if legal[m] {
					t.Errorf("%s should be illegal", m)
				}
			}
		})
	}
}

func TestIsSquareAttacked(t *testing.T) {
	p := mustParseFEN(t, "4k3/8/8/3p4/8/5n2/8/R3K3 w - - 0 1")

	tests := []struct {
		sq   chess.Square
		by   chess.Colour
		want bool
	}{
		{chess.C4, chess.Black, true},  // pawn d5
		{chess.E4, chess.Black, true},  // pawn d5
		{chess.D4, chess.Black, true},  // knight f3
		{chess.D5, chess.White, false}, // nothing reaches d5
		{chess.H5, chess.Black, false},
		{chess.E1, chess.Black, true},  // knight f3
		{chess.G1, chess.Black, true},  // knight f3
		{chess.A8, chess.White, true},  // rook a1
		{chess.D1, chess.White, true},  // rook a1 and king e1
		{chess.F1, chess.White, true},  // king e1
		{chess.G1, chess.White, false}, // behind the king
		{chess.D7, chess.Black, true},  // king e8
	}
	for _, tt := range tests {
		if got := p.IsSquareAttacked(tt.sq, tt.by); got != tt.want {
			t.Errorf("IsSquareAttacked(%s, %s) = %v, want %v", tt.sq, tt.by, got, tt.want)
		}
	}
	testutil.AssertTrue(t, p.IsInCheck(chess.White), "knight f3 checks e1")
	testutil.AssertFalse(t, p.IsInCheck(chess.Black))
}

func TestLegalMoves_MateAndStalemate(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		checkmate bool
		stalemate bool
	}{
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", true, false},
		{"queen stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", false, true},
		{"initial", InitialFEN, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParseFEN(t, tt.fen)
			testutil.AssertEqual(t, p.IsCheckmate(), tt.checkmate, "IsCheckmate")
			testutil.AssertEqual(t, p.IsStalemate(), tt.stalemate, "IsStalemate")
			testutil.AssertEqual(t, p.HasLegalMoves(p.side), !tt.checkmate && !tt.stalemate, "HasLegalMoves")
			if tt.checkmate || tt.stalemate {
				testutil.AssertEqual(t, len(p.LegalMoves(p.side)), 0)
			}
		})
	}
}

func TestEnPassant_OnlyForSideToMove(t *testing.T) {
	p := mustParseFEN(t, "4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1")

	has := func(moves []chess.Move, text string) bool {
		for _, m := range moves {
			if m.String() == text {
				return true
			}
		}
		return false
	}
	testutil.AssertTrue(t, has(p.GenerateMoves(chess.Black), "d4e3"), "black to move may capture en passant")

	p.side = chess.White
	testutil.AssertFalse(t, has(p.GenerateMoves(chess.Black), "d4e3"), "en passant offered to the side not to move")
}
