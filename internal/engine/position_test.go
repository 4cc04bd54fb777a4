package engine

import (
	"testing"

	"github.com/lgbarn/minichess-go/internal/chess"
	"github.com/lgbarn/minichess-go/internal/testutil"
)

// Positions shared by the move generation tests.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	pinnedEPFEN  = "8/8/8/KPp4r/8/8/8/4k3 w - c6 0 2"
	promotionFEN = "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1"
)

var trickyFENs = map[string]string{
	"initial":           InitialFEN,
	"kiwipete":          kiwipeteFEN,
	"position 3":        position3FEN,
	"position 4":        position4FEN,
	"position 5":        position5FEN,
	"pinned en passant": pinnedEPFEN,
	"promotions":        promotionFEN,
}

// positionState is the observable state of a Position.
type positionState struct {
	Board     [chess.BoardCells]chess.Piece
	Pieces    [2][]PieceSquare
	Side      chess.Colour
	Castling  chess.CastlingRights
	EnPassant chess.Square
	Halfmove  uint
	Move      uint
}

func stateOf(p *Position) positionState {
	return positionState{
		Board:     p.board,
		Pieces:    [2][]PieceSquare{p.Pieces(chess.Black), p.Pieces(chess.White)},
		Side:      p.side,
		Castling:  p.castling,
		EnPassant: p.enPassant,
		Halfmove:  p.halfmoveClock,
		Move:      p.moveNumber,
	}
}

func mustParseFEN(t testing.TB, fen string) *Position {
	t.Helper()
	p, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error: %v", fen, err)
	}
	return p
}

// checkPieceLists fails unless the piece lists mirror the board exactly.
func checkPieceLists(t *testing.T, p *Position) {
	t.Helper()
	seen := 0
	for colour := range p.pieces {
		for _, ps := range p.pieces[colour] {
			if p.board[ps.Square] != ps.Piece {
				t.Fatalf("piece list has %v on %v, board has %v", ps.Piece, ps.Square, p.board[ps.Square])
			}
			if ps.Piece.Colour() != chess.Colour(colour) {
				t.Fatalf("%v on %v is in the wrong colour list", ps.Piece, ps.Square)
			}
			seen++
		}
	}
	onBoard := 0
	for sq := chess.Square(0); sq < chess.BoardCells; sq++ {
		if p.board[sq].IsPiece() {
			onBoard++
		}
		if !sq.OnBoard() && p.board[sq] != chess.Off {
			t.Fatalf("hedge cell %d holds %v", sq, p.board[sq])
		}
	}
	if seen != onBoard {
		t.Fatalf("piece lists hold %d pieces, board holds %d", seen, onBoard)
	}
}

func TestNewPosition(t *testing.T) {
	p := NewPosition()
	checkPieceLists(t, p)

	testutil.AssertEqual(t, p.SideToMove(), chess.White)
	testutil.AssertEqual(t, p.Castling(), chess.AllCastling)
	testutil.AssertEqual(t, p.EnPassant(), chess.NoSquare)
	testutil.AssertEqual(t, p.KingSquare(chess.White), chess.E1)
	testutil.AssertEqual(t, p.KingSquare(chess.Black), chess.E8)
	testutil.AssertEqual(t, len(p.Pieces(chess.White)), 16)
	testutil.AssertEqual(t, p.PieceAt(chess.D8), chess.B(chess.Queen))
	testutil.AssertEqual(t, p.PieceAt(chess.E4), chess.Empty)
	testutil.AssertEqual(t, p.PieceAt(chess.NoSquare), chess.Off)
	testutil.AssertEqual(t, p.PieceAt(-5), chess.Off)
	testutil.AssertEqual(t, p.PieceAt(500), chess.Off)
}

func TestClone_Independent(t *testing.T) {
	p := NewPosition()
	c := p.Clone()
	before := stateOf(p)

	c.MakeMove(chess.Move{From: chess.E2, To: chess.E4})

	testutil.AssertEqual(t, stateOf(p), before, "original changed by moves on the clone")
	testutil.AssertEqual(t, c.PieceAt(chess.E4), chess.W(chess.Pawn))
}

// TestMakeUnmake_RoundTrip plays and takes back every pseudo-legal move two
// plies deep from each test position, comparing the full state each time.
func TestMakeUnmake_RoundTrip(t *testing.T) {
	for name, fen := range trickyFENs {
		t.Run(name, func(t *testing.T) {
			p := mustParseFEN(t, fen)
			roundTrip(t, p, 2)
		})
	}
}

func roundTrip(t *testing.T, p *Position, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}
	for _, m := range p.GenerateMoves(p.side) {
		before := stateOf(p)
		u := p.MakeMove(m)
		checkPieceLists(t, p)
		if p.IsInCheck(u.Moved.Colour()) {
			p.UnmakeMove(u)
		} else {
			roundTrip(t, p, depth-1)
			p.UnmakeMove(u)
		}
		testutil.AssertEqual(t, stateOf(p), before, "after unmaking %s", m)
		if t.Failed() {
			t.FailNow()
		}
	}
}

func TestMakeMove_Special(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		move  string
		check func(t *testing.T, p *Position, u UndoRecord)
	}{
		{
			name: "double push sets en passant target",
			fen:  InitialFEN,
			move: "e2e4",
			check: func(t *testing.T, p *Position, u UndoRecord) {
				testutil.AssertEqual(t, p.EnPassant(), chess.E3)
				testutil.AssertEqual(t, p.HalfmoveClock(), uint(0))
				testutil.AssertEqual(t, p.SideToMove(), chess.Black)
				testutil.AssertFalse(t, u.IsCapture())
			},
		},
		{
			name: "en passant removes the passed pawn",
			fen:  "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			move: "e5f6",
			check: func(t *testing.T, p *Position, u UndoRecord) {
				testutil.AssertEqual(t, p.PieceAt(chess.F5), chess.Empty)
				testutil.AssertEqual(t, p.PieceAt(chess.F6), chess.W(chess.Pawn))
				testutil.AssertEqual(t, u.CaptureSquare, chess.F5)
				testutil.AssertEqual(t, u.Captured, chess.B(chess.Pawn))
				testutil.AssertEqual(t, p.EnPassant(), chess.NoSquare)
			},
		},
		{
			name: "kingside castling moves the rook",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 5 10",
			move: "e1g1",
			check: func(t *testing.T, p *Position, u UndoRecord) {
				testutil.AssertEqual(t, p.PieceAt(chess.G1), chess.W(chess.King))
				testutil.AssertEqual(t, p.PieceAt(chess.F1), chess.W(chess.Rook))
				testutil.AssertEqual(t, p.PieceAt(chess.H1), chess.Empty)
				testutil.AssertEqual(t, p.Castling(), chess.BlackKingside|chess.BlackQueenside)
				testutil.AssertTrue(t, u.IsCastle())
				testutil.AssertEqual(t, p.HalfmoveClock(), uint(6))
			},
		},
		{
			name: "queenside castling moves the rook",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 10",
			move: "e8c8",
			check: func(t *testing.T, p *Position, u UndoRecord) {
				testutil.AssertEqual(t, p.PieceAt(chess.C8), chess.B(chess.King))
				testutil.AssertEqual(t, p.PieceAt(chess.D8), chess.B(chess.Rook))
				testutil.AssertEqual(t, p.PieceAt(chess.A8), chess.Empty)
				testutil.AssertEqual(t, p.Castling(), chess.WhiteKingside|chess.WhiteQueenside)
				testutil.AssertEqual(t, p.MoveNumber(), uint(11))
			},
		},
		{
			name: "capturing a rook on its home square removes the right",
			fen:  "r3k2r/8/8/8/8/8/6b1/R3K2R b KQkq - 0 1",
			move: "g2h1",
			check: func(t *testing.T, p *Position, u UndoRecord) {
				testutil.AssertEqual(t, p.Castling(), chess.WhiteQueenside|chess.BlackKingside|chess.BlackQueenside)
				testutil.AssertEqual(t, u.Captured, chess.W(chess.Rook))
			},
		},
		{
			name: "promotion without a kind makes a queen",
			fen:  "8/4P1k1/8/8/8/8/8/K7 w - - 0 1",
			move: "e7e8",
			check: func(t *testing.T, p *Position, u UndoRecord) {
				testutil.AssertEqual(t, p.PieceAt(chess.E8), chess.W(chess.Queen))
				testutil.AssertEqual(t, u.Moved, chess.W(chess.Pawn))
			},
		},
		{
			name: "under-promotion to a knight",
			fen:  "8/4P1k1/8/8/8/8/8/K7 w - - 0 1",
			move: "e7e8n",
			check: func(t *testing.T, p *Position, u UndoRecord) {
				testutil.AssertEqual(t, p.PieceAt(chess.E8), chess.W(chess.Knight))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParseFEN(t, tt.fen)
			before := stateOf(p)

			u := p.MakeMove(testutil.MustParseMove(t, tt.move))
			checkPieceLists(t, p)
			tt.check(t, p, u)

			p.UnmakeMove(u)
			testutil.AssertEqual(t, stateOf(p), before)
		})
	}
}
