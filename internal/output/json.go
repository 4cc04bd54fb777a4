package output

import (
	"github.com/lgbarn/minichess-go/internal/chess"
	"github.com/lgbarn/minichess-go/internal/engine"
)

// MoveReport describes one move request and the position it left.
type MoveReport struct {
	Move   chess.Move
	Result chess.MoveResult
	FEN    string
	Status chess.GameStatus
}

// AnalysisReport is the outcome of searching one position.
type AnalysisReport struct {
	FEN    string
	Move   chess.Move
	Score  int
	Depth  int
	Nodes  uint64
	Status chess.GameStatus
	Err    error
}

// PerftReport is a perft count with an optional per-move breakdown.
type PerftReport struct {
	FEN    string
	Depth  int
	Nodes  uint64
	Divide []engine.MoveCount
}

// JSONMove represents a move report in JSON format.
type JSONMove struct {
	Move      string   `json:"move"`
	From      string   `json:"from"`
	To        string   `json:"to"`
	Promotion string   `json:"promotion,omitempty"`
	Legal     bool     `json:"legal"`
	Flags     []string `json:"flags,omitempty"`
	FEN       string   `json:"fen,omitempty"`
	Status    string   `json:"status,omitempty"`
}

// JSONAnalysis represents an analysis report in JSON format.
type JSONAnalysis struct {
	FEN       string `json:"fen"`
	BestMove  string `json:"bestMove,omitempty"`
	Score     int    `json:"score"`
	ScoreText string `json:"scoreText,omitempty"`
	Depth     int    `json:"depth,omitempty"`
	Nodes     uint64 `json:"nodes,omitempty"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// JSONPerft represents a perft report in JSON format.
type JSONPerft struct {
	FEN    string            `json:"fen"`
	Depth  int               `json:"depth"`
	Nodes  uint64            `json:"nodes"`
	Divide map[string]uint64 `json:"divide,omitempty"`
}

// JSONOutput holds every record written before a flush.
type JSONOutput struct {
	Position *JSONPosition  `json:"position,omitempty"`
	Moves    []JSONMove     `json:"moves,omitempty"`
	Analyses []JSONAnalysis `json:"analyses,omitempty"`
	Perft    []JSONPerft    `json:"perft,omitempty"`
}

// JSONPosition is the final position of a run.
type JSONPosition struct {
	FEN        string `json:"fen"`
	SideToMove string `json:"sideToMove"`
	Status     string `json:"status"`
	Evaluation int    `json:"evaluation"`
}

var moveFlags = []struct {
	flag chess.MoveResult
	name string
}{
	{chess.Check, "check"},
	{chess.Mate, "mate"},
	{chess.Capture, "capture"},
	{chess.CastleKingside, "castle-kingside"},
	{chess.CastleQueenside, "castle-queenside"},
	{chess.Draw, "draw"},
}

// MoveToJSON converts a move report.
func MoveToJSON(r MoveReport) JSONMove {
	jm := JSONMove{
		Move:  r.Move.String(),
		From:  r.Move.From.String(),
		To:    r.Move.To.String(),
		Legal: r.Result.Has(chess.OK),
	}
	if r.Move.Promotion != chess.NoKind {
		jm.Promotion = kindName(r.Move.Promotion)
	}
	for _, f := range moveFlags {
		if r.Result.Has(f.flag) {
			jm.Flags = append(jm.Flags, f.name)
		}
	}
	if jm.Legal {
		jm.FEN = r.FEN
		jm.Status = r.Status.String()
	}
	return jm
}

// AnalysisToJSON converts an analysis report.
func AnalysisToJSON(r AnalysisReport) JSONAnalysis {
	ja := JSONAnalysis{
		FEN:    r.FEN,
		Status: r.Status.String(),
	}
	if r.Err != nil {
		ja.Error = r.Err.Error()
	}
	if !r.Move.IsNull() {
		ja.BestMove = r.Move.String()
		ja.Score = r.Score
		ja.ScoreText = FormatScore(r.Score)
		ja.Depth = r.Depth
		ja.Nodes = r.Nodes
	}
	return ja
}

// PerftToJSON converts a perft report.
func PerftToJSON(r PerftReport) JSONPerft {
	jp := JSONPerft{FEN: r.FEN, Depth: r.Depth, Nodes: r.Nodes}
	if len(r.Divide) > 0 {
		jp.Divide = make(map[string]uint64, len(r.Divide))
		for _, mc := range r.Divide {
			jp.Divide[mc.Move.String()] = mc.Nodes
		}
	}
	return jp
}

// PositionToJSON summarises a position.
func PositionToJSON(p *engine.Position, status chess.GameStatus) *JSONPosition {
	return &JSONPosition{
		FEN:        p.FEN(),
		SideToMove: colourName(p.SideToMove()),
		Status:     status.String(),
		Evaluation: p.Evaluate(),
	}
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

func kindName(k chess.Kind) string {
	switch k {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
