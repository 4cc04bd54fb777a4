package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/minichess-go/internal/chess"
	"github.com/lgbarn/minichess-go/internal/config"
	"github.com/lgbarn/minichess-go/internal/engine"
)

// ReportWriter is the interface for writing CLI results.
// Implementations handle different output formats (text, JSON).
type ReportWriter interface {
	WritePosition(p *engine.Position, status chess.GameStatus) error
	WriteMove(r MoveReport) error
	WriteAnalysis(r AnalysisReport) error
	WritePerft(r PerftReport) error

	// Flush writes any buffered records to the underlying writer.
	Flush() error

	// Close flushes and releases the writer.
	Close() error
}

// NewReportWriter returns the writer selected by cfg.Output.
func NewReportWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes human-readable reports immediately.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WritePosition draws the board and prints the FEN as configured.
func (tw *TextWriter) WritePosition(p *engine.Position, status chess.GameStatus) error {
	if tw.cfg.Output.ShowBoard {
		RenderBoard(tw.w, p)
	}
	if tw.cfg.Output.ShowFEN {
		fmt.Fprintf(tw.w, "FEN: %s\n", p.FEN())
	}
	if status != chess.Ongoing {
		fmt.Fprintf(tw.w, "Status: %s\n", status)
	}
	return nil
}

// WriteMove prints the move and its result flags.
func (tw *TextWriter) WriteMove(r MoveReport) error {
	_, err := fmt.Fprintf(tw.w, "%s: %s\n", r.Move, r.Result)
	return err
}

// WriteAnalysis prints the best move line.
func (tw *TextWriter) WriteAnalysis(r AnalysisReport) error {
	switch {
	case r.Move.IsNull() && r.Err != nil:
		_, err := fmt.Fprintf(tw.w, "%s: error: %v\n", r.FEN, r.Err)
		return err
	case r.Move.IsNull():
		_, err := fmt.Fprintf(tw.w, "%s: no move (%s)\n", r.FEN, r.Status)
		return err
	}
	line := fmt.Sprintf("bestmove %s score %s depth %d nodes %d", r.Move, FormatScore(r.Score), r.Depth, r.Nodes)
	if r.Err != nil {
		line += fmt.Sprintf(" (%v)", r.Err)
	}
	if r.FEN != "" {
		line = r.FEN + ": " + line
	}
	_, err := fmt.Fprintln(tw.w, line)
	return err
}

// WritePerft prints one line per root move, then the total.
func (tw *TextWriter) WritePerft(r PerftReport) error {
	for _, mc := range r.Divide {
		fmt.Fprintf(tw.w, "%s: %d\n", mc.Move, mc.Nodes)
	}
	if len(r.Divide) > 0 {
		fmt.Fprintln(tw.w)
	}
	_, err := fmt.Fprintf(tw.w, "perft(%d) = %d\n", r.Depth, r.Nodes)
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter collects records and writes them as one JSON object on Flush
// or Close.
type JSONWriter struct {
	w      io.Writer
	output JSONOutput
	single bool // write each record as soon as it arrives
}

// NewJSONWriter creates a batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that encodes each record on its
// own line as it arrives.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	if !jw.single {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// WritePosition records the position summary.
func (jw *JSONWriter) WritePosition(p *engine.Position, status chess.GameStatus) error {
	jp := PositionToJSON(p, status)
	if jw.single {
		return jw.encode(jp)
	}
	jw.output.Position = jp
	return nil
}

// WriteMove records a move report.
func (jw *JSONWriter) WriteMove(r MoveReport) error {
	jm := MoveToJSON(r)
	if jw.single {
		return jw.encode(jm)
	}
	jw.output.Moves = append(jw.output.Moves, jm)
	return nil
}

// WriteAnalysis records an analysis report.
func (jw *JSONWriter) WriteAnalysis(r AnalysisReport) error {
	ja := AnalysisToJSON(r)
	if jw.single {
		return jw.encode(ja)
	}
	jw.output.Analyses = append(jw.output.Analyses, ja)
	return nil
}

// WritePerft records a perft report.
func (jw *JSONWriter) WritePerft(r PerftReport) error {
	jp := PerftToJSON(r)
	if jw.single {
		return jw.encode(jp)
	}
	jw.output.Perft = append(jw.output.Perft, jp)
	return nil
}

// Flush writes the collected records and clears them.
func (jw *JSONWriter) Flush() error {
	if jw.single {
		return nil
	}
	out := jw.output
	if out.Position == nil && out.Moves == nil && out.Analyses == nil && out.Perft == nil {
		return nil
	}
	jw.output = JSONOutput{}
	return jw.encode(&out)
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
