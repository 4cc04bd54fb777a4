// Package output renders positions, move results and analysis as text or
// JSON for the command-line tool.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/minichess-go/internal/chess"
	"github.com/lgbarn/minichess-go/internal/engine"
)

// OutputWriter writes space-separated tokens, wrapping lines at a maximum
// length.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, preceded by a space or a line break as needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteMoves writes moves in coordinate notation, numbered from moveNumber
// with side to move first.
func WriteMoves(w io.Writer, moves []chess.Move, moveNumber uint, side chess.Colour, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)
	for i, m := range moves {
		switch {
		case side == chess.White:
			ow.Write(fmt.Sprintf("%d.", moveNumber))
		case i == 0:
			ow.Write(fmt.Sprintf("%d...", moveNumber))
		}
		ow.Write(m.String())
		if side == chess.Black {
			moveNumber++
		}
		side = side.Opposite()
	}
	ow.NewLine()
}

// RenderBoard draws the position with rank 8 at the top, uppercase for
// White and '.' for empty squares.
func RenderBoard(w io.Writer, p *engine.Position) {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(' ')
			sb.WriteByte(p.PieceAt(chess.NewSquare(file, rank)).Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	fmt.Fprint(w, sb.String())
}

// FormatScore renders a search score in pawns from the mover's side, such
// as "+0.35", or as a mate distance in moves, such as "#2" or "#-1".
func FormatScore(score int) string {
	if plies, ok := engine.MateDistance(score); ok {
		if plies > 0 {
			return fmt.Sprintf("#%d", (plies+1)/2)
		}
		return fmt.Sprintf("#-%d", (-plies+1)/2)
	}
	sign := "+"
	if score < 0 {
		sign = "-"
		score = -score
	}
	return fmt.Sprintf("%s%d.%02d", sign, score/100, score%100)
}
