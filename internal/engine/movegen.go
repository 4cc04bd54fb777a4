package engine

import "github.com/lgbarn/minichess-go/internal/chess"

// promotionKinds lists promotion choices, strongest first.
var promotionKinds = [4]chess.Kind{chess.Queen, chess.Knight, chess.Rook, chess.Bishop}

// moveLists collects generated moves split by kind.
type moveLists struct {
	captures []chess.Move
	quiets   []chess.Move
}

// GenerateMoves returns colour's pseudo-legal moves: they follow piece
// movement rules but may leave the mover's own king in check. Captures,
// en passant included, come before quiet moves.
func (p *Position) GenerateMoves(colour chess.Colour) []chess.Move {
	ml := moveLists{
		captures: make([]chess.Move, 0, 16),
		quiets:   make([]chess.Move, 0, 48),
	}
	p.generate(colour, &ml, false)
	return append(ml.captures, ml.quiets...)
}

// GenerateCaptures returns only colour's pseudo-legal captures.
func (p *Position) GenerateCaptures(colour chess.Colour) []chess.Move {
	ml := moveLists{captures: make([]chess.Move, 0, 16)}
	p.generate(colour, &ml, true)
	return ml.captures
}

// generate fills ml with colour's moves; quiet moves are skipped when
// capturesOnly is set.
func (p *Position) generate(colour chess.Colour, ml *moveLists, capturesOnly bool) {
	for _, ps := range p.pieces[colour] {
		from := ps.Square
		switch ps.Piece.Kind() {
		case chess.Pawn:
			p.generatePawnMoves(colour, from, ml, capturesOnly)
		case chess.Knight:
			p.generateStepMoves(colour, from, knightOffsets[:], ml, capturesOnly)
		case chess.King:
			p.generateStepMoves(colour, from, kingOffsets[:], ml, capturesOnly)
			if !capturesOnly {
				p.generateCastling(colour, ml)
			}
		case chess.Bishop:
			p.generateSlidingMoves(colour, from, diagonalDirs[:], ml, capturesOnly)
		case chess.Rook:
			p.generateSlidingMoves(colour, from, straightDirs[:], ml, capturesOnly)
		case chess.Queen:
			p.generateSlidingMoves(colour, from, diagonalDirs[:], ml, capturesOnly)
			p.generateSlidingMoves(colour, from, straightDirs[:], ml, capturesOnly)
		}
	}
}

// generatePawnMoves adds pushes, double pushes, captures and en-passant
// captures for the pawn on from.
func (p *Position) generatePawnMoves(colour chess.Colour, from chess.Square, ml *moveLists, capturesOnly bool) {
	fwd := forward(colour)
	promoting := from.RelativeRank(colour) == chess.BoardSize-2

	for _, side := range [2]chess.Square{chess.West, chess.East} {
		to := from + fwd + side
		target := p.board[to]
		switch {
		case target.IsPiece() && target.Colour() != colour:
			addPawnMove(&ml.captures, from, to, promoting)
		case target == chess.Empty && to == p.enPassant && colour == p.side:
			ml.captures = append(ml.captures, chess.Move{From: from, To: to})
		}
	}

	if capturesOnly {
		return
	}

	one := from + fwd
	if p.board[one] != chess.Empty {
		return
	}
	addPawnMove(&ml.quiets, from, one, promoting)
	if from.RelativeRank(colour) == 1 {
		if two := one + fwd; p.board[two] == chess.Empty {
			ml.quiets = append(ml.quiets, chess.Move{From: from, To: two})
		}
	}
}

// addPawnMove appends a pawn move, expanding it into one move per promotion
// piece when it reaches the last rank.
func addPawnMove(list *[]chess.Move, from, to chess.Square, promoting bool) {
	if !promoting {
		*list = append(*list, chess.Move{From: from, To: to})
		return
	}
	for _, kind := range promotionKinds {
		*list = append(*list, chess.Move{From: from, To: to, Promotion: kind})
	}
}

// generateStepMoves adds knight or king moves from a fixed offset set.
func (p *Position) generateStepMoves(colour chess.Colour, from chess.Square, offsets []chess.Square, ml *moveLists, capturesOnly bool) {
	for _, off := range offsets {
		to := from + off
		target := p.board[to]
		switch {
		case target == chess.Empty:
			if !capturesOnly {
				ml.quiets = append(ml.quiets, chess.Move{From: from, To: to})
			}
		case target.IsPiece() && target.Colour() != colour:
			ml.captures = append(ml.captures, chess.Move{From: from, To: to})
		}
	}
}

// generateSlidingMoves walks each ray until it meets a non-empty cell. An
// enemy piece there is captured; a friendly piece or the hedge ends the ray.
func (p *Position) generateSlidingMoves(colour chess.Colour, from chess.Square, dirs []chess.Square, ml *moveLists, capturesOnly bool) {
	for _, dir := range dirs {
		to := from + dir
		for p.board[to] == chess.Empty {
			if !capturesOnly {
				ml.quiets = append(ml.quiets, chess.Move{From: from, To: to})
			}
			to += dir
		}
		if target := p.board[to]; target.IsPiece() && target.Colour() != colour {
			ml.captures = append(ml.captures, chess.Move{From: from, To: to})
		}
	}
}

// generateCastling adds the available castling moves as king moves.
func (p *Position) generateCastling(colour chess.Colour, ml *moveLists) {
	for _, c := range castlings {
		if c.colour == colour && p.canCastle(c) {
			ml.quiets = append(ml.quiets, chess.Move{From: c.kingFrom, To: c.kingTo})
		}
	}
}
