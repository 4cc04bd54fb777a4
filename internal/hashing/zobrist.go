// Package hashing provides Zobrist position keys and repetition tracking.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/minichess-go/internal/chess"
)

// numPieceCodes covers every packed Piece value up to the black king.
const numPieceCodes = (int(chess.King)<<chess.PieceShift | 1) + 1

// Zobrist keys, filled once at package initialisation and read-only afterwards.
var (
	zobristPiece     [numPieceCodes][chess.BoardCells]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [chess.BoardSize]uint64
	zobristSide      uint64
)

func init() {
	// Fixed seed so hashes are reproducible across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < numPieceCodes; p++ {
		for sq := 0; sq < chess.BoardCells; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Position is the read-only view of a position needed to hash it.
type Position interface {
	PieceAt(sq chess.Square) chess.Piece
	SideToMove() chess.Colour
	Castling() chess.CastlingRights
	EnPassant() chess.Square
}

// Zobrist calculates the Zobrist hash of a position.
func Zobrist(pos Position) uint64 {
	var key uint64

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.NewSquare(file, rank)
			if p := pos.PieceAt(sq); p.IsPiece() {
				key ^= zobristPiece[p][sq]
			}
		}
	}

	// Only XOR the side key when Black is to move.
	if pos.SideToMove() == chess.Black {
		key ^= zobristSide
	}

	key ^= zobristCastle[pos.Castling()&chess.AllCastling]

	if ep := pos.EnPassant(); ep.OnBoard() && canTakeEnPassant(pos, ep) {
		key ^= zobristEnPassant[ep.File()]
	}

	return key
}

// canTakeEnPassant reports whether a pawn of the side to move stands beside
// the pawn that just made a double push. Without one the target square
// changes nothing and must not change the hash.
func canTakeEnPassant(pos Position, ep chess.Square) bool {
	side := pos.SideToMove()
	pawn := chess.MakePiece(side, chess.Pawn)
	behind := ep - chess.Square(chess.North*chess.ColourOffset(side))
	return pos.PieceAt(behind+chess.West) == pawn || pos.PieceAt(behind+chess.East) == pawn
}
