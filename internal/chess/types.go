// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	return c ^ 1
}

// Kind is the type of a piece irrespective of colour.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

var kindNames = [NumKinds]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	if k < NumKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := [NumKinds]byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k < NumKinds {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a kind.
// Returns NoKind for anything else.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoKind
}

// IsPromotion reports whether a pawn may promote to this kind.
func (k Kind) IsPromotion() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// Piece is a compact board cell value: a coloured piece, an empty square,
// or the off-board hedge.
//
// Coloured pieces pack the kind above PieceShift and the colour in the low
// bit, so they never collide with the Off and Empty sentinels.
type Piece uint8

const (
	Off   Piece = iota // Off the board (hedge square)
	Empty              // Empty square
)

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	return Piece(uint8(kind)<<PieceShift | uint8(colour))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// Colour returns the colour of a coloured piece. Meaningless for sentinels.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// Kind returns the kind of a coloured piece, or NoKind for sentinels.
func (p Piece) Kind() Kind {
	return Kind(p >> PieceShift)
}

// IsPiece reports whether p is a coloured piece rather than a sentinel.
func (p Piece) IsPiece() bool {
	return p > Empty
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p == MakePiece(colour, kind)
}

// Letter returns the FEN letter for the piece: uppercase for White.
func (p Piece) Letter() byte {
	switch p {
	case Off:
		return '#'
	case Empty:
		return '.'
	}
	l := p.Kind().Letter()
	if p.Colour() == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	switch p {
	case Off:
		return "Off"
	case Empty:
		return "Empty"
	}
	return p.Colour().String() + " " + p.Kind().String()
}

// PieceFromLetter converts a FEN letter to a coloured piece.
// Uppercase letters are White. Returns Empty for unknown letters.
func PieceFromLetter(c byte) Piece {
	kind := KindFromLetter(c)
	if kind == NoKind {
		return Empty
	}
	if c >= 'a' {
		return MakePiece(Black, kind)
	}
	return MakePiece(White, kind)
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}
