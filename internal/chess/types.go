// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

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
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns +1 for White, -1 for Black.
func (c Colour) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank index of the colour's back rank.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnStartRank returns the rank index pawns of this colour start on.
func (c Colour) PawnStartRank() int {
	if c == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the farthest rank for pawns of this colour.
func (c Colour) PromotionRank() int {
	return c.Opposite().HomeRank()
}

// Kind is the type of a chess piece. The zero value means no piece.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the name of the piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter used for the kind in notation.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is an immutable coloured piece. The zero value is an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether the value represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether p is a piece of the given kind and colour.
func (p Piece) Is(kind Kind, colour Colour) bool {
	return p.Kind == kind && p.Colour == colour
}

// FENLetter returns the FEN letter for the piece: uppercase for White,
// lowercase for Black, '.' for an empty square.
func (p Piece) FENLetter() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// CastleSide identifies the wing a king castles towards.
type CastleSide int

const (
	QueenSide CastleSide = iota
	KingSide
)

// String returns the notation for castling on this side.
func (s CastleSide) String() string {
	if s == KingSide {
		return "O-O"
	}
	return "O-O-O"
}

// RookHomeFile returns the file the side's rook starts on.
func (s CastleSide) RookHomeFile() int {
	if s == KingSide {
		return BoardSize - 1
	}
	return 0
}

// RookCastledFile returns the file the rook lands on after castling.
func (s CastleSide) RookCastledFile() int {
	if s == KingSide {
		return 5
	}
	return 3
}

// KingCastledFile returns the file the king lands on after castling.
func (s CastleSide) KingCastledFile() int {
	if s == KingSide {
		return 6
	}
	return 2
}

// Constants for board dimensions.
const (
	BoardSize = 8

	// KingHomeFile is the e-file.
	KingHomeFile = 4

	FileBase = 'a'
	RankBase = '1'
)
