package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// CastlingRights records which castling participants have moved.
// Flags are set once and never cleared except by a full reset.
type CastlingRights struct {
	KingMoved [2]bool
	RookMoved [2][2]bool // [colour][side]
}

// MarkKingMoved records that the colour's king has left its home square.
func (c *CastlingRights) MarkKingMoved(colour Colour) {
	c.KingMoved[colour] = true
}

// MarkRookMoved records that the rook on the given side has moved or been captured.
func (c *CastlingRights) MarkRookMoved(colour Colour, side CastleSide) {
	c.RookMoved[colour][side] = true
}

// CanCastle reports whether neither the king nor the side's rook has moved.
func (c CastlingRights) CanCastle(colour Colour, side CastleSide) bool {
	return !c.KingMoved[colour] && !c.RookMoved[colour][side]
}

// Board represents a chess board with the state needed to validate moves.
// Board is a plain value: assigning or copying it yields an independent board.
type Board struct {
	// Squares is indexed [file][rank].
	Squares [BoardSize][BoardSize]Piece

	// Castling tracks king and rook movement for both colours.
	Castling CastlingRights

	// Is an en passant capture possible? If so EPTarget is the square the
	// double-stepping pawn skipped over.
	EnPassant bool
	EPTarget  Square
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position and
// clears castling and en passant state.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[file][White.HomeRank()] = W(backRank[file])
		b.Squares[file][White.PawnStartRank()] = W(Pawn)
		b.Squares[file][Black.PawnStartRank()] = B(Pawn)
		b.Squares[file][Black.HomeRank()] = B(backRank[file])
	}
}

// SquareAt returns the piece at the given coordinates, failing with
// ErrOutOfBounds when they are off the board.
func (b *Board) SquareAt(file, rank int) (Piece, error) {
	sq := Square{File: file, Rank: rank}
	if !sq.Valid() {
		return NoPiece, fmt.Errorf("%s: %w", sq, errors.ErrOutOfBounds)
	}
	return b.Squares[file][rank], nil
}

// Get returns the piece on sq, or NoPiece if sq is off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq.File][sq.Rank]
}

// Place puts a piece on sq, replacing whatever was there.
func (b *Board) Place(sq Square, p Piece) {
	if sq.Valid() {
		b.Squares[sq.File][sq.Rank] = p
	}
}

// Remove empties sq and returns the piece that was on it.
func (b *Board) Remove(sq Square) Piece {
	p := b.Get(sq)
	b.Place(sq, NoPiece)
	return p
}

// Move relocates the piece on from to to and returns the piece that was
// previously on to.
func (b *Board) Move(from, to Square) Piece {
	captured := b.Get(to)
	b.Place(to, b.Remove(from))
	return captured
}

// IsOccupiedBySameColour reports whether both squares hold pieces of one colour.
func (b *Board) IsOccupiedBySameColour(a, c Square) bool {
	pa, pc := b.Get(a), b.Get(c)
	if pa.IsEmpty() || pc.IsEmpty() {
		return false
	}
	return pa.Colour == pc.Colour
}

// IsPathClear reports whether every square strictly between from and to is
// empty. The squares must share a rank, file or diagonal; otherwise the
// path is reported as blocked. Adjacent squares always have a clear path.
func (b *Board) IsPathClear(from, to Square) bool {
	df := to.File - from.File
	dr := to.Rank - from.Rank
	if df != 0 && dr != 0 && abs(df) != abs(dr) {
		return false
	}

	stepFile, stepRank := sign(df), sign(dr)
	for sq := from.Offset(stepFile, stepRank); sq != to; sq = sq.Offset(stepFile, stepRank) {
		if !sq.Valid() {
			return false
		}
		if !b.Get(sq).IsEmpty() {
			return false
		}
	}
	return true
}

// FindKing locates the king of the given colour.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for _, sq := range AllSquares() {
		if b.Get(sq).Is(King, colour) {
			return sq, true
		}
	}
	return Square{}, false
}

// PiecesOf returns the squares occupied by pieces of the given colour.
func (b *Board) PiecesOf(colour Colour) []Square {
	var squares []Square
	for _, sq := range AllSquares() {
		p := b.Get(sq)
		if !p.IsEmpty() && p.Colour == colour {
			squares = append(squares, sq)
		}
	}
	return squares
}

// Count returns the number of pieces of the given colour.
func (b *Board) Count(colour Colour) int {
	return len(b.PiecesOf(colour))
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Snapshot is a read-only view of piece placement, indexed [file][rank].
type Snapshot [BoardSize][BoardSize]Piece

// At returns the piece on sq, or NoPiece if sq is off the board.
func (s Snapshot) At(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return s[sq.File][sq.Rank]
}

// Snapshot returns a copy of the piece placement for renderers.
func (b *Board) Snapshot() Snapshot {
	return Snapshot(b.Squares)
}

// String draws the board from White's point of view, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte(RankBase + rank))
		sb.WriteByte(' ')
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(b.Squares[file][rank].FENLetter())
			if file < BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
