// Package engine provides chess move validation, check detection and the
// game session that commits moves.
package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Special classifies the side effects a move has beyond relocating one piece.
type Special int

const (
	NoSpecial Special = iota
	DoubleStep
	EnPassantCapture
	Castling
)

// String returns the name of the special move class.
func (s Special) String() string {
	switch s {
	case DoubleStep:
		return "double step"
	case EnPassantCapture:
		return "en passant"
	case Castling:
		return "castling"
	}
	return "normal"
}

// Verdict describes a move that passed validation. It carries everything
// needed to apply the move and render its notation.
type Verdict struct {
	Piece     chess.Piece
	Special   Special
	Side      chess.CastleSide // only meaningful for Castling
	Capture   bool
	Promotion bool
}

// ValidateMove checks whether the piece on from may move to to by the
// movement rules of its kind. King safety is not considered here; see IsLegal.
func ValidateMove(board *chess.Board, from, to chess.Square, colour chess.Colour) (Verdict, error) {
	if !from.Valid() || !to.Valid() {
		return Verdict{}, fmt.Errorf("%s-%s: %w", from, to, errors.ErrOutOfBounds)
	}

	piece := board.Get(from)
	if piece.IsEmpty() {
		return Verdict{}, fmt.Errorf("%s: %w", from, errors.ErrNoPieceAtSource)
	}
	if piece.Colour != colour {
		return Verdict{}, fmt.Errorf("%v on %s: %w", piece, from, errors.ErrWrongSideToMove)
	}
	if from == to {
		return Verdict{}, illegal(piece.Kind, from, to)
	}
	castle := piece.Kind == chess.King && isCastlingMove(from, to, colour)
	if !castle && board.IsOccupiedBySameColour(from, to) {
		return Verdict{}, illegal(piece.Kind, from, to)
	}

	var (
		v   Verdict
		err error
	)
	switch piece.Kind {
	case chess.Pawn:
		v, err = validatePawn(board, from, to, colour)
	case chess.Knight:
		v, err = validateKnight(from, to)
	case chess.Bishop:
		v, err = validateBishop(board, from, to)
	case chess.Rook:
		v, err = validateRook(board, from, to)
	case chess.Queen:
		v, err = validateQueen(board, from, to)
	case chess.King:
		v, err = validateKing(board, from, to, colour)
	default:
		err = illegal(piece.Kind, from, to)
	}
	if err != nil {
		return Verdict{}, err
	}

	v.Piece = piece
	v.Capture = v.Special == EnPassantCapture || !board.Get(to).IsEmpty()
	return v, nil
}

// illegal builds the geometry rejection for a piece.
func illegal(kind chess.Kind, from, to chess.Square) error {
	return fmt.Errorf("%v %s-%s: %w", kind, from, to, errors.ErrIllegalGeometry)
}
