package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// IsInCheck reports whether the given colour's king is attacked.
// A board without that king reports true along with ErrKingMissing, so a
// caller that ignores the error still refuses the position.
func IsInCheck(board *chess.Board, colour chess.Colour) (bool, error) {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return true, fmt.Errorf("%v: %w", colour, errors.ErrKingMissing)
	}
	return isAttackedBy(board, kingSq, colour.Opposite()), nil
}

// isAttackedBy reports whether any piece of byColour could move onto the
// occupied square sq by movement rules alone. Each probe validates against
// the unmodified board; nothing is applied.
func isAttackedBy(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for _, from := range board.PiecesOf(byColour) {
		if _, err := ValidateMove(board, from, sq, byColour); err == nil {
			return true
		}
	}
	return false
}

// Attackers returns the squares of byColour pieces that attack sq.
func Attackers(board *chess.Board, sq chess.Square, byColour chess.Colour) []chess.Square {
	var squares []chess.Square
	for _, from := range board.PiecesOf(byColour) {
		if _, err := ValidateMove(board, from, sq, byColour); err == nil {
			squares = append(squares, from)
		}
	}
	return squares
}
