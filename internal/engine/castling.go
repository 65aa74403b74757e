package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// validateKing accepts single steps and the two-square castling move.
func validateKing(board *chess.Board, from, to chess.Square, colour chess.Colour) (Verdict, error) {
	df, dr := delta(from, to)
	if isKingStep(df, dr) {
		return Verdict{}, nil
	}
	if isCastlingMove(from, to, colour) {
		return validateCastling(board, from, to, colour)
	}
	return Verdict{}, illegal(chess.King, from, to)
}

// isCastlingMove reports whether from-to is a two-file king move along the
// home rank starting on the king's home square.
func isCastlingMove(from, to chess.Square, colour chess.Colour) bool {
	home := chess.Sq(chess.KingHomeFile, colour.HomeRank())
	return from == home && to.Rank == home.Rank && abs(to.File-from.File) == 2
}

// validateCastling checks that neither participant has moved, that the rook
// is in place and that every square between king and rook is empty. The
// landing square is included in that path, so a piece of either colour on it
// fails the precondition.
//
// Squares the king crosses are not tested for attack. IsLegal tests the
// landing square with only the king moved and the rook still on its home
// square, so a rook that would shield the king after castling does not make
// castling out of check legal.
func validateCastling(board *chess.Board, from, to chess.Square, colour chess.Colour) (Verdict, error) {
	side := chess.QueenSide
	if to.File > from.File {
		side = chess.KingSide
	}

	if board.Castling.KingMoved[colour] {
		return Verdict{}, castlingFailed(colour, side, "king has moved")
	}
	if board.Castling.RookMoved[colour][side] {
		return Verdict{}, castlingFailed(colour, side, "rook has moved")
	}

	rookSq := chess.Sq(side.RookHomeFile(), from.Rank)
	if !board.Get(rookSq).Is(chess.Rook, colour) {
		return Verdict{}, castlingFailed(colour, side, "rook is missing")
	}
	if !board.IsPathClear(from, rookSq) {
		return Verdict{}, castlingFailed(colour, side, "path is occupied")
	}

	return Verdict{Special: Castling, Side: side}, nil
}

func castlingFailed(colour chess.Colour, side chess.CastleSide, reason string) error {
	return fmt.Errorf("%v %v: %s: %w", colour, side, reason, errors.ErrCastlingPreconditionFailed)
}
