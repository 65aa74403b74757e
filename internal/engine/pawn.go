package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// validatePawn handles single and double steps, diagonal captures,
// en passant and promotion.
func validatePawn(board *chess.Board, from, to chess.Square, colour chess.Colour) (Verdict, error) {
	dir := colour.PawnDirection()
	df, dr := delta(from, to)
	target := board.Get(to)

	var v Verdict
	switch {
	case df == 0 && dr == dir:
		if !target.IsEmpty() {
			return Verdict{}, illegal(chess.Pawn, from, to)
		}

	case df == 0 && dr == 2*dir:
		if from.Rank != colour.PawnStartRank() ||
			!board.Get(from.Offset(0, dir)).IsEmpty() || !target.IsEmpty() {
			return Verdict{}, illegal(chess.Pawn, from, to)
		}
		v.Special = DoubleStep

	case abs(df) == 1 && dr == dir:
		switch {
		case !target.IsEmpty() && target.Colour != colour:
		case target.IsEmpty() && isEnPassant(board, from, to, colour):
			v.Special = EnPassantCapture
		default:
			return Verdict{}, illegal(chess.Pawn, from, to)
		}

	default:
		return Verdict{}, illegal(chess.Pawn, from, to)
	}

	v.Promotion = to.Rank == colour.PromotionRank()
	return v, nil
}

// isEnPassant reports whether a diagonal pawn step onto an empty square
// captures the pawn that double-stepped on the previous ply.
func isEnPassant(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	if !board.EnPassant || board.EPTarget != to {
		return false
	}
	victim := board.Get(chess.Sq(to.File, from.Rank))
	return victim.Is(chess.Pawn, colour.Opposite())
}
