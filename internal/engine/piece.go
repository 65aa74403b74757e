package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

func validateKnight(from, to chess.Square) (Verdict, error) {
	if !isKnightJump(delta(from, to)) {
		return Verdict{}, illegal(chess.Knight, from, to)
	}
	return Verdict{}, nil
}

func validateBishop(board *chess.Board, from, to chess.Square) (Verdict, error) {
	if !isDiagonal(delta(from, to)) || !board.IsPathClear(from, to) {
		return Verdict{}, illegal(chess.Bishop, from, to)
	}
	return Verdict{}, nil
}

func validateRook(board *chess.Board, from, to chess.Square) (Verdict, error) {
	if !isStraight(delta(from, to)) || !board.IsPathClear(from, to) {
		return Verdict{}, illegal(chess.Rook, from, to)
	}
	return Verdict{}, nil
}

// validateQueen accepts any rook or bishop line with a clear path.
func validateQueen(board *chess.Board, from, to chess.Square) (Verdict, error) {
	df, dr := delta(from, to)
	if !(isStraight(df, dr) || isDiagonal(df, dr)) || !board.IsPathClear(from, to) {
		return Verdict{}, illegal(chess.Queen, from, to)
	}
	return Verdict{}, nil
}
