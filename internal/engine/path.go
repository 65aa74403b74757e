package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// delta returns the file and rank distance from one square to another.
func delta(from, to chess.Square) (df, dr int) {
	return to.File - from.File, to.Rank - from.Rank
}

// isStraight reports whether the offset runs along a single rank or file.
func isStraight(df, dr int) bool {
	return (df == 0) != (dr == 0)
}

// isDiagonal reports whether the offset runs along a diagonal.
func isDiagonal(df, dr int) bool {
	return df != 0 && abs(df) == abs(dr)
}

// isKnightJump reports whether the offset is an L-shaped knight jump.
func isKnightJump(df, dr int) bool {
	return abs(df)*abs(dr) == 2
}

// isKingStep reports whether the offset is a single step in any direction.
func isKingStep(df, dr int) bool {
	return abs(df) <= 1 && abs(dr) <= 1 && (df != 0 || dr != 0)
}
