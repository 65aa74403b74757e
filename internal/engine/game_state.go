package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCheckmate reports whether the given colour is in check with no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) (bool, error) {
	status, err := positionStatus(board, colour)
	return status == Checkmate, err
}

// Status is the state of a game from the point of view of the side to move.
type Status int

const (
	InProgress Status = iota
	Check
	Checkmate
)

// String returns a human-readable status.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	}
	return "in progress"
}

// positionStatus classifies the position for colour, the side about to move.
func positionStatus(board *chess.Board, colour chess.Colour) (Status, error) {
	check, err := IsInCheck(board, colour)
	if err != nil {
		return InProgress, err
	}
	if !check {
		return InProgress, nil
	}
	hasMoves, err := HasLegalMoves(board, colour)
	if err != nil {
		return InProgress, err
	}
	if !hasMoves {
		return Checkmate, nil
	}
	return Check, nil
}
