package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// IsLegal reports whether the piece on from may move to to: the move must
// satisfy its piece's movement rules and must not leave the mover's own
// king attacked. The board is not modified.
func IsLegal(board *chess.Board, from, to chess.Square) (Verdict, error) {
	if !from.Valid() || !to.Valid() {
		return Verdict{}, fmt.Errorf("%s-%s: %w", from, to, errors.ErrOutOfBounds)
	}
	piece := board.Get(from)
	if piece.IsEmpty() {
		return Verdict{}, fmt.Errorf("%s: %w", from, errors.ErrNoPieceAtSource)
	}

	v, err := ValidateMove(board, from, to, piece.Colour)
	if err != nil {
		return Verdict{}, err
	}

	exposed, err := speculate(board, func(scratch *chess.Board) (bool, error) {
		if v.Special == Castling {
			scratch.Move(from, to)
		} else {
			applyMove(scratch, from, to, v)
		}
		return IsInCheck(scratch, piece.Colour)
	})
	if err != nil {
		return Verdict{}, err
	}
	if exposed {
		return Verdict{}, fmt.Errorf("%v %s-%s: %w", piece.Kind, from, to, errors.ErrMovesIntoCheck)
	}
	return v, nil
}

// speculate runs probe against a scratch copy of board. The caller's board
// is never handed to probe, so nothing needs restoring on any exit path.
func speculate(board *chess.Board, probe func(scratch *chess.Board) (bool, error)) (bool, error) {
	return probe(board.Copy())
}

// LegalDestinations returns every square the piece on from can legally move
// to, in a1..h8 order. It returns nil for an empty or off-board square.
func LegalDestinations(board *chess.Board, from chess.Square) []chess.Square {
	if board.Get(from).IsEmpty() {
		return nil
	}
	var squares []chess.Square
	for _, to := range chess.AllSquares() {
		if _, err := IsLegal(board, from, to); err == nil {
			squares = append(squares, to)
		}
	}
	return squares
}

// LegalMoves returns every legal move for the given colour.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.MovePair {
	var moves []chess.MovePair
	for _, from := range board.PiecesOf(colour) {
		for _, to := range LegalDestinations(board, from) {
			moves = append(moves, chess.MovePair{From: from, To: to})
		}
	}
	return moves
}

// HasLegalMoves reports whether the given colour has at least one legal move.
// It stops at the first one found.
func HasLegalMoves(board *chess.Board, colour chess.Colour) (bool, error) {
	for _, from := range board.PiecesOf(colour) {
		for _, to := range chess.AllSquares() {
			_, err := IsLegal(board, from, to)
			if err == nil {
				return true, nil
			}
			if errors.Is(err, errors.ErrKingMissing) {
				return false, err
			}
		}
	}
	return false, nil
}
