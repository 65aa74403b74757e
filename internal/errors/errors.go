// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the move rejection kinds and a structured MoveError that preserves
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for move rejection and setup failures.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a coordinate outside 0-7.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrNoPieceAtSource indicates the source square is empty.
	ErrNoPieceAtSource = errors.New("no piece at source square")

	// ErrWrongSideToMove indicates the piece belongs to the side not on move.
	ErrWrongSideToMove = errors.New("wrong side to move")

	// ErrIllegalGeometry indicates the piece cannot move that way.
	ErrIllegalGeometry = errors.New("illegal move geometry")

	// ErrMovesIntoCheck indicates the move would leave the mover's king attacked.
	ErrMovesIntoCheck = errors.New("move leaves king in check")

	// ErrCastlingPreconditionFailed indicates the king or rook has moved,
	// the path is occupied, or the rook is missing.
	ErrCastlingPreconditionFailed = errors.New("castling precondition failed")

	// ErrKingMissing indicates the board has no king of the queried colour.
	// This is a broken invariant, not a game outcome.
	ErrKingMissing = errors.New("king missing from board")

	// ErrGameOver indicates a move was proposed after checkmate.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a malformed square name.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidMoveText indicates a malformed coordinate move such as "e2e4".
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejection with the move it applies to. It is the value
// returned when a proposed move is not applied.
type MoveError struct {
	Err      error  // The underlying error
	From     string // Source square name (if known)
	To       string // Destination square name (if known)
	Ply      int    // Ply the move would have been (0 if not applicable)
	MoveText string // The raw move text (if the move came from text)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	} else if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")

	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	case context != "":
		return context
	}
	return "move rejected"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// GameError wraps errors with the index of the game in a batch.
type GameError struct {
	Err     error // The underlying error
	GameNum int   // 1-based game number in the input
	Line    int   // Line number in the source (if known)
}

// Error returns a formatted error message including the game number.
func (e *GameError) Error() string {
	context := fmt.Sprintf("game %d", e.GameNum)
	if e.Line > 0 {
		context = fmt.Sprintf("line %d, %s", e.Line, context)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
// It forwards to the standard library so callers need a single import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
