package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// MustSession starts a session from fen, or from the initial position if
// fen is empty. It calls t.Fatal if the position is rejected.
func MustSession(t *testing.T, fen string) *engine.Session {
	t.Helper()
	if fen == "" {
		return engine.NewGame()
	}
	s, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q): %v", fen, err)
	}
	return s
}

// MustMove submits one coordinate move such as "e2e4" and returns its record.
// It calls t.Fatal if the move is rejected.
func MustMove(t *testing.T, s *engine.Session, move string) chess.MoveRecord {
	t.Helper()
	rec, err := s.SubmitMoveText(move)
	if err != nil {
		t.Fatalf("move %q rejected: %v", move, err)
	}
	return rec
}

// MustPlay submits a space-separated line of coordinate moves and returns
// the notation of each.
func MustPlay(t *testing.T, s *engine.Session, line string) []string {
	t.Helper()
	var notation []string
	for _, mv := range strings.Fields(line) {
		notation = append(notation, MustMove(t, s, mv).Notation)
	}
	return notation
}
