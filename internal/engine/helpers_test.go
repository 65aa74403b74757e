package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func sq(name string) chess.Square {
	return chess.MustParseSquare(name)
}

func squares(names ...string) []chess.Square {
	out := make([]chess.Square, 0, len(names))
	for _, n := range names {
		out = append(out, sq(n))
	}
	return out
}

func mustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	setup, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error = %v", fen, err)
	}
	return setup.Board
}

func mustSession(t *testing.T, fen string) *Session {
	t.Helper()
	s, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error = %v", fen, err)
	}
	return s
}

// play submits coordinate moves and fails the test on the first rejection.
func play(t *testing.T, s *Session, moves ...string) []chess.MoveRecord {
	t.Helper()
	var records []chess.MoveRecord
	for _, m := range moves {
		rec, err := s.SubmitMoveText(m)
		if err != nil {
			t.Fatalf("SubmitMoveText(%q) error = %v", m, err)
		}
		records = append(records, rec)
	}
	return records
}
