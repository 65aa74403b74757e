package hashing

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

var benchFENPositions = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
}

func BenchmarkGenerateZobristHash(b *testing.B) {
	for name, fen := range benchFENPositions {
		b.Run(name, func(b *testing.B) {
			setup, err := engine.ParseFEN(fen)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				GenerateZobristHash(setup.Board, setup.ToMove)
			}
		})
	}
}

func BenchmarkWeakHash(b *testing.B) {
	for name, fen := range benchFENPositions {
		b.Run(name, func(b *testing.B) {
			setup, err := engine.ParseFEN(fen)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				WeakHash(setup.Board)
			}
		})
	}
}

func BenchmarkDuplicateDetector(b *testing.B) {
	s := engine.NewGame()
	for _, mv := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
		if _, err := s.SubmitMoveText(mv); err != nil {
			b.Fatal(err)
		}
	}
	d := NewDuplicateDetector(false, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.CheckAndAdd(s)
	}
}
