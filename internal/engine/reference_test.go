package engine

import (
	"strings"
	"testing"

	nchess "github.com/corentings/chess/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// TestAgainstReferenceGenerator replays games through the session and an
// independent move generator, comparing legal moves before every ply and
// the notation of every move played. Castling moves are left out of the
// move comparison because this engine does not test the squares the king
// crosses, and underpromotions because only queens are produced here.
func TestAgainstReferenceGenerator(t *testing.T) {
	games := []struct {
		name  string
		moves []string
	}{
		{
			name: "italian with both sides castling",
			moves: []string{
				"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6", "e1g1", "f8c5",
				"d2d3", "d7d6", "c1g5", "h7h6", "g5f6", "d8f6", "b1c3", "c8g4",
				"c3d5", "f6d8", "c2c3", "e8g8",
			},
		},
		{
			name:  "en passant",
			moves: []string{"e2e4", "a7a6", "e4e5", "d7d5", "e5d6", "c7d6"},
		},
		{
			name:  "fools mate",
			moves: []string{"f2f3", "e7e5", "g2g4", "d8h4"},
		},
		{
			name:  "promotion with capture",
			moves: []string{"a2a4", "b7b5", "a4b5", "a7a6", "b5a6", "c8b7", "a6b7", "b8c6", "b7a8"},
		},
		{
			name:  "scholars mate",
			moves: []string{"e2e4", "e7e5", "d1h5", "b8c6", "f1c4", "g8f6", "h5f7"},
		},
	}

	for _, tt := range games {
		t.Run(tt.name, func(t *testing.T) {
			s := NewGame()
			ref := nchess.NewGame()

			for i, uci := range tt.moves {
				pos := ref.Position()
				if diff := cmp.Diff(referenceMoves(pos), engineMoves(s), cmpopts.SortSlices(lessString)); diff != "" {
					t.Fatalf("ply %d legal moves mismatch (-reference +engine):\n%s", i+1, diff)
				}

				refUCI := uci
				if isPromotionText(s, uci) {
					refUCI += "q"
				}
				mv, err := nchess.UCINotation{}.Decode(pos, refUCI)
				if err != nil {
					t.Fatalf("reference rejected %s: %v", refUCI, err)
				}
				wantSAN := nchess.AlgebraicNotation{}.Encode(pos, mv)
				if err := ref.PushNotationMove(refUCI, nchess.UCINotation{}, nil); err != nil {
					t.Fatalf("reference rejected %s: %v", refUCI, err)
				}

				rec, err := s.SubmitMoveText(uci)
				if err != nil {
					t.Fatalf("SubmitMoveText(%s) error = %v", uci, err)
				}
				if rec.Notation != wantSAN {
					t.Errorf("ply %d notation = %q; want %q", i+1, rec.Notation, wantSAN)
				}
			}

			want := strings.Fields(ref.Position().String())[:3]
			got := strings.Fields(s.FEN())[:3]
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("final FEN mismatch (-reference +engine):\n%s", diff)
			}
		})
	}
}

func referenceMoves(pos *nchess.Position) []string {
	var moves []string
	for _, mv := range pos.ValidMoves() {
		if mv.HasTag(nchess.KingSideCastle) || mv.HasTag(nchess.QueenSideCastle) {
			continue
		}
		if p := mv.Promo(); p != nchess.NoPieceType && p != nchess.Queen {
			continue
		}
		moves = append(moves, mv.S1().String()+mv.S2().String())
	}
	return moves
}

func engineMoves(s *Session) []string {
	if s.IsGameOver() {
		return nil
	}
	board := s.Board()
	var moves []string
	for _, m := range LegalMoves(board, s.SideToMove()) {
		if board.Get(m.From).Kind == chess.King && abs(m.To.File-m.From.File) == 2 {
			continue
		}
		moves = append(moves, m.String())
	}
	return moves
}

func isPromotionText(s *Session, uci string) bool {
	lastRank := uci[3] == '8' || uci[3] == '1'
	return lastRank && s.Snapshot().At(sq(uci[:2])).Kind == chess.Pawn
}

func lessString(a, b string) bool { return a < b }
