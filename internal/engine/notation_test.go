package engine

import "testing"

func TestNotation(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
		want     string
	}{
		{"pawn push", InitialFEN, "e2", "e4", "e4"},
		{"knight develops", InitialFEN, "g1", "f3", "Nf3"},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4", "d5", "exd5"},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2", "e5", "d6", "exd6"},
		{"promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7", "a8", "a8=Q"},
		{"capture promotion", "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7", "b8", "axb8=Q"},
		{"king step", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "e1", "d2", "Kd2"},
		{"king side castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1", "g1", "O-O"},
		{"queen side castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8", "c8", "O-O-O"},
		{"rook capture", "r3k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "a8", "Rxa8"},
		{"rooks on one rank", "4k3/8/8/8/8/8/8/R4RK1 w - - 0 1", "a1", "c1", "Rac1"},
		{"rooks on one file", "k7/8/R7/8/8/8/8/R3K3 w - - 0 1", "a1", "a3", "R1a3"},
		{"other rook on one file", "k7/8/R7/8/8/8/8/R3K3 w - - 0 1", "a6", "a3", "R6a3"},
		{"knights on neither line", "4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1", "b1", "d2", "Nbd2"},
		{"other knight", "4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1", "f3", "d2", "Nfd2"},
		{"three queens", "7k/8/8/Q7/8/8/8/Q3Q2K w - - 0 1", "a1", "e5", "Qa1e5"},
		{"three queens from file", "7k/8/8/Q7/8/8/8/Q3Q2K w - - 0 1", "e1", "e5", "Qe1e5"},
		{"pinned rival is ignored", "4k3/8/8/b7/8/2N5/8/4K1N1 w - - 0 1", "g1", "e2", "Ne2"},
		{"rival that cannot reach", "4k3/8/8/8/8/8/8/1N2K1N1 w - - 0 1", "g1", "f3", "Nf3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			v, err := IsLegal(board, sq(tt.from), sq(tt.to))
			if err != nil {
				t.Fatalf("IsLegal(%s, %s) unexpected error: %v", tt.from, tt.to, err)
			}
			if got := Notation(board, sq(tt.from), sq(tt.to), v); got != tt.want {
				t.Errorf("Notation(%s, %s) = %q; want %q", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestDisambiguationNoRivals(t *testing.T) {
	board := mustBoard(t, InitialFEN)
	if got := Disambiguation(board, sq("b1"), sq("c3")); got != "" {
		t.Errorf("Disambiguation(b1, c3) = %q; want empty", got)
	}
}

func TestCheckSuffix(t *testing.T) {
	tests := []struct {
		check, mate bool
		want        string
	}{
		{false, false, ""},
		{true, false, "+"},
		{true, true, "#"},
	}
	for _, tt := range tests {
		if got := checkSuffix(tt.check, tt.mate); got != tt.want {
			t.Errorf("checkSuffix(%v, %v) = %q; want %q", tt.check, tt.mate, got, tt.want)
		}
	}
}
