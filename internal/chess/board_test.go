package chess

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for _, sq := range AllSquares() {
			if got := b.Get(sq); !got.IsEmpty() {
				t.Errorf("Get(%s) = %v; want Empty", sq, got)
			}
		}
	})

	t.Run("no en passant", func(t *testing.T) {
		if b.EnPassant {
			t.Error("EnPassant = true; want false")
		}
	})

	t.Run("castling available", func(t *testing.T) {
		for _, c := range []Colour{White, Black} {
			for _, side := range []CastleSide{QueenSide, KingSide} {
				if !b.Castling.CanCastle(c, side) {
					t.Errorf("CanCastle(%v, %v) = false; want true", c, side)
				}
			}
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		name  string
		sq    string
		piece Piece
	}{
		// White back rank
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white bishop f1", "f1", W(Bishop)},
		{"white knight g1", "g1", W(Knight)},
		{"white rook h1", "h1", W(Rook)},
		// Black back rank
		{"black rook a8", "a8", B(Rook)},
		{"black knight b8", "b8", B(Knight)},
		{"black bishop c8", "c8", B(Bishop)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"black bishop f8", "f8", B(Bishop)},
		{"black knight g8", "g8", B(Knight)},
		{"black rook h8", "h8", B(Rook)},
		// Middle of the board
		{"empty e4", "e4", NoPiece},
		{"empty d5", "d5", NoPiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Get(MustParseSquare(tt.sq)); got != tt.piece {
				t.Errorf("Get(%s) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}

	t.Run("pawn ranks", func(t *testing.T) {
		for file := 0; file < BoardSize; file++ {
			if got := b.Get(Sq(file, 1)); got != W(Pawn) {
				t.Errorf("Get(%s) = %v; want White Pawn", Sq(file, 1), got)
			}
			if got := b.Get(Sq(file, 6)); got != B(Pawn) {
				t.Errorf("Get(%s) = %v; want Black Pawn", Sq(file, 6), got)
			}
		}
	})

	t.Run("sixteen pieces per side", func(t *testing.T) {
		if got := b.Count(White); got != 16 {
			t.Errorf("Count(White) = %d; want 16", got)
		}
		if got := b.Count(Black); got != 16 {
			t.Errorf("Count(Black) = %d; want 16", got)
		}
	})
}

func TestSquareAt(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name       string
		file, rank int
		want       Piece
		wantErr    bool
	}{
		{"a1 rook", 0, 0, W(Rook), false},
		{"e8 king", 4, 7, B(King), false},
		{"file below zero", -1, 0, NoPiece, true},
		{"rank above seven", 0, 8, NoPiece, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.SquareAt(tt.file, tt.rank)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SquareAt(%d, %d) error = %v; wantErr %v", tt.file, tt.rank, err, tt.wantErr)
			}
			if err != nil && !stderrors.Is(err, errors.ErrOutOfBounds) {
				t.Errorf("SquareAt(%d, %d) error = %v; want ErrOutOfBounds", tt.file, tt.rank, err)
			}
			if got != tt.want {
				t.Errorf("SquareAt(%d, %d) = %v; want %v", tt.file, tt.rank, got, tt.want)
			}
		})
	}
}

func TestIsPathClear(t *testing.T) {
	b := NewBoard()
	b.Place(MustParseSquare("d4"), W(Pawn))

	tests := []struct {
		name     string
		from, to string
		want     bool
	}{
		{"adjacent", "a1", "a2", true},
		{"open file", "a1", "a8", true},
		{"blocked rank", "a4", "h4", false},
		{"blocked diagonal", "a1", "h8", false},
		{"stops at blocker", "a4", "d4", true},
		{"open anti-diagonal", "h7", "b1", true},
		{"not aligned", "a1", "b3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.IsPathClear(MustParseSquare(tt.from), MustParseSquare(tt.to))
			if got != tt.want {
				t.Errorf("IsPathClear(%s, %s) = %v; want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsOccupiedBySameColour(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		a, c string
		want bool
	}{
		{"a1", "h1", true},
		{"a1", "a8", false},
		{"a1", "e4", false},
		{"e4", "d5", false},
	}

	for _, tt := range tests {
		got := b.IsOccupiedBySameColour(MustParseSquare(tt.a), MustParseSquare(tt.c))
		if got != tt.want {
			t.Errorf("IsOccupiedBySameColour(%s, %s) = %v; want %v", tt.a, tt.c, got, tt.want)
		}
	}
}

func TestBoardCopyIsIndependent(t *testing.T) {
	b := NewInitialBoard()
	c := b.Copy()

	c.Move(MustParseSquare("e2"), MustParseSquare("e4"))
	c.Castling.MarkKingMoved(White)
	c.EnPassant = true

	if b.Get(MustParseSquare("e4")) != NoPiece {
		t.Error("original board changed after moving on the copy")
	}
	if !b.Castling.CanCastle(White, KingSide) {
		t.Error("original castling rights changed after updating the copy")
	}
	if b.EnPassant {
		t.Error("original en passant flag changed after updating the copy")
	}
}

func TestMoveAndRemove(t *testing.T) {
	b := NewInitialBoard()

	captured := b.Move(MustParseSquare("d1"), MustParseSquare("d7"))
	if captured != B(Pawn) {
		t.Errorf("Move() captured = %v; want Black Pawn", captured)
	}
	if got := b.Get(MustParseSquare("d7")); got != W(Queen) {
		t.Errorf("Get(d7) = %v; want White Queen", got)
	}
	if got := b.Remove(MustParseSquare("d7")); got != W(Queen) {
		t.Errorf("Remove(d7) = %v; want White Queen", got)
	}
	if got := b.Get(MustParseSquare("d7")); !got.IsEmpty() {
		t.Errorf("Get(d7) after Remove = %v; want Empty", got)
	}
}

func TestFindKing(t *testing.T) {
	b := NewInitialBoard()
	sq, ok := b.FindKing(Black)
	if !ok || sq != MustParseSquare("e8") {
		t.Errorf("FindKing(Black) = %v, %v; want e8, true", sq, ok)
	}

	b.Remove(MustParseSquare("e1"))
	if _, ok := b.FindKing(White); ok {
		t.Error("FindKing(White) found a king on a board without one")
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr bool
	}{
		{"a1", Sq(0, 0), false},
		{"h8", Sq(7, 7), false},
		{"e4", Sq(4, 3), false},
		{"i1", Square{}, true},
		{"a9", Square{}, true},
		{"e", Square{}, true},
	}

	for _, tt := range tests {
		got, err := ParseSquare(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSquare(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSquare(%q) = %v; want %v", tt.in, got, tt.want)
		}
		if err == nil && got.String() != tt.in {
			t.Errorf("ParseSquare(%q).String() = %q", tt.in, got.String())
		}
	}
}

func TestPieceFENLetter(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{W(King), 'K'},
		{B(Queen), 'q'},
		{W(Pawn), 'P'},
		{B(Knight), 'n'},
		{NoPiece, '.'},
	}
	for _, tt := range tests {
		if got := tt.piece.FENLetter(); got != tt.want {
			t.Errorf("%v.FENLetter() = %c; want %c", tt.piece, got, tt.want)
		}
	}
}
