package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Square addresses a board cell by file (0 = a) and rank (0 = 1).
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{File: file, Rank: rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{s.FileLetter(), s.RankDigit()})
}

// FileLetter returns 'a'..'h'.
func (s Square) FileLetter() byte {
	return byte(FileBase + s.File)
}

// RankDigit returns '1'..'8'.
func (s Square) RankDigit() byte {
	return byte(RankBase + s.Rank)
}

// Offset returns the square shifted by the given file and rank deltas.
// The result may be off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// ParseSquare converts an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	name = strings.TrimSpace(name)
	if len(name) != 2 {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	sq := Square{File: int(name[0]) - FileBase, Rank: int(name[1]) - RankBase}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on error.
// It is intended for constants and tests.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

// AllSquares returns every square from a1 to h8, rank by rank.
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			squares = append(squares, Square{File: file, Rank: rank})
		}
	}
	return squares
}
