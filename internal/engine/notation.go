package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Notation renders a validated move in algebraic notation without the check
// suffix. board must be the position before the move is applied.
func Notation(board *chess.Board, from, to chess.Square, v Verdict) string {
	if v.Special == Castling {
		return v.Side.String()
	}

	var sb strings.Builder
	if v.Piece.Kind == chess.Pawn {
		if v.Capture {
			sb.WriteByte(from.FileLetter())
			sb.WriteByte('x')
		}
		sb.WriteString(to.String())
		if v.Promotion {
			sb.WriteString("=Q")
		}
		return sb.String()
	}

	sb.WriteByte(v.Piece.Kind.Letter())
	if v.Piece.Kind != chess.King {
		sb.WriteString(Disambiguation(board, from, to))
	}
	if v.Capture {
		sb.WriteByte('x')
	}
	sb.WriteString(to.String())
	return sb.String()
}

// checkSuffix returns "#" for mate, "+" for check, "" otherwise.
func checkSuffix(check, mate bool) string {
	switch {
	case mate:
		return "#"
	case check:
		return "+"
	}
	return ""
}

// Disambiguation returns the qualifier needed to tell the piece on from apart
// from other pieces of the same kind and colour that can legally reach to.
//
// A rival on the mover's file calls for the rank, a rival on its rank calls
// for the file, and a rival on neither calls for both. When only one rival
// exists and it shares neither line, the file alone is enough. When several
// rivals ask for both, the full source square is written.
func Disambiguation(board *chess.Board, from, to chess.Square) string {
	mover := board.Get(from)

	var rivals int
	var needFile, needRank bool
	for _, sq := range board.PiecesOf(mover.Colour) {
		if sq == from || board.Get(sq) != mover {
			continue
		}
		if _, err := IsLegal(board, sq, to); err != nil {
			continue
		}
		rivals++
		switch {
		case sq.File == from.File:
			needRank = true
		case sq.Rank == from.Rank:
			needFile = true
		default:
			needFile = true
			needRank = true
		}
	}

	switch {
	case rivals == 0:
		return ""
	case rivals == 1 && needFile && needRank:
		return string(from.FileLetter())
	case needFile && needRank:
		return from.String()
	case needFile:
		return string(from.FileLetter())
	default:
		return string(from.RankDigit())
	}
}
