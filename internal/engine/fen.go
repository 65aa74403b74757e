package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Setup is a position decoded from FEN.
type Setup struct {
	Board      *chess.Board
	ToMove     chess.Colour
	MoveNumber int
}

// pieceKinds maps FEN letters (either case) to piece kinds.
var pieceKinds = map[byte]chess.Kind{
	'p': chess.Pawn,
	'n': chess.Knight,
	'b': chess.Bishop,
	'r': chess.Rook,
	'q': chess.Queen,
	'k': chess.King,
}

// ParseFEN decodes a FEN string. Only the placement field is required; the
// side to move defaults to White and the move number to 1. The halfmove
// clock is accepted and ignored.
func ParseFEN(fen string) (*Setup, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	setup := &Setup{Board: chess.NewBoard(), ToMove: chess.White, MoveNumber: 1}

	if err := parsePiecePositions(setup.Board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(setup, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(setup.Board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(setup, parts); err != nil {
		return nil, err
	}
	if err := parseMoveNumber(setup, parts); err != nil {
		return nil, err
	}

	return setup, nil
}

// parsePiecePositions fills the board from the placement field, rank 8 first.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks in %q: %w", len(ranks), positions, errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind, ok := pieceKinds[toLower(c)]
			if !ok {
				return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
			}
			colour := chess.White
			if c >= 'a' {
				colour = chess.Black
			}
			board.Place(chess.Sq(file, rank), chess.Piece{Kind: kind, Colour: colour})
			file++
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

func parseSideToMove(setup *Setup, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		setup.ToMove = chess.White
	case "b":
		setup.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move %q: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights starts from "nothing may castle" and clears the flags
// for each letter present. A king or rook that is not on its home square
// cannot castle whatever the field says.
func parseCastlingRights(board *chess.Board, parts []string) error {
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		for _, side := range []chess.CastleSide{chess.QueenSide, chess.KingSide} {
			board.Castling.MarkRookMoved(c, side)
		}
	}

	if len(parts) >= 3 && parts[2] != "-" {
		for i := 0; i < len(parts[2]); i++ {
			var colour chess.Colour
			var side chess.CastleSide
			switch parts[2][i] {
			case 'K':
				colour, side = chess.White, chess.KingSide
			case 'Q':
				colour, side = chess.White, chess.QueenSide
			case 'k':
				colour, side = chess.Black, chess.KingSide
			case 'q':
				colour, side = chess.Black, chess.QueenSide
			default:
				return fmt.Errorf("invalid castling character %q: %w", parts[2][i], errors.ErrInvalidFEN)
			}
			board.Castling.RookMoved[colour][side] = false
		}
	}

	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if !board.Get(chess.Sq(chess.KingHomeFile, c.HomeRank())).Is(chess.King, c) {
			board.Castling.MarkKingMoved(c)
		}
		for _, side := range []chess.CastleSide{chess.QueenSide, chess.KingSide} {
			if !board.Get(chess.Sq(side.RookHomeFile(), c.HomeRank())).Is(chess.Rook, c) {
				board.Castling.MarkRookMoved(c, side)
			}
		}
	}
	return nil
}

// parseEnPassant accepts the target square only on the rank a double step
// by the side that just moved would have skipped.
func parseEnPassant(setup *Setup, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}
	mover := setup.ToMove.Opposite()
	if sq.Rank != mover.PawnStartRank()+mover.PawnDirection() {
		return fmt.Errorf("en passant square %s on wrong rank: %w", sq, errors.ErrInvalidFEN)
	}
	setup.Board.EnPassant = true
	setup.Board.EPTarget = sq
	return nil
}

func parseMoveNumber(setup *Setup, parts []string) error {
	if len(parts) < 6 {
		return nil
	}
	n, err := strconv.Atoi(parts[5])
	if err != nil || n < 1 {
		return fmt.Errorf("invalid move number %q: %w", parts[5], errors.ErrInvalidFEN)
	}
	setup.MoveNumber = n
	return nil
}

// BoardToFEN encodes a position as FEN. The halfmove clock is not tracked
// and is always written as 0.
func BoardToFEN(board *chess.Board, toMove chess.Colour, moveNumber int) string {
	var sb strings.Builder

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			p := board.Get(chess.Sq(file, rank))
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.FENLetter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if toMove == chess.White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	writeCastlingRights(&sb, board)

	sb.WriteByte(' ')
	if board.EnPassant {
		sb.WriteString(board.EPTarget.String())
	} else {
		sb.WriteByte('-')
	}

	fmt.Fprintf(&sb, " 0 %d", moveNumber)
	return sb.String()
}

func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	rights := []struct {
		colour chess.Colour
		side   chess.CastleSide
		letter byte
	}{
		{chess.White, chess.KingSide, 'K'},
		{chess.White, chess.QueenSide, 'Q'},
		{chess.Black, chess.KingSide, 'k'},
		{chess.Black, chess.QueenSide, 'q'},
	}

	wrote := false
	for _, r := range rights {
		if board.Castling.CanCastle(r.colour, r.side) {
			sb.WriteByte(r.letter)
			wrote = true
		}
	}
	if !wrote {
		sb.WriteByte('-')
	}
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
