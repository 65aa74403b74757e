package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// applyMove performs a validated move on board, including the side effects
// named by the verdict, and returns the piece captured.
func applyMove(board *chess.Board, from, to chess.Square, v Verdict) chess.Piece {
	colour := v.Piece.Colour
	captured := board.Move(from, to)

	switch v.Special {
	case EnPassantCapture:
		captured = board.Remove(chess.Sq(to.File, from.Rank))
	case Castling:
		rank := from.Rank
		board.Move(chess.Sq(v.Side.RookHomeFile(), rank), chess.Sq(v.Side.RookCastledFile(), rank))
	}

	if v.Promotion {
		board.Place(to, chess.Piece{Kind: chess.Queen, Colour: colour})
	}

	updateCastlingRights(board, v.Piece, from, to, captured)

	board.EnPassant = false
	board.EPTarget = chess.Square{}
	if v.Special == DoubleStep {
		board.EnPassant = true
		board.EPTarget = from.Offset(0, colour.PawnDirection())
	}

	return captured
}

// updateCastlingRights marks moved kings and rooks, and rooks captured on
// their home squares.
func updateCastlingRights(board *chess.Board, piece chess.Piece, from, to chess.Square, captured chess.Piece) {
	switch piece.Kind {
	case chess.King:
		board.Castling.MarkKingMoved(piece.Colour)
	case chess.Rook:
		markRookSquare(board, piece.Colour, from)
	}
	if captured.Kind == chess.Rook {
		markRookSquare(board, captured.Colour, to)
	}
}

func markRookSquare(board *chess.Board, colour chess.Colour, sq chess.Square) {
	if sq.Rank != colour.HomeRank() {
		return
	}
	for _, side := range []chess.CastleSide{chess.QueenSide, chess.KingSide} {
		if sq.File == side.RookHomeFile() {
			board.Castling.MarkRookMoved(colour, side)
		}
	}
}
