package output

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Game       int        `json:"game"`
	Line       int        `json:"line,omitempty"`
	ID         string     `json:"id,omitempty"`
	Moves      []JSONMove `json:"moves"`
	PlyCount   int        `json:"plyCount"`
	Status     string     `json:"status"`
	ToMove     string     `json:"toMove,omitempty"`
	Winner     string     `json:"winner,omitempty"`
	InitialFEN string     `json:"initialFEN,omitempty"`
	FinalFEN   string     `json:"finalFEN,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castle     string `json:"castle,omitempty"`
	EnPassant  bool   `json:"enPassant,omitempty"`
	Check      bool   `json:"check,omitempty"`
	Checkmate  bool   `json:"checkmate,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a replayed game to JSON format.
func GameToJSON(game Game, cfg *config.OutputConfig) *JSONGame {
	jg := &JSONGame{
		Game:  game.Number,
		Line:  game.Line,
		Moves: []JSONMove{},
	}
	if game.Err != nil {
		jg.Error = game.Err.Error()
	}

	s := game.Session
	if s == nil {
		jg.Status = "invalid"
		return jg
	}

	jg.ID = s.ID()
	for _, rec := range s.History() {
		jg.Moves = append(jg.Moves, convertMove(rec))
	}
	jg.PlyCount = len(jg.Moves)
	jg.Status = s.Status().String()

	if winner, ok := s.Winner(); ok {
		jg.Winner = colorName(winner)
	} else {
		jg.ToMove = colorName(s.SideToMove())
	}

	if cfg.ShowFEN {
		jg.FinalFEN = s.FEN()
		if start := s.StartFEN(); start != engine.InitialFEN {
			jg.InitialFEN = start
		}
	}

	return jg
}

// convertMove converts a committed move to JSON format.
func convertMove(rec chess.MoveRecord) JSONMove {
	jm := JSONMove{
		MoveNumber: rec.MoveNumber,
		Color:      colorName(rec.Colour()),
		SAN:        rec.Notation,
		UCI:        rec.UCI(),
		From:       rec.From.String(),
		To:         rec.To.String(),
		Piece:      pieceTypeName(rec.Piece.Kind),
		Captured:   pieceTypeName(rec.Captured),
		EnPassant:  rec.EnPassant,
		Check:      rec.Check,
		Checkmate:  rec.Checkmate,
	}
	if rec.Promotion {
		jm.Promotion = pieceTypeName(chess.Queen)
	}
	if rec.Castle {
		jm.Castle = castleName(rec.CastleSide)
	}
	return jm
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// castleName returns "kingside" or "queenside".
func castleName(side chess.CastleSide) string {
	if side == chess.KingSide {
		return "kingside"
	}
	return "queenside"
}

// pieceTypeName returns the piece type as a string, empty for NoKind.
func pieceTypeName(k chess.Kind) string {
	if k == chess.NoKind {
		return ""
	}
	return strings.ToLower(k.String())
}
