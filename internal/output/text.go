package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// OutputGame writes one game as text: a header, the move list, the state
// of the position and any error, followed by a blank line.
func OutputGame(w io.Writer, game Game, cfg *config.OutputConfig) error {
	var sb strings.Builder

	writeHeader(&sb, game)
	if s := game.Session; s != nil {
		writeMoves(&sb, s, cfg.HistoryWindow)
		sb.WriteString(statusLine(s))
		sb.WriteByte('\n')
		if cfg.ShowBoard {
			sb.WriteString(s.Board().String())
		}
		if cfg.ShowFEN {
			fmt.Fprintf(&sb, "FEN: %s\n", s.FEN())
		}
	}
	if game.Err != nil {
		fmt.Fprintf(&sb, "error: %v\n", game.Err)
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeHeader(sb *strings.Builder, game Game) {
	fmt.Fprintf(sb, "Game %d", game.Number)
	if game.Line > 0 {
		fmt.Fprintf(sb, " (line %d)", game.Line)
	}
	sb.WriteByte('\n')
}

// writeMoves writes the last window lines of the move list, with "..."
// standing in for any earlier lines.
func writeMoves(sb *strings.Builder, s *engine.Session, window int) {
	all := s.MoveList()
	visible := s.VisibleMoveList(window)
	if len(visible) < len(all) {
		sb.WriteString("...\n")
	}
	for _, line := range visible {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
}

// statusLine describes the position, e.g. "Black wins by checkmate".
func statusLine(s *engine.Session) string {
	if winner, ok := s.Winner(); ok {
		return fmt.Sprintf("%v wins by checkmate", winner)
	}
	if s.Status() == engine.Check {
		return fmt.Sprintf("%v to move, in check", s.SideToMove())
	}
	return fmt.Sprintf("%v to move", s.SideToMove())
}
