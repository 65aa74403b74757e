package worker

import (
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Replayer turns a line of coordinate moves into a session.
type Replayer struct {
	startFEN string
	logger   *zap.Logger
}

// NewReplayer creates a Replayer. An empty startFEN means the standard
// initial position; a nil logger discards output.
func NewReplayer(startFEN string, logger *zap.Logger) *Replayer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Replayer{startFEN: startFEN, logger: logger}
}

// Process replays one item, stopping at the first rejected move.
// It has the ProcessFunc signature.
func (r *Replayer) Process(item WorkItem) ProcessResult {
	result := ProcessResult{Index: item.Index, Line: item.Line}

	session, err := r.newSession()
	if err != nil {
		result.Error = &errors.GameError{Err: err, GameNum: item.Index + 1, Line: item.Line}
		return result
	}
	result.Session = session

	for _, tok := range strings.Fields(item.Text) {
		if isMoveNumber(tok) {
			continue
		}
		if _, err := session.SubmitMoveText(tok); err != nil {
			result.Error = &errors.GameError{Err: err, GameNum: item.Index + 1, Line: item.Line}
			break
		}
	}

	result.Records = session.History()
	return result
}

func (r *Replayer) newSession() (*engine.Session, error) {
	opts := []engine.Option{engine.WithLogger(r.logger)}
	if r.startFEN == "" {
		return engine.NewGame(opts...), nil
	}
	return engine.NewGameFromFEN(r.startFEN, opts...)
}

// isMoveNumber reports whether tok is a move number such as "12." or "3...".
func isMoveNumber(tok string) bool {
	digits := strings.TrimRight(tok, ".")
	if digits == tok || digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// Lines splits input text into work items, skipping blank lines and lines
// starting with '#'.
func Lines(text string) []WorkItem {
	var items []WorkItem
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, WorkItem{Index: len(items), Line: i + 1, Text: line})
	}
	return items
}
