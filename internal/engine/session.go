package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Session is the authoritative state of one game: the board, the side to
// move and the committed history. Every rejected move leaves it unchanged.
// A Session is not safe for concurrent use.
type Session struct {
	id      string
	fixedID bool
	logger  *zap.Logger

	board      chess.Board
	toMove     chess.Colour
	moveNumber int
	status     Status
	mated      chess.Colour // valid when status is Checkmate
	history    []chess.MoveRecord

	start Setup
}

// NewGame starts a session from the standard initial position with White to move.
func NewGame(opts ...Option) *Session {
	s := newSession(opts)
	s.start = Setup{Board: chess.NewInitialBoard(), ToMove: chess.White, MoveNumber: 1}
	s.restart()
	return s
}

// NewGameFromFEN starts a session from an arbitrary position. The position
// must hold exactly one king of each colour, and the side not to move must
// not be in check.
func NewGameFromFEN(fen string, opts ...Option) (*Session, error) {
	setup, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	if err := checkKings(setup.Board); err != nil {
		return nil, err
	}
	exposed, err := IsInCheck(setup.Board, setup.ToMove.Opposite())
	if err != nil {
		return nil, err
	}
	if exposed {
		return nil, fmt.Errorf("%v is in check with %v to move: %w", setup.ToMove.Opposite(), setup.ToMove, errors.ErrInvalidFEN)
	}

	s := newSession(opts)
	s.start = *setup
	s.restart()

	status, err := positionStatus(&s.board, s.toMove)
	if err != nil {
		return nil, err
	}
	s.status = status
	s.mated = s.toMove
	return s, nil
}

func newSession(opts []Option) *Session {
	s := &Session{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// restart restores the starting position and clears history.
func (s *Session) restart() {
	s.board = *s.start.Board.Copy()
	s.toMove = s.start.ToMove
	s.moveNumber = s.start.MoveNumber
	s.status = InProgress
	s.history = nil
	if !s.fixedID {
		s.id = uuid.NewString()
	}
}

// checkKings requires exactly one king per colour.
func checkKings(board *chess.Board) error {
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		kings := 0
		for _, sq := range board.PiecesOf(c) {
			if board.Get(sq).Kind == chess.King {
				kings++
			}
		}
		if kings != 1 {
			return fmt.Errorf("%v has %d kings: %w", c, kings, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// Reset discards the game and returns to the starting position. Sessions
// without a fixed ID get a fresh one.
func (s *Session) Reset() {
	s.restart()
	if status, err := positionStatus(&s.board, s.toMove); err == nil {
		s.status = status
		s.mated = s.toMove
	}
	s.logger.Info("session reset", zap.String("session", s.id))
}

// SubmitMove validates and commits a move for the side to move. On any
// rejection it returns a *errors.MoveError and the session is unchanged.
func (s *Session) SubmitMove(from, to chess.Square) (chess.MoveRecord, error) {
	ply := len(s.history) + 1

	if s.status == Checkmate {
		return s.reject(from, to, ply, errors.ErrGameOver)
	}
	if !from.Valid() || !to.Valid() {
		return s.reject(from, to, ply, errors.ErrOutOfBounds)
	}
	piece := s.board.Get(from)
	if piece.IsEmpty() {
		return s.reject(from, to, ply, errors.ErrNoPieceAtSource)
	}
	if piece.Colour != s.toMove {
		return s.reject(from, to, ply, errors.ErrWrongSideToMove)
	}

	v, err := IsLegal(&s.board, from, to)
	if err != nil {
		return s.reject(from, to, ply, err)
	}

	notation := Notation(&s.board, from, to, v)

	next := s.board
	captured := applyMove(&next, from, to, v)

	opponent := s.toMove.Opposite()
	status, err := positionStatus(&next, opponent)
	if err != nil {
		return s.reject(from, to, ply, err)
	}

	record := chess.MoveRecord{
		Notation:   notation + checkSuffix(status != InProgress, status == Checkmate),
		From:       from,
		To:         to,
		Piece:      piece,
		Captured:   captured.Kind,
		Check:      status != InProgress,
		Checkmate:  status == Checkmate,
		Castle:     v.Special == Castling,
		CastleSide: v.Side,
		EnPassant:  v.Special == EnPassantCapture,
		Promotion:  v.Promotion,
		Ply:        ply,
		MoveNumber: s.moveNumber,
	}

	s.board = next
	s.history = append(s.history, record)
	s.status = status
	s.mated = opponent
	if s.toMove == chess.Black {
		s.moveNumber++
	}
	if status != Checkmate {
		s.toMove = opponent
	}

	s.logger.Debug("move applied",
		zap.String("session", s.id),
		zap.Int("ply", ply),
		zap.String("move", record.Notation),
	)
	if status == Checkmate {
		s.logger.Info("checkmate",
			zap.String("session", s.id),
			zap.Stringer("winner", piece.Colour),
			zap.Int("plies", ply),
		)
	}
	return record, nil
}

// SubmitMoveText parses coordinate move text such as "e2e4" and submits it.
// A trailing promotion letter is accepted only if it is 'q'.
func (s *Session) SubmitMoveText(text string) (chess.MoveRecord, error) {
	from, to, err := ParseCoordinateMove(text)
	if err != nil {
		return chess.MoveRecord{}, &errors.MoveError{Err: err, MoveText: text, Ply: len(s.history) + 1}
	}
	record, err := s.SubmitMove(from, to)
	if err != nil {
		var moveErr *errors.MoveError
		if errors.As(err, &moveErr) {
			moveErr.MoveText = text
		}
		return record, err
	}
	return record, nil
}

func (s *Session) reject(from, to chess.Square, ply int, err error) (chess.MoveRecord, error) {
	fields := []zap.Field{
		zap.String("session", s.id),
		zap.Int("ply", ply),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.Error(err),
	}
	if errors.Is(err, errors.ErrKingMissing) {
		s.logger.Error("board invariant broken", fields...)
	} else {
		s.logger.Debug("move rejected", fields...)
	}
	return chess.MoveRecord{}, &errors.MoveError{Err: err, From: from.String(), To: to.String(), Ply: ply}
}

// ParseCoordinateMove splits text such as "e2e4" or "e7e8q" into squares.
func ParseCoordinateMove(text string) (from, to chess.Square, err error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) == 5 && text[4] == 'q' {
		text = text[:4]
	}
	if len(text) != 4 {
		return from, to, fmt.Errorf("%q: %w", text, errors.ErrInvalidMoveText)
	}
	if from, err = chess.ParseSquare(text[:2]); err != nil {
		return from, to, fmt.Errorf("%w: %w", errors.ErrInvalidMoveText, err)
	}
	if to, err = chess.ParseSquare(text[2:]); err != nil {
		return from, to, fmt.Errorf("%w: %w", errors.ErrInvalidMoveText, err)
	}
	return from, to, nil
}

// LegalDestinations lists where the piece on from may move. It is empty when
// from is empty, off the board, not the side to move, or the game is over.
func (s *Session) LegalDestinations(from chess.Square) []chess.Square {
	if s.status == Checkmate || s.board.Get(from).IsEmpty() || s.board.Get(from).Colour != s.toMove {
		return nil
	}
	return LegalDestinations(&s.board, from)
}

// IsGameOver reports whether the game has ended in checkmate.
func (s *Session) IsGameOver() bool {
	return s.status == Checkmate
}

// Winner returns the side that delivered mate.
func (s *Session) Winner() (chess.Colour, bool) {
	if s.status != Checkmate {
		return chess.White, false
	}
	return s.mated.Opposite(), true
}

// SideToMove returns the colour to move. A mate delivered in this session
// leaves it with the side that delivered it.
func (s *Session) SideToMove() chess.Colour {
	return s.toMove
}

// Status returns the state of the position.
func (s *Session) Status() Status {
	return s.status
}

// CheckedKing returns the square of the king currently in check, if any.
func (s *Session) CheckedKing() (chess.Square, bool) {
	if s.status == InProgress {
		return chess.Square{}, false
	}
	victim := s.toMove
	if s.status == Checkmate {
		victim = s.mated
	}
	return s.board.FindKing(victim)
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Snapshot returns a copy of the piece placement.
func (s *Session) Snapshot() chess.Snapshot {
	return s.board.Snapshot()
}

// Board returns a copy of the full board state.
func (s *Session) Board() *chess.Board {
	return s.board.Copy()
}

// FEN encodes the current position. A mated position names the mated
// side as the side to move.
func (s *Session) FEN() string {
	toMove := s.toMove
	if s.status == Checkmate {
		toMove = s.mated
	}
	return BoardToFEN(&s.board, toMove, s.moveNumber)
}

// StartFEN encodes the position the session started from.
func (s *Session) StartFEN() string {
	return BoardToFEN(s.start.Board, s.start.ToMove, s.start.MoveNumber)
}

// History returns a copy of the committed moves in order.
func (s *Session) History() []chess.MoveRecord {
	return append([]chess.MoveRecord(nil), s.history...)
}

// LastMove returns the most recent committed move.
func (s *Session) LastMove() (chess.MoveRecord, bool) {
	if len(s.history) == 0 {
		return chess.MoveRecord{}, false
	}
	return s.history[len(s.history)-1], true
}

// MoveList formats the history one full move per line, e.g. "1. e4 e5".
// A game that starts with Black to move opens with "1... e5".
func (s *Session) MoveList() []string {
	var lines []string
	var line strings.Builder
	for _, rec := range s.history {
		if rec.Colour() == chess.White {
			if line.Len() > 0 {
				lines = append(lines, line.String())
				line.Reset()
			}
			fmt.Fprintf(&line, "%d. %s", rec.MoveNumber, rec.Notation)
			continue
		}
		if line.Len() == 0 {
			fmt.Fprintf(&line, "%d... %s", rec.MoveNumber, rec.Notation)
			continue
		}
		line.WriteByte(' ')
		line.WriteString(rec.Notation)
		lines = append(lines, line.String())
		line.Reset()
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// VisibleMoveList returns at most the last window lines of MoveList.
// A window of zero or less returns every line.
func (s *Session) VisibleMoveList(window int) []string {
	lines := s.MoveList()
	if window > 0 && len(lines) > window {
		lines = lines[len(lines)-window:]
	}
	return lines
}
