package chess

// MoveRecord is the structured result of a committed move. The Notation
// field is the textual rendering; the remaining fields are the facts it
// was rendered from.
type MoveRecord struct {
	// The move text in algebraic notation (e.g., "Nf3", "exd6", "O-O", "Qh4#").
	Notation string

	// Source and destination squares.
	From Square
	To   Square

	// The piece that moved, as it stood on From.
	Piece Piece

	// The kind captured (NoKind if none). For en passant this is Pawn even
	// though To was empty.
	Captured Kind

	// Whether the move gives check or checkmate.
	Check     bool
	Checkmate bool

	// Special move flags.
	Castle     bool
	CastleSide CastleSide
	EnPassant  bool
	Promotion  bool

	// Ply is the 1-based half-move index in the session; MoveNumber is the
	// full-move number the ply belongs to.
	Ply        int
	MoveNumber int
}

// IsCapture returns true if this move is a capture.
func (m MoveRecord) IsCapture() bool {
	return m.Captured != NoKind
}

// Colour returns the colour of the side that made the move.
func (m MoveRecord) Colour() Colour {
	return m.Piece.Colour
}

// UCI returns the move in long coordinate form, e.g. "e7e8q".
func (m MoveRecord) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Promotion {
		s += "q"
	}
	return s
}

// MovePair is a bare from/to pair, used when listing candidate moves.
type MovePair struct {
	From Square
	To   Square
}

// String returns the pair in coordinate form, e.g. "g1f3".
func (m MovePair) String() string {
	return m.From.String() + m.To.String()
}
