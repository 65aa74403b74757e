package engine

import "go.uber.org/zap"

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for move and rejection events.
// The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithID fixes the session identifier instead of generating one.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
			s.fixedID = true
		}
	}
}
