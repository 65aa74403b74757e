package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat selects how replayed games are printed.
type OutputFormat string

const (
	Text OutputFormat = "text"
	JSON OutputFormat = "json"
)

// DefaultHistoryWindow is the number of move-list lines shown by default.
const DefaultHistoryWindow = 24

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format is text or json.
	Format OutputFormat `yaml:"format"`

	// ShowBoard prints the final position after each game.
	ShowBoard bool `yaml:"show_board"`

	// ShowFEN prints the final position as FEN after each game.
	ShowFEN bool `yaml:"show_fen"`

	// HistoryWindow limits the move list to its last N lines; 0 shows all.
	HistoryWindow int `yaml:"history_window"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        Text,
		HistoryWindow: DefaultHistoryWindow,
	}
}

// Validate checks the format name and window size.
func (o *OutputConfig) Validate() error {
	if o.Format != Text && o.Format != JSON {
		return fmt.Errorf("output format %q: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.HistoryWindow < 0 {
		return fmt.Errorf("history window %d: %w", o.HistoryWindow, errors.ErrInvalidConfig)
	}
	return nil
}
