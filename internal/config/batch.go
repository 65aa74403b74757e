package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// BatchConfig holds settings for replaying many games.
type BatchConfig struct {
	// Workers is the number of replay goroutines; 0 means one per CPU.
	Workers int `yaml:"workers"`

	// StartFEN is the position every game starts from; empty means the
	// standard initial position.
	StartFEN string `yaml:"start_fen"`

	// BufferSize is the capacity of the work and result queues; 0 means
	// twice the worker count.
	BufferSize int `yaml:"buffer_size"`

	// SuppressDuplicates drops games whose final position was already
	// printed. ExactDuplicates also requires the same number of plies.
	SuppressDuplicates bool `yaml:"suppress_duplicates"`
	ExactDuplicates    bool `yaml:"exact_duplicates"`

	// DuplicateCapacity caps the positions remembered; 0 means unlimited.
	DuplicateCapacity int `yaml:"duplicate_capacity"`
}

// NewBatchConfig creates a BatchConfig with default values.
// All fields use Go zero values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{}
}

// Validate checks that counts are not negative.
func (b *BatchConfig) Validate() error {
	if b.Workers < 0 {
		return fmt.Errorf("workers %d: %w", b.Workers, errors.ErrInvalidConfig)
	}
	if b.BufferSize < 0 {
		return fmt.Errorf("buffer size %d: %w", b.BufferSize, errors.ErrInvalidConfig)
	}
	if b.DuplicateCapacity < 0 {
		return fmt.Errorf("duplicate capacity %d: %w", b.DuplicateCapacity, errors.ErrInvalidConfig)
	}
	return nil
}
