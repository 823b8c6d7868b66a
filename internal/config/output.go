package config

import (
	"fmt"

	"github.com/lgbarn/bitboard-go/internal/errors"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies how positions are written.
	Format OutputFormat

	// SquareSize is the edge of one SVG square in pixels.
	SquareSize int

	// HighlightAttacks shades the squares attacked by the side to move
	// in SVG output.
	HighlightAttacks bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:     Text,
		SquareSize: 45,
	}
}

// Validate checks the output settings.
func (o *OutputConfig) Validate() error {
	if o.Format < Text || o.Format > JSON {
		return fmt.Errorf("%v: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.SquareSize <= 0 {
		return fmt.Errorf("square size %d must be positive: %w", o.SquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
