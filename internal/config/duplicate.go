package config

import "io"

// DuplicateConfig holds settings for duplicate position detection.
type DuplicateConfig struct {
	// Suppress drops positions whose Zobrist key was already seen
	Suppress bool

	// MaxCapacity bounds the number of keys remembered; 0 is unlimited
	MaxCapacity int

	// ExactMatch also requires the halfmove clock and fullmove number to agree
	ExactMatch bool

	// Placement compares piece placement only, ignoring side to move,
	// castling rights and en passant
	Placement bool

	// DuplicateFile receives the FEN of each suppressed line when set
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{
		Suppress:    false,
		MaxCapacity: 0,
	}
}
