package config

import (
	"fmt"

	"github.com/lgbarn/bitboard-go/internal/chess"
	"github.com/lgbarn/bitboard-go/internal/errors"
)

// MoveConfig holds a move to play on every decoded position.
type MoveConfig struct {
	// Coordinates of the move in "e2e4" form; empty plays nothing
	Coordinates string

	// Undo takes the move back again after it has been written
	Undo bool
}

// NewMoveConfig creates a MoveConfig with default values.
// All fields use Go zero values: no move is played.
func NewMoveConfig() *MoveConfig {
	return &MoveConfig{}
}

// Enabled reports whether a move has been configured.
func (m *MoveConfig) Enabled() bool {
	return m.Coordinates != ""
}

// Validate checks that the move parses and that Undo has a move to undo.
func (m *MoveConfig) Validate() error {
	if m.Undo && !m.Enabled() {
		return fmt.Errorf("undo requested without a move: %w", errors.ErrInvalidConfig)
	}
	if !m.Enabled() {
		return nil
	}
	if _, _, err := chess.ParseCoordinates(m.Coordinates); err != nil {
		return fmt.Errorf("move %q: %v: %w", m.Coordinates, err, errors.ErrInvalidConfig)
	}
	return nil
}
