package chess

import (
	"fmt"

	"github.com/lgbarn/bitboard-go/internal/errors"
)

// StateChange records what a move did besides relocating the mover.
type StateChange struct {
	// The piece type removed from the destination square, valid only
	// when HasCapture is true.
	Captured   PieceType
	HasCapture bool
}

// Capturing returns a StateChange that captures a piece of type pt.
func Capturing(pt PieceType) StateChange {
	return StateChange{Captured: pt, HasCapture: true}
}

// CapturedPiece returns the captured piece type, if any.
func (sc StateChange) CapturedPiece() (PieceType, bool) {
	return sc.Captured, sc.HasCapture
}

// Move is a single relocation of one piece. Moves are stored by value in
// a position's history so that undoing them needs nothing else.
type Move struct {
	From   Square
	To     Square
	Piece  PieceType
	Change StateChange
}

// String returns the move in long algebraic form prefixed with the piece
// letter, e.g. "Pe5xf4" for a capture and "Ng1f3" otherwise.
func (m Move) String() string {
	if m.Change.HasCapture {
		return fmt.Sprintf("%s%sx%s", string(m.Piece.Letter()), m.From, m.To)
	}
	return fmt.Sprintf("%s%s%s", string(m.Piece.Letter()), m.From, m.To)
}

// ParseCoordinates splits text such as "e5f4" into its origin and
// destination squares.
func ParseCoordinates(s string) (from, to Square, err error) {
	if len(s) != 4 {
		return Square{}, Square{}, fmt.Errorf("move %q: %w", s, errors.ErrInvalidFormat)
	}
	if from, err = ParseSquare(s[:2]); err != nil {
		return Square{}, Square{}, fmt.Errorf("move %q: %w", s, err)
	}
	if to, err = ParseSquare(s[2:]); err != nil {
		return Square{}, Square{}, fmt.Errorf("move %q: %w", s, err)
	}
	return from, to, nil
}
