package position

import (
	"fmt"

	"github.com/lgbarn/bitboard-go/internal/chess"
)

// GameStateKind classifies the outcome of a position.
type GameStateKind int

const (
	Normal GameStateKind = iota
	InCheck
	Draw
	Won
)

// GameState tags a position with its outcome. Colour is meaningful for
// InCheck (the side in check) and Won (the winner) only.
//
// Nothing in this package derives the state from the rules; decoding
// always yields Normal. Code that detects check, mate or draws sets it.
type GameState struct {
	Kind   GameStateKind
	Colour chess.Colour
}

// String returns a short description such as "White in check".
func (g GameState) String() string {
	switch g.Kind {
	case Normal:
		return "normal"
	case InCheck:
		return fmt.Sprintf("%s in check", g.Colour)
	case Draw:
		return "draw"
	case Won:
		return fmt.Sprintf("%s won", g.Colour)
	}
	return "unknown"
}
