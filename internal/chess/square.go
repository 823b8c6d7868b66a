package chess

import (
	"fmt"

	"github.com/lgbarn/bitboard-go/internal/errors"
)

// Square is a board coordinate. File 0 is the a-file and rank 0 is the
// first rank.
type Square struct {
	File int
	Rank int
}

// NewSquare returns the square at (file, rank). It does not validate.
func NewSquare(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// SquareFromIndex converts a bit index (rank*8+file) back to a square.
func SquareFromIndex(index int) Square {
	return Square{File: index % BoardSize, Rank: index / BoardSize}
}

// ParseSquare decodes algebraic notation such as "e4". Text shorter than
// two characters yields ErrInvalidFormat; a file outside a-h or a rank
// outside 1-8 yields ErrInvalidSquare. Characters after the second are
// not examined.
func ParseSquare(s string) (Square, error) {
	if len(s) < 2 {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidFormat)
	}
	file, rank := s[0], s[1]
	if file < FileBase || file > LastFile || rank < RankBase || rank > LastRank {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	return Square{File: int(file - FileBase), Rank: int(rank - RankBase)}, nil
}

// Valid reports whether the square is on the board.
func (s Square) Valid() bool {
	return onBoard(s.File, s.Rank)
}

// Index returns the bit index of the square.
func (s Square) Index() int {
	return s.Rank*BoardSize + s.File
}

// String returns the algebraic name of the square, or "-" when it is off
// the board.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}
