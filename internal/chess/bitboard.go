package chess

import (
	"math/bits"
	"strings"
)

// BitBoard is a set of squares, one bit per square. Bit rank*8+file is
// set when the square at (file, rank) is in the set.
//
// Coordinate access is deliberately permissive: Get reports ok=false for
// a square off the board and Set, Unset and Toggle ignore it. Attack
// generation relies on this to step past the edge without bounds checks.
type BitBoard uint64

// EmptyBoard is the board with no squares set.
const EmptyBoard BitBoard = 0

// onBoard reports whether (file, rank) is a real square.
func onBoard(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

// mask returns the single-bit board for an on-board square.
func mask(file, rank int) BitBoard {
	return BitBoard(1) << uint(rank*BoardSize+file)
}

// Get returns whether (file, rank) is set. ok is false when either
// coordinate is outside 0-7, in which case set is meaningless.
func (b BitBoard) Get(file, rank int) (set, ok bool) {
	if !onBoard(file, rank) {
		return false, false
	}
	return b&mask(file, rank) != 0, true
}

// Set turns a square on.
func (b *BitBoard) Set(file, rank int) {
	if onBoard(file, rank) {
		*b |= mask(file, rank)
	}
}

// Unset turns a square off.
func (b *BitBoard) Unset(file, rank int) {
	if onBoard(file, rank) {
		*b &^= mask(file, rank)
	}
}

// Toggle flips a square.
func (b *BitBoard) Toggle(file, rank int) {
	if onBoard(file, rank) {
		*b ^= mask(file, rank)
	}
}

// Union adds every square of other to b.
func (b *BitBoard) Union(other BitBoard) {
	*b |= other
}

// Has reports whether sq is set.
func (b BitBoard) Has(sq Square) bool {
	set, _ := b.Get(sq.File, sq.Rank)
	return set
}

// Count returns the number of squares set.
func (b BitBoard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Squares exports the board as 64 indicators indexed by rank*8+file.
func (b BitBoard) Squares() [NumSquares]bool {
	var out [NumSquares]bool
	for i := range out {
		out[i] = b&(BitBoard(1)<<uint(i)) != 0
	}
	return out
}

// SquareList returns the set squares in index order.
func (b BitBoard) SquareList() []Square {
	out := make([]Square, 0, b.Count())
	for rest := uint64(b); rest != 0; rest &= rest - 1 {
		out = append(out, SquareFromIndex(bits.TrailingZeros64(rest)))
	}
	return out
}

// String draws the board as eight lines, rank 8 first, with 'x' for set
// squares and '.' for the rest.
func (b BitBoard) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			if set, _ := b.Get(file, rank); set {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
