// Package output writes decoded positions in the formats fenboard
// supports: a character grid, an SVG board, FEN, attack maps and JSON.
package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lgbarn/bitboard-go/internal/chess"
	"github.com/lgbarn/bitboard-go/internal/position"
)

// EmptyCell is printed for an empty square in the text grid.
const EmptyCell = "·"

// WriteText prints a snapshot as eight lines of "|c" cells closed by "|",
// rank 8 first and the a-file leftmost. Empty squares print as EmptyCell.
func WriteText(w io.Writer, snap [chess.NumSquares]byte) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < chess.NumSquares; i++ {
		c := snap[chess.NumSquares-1-i]
		if c == ' ' {
			bw.WriteString("|" + EmptyCell)
		} else {
			bw.WriteByte('|')
			bw.WriteByte(c)
		}
		if (i+1)%chess.BoardSize == 0 {
			bw.WriteString("|\n")
		}
	}
	return bw.Flush()
}

// WriteAttacks prints the attack map of every piece type that attacks at
// least one square, followed by the union, for each colour. The
// position's attack caches must be current.
func WriteAttacks(w io.Writer, pos *position.Position) error {
	bw := bufio.NewWriter(w)
	for c := chess.White; c < chess.NumColours; c++ {
		for _, pt := range chess.PieceTypes {
			board := pos.Attacks[c].Board(pt)
			if board == chess.EmptyBoard {
				continue
			}
			fmt.Fprintf(bw, "%s %s attacks (%d):\n%s", c, pt, board.Count(), board)
		}
		fmt.Fprintf(bw, "%s attacks all (%d):\n%s", c, pos.AttackAll[c].Count(), pos.AttackAll[c])
	}
	return bw.Flush()
}
