// Package attack computes pseudo-legal attack sets from bitboards.
//
// Every function here is pure: it reads the boards it is given and returns
// a new board. Nothing checks whether a move would leave a king in check.
package attack

import "github.com/lgbarn/bitboard-go/internal/chess"

// Offsets of the squares a king or knight reaches in one step.
var (
	kingSteps   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	knightSteps = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// Ray directions for sliding pieces.
var (
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// ForPiece returns every square attacked by the pieces on board pieces,
// all of type pt and colour colour. friendly and opposing are the full
// occupancy of the mover's side and the other side.
func ForPiece(pt chess.PieceType, colour chess.Colour, pieces, friendly, opposing chess.BitBoard) chess.BitBoard {
	switch pt {
	case chess.King:
		return King(pieces)
	case chess.Queen:
		return Queen(pieces, friendly, opposing)
	case chess.Rook:
		return Rook(pieces, friendly, opposing)
	case chess.Bishop:
		return Bishop(pieces, friendly, opposing)
	case chess.Knight:
		return Knight(pieces)
	case chess.Pawn:
		return Pawn(pieces, colour)
	}
	return chess.EmptyBoard
}

// SideMap fills one attack board per piece type for a side.
func SideMap(colour chess.Colour, pieces *chess.SideMap, friendly, opposing chess.BitBoard) chess.SideMap {
	var out chess.SideMap
	for _, pt := range chess.PieceTypes {
		out[pt] = ForPiece(pt, colour, pieces.Board(pt), friendly, opposing)
	}
	return out
}

// King marks the up to eight neighbours of each king. The king's own
// square is not attacked.
func King(pieces chess.BitBoard) chess.BitBoard {
	return steps(pieces, kingSteps)
}

// Knight marks the L-shaped jumps of each knight.
func Knight(pieces chess.BitBoard) chess.BitBoard {
	return steps(pieces, knightSteps)
}

// Rook scans the four orthogonal rays from each rook.
func Rook(pieces, friendly, opposing chess.BitBoard) chess.BitBoard {
	return slide(pieces, friendly|opposing, straightDirs)
}

// Bishop scans the four diagonal rays from each bishop.
func Bishop(pieces, friendly, opposing chess.BitBoard) chess.BitBoard {
	return slide(pieces, friendly|opposing, diagonalDirs)
}

// Queen is the union of the rook and bishop patterns.
func Queen(pieces, friendly, opposing chess.BitBoard) chess.BitBoard {
	out := Rook(pieces, friendly, opposing)
	out.Union(Bishop(pieces, friendly, opposing))
	return out
}

// Pawn marks the two forward diagonals of each pawn: rank+1 for White,
// rank-1 for Black. Pushes are not attacks and are left out.
func Pawn(pieces chess.BitBoard, colour chess.Colour) chess.BitBoard {
	var out chess.BitBoard
	forward := chess.ColourOffset(colour)
	for _, sq := range pieces.SquareList() {
		out.Set(sq.File-1, sq.Rank+forward)
		out.Set(sq.File+1, sq.Rank+forward)
	}
	return out
}

// steps marks a fixed set of offsets from every piece. Off-board targets
// are dropped by BitBoard.Set.
func steps(pieces chess.BitBoard, offsets [][2]int) chess.BitBoard {
	var out chess.BitBoard
	for _, sq := range pieces.SquareList() {
		for _, off := range offsets {
			out.Set(sq.File+off[0], sq.Rank+off[1])
		}
	}
	return out
}

// slide walks each ray outward from every piece, marking squares until it
// leaves the board or has marked the first occupied square.
func slide(pieces, occupied chess.BitBoard, dirs [][2]int) chess.BitBoard {
	var out chess.BitBoard
	for _, sq := range pieces.SquareList() {
		for _, dir := range dirs {
			file, rank := sq.File+dir[0], sq.Rank+dir[1]
			for {
				blocked, ok := occupied.Get(file, rank)
				if !ok {
					break
				}
				out.Set(file, rank)
				if blocked {
					break
				}
				file += dir[0]
				rank += dir[1]
			}
		}
	}
	return out
}
