package position

import "github.com/lgbarn/bitboard-go/internal/chess"

// Zobrist keys, generated once from a fixed seed so hashes are stable
// across runs.
var (
	zobristPiece      [chess.NumColours][chess.NumPieceTypes][chess.NumSquares]uint64
	zobristCastling   [chess.NumColours][2]uint64 // [colour][king side, queen side]
	zobristEnPassant  [chess.BoardSize]uint64     // one per file
	zobristSideToMove uint64                      // XOR when Black is to move
)

func init() {
	rng := xorshift(0x98F107A2BEEF1234)

	for c := range zobristPiece {
		for pt := range zobristPiece[c] {
			for sq := range zobristPiece[c][pt] {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}
	for c := range zobristCastling {
		zobristCastling[c][0] = rng.next()
		zobristCastling[c][1] = rng.next()
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// xorshift is an xorshift64* generator.
type xorshift uint64

func (x *xorshift) next() uint64 {
	*x ^= *x >> 12
	*x ^= *x << 25
	*x ^= *x >> 27
	return uint64(*x) * 0x2545F4914F6CDD1D
}

// Hash returns the Zobrist key of the position. It covers placement, side
// to move, castling rights and the en passant file, but not the clocks,
// history or game state. It is computed from the per-piece boards on
// every call.
func (p *Position) Hash() uint64 {
	var h uint64

	for c := chess.White; c < chess.NumColours; c++ {
		for _, pt := range chess.PieceTypes {
			for _, sq := range p.Pieces[c].Board(pt).SquareList() {
				h ^= zobristPiece[c][pt][sq.Index()]
			}
		}
		if p.Castling[c].KingSide {
			h ^= zobristCastling[c][0]
		}
		if p.Castling[c].QueenSide {
			h ^= zobristCastling[c][1]
		}
	}

	if p.HasEnPassant && p.EnPassant.Valid() {
		h ^= zobristEnPassant[p.EnPassant.File]
	}
	if p.Side == chess.Black {
		h ^= zobristSideToMove
	}
	return h
}
