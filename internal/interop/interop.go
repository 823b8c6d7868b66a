// Package interop bridges positions to github.com/corentings/chess/v2 so
// the decoder can be checked against an independent implementation.
package interop

import (
	"fmt"
	"log/slog"
	"strings"

	refchess "github.com/corentings/chess/v2"

	"github.com/lgbarn/bitboard-go/internal/chess"
	"github.com/lgbarn/bitboard-go/internal/errors"
	"github.com/lgbarn/bitboard-go/internal/position"
)

// logger is looked up on each use so that a default installed by the
// command after start-up is honoured.
func logger() *slog.Logger {
	return slog.Default().With("package", "interop")
}

var toRefType = [chess.NumPieceTypes]refchess.PieceType{
	chess.King:   refchess.King,
	chess.Queen:  refchess.Queen,
	chess.Rook:   refchess.Rook,
	chess.Bishop: refchess.Bishop,
	chess.Knight: refchess.Knight,
	chess.Pawn:   refchess.Pawn,
}

var toRefColour = [chess.NumColours]refchess.Color{
	chess.White: refchess.White,
	chess.Black: refchess.Black,
}

// fromRefPiece converts a library piece to our colour and piece type.
func fromRefPiece(p refchess.Piece) (chess.Colour, chess.PieceType, bool) {
	colour := chess.White
	switch p.Color() {
	case refchess.White:
	case refchess.Black:
		colour = chess.Black
	default:
		return chess.White, 0, false
	}
	for pt, ref := range toRefType {
		if ref == p.Type() {
			return colour, chess.PieceType(pt), true
		}
	}
	return chess.White, 0, false
}

// refSquare converts a square; both libraries number a1 as 0 and h8 as 63.
func refSquare(sq chess.Square) refchess.Square {
	return refchess.Square(sq.Index())
}

// ToReferenceBoard builds the library's board from the piece placement of pos.
func ToReferenceBoard(pos *position.Position) *refchess.Board {
	m := make(map[refchess.Square]refchess.Piece, pos.Occupied().Count())
	for c := chess.White; c < chess.NumColours; c++ {
		for _, pt := range chess.PieceTypes {
			piece := refchess.NewPiece(toRefType[pt], toRefColour[c])
			for _, sq := range pos.Pieces[c].Board(pt).SquareList() {
				m[refSquare(sq)] = piece
			}
		}
	}
	return refchess.NewBoard(m)
}

// FromReferenceBoard converts a library board to per-colour SideMaps.
func FromReferenceBoard(b *refchess.Board) [chess.NumColours]chess.SideMap {
	var sides [chess.NumColours]chess.SideMap
	for sq, p := range b.SquareMap() {
		colour, pt, ok := fromRefPiece(p)
		if !ok {
			continue
		}
		s := chess.SquareFromIndex(int(sq))
		sides[colour].Set(pt, s.File, s.Rank)
	}
	return sides
}

// normalizeFEN collapses whitespace and supplies the fullmove number,
// which the library requires.
func normalizeFEN(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) == 5 {
		fields = append(fields, "1")
	}
	return strings.Join(fields, " ")
}

// DecodeReference decodes fen with the library and converts the result.
// Placement, side to move, castling rights and the en passant square are
// taken from the library; the clocks are left at their defaults.
func DecodeReference(fen string) (*position.Position, error) {
	opt, err := refchess.FEN(normalizeFEN(fen))
	if err != nil {
		return nil, err
	}
	ref := refchess.NewGame(opt).Position()

	pos := position.New()
	pos.Pieces = FromReferenceBoard(ref.Board())
	if ref.Turn() == refchess.Black {
		pos.Side = chess.Black
	}

	rights := string(ref.CastleRights())
	pos.Castling[chess.White] = chess.Castling{
		KingSide:  strings.Contains(rights, "K"),
		QueenSide: strings.Contains(rights, "Q"),
	}
	pos.Castling[chess.Black] = chess.Castling{
		KingSide:  strings.Contains(rights, "k"),
		QueenSide: strings.Contains(rights, "q"),
	}

	if ep := ref.EnPassantSquare(); ep != refchess.NoSquare {
		pos.EnPassant = chess.SquareFromIndex(int(ep))
		pos.HasEnPassant = true
	}

	pos.RecomputeAttacks()
	return pos, nil
}

// Compare returns an error wrapping ErrReferenceMismatch that names the
// first difference between a and b in placement, side to move, castling
// rights or en passant square, or nil when they agree.
func Compare(a, b *position.Position) error {
	for i := 0; i < chess.NumSquares; i++ {
		sq := chess.SquareFromIndex(i)
		ca, pa, oka := a.PieceAt(sq)
		cb, pb, okb := b.PieceAt(sq)
		if oka != okb || (oka && (ca != cb || pa != pb)) {
			return fmt.Errorf("square %s: %s vs %s: %w",
				sq, describe(ca, pa, oka), describe(cb, pb, okb), errors.ErrReferenceMismatch)
		}
	}
	if a.Side != b.Side {
		return fmt.Errorf("side to move: %s vs %s: %w", a.Side, b.Side, errors.ErrReferenceMismatch)
	}
	for c := chess.White; c < chess.NumColours; c++ {
		if a.Castling[c] != b.Castling[c] {
			return fmt.Errorf("%s castling: %+v vs %+v: %w", c, a.Castling[c], b.Castling[c], errors.ErrReferenceMismatch)
		}
	}
	if a.HasEnPassant != b.HasEnPassant || (a.HasEnPassant && a.EnPassant != b.EnPassant) {
		return fmt.Errorf("en passant: %s vs %s: %w",
			epString(a), epString(b), errors.ErrReferenceMismatch)
	}
	return nil
}

func describe(c chess.Colour, pt chess.PieceType, ok bool) string {
	if !ok {
		return "empty"
	}
	return fmt.Sprintf("%s %s", c, pt)
}

func epString(p *position.Position) string {
	if !p.HasEnPassant {
		return "-"
	}
	return p.EnPassant.String()
}

// CrossCheck decodes fen with both decoders and compares the results.
// A FEN our decoder rejects returns that error unchanged. A FEN only the
// library rejects, or a decoded difference, returns an error wrapping
// ErrReferenceMismatch.
func CrossCheck(fen string) error {
	ours, err := position.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}

	ref, err := DecodeReference(fen)
	if err != nil {
		logger().Debug("reference decoder rejected position", "fen", fen, "error", err)
		return fmt.Errorf("reference decoder: %v: %w", err, errors.ErrReferenceMismatch)
	}

	if err := Compare(ours, ref); err != nil {
		logger().Debug("decoders disagree", "fen", fen, "error", err)
		return err
	}
	return nil
}
