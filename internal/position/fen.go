package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/bitboard-go/internal/chess"
	"github.com/lgbarn/bitboard-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Number of space-separated FEN fields; the fullmove number is optional.
const (
	minFENFields = 5
	maxFENFields = 6
)

// NewPositionFromFEN decodes a FEN string. The returned position has its
// occupancy and attack maps computed. On error no position is returned.
//
// A malformed en passant field is rejected with ErrInvalidSquare or
// ErrInvalidFormat rather than read as "no target".
func NewPositionFromFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < minFENFields || len(parts) > maxFENFields {
		return nil, &errors.FENError{
			Err:   fmt.Errorf("want %d or %d fields, got %d: %w", minFENFields, maxFENFields, len(parts), errors.ErrInvalidFEN),
			Field: "fen",
			Index: -1,
			Text:  fen,
		}
	}

	pos := New()

	if err := parsePlacement(pos, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(pos, parts[4:]); err != nil {
		return nil, err
	}

	pos.RecomputeAttacks()
	return pos, nil
}

// placementError builds the error for a bad character in the placement
// field. char is 0 when the field ended early.
func placementError(index int, char rune) error {
	return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Index: index, Char: char}
}

// parsePlacement parses the piece placement field: eight ranks from the
// eighth down to the first, separated by '/'. Every rank must cover
// exactly eight files.
func parsePlacement(pos *Position, placement string) error {
	rank := chess.BoardSize - 1
	file := 0

	for i, c := range placement {
		switch {
		case c == '/':
			if file != chess.BoardSize || rank == 0 {
				return placementError(i, c)
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return placementError(i, c)
			}
		default:
			if c > 0x7f || file >= chess.BoardSize {
				return placementError(i, c)
			}
			pt, colour, ok := chess.PieceFromLetter(byte(c))
			if !ok {
				return placementError(i, c)
			}
			pos.Pieces[colour].Set(pt, file, rank)
			file++
		}
	}

	if rank != 0 || file != chess.BoardSize {
		return placementError(len(placement), 0)
	}

	for c := chess.White; c < chess.NumColours; c++ {
		pos.Occupancy[c] = pos.Pieces[c].Combine()
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *Position, side string) error {
	switch side {
	case "w":
		pos.Side = chess.White
	case "b":
		pos.Side = chess.Black
	default:
		return &errors.FENError{Err: errors.ErrInvalidSideColor, Field: "side", Index: -1, Text: side}
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Rights are
// taken as given; whether the king and rooks stand on their home squares
// is not checked. Letters may repeat and come in any order.
func parseCastlingRights(pos *Position, castling string) error {
	pos.Castling = [chess.NumColours]chess.Castling{}
	if castling == "-" {
		return nil
	}

	for i, c := range castling {
		switch c {
		case 'K':
			pos.Castling[chess.White].KingSide = true
		case 'Q':
			pos.Castling[chess.White].QueenSide = true
		case 'k':
			pos.Castling[chess.Black].KingSide = true
		case 'q':
			pos.Castling[chess.Black].QueenSide = true
		default:
			return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "castling", Index: i, Char: c}
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *Position, field string) error {
	pos.HasEnPassant = false
	if field == "-" {
		return nil
	}
	if len(field) != 2 {
		return &errors.FENError{Err: errors.ErrInvalidFormat, Field: "en passant", Index: -1, Text: field}
	}

	sq, err := chess.ParseSquare(field)
	if err != nil {
		return &errors.FENError{Err: err, Field: "en passant", Index: -1, Text: field}
	}
	pos.EnPassant = sq
	pos.HasEnPassant = true
	return nil
}

// parseClocks parses the halfmove clock and the optional fullmove number.
func parseClocks(pos *Position, fields []string) error {
	halfmove, err := strconv.ParseUint(fields[0], 10, 0)
	if err != nil {
		return &errors.FENError{Err: errors.ErrInvalidHalfmove, Field: "halfmove", Index: -1, Text: fields[0]}
	}
	pos.Halfmove = uint(halfmove)

	pos.Fullmove = 1
	if len(fields) > 1 {
		fullmove, err := strconv.ParseUint(fields[1], 10, 0)
		if err != nil || fullmove == 0 {
			return &errors.FENError{Err: errors.ErrInvalidFullmove, Field: "fullmove", Index: -1, Text: fields[1]}
		}
		pos.Fullmove = uint(fullmove)
	}
	return nil
}

// PositionToFEN converts a position to a FEN string.
func PositionToFEN(pos *Position) string {
	var sb strings.Builder

	writePlacement(&sb, pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos)
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos)
	fmt.Fprintf(&sb, " %d %d", pos.Halfmove, pos.Fullmove)

	return sb.String()
}

// writePlacement writes the piece placement to the builder.
func writePlacement(sb *strings.Builder, pos *Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			colour, pt, ok := pos.PieceAt(chess.NewSquare(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(pt.ColouredLetter(colour))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, pos *Position) {
	if pos.Side == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, pos *Position) {
	start := sb.Len()
	if pos.Castling[chess.White].KingSide {
		sb.WriteByte('K')
	}
	if pos.Castling[chess.White].QueenSide {
		sb.WriteByte('Q')
	}
	if pos.Castling[chess.Black].KingSide {
		sb.WriteByte('k')
	}
	if pos.Castling[chess.Black].QueenSide {
		sb.WriteByte('q')
	}
	if sb.Len() == start {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, pos *Position) {
	if pos.HasEnPassant {
		sb.WriteString(pos.EnPassant.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() *Position {
	pos, err := NewPositionFromFEN(InitialFEN)
	if err != nil {
		panic(fmt.Sprintf("initial FEN does not decode: %v", err))
	}
	return pos
}
