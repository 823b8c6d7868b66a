package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/bitboard-go/internal/chess"
	"github.com/lgbarn/bitboard-go/internal/position"
)

// JSONPosition represents a position in JSON format.
type JSONPosition struct {
	FEN       string            `json:"fen"`
	Side      string            `json:"side"` // "white" or "black"
	Castling  string            `json:"castling"`
	EnPassant string            `json:"enPassant,omitempty"`
	Halfmove  uint              `json:"halfmove"`
	Fullmove  uint              `json:"fullmove"`
	State     string            `json:"state"`
	Hash      string            `json:"hash"`
	Board     []string          `json:"board"` // rank 8 first
	Attacks   map[string]uint64 `json:"attacks"`
	History   []string          `json:"history,omitempty"`
	Source    string            `json:"source,omitempty"`
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
}

// PositionToJSON converts a position to JSON format.
func PositionToJSON(pos *position.Position) *JSONPosition {
	fen := position.PositionToFEN(pos)
	fields := strings.Fields(fen)

	jp := &JSONPosition{
		FEN:      fen,
		Side:     strings.ToLower(pos.Side.String()),
		Castling: fields[2],
		Halfmove: pos.Halfmove,
		Fullmove: pos.Fullmove,
		State:    pos.State.String(),
		Hash:     fmt.Sprintf("%016x", pos.Hash()),
		Board:    snapshotRows(pos.Snapshot()),
		Attacks:  make(map[string]uint64, chess.NumColours),
	}
	if pos.HasEnPassant {
		jp.EnPassant = pos.EnPassant.String()
	}
	for c := chess.White; c < chess.NumColours; c++ {
		jp.Attacks[strings.ToLower(c.String())] = uint64(pos.AttackAll[c])
	}
	for _, m := range pos.History {
		jp.History = append(jp.History, m.String())
	}
	return jp
}

// snapshotRows splits a snapshot into eight strings, rank 8 first, with
// '.' for empty squares.
func snapshotRows(snap [chess.NumSquares]byte) []string {
	rows := make([]string, 0, chess.BoardSize)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		row := make([]byte, chess.BoardSize)
		for file := 0; file < chess.BoardSize; file++ {
			c := snap[rank*chess.BoardSize+(chess.BoardSize-1-file)]
			if c == ' ' {
				c = '.'
			}
			row[file] = c
		}
		rows = append(rows, string(row))
	}
	return rows
}

// OutputPositionsJSON outputs multiple positions as a JSON array.
func OutputPositionsJSON(positions []*position.Position, w io.Writer) error {
	out := &JSONOutput{Positions: make([]*JSONPosition, len(positions))}
	for i, pos := range positions {
		out.Positions[i] = PositionToJSON(pos)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
