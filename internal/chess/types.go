// Package chess provides core chess types: bitboards, squares, piece types
// and the per-colour piece maps built from them.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
	NumColours
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PieceType represents a chess piece type. The values are the indices
// used by SideMap, so every PieceType below NumPieceTypes has a board.
type PieceType int

const (
	King PieceType = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	NumPieceTypes
)

// PieceTypes lists every piece type in ordinal order.
var PieceTypes = [NumPieceTypes]PieceType{King, Queen, Rook, Bishop, Knight, Pawn}

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{'K', 'Q', 'R', 'B', 'N', 'P'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// ColouredLetter returns the FEN letter for a piece of the given colour:
// uppercase for White, lowercase for Black.
func (p PieceType) ColouredLetter(colour Colour) byte {
	letter := p.Letter()
	if colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// PieceFromLetter converts a FEN piece letter to its type and colour.
// The boolean result is false for any character that is not one of
// KQRBNP in either case.
func PieceFromLetter(c byte) (PieceType, Colour, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'K':
		return King, colour, true
	case 'Q':
		return Queen, colour, true
	case 'R':
		return Rook, colour, true
	case 'B':
		return Bishop, colour, true
	case 'N':
		return Knight, colour, true
	case 'P':
		return Pawn, colour, true
	}
	return 0, White, false
}

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	FileBase = 'a'
	LastRank = RankBase + BoardSize - 1
	LastFile = FileBase + BoardSize - 1
)

// Castling holds one side's castling rights.
type Castling struct {
	KingSide  bool
	QueenSide bool
}
