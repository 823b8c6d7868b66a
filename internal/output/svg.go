package output

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/bitboard-go/internal/chess"
)

// SVGOptions controls the board drawn by WriteSVG.
type SVGOptions struct {
	// SquareSize is the edge of one square in pixels.
	SquareSize int

	// Highlight marks squares to shade, for example an attack set.
	Highlight chess.BitBoard

	// Coordinates adds file letters and rank numbers along the edges.
	Coordinates bool
}

// DefaultSVGOptions returns 45 pixel squares with coordinates.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{SquareSize: 45, Coordinates: true}
}

const (
	lightSquare   = "fill:#f0d9b5"
	darkSquare    = "fill:#b58863"
	highlightFill = "fill:#e84a4a;fill-opacity:0.45"
	whitePiece    = "fill:#ffffff;stroke:#000000;stroke-width:1"
	blackPiece    = "fill:#000000"
	coordStyle    = "fill:#404040;font-family:sans-serif"
)

var glyphs = map[byte]string{
	'K': "♔", 'Q': "♕", 'R': "♖", 'B': "♗", 'N': "♘", 'P': "♙",
	'k': "♚", 'q': "♛", 'r': "♜", 'b': "♝", 'n': "♞", 'p': "♟",
}

// errWriter remembers the first write error so drawing code can ignore
// per-call errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// WriteSVG draws a snapshot as an SVG board, rank 8 at the top.
func WriteSVG(w io.Writer, snap [chess.NumSquares]byte, opts SVGOptions) error {
	size := opts.SquareSize
	if size <= 0 {
		size = DefaultSVGOptions().SquareSize
	}
	margin := 0
	if opts.Coordinates {
		margin = size / 2
	}
	edge := chess.BoardSize * size

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(edge+margin, edge+margin)

	for row := 0; row < chess.BoardSize; row++ {
		rank := chess.BoardSize - 1 - row
		for file := 0; file < chess.BoardSize; file++ {
			x, y := margin+file*size, row*size

			style := darkSquare
			if (file+rank)%2 == 1 {
				style = lightSquare
			}
			canvas.Rect(x, y, size, size, style)

			if set, _ := opts.Highlight.Get(file, rank); set {
				canvas.Rect(x, y, size, size, highlightFill)
			}

			c := snap[rank*chess.BoardSize+(chess.BoardSize-1-file)]
			if c == ' ' {
				continue
			}
			style = blackPiece
			if c >= 'A' && c <= 'Z' {
				style = whitePiece
			}
			glyph, ok := glyphs[c]
			if !ok {
				glyph = string(c)
			}
			canvas.Text(x+size/2, y+size*4/5, glyph,
				fmt.Sprintf("%s;font-size:%dpx;text-anchor:middle", style, size*4/5))
		}
	}

	if opts.Coordinates {
		font := fmt.Sprintf("%s;font-size:%dpx;text-anchor:middle", coordStyle, size/3)
		for i := 0; i < chess.BoardSize; i++ {
			canvas.Text(margin+i*size+size/2, edge+margin*3/4, string(rune(chess.FileBase+i)), font)
			canvas.Text(margin/2, (chess.BoardSize-1-i)*size+size/2+size/8, string(rune(chess.RankBase+i)), font)
		}
	}

	canvas.End()
	return ew.err
}
