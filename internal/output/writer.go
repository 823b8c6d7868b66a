package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/bitboard-go/internal/config"
	"github.com/lgbarn/bitboard-go/internal/position"
)

// PositionWriter is the interface for writing positions to output.
// Different implementations handle different output formats.
type PositionWriter interface {
	// WritePosition writes a single position to the output.
	WritePosition(pos *position.Position) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for cfg.Output.Format.
func NewWriter(w io.Writer, cfg *config.Config) PositionWriter {
	switch cfg.Output.Format {
	case config.SVG:
		return NewSVGWriter(w, cfg)
	case config.FEN:
		return NewFENWriter(w, cfg)
	case config.Attacks:
		return NewAttacksWriter(w, cfg)
	case config.JSON:
		return NewJSONWriter(w, cfg)
	default:
		return NewTextWriter(w, cfg)
	}
}

// writeAnnotations writes the optional lines configured in
// cfg.Annotation after a position.
func writeAnnotations(w io.Writer, pos *position.Position, cfg *config.Config) error {
	if cfg.Annotation.AddFEN {
		if _, err := fmt.Fprintf(w, "fen: %s\n", position.PositionToFEN(pos)); err != nil {
			return err
		}
	}
	if cfg.Annotation.AddHash {
		if _, err := fmt.Fprintf(w, "hash: %016x\n", pos.Hash()); err != nil {
			return err
		}
	}
	if cfg.Annotation.AddState {
		if _, err := fmt.Fprintf(w, "to move: %s, state: %s\n", pos.Side, pos.State); err != nil {
			return err
		}
	}
	return nil
}

// TextWriter writes positions as character grids.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WritePosition writes the grid followed by any annotations and a blank line.
func (tw *TextWriter) WritePosition(pos *position.Position) error {
	if err := WriteText(tw.w, pos.Snapshot()); err != nil {
		return err
	}
	if err := writeAnnotations(tw.w, pos, tw.cfg); err != nil {
		return err
	}
	_, err := io.WriteString(tw.w, "\n")
	return err
}

// Flush is a no-op; TextWriter writes immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// SVGWriter writes each position as a standalone SVG document.
type SVGWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewSVGWriter creates a new SVG writer.
func NewSVGWriter(w io.Writer, cfg *config.Config) *SVGWriter {
	return &SVGWriter{w: w, cfg: cfg}
}

// WritePosition draws the position, shading the squares attacked by the
// side to move when cfg.Output.HighlightAttacks is set.
func (sw *SVGWriter) WritePosition(pos *position.Position) error {
	opts := DefaultSVGOptions()
	opts.SquareSize = sw.cfg.Output.SquareSize
	if sw.cfg.Output.HighlightAttacks {
		opts.Highlight = pos.AttackAll[pos.Side]
	}
	return WriteSVG(sw.w, pos.Snapshot(), opts)
}

// Flush is a no-op; SVGWriter writes immediately.
func (sw *SVGWriter) Flush() error {
	return nil
}

// Close closes the SVG writer.
func (sw *SVGWriter) Close() error {
	return nil
}

// FENWriter writes positions re-encoded as FEN, one per line.
type FENWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewFENWriter creates a new FEN writer.
func NewFENWriter(w io.Writer, cfg *config.Config) *FENWriter {
	return &FENWriter{w: w, cfg: cfg}
}

// WritePosition writes the FEN line and, when enabled, the Zobrist key.
func (fw *FENWriter) WritePosition(pos *position.Position) error {
	line := position.PositionToFEN(pos)
	if fw.cfg.Annotation.AddHash {
		line = fmt.Sprintf("%s ; %016x", line, pos.Hash())
	}
	_, err := fmt.Fprintln(fw.w, line)
	return err
}

// Flush is a no-op; FENWriter writes immediately.
func (fw *FENWriter) Flush() error {
	return nil
}

// Close closes the FEN writer.
func (fw *FENWriter) Close() error {
	return nil
}

// AttacksWriter writes the grid of a position followed by its attack maps.
type AttacksWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewAttacksWriter creates a new attacks writer.
func NewAttacksWriter(w io.Writer, cfg *config.Config) *AttacksWriter {
	return &AttacksWriter{w: w, cfg: cfg}
}

// WritePosition writes the grid, the attack maps and any annotations.
func (aw *AttacksWriter) WritePosition(pos *position.Position) error {
	if err := WriteText(aw.w, pos.Snapshot()); err != nil {
		return err
	}
	if err := WriteAttacks(aw.w, pos); err != nil {
		return err
	}
	if err := writeAnnotations(aw.w, pos, aw.cfg); err != nil {
		return err
	}
	_, err := io.WriteString(aw.w, "\n")
	return err
}

// Flush is a no-op; AttacksWriter writes immediately.
func (aw *AttacksWriter) Flush() error {
	return nil
}

// Close closes the attacks writer.
func (aw *AttacksWriter) Close() error {
	return nil
}

// JSONWriter writes positions in JSON format.
// It buffers positions and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	cfg       *config.Config
	positions []*JSONPosition
	single    bool // If true, write each position immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches positions and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:         w,
		cfg:       cfg,
		positions: make([]*JSONPosition, 0),
		single:    false,
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each position immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WritePosition buffers a position for JSON output (or writes immediately
// in single mode). The position is converted at once, so the caller may
// keep modifying it afterwards.
func (jw *JSONWriter) WritePosition(pos *position.Position) error {
	jp := PositionToJSON(pos)
	jp.Source = jw.cfg.CurrentInputFile

	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(jp)
	}

	jw.positions = append(jw.positions, jp)
	return nil
}

// Flush writes all buffered positions as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.positions) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Positions: jw.positions})

	// Clear buffer after writing
	jw.positions = jw.positions[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
