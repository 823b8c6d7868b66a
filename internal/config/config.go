// Package config provides configuration for fenboard.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/bitboard-go/internal/errors"
)

// OutputFormat selects how each decoded position is written.
type OutputFormat int

const (
	Text    OutputFormat = iota // 8x8 character grid
	SVG                         // SVG board image
	FEN                         // re-encoded FEN line
	Attacks                     // attack maps per colour and piece
	JSON                        // one JSON object per position
)

var formatNames = [...]string{
	Text:    "text",
	SVG:     "svg",
	FEN:     "fen",
	Attacks: "attacks",
	JSON:    "json",
}

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
	return formatNames[f]
}

// ParseOutputFormat converts a flag value such as "svg" to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, n := range formatNames {
		if n == name {
			return OutputFormat(f), nil
		}
	}
	return Text, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Number of decode workers; 1 processes lines in order on the
	// calling goroutine.
	Workers int

	// Verify cross-checks every line against the reference decoder.
	Verify bool

	// StopAfter ends processing once this many lines have been written;
	// 0 means no limit.
	StopAfter int

	Output     *OutputConfig
	Duplicate  *DuplicateConfig
	Move       *MoveConfig
	Annotation *AnnotationConfig

	// File handling
	CurrentInputFile string
	OutputFilename   string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    1,
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		Move:       NewMoveConfig(),
		Annotation: NewAnnotationConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream positions are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the configuration and each sub-config.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.StopAfter < 0 {
		return fmt.Errorf("stop-after count %d is negative: %w", c.StopAfter, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("worker count %d must be at least 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Move.Validate()
}
