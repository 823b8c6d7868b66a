// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/bitboard-go/internal/config"
)

var (
	// Output options
	outputFile    = flag.String("o", "", "Output file (default: stdout)")
	appendOutput  = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat  = flag.String("f", "text", "Output format: text, svg, fen, attacks, json")
	squareSize    = flag.Int("size", 45, "Square size in pixels for SVG output")
	highlightAtks = flag.Bool("highlight", false, "Highlight squares attacked by the side to move (SVG)")

	// Moves
	moveCoords = flag.String("m", "", "Play a move on every position, in e2e4 form")
	undoMove   = flag.Bool("undo", false, "Take the -m move back and print the position again")

	// Verification
	verify = flag.Bool("verify", false, "Cross-check every line against the reference decoder")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions")
	duplicateFile      = flag.String("d", "", "Output duplicates to this file")
	checkFile          = flag.String("c", "", "FEN file of positions already seen")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")
	placementOnly      = flag.Bool("placement", false, "Compare piece placement only when detecting duplicates")
	exactDuplicates    = flag.Bool("exact", false, "Also compare move clocks when detecting duplicates")

	// Annotations
	addFEN   = flag.Bool("fen", false, "Print the FEN after each position")
	addHash  = flag.Bool("hash", false, "Print the Zobrist key after each position")
	addState = flag.Bool("state", false, "Print side to move and game state after each position")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 per-line commentary")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no line count)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Processing limits
	stopAfter = flag.Int("stopafter", 0, "Stop after writing N input lines (0 = no limit)")

	// Performance options
	workers = flag.Int("j", 1, "Number of decode workers (0 = one per CPU core)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyMoveFlags(cfg)
	applyAnnotationFlags(cfg)
	applyDuplicateFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	cfg.Verify = *verify
	cfg.StopAfter = *stopAfter

	cfg.Workers = *workers
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return nil
}

// applyOutputFlags configures the output format and SVG options.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	cfg.Output.SquareSize = *squareSize
	cfg.Output.HighlightAttacks = *highlightAtks
	cfg.OutputFilename = *outputFile
	return nil
}

// applyMoveFlags configures the move played on each position.
func applyMoveFlags(cfg *config.Config) {
	cfg.Move.Coordinates = *moveCoords
	cfg.Move.Undo = *undoMove
}

// applyAnnotationFlags configures the lines printed after each position.
func applyAnnotationFlags(cfg *config.Config) {
	cfg.Annotation.AddFEN = *addFEN
	cfg.Annotation.AddHash = *addHash
	cfg.Annotation.AddState = *addState
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
	cfg.Duplicate.Placement = *placementOnly
	cfg.Duplicate.ExactMatch = *exactDuplicates
}
