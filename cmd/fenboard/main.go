// fenboard decodes chess positions in FEN notation and prints them as
// boards, attack maps, SVG images, FEN or JSON.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/lgbarn/bitboard-go/internal/config"
	"github.com/lgbarn/bitboard-go/internal/hashing"
	"github.com/lgbarn/bitboard-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("fenboard version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupLogger(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	ctx := &ProcessingContext{
		cfg:       cfg,
		writer:    output.NewWriter(cfg.OutputFile, cfg),
		dupWriter: newDuplicateWriter(cfg),
		detector:  setupDuplicateDetector(cfg),
	}

	stats := processAllInputs(ctx)
	closeWriters(ctx)

	if cfg.Verbosity > 0 {
		reportStatistics(ctx.detector, stats)
	}
	if stats.Errors > 0 {
		os.Exit(2)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupLogger sends the default slog logger to the log file. Debug
// records are kept only at verbosity 2 and above.
func setupLogger(cfg *config.Config) {
	log.SetOutput(cfg.LogFile)
	if cfg.Verbosity > 1 {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// setupDuplicateDetector creates and configures the duplicate detector.
// Several workers share one detector, so they get the thread-safe one.
func setupDuplicateDetector(cfg *config.Config) hashing.DuplicateChecker {
	if !cfg.Duplicate.Suppress && cfg.Duplicate.DuplicateFile == nil && *checkFile == "" {
		return nil
	}

	hashType := hashing.HashFullPosition
	if cfg.Duplicate.Placement {
		hashType = hashing.HashPlacement
	}

	detector := hashing.NewDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)
	detector.SetHashType(hashType)

	// Load check file for duplicate detection
	if *checkFile != "" {
		file, err := os.Open(*checkFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening check file %s: %v\n", *checkFile, err)
			os.Exit(1)
		}
		defer file.Close()

		loaded, err := loadCheckPositions(file, *checkFile, detector)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading check file %s: %v\n", *checkFile, err)
			os.Exit(1)
		}

		if cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "Loaded %d positions from check file\n", loaded)
		}
	}

	if cfg.Workers <= 1 {
		return detector
	}

	shared := hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)
	shared.SetHashType(hashType)
	shared.LoadFromDetector(detector)
	return shared
}

// processAllInputs processes all input files or stdin.
func processAllInputs(ctx *ProcessingContext) Stats {
	args := flag.Args()
	var stats Stats

	if len(args) == 0 {
		stats.add(processInput(os.Stdin, "stdin", ctx))
		return stats
	}

	for _, filename := range args {
		if ctx.limitReached() {
			break
		}

		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
			stats.Errors++
			continue
		}

		stats.add(processInput(file, filename, ctx))

		file.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}

	return stats
}

// closeWriters flushes batched output and closes any files opened by
// the setup functions.
func closeWriters(ctx *ProcessingContext) {
	if err := ctx.writer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
	}
	if ctx.dupWriter != nil {
		ctx.dupWriter.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}

	for _, w := range []interface{}{ctx.cfg.OutputFile, ctx.cfg.Duplicate.DuplicateFile, ctx.cfg.LogFile} {
		if f, ok := w.(*os.File); ok && f != os.Stdout && f != os.Stderr {
			f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
		}
	}
}

// reportStatistics prints the final statistics to stderr.
func reportStatistics(detector hashing.DuplicateChecker, stats Stats) {
	if detector != nil {
		fmt.Fprintf(os.Stderr, "%d position(s) output, %d duplicate(s) out of %d.\n", stats.Output, stats.Duplicates, stats.Lines)
	} else {
		fmt.Fprintf(os.Stderr, "%d position(s) output out of %d.\n", stats.Output, stats.Lines)
	}
	if stats.Errors > 0 {
		fmt.Fprintf(os.Stderr, "%d line(s) could not be processed.\n", stats.Errors)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fenboard [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Decodes chess positions in FEN notation, one per line.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-f):\n")
	fmt.Fprintf(os.Stderr, "  text     8x8 character grid (default)\n")
	fmt.Fprintf(os.Stderr, "  svg      SVG board image\n")
	fmt.Fprintf(os.Stderr, "  fen      FEN line\n")
	fmt.Fprintf(os.Stderr, "  attacks  grid plus attack maps per piece\n")
	fmt.Fprintf(os.Stderr, "  json     JSON array of positions\n")
}
