// processor.go - Line decoding and output functions
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/bitboard-go/internal/config"
	"github.com/lgbarn/bitboard-go/internal/errors"
	"github.com/lgbarn/bitboard-go/internal/hashing"
	"github.com/lgbarn/bitboard-go/internal/interop"
	"github.com/lgbarn/bitboard-go/internal/output"
	"github.com/lgbarn/bitboard-go/internal/position"
	"github.com/lgbarn/bitboard-go/internal/worker"
)

// ProcessingContext holds all processing state
type ProcessingContext struct {
	cfg       *config.Config
	detector  hashing.DuplicateChecker
	writer    output.PositionWriter
	dupWriter output.PositionWriter

	// written counts lines written across all inputs, for -stopafter
	written int
}

// limitReached reports whether the -stopafter limit has been hit.
func (ctx *ProcessingContext) limitReached() bool {
	return ctx.cfg.StopAfter > 0 && ctx.written >= ctx.cfg.StopAfter
}

// Stats counts what happened to the input lines.
type Stats struct {
	Lines      int
	Output     int
	Duplicates int
	Errors     int
}

func (s *Stats) add(o Stats) {
	s.Lines += o.Lines
	s.Output += o.Output
	s.Duplicates += o.Duplicates
	s.Errors += o.Errors
}

// readLines collects the FEN lines of r as work items. Blank lines and
// lines starting with '#' are skipped; line numbers still count them.
func readLines(r io.Reader, name string) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, worker.WorkItem{
			Line:       line,
			Source:     name,
			LineNumber: lineNumber,
			Index:      len(items),
		})
	}
	if err := scanner.Err(); err != nil {
		return items, fmt.Errorf("reading %s: %w", name, err)
	}
	return items, nil
}

// processInput decodes and writes every line of r.
func processInput(r io.Reader, name string, ctx *ProcessingContext) Stats {
	ctx.cfg.CurrentInputFile = name

	items, err := readLines(r, name)
	stats := Stats{}
	if err != nil {
		fmt.Fprintf(ctx.cfg.LogFile, "Error: %v\n", err)
		stats.Errors++
	}
	stats.Lines += len(items)

	var out Stats
	if ctx.cfg.Workers > 1 && len(items) > 2 {
		out = processLinesParallel(items, ctx)
	} else {
		out = processLinesSequential(items, ctx)
	}
	stats.add(out)
	return stats
}

// processLinesSequential processes lines on the calling goroutine.
func processLinesSequential(items []worker.WorkItem, ctx *ProcessingContext) Stats {
	var stats Stats
	for _, item := range items {
		if ctx.limitReached() {
			break
		}
		handleResult(processLine(item, ctx), ctx, &stats)
	}
	return stats
}

// processLinesParallel processes lines using a worker pool.
//
// Workers decode, verify and run the duplicate check; results are put
// back in input order and written by the single consumer loop below, so
// the writers need no locking. Once the -stopafter limit is hit the pool
// is stopped and the remaining results are dropped.
func processLinesParallel(items []worker.WorkItem, ctx *ProcessingContext) Stats {
	processFunc := func(item worker.WorkItem) worker.ProcessResult {
		return processLine(item, ctx)
	}

	bufferSize := len(items)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPoolWithOptions(processFunc,
		worker.WithWorkers(ctx.cfg.Workers),
		worker.WithBufferSize(bufferSize))
	pool.Start()

	if ctx.cfg.Verbosity > 1 {
		fmt.Fprintf(ctx.cfg.LogFile, "Decoding %d line(s) from %s with %d workers\n",
			len(items), ctx.cfg.CurrentInputFile, pool.NumWorkers())
	}

	go func() {
		for _, item := range items {
			if pool.IsStopped() {
				break
			}
			pool.Submit(item)
		}
		pool.Close()
	}()

	var stats Stats
	worker.InOrder(pool.Results(), 0, func(result worker.ProcessResult) {
		if ctx.limitReached() {
			pool.Stop()
			return
		}
		handleResult(result, ctx, &stats)
	})
	return stats
}

// processLine does all the per-line work that can run on a worker:
// decoding, the optional cross-check, the optional move and undo, and
// the duplicate check.
func processLine(item worker.WorkItem, ctx *ProcessingContext) worker.ProcessResult {
	cfg := ctx.cfg
	result := worker.ProcessResult{
		Index:      item.Index,
		Source:     item.Source,
		LineNumber: item.LineNumber,
	}
	fail := func(err error) worker.ProcessResult {
		result.Error = &errors.LineError{Err: err, File: item.Source, Line: item.LineNumber}
		return result
	}

	pos, err := position.NewPositionFromFEN(item.Line)
	if err != nil {
		return fail(err)
	}
	if cfg.Verify {
		if err := interop.CrossCheck(item.Line); err != nil {
			return fail(err)
		}
	}
	result.Positions = []*position.Position{pos}

	if cfg.Move.Enabled() {
		m, err := pos.MoveFromCoordinates(cfg.Move.Coordinates)
		if err != nil {
			return fail(err)
		}
		moved := pos.Clone()
		moved.Apply(m)
		moved.RecomputeAttacks()
		result.Positions = append(result.Positions, moved)

		if cfg.Move.Undo {
			undone := moved.Clone()
			if _, err := undone.Undo(); err != nil {
				return fail(err)
			}
			undone.RecomputeAttacks()
			result.Positions = append(result.Positions, undone)
		}
	}

	if ctx.detector != nil {
		result.Duplicate = ctx.detector.CheckAndAdd(pos)
	}
	return result
}

// handleResult writes one processed line and updates stats. It runs on a
// single goroutine.
func handleResult(result worker.ProcessResult, ctx *ProcessingContext, stats *Stats) {
	cfg := ctx.cfg

	if result.Error != nil {
		stats.Errors++
		if cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "Skipping line: %v\n", result.Error)
		}
		return
	}

	if result.Duplicate {
		stats.Duplicates++
		outputDuplicate(result, ctx)
		if cfg.Duplicate.Suppress {
			return
		}
	}

	for _, pos := range result.Positions {
		if err := ctx.writer.WritePosition(pos); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error writing %s:%d: %v\n", result.Source, result.LineNumber, err)
			stats.Errors++
			return
		}
	}
	stats.Output++
	ctx.written++

	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "%s:%d: %s\n", result.Source, result.LineNumber,
			position.PositionToFEN(result.Positions[0]))
	}
}

// outputDuplicate writes the decoded position to the duplicate file if
// configured.
func outputDuplicate(result worker.ProcessResult, ctx *ProcessingContext) {
	if ctx.dupWriter == nil {
		return
	}
	if err := ctx.dupWriter.WritePosition(result.Positions[0]); err != nil {
		fmt.Fprintf(ctx.cfg.LogFile, "Error writing duplicate %s:%d: %v\n", result.Source, result.LineNumber, err)
	}
}

// newDuplicateWriter returns the writer used for the duplicate file: FEN
// lines, or one JSON object per position when the main output is JSON.
func newDuplicateWriter(cfg *config.Config) output.PositionWriter {
	if cfg.Duplicate.DuplicateFile == nil {
		return nil
	}
	if cfg.Output.Format == config.JSON {
		return output.NewJSONWriterSingle(cfg.Duplicate.DuplicateFile, cfg)
	}
	return output.NewFENWriter(cfg.Duplicate.DuplicateFile, cfg)
}

// loadCheckPositions decodes every line of r into detector so that later
// input matching them counts as duplicate. Lines that fail to decode are
// skipped. Returns the number of positions loaded.
func loadCheckPositions(r io.Reader, name string, detector *hashing.DuplicateDetector) (int, error) {
	items, err := readLines(r, name)
	loaded := 0
	for _, item := range items {
		pos, decodeErr := position.NewPositionFromFEN(item.Line)
		if decodeErr != nil {
			continue
		}
		detector.CheckAndAdd(pos)
		loaded++
	}
	return loaded, err
}
