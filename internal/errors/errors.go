// Package errors provides sentinel errors and error types for the bitboard tools.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSideColor indicates a side-to-move field other than "w" or "b".
	ErrInvalidSideColor = errors.New("invalid side color")

	// ErrInvalidSquare indicates a square whose file or rank is out of range.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFormat indicates text too short to hold a square.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidHalfmove indicates a non-numeric halfmove clock.
	ErrInvalidHalfmove = errors.New("invalid halfmove clock")

	// ErrInvalidFullmove indicates a non-numeric or zero fullmove number.
	ErrInvalidFullmove = errors.New("invalid fullmove number")

	// ErrIllegalMove indicates a move whose preconditions do not hold
	// against the position it is checked on.
	ErrIllegalMove = errors.New("illegal move")

	// ErrEmptyHistory indicates an undo with no move to take back.
	ErrEmptyHistory = errors.New("move history is empty")

	// ErrReferenceMismatch indicates our decoder and the reference decoder disagree.
	ErrReferenceMismatch = errors.New("reference mismatch")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FENError reports where in a FEN string decoding failed. It wraps one of the
// sentinel errors above so callers can still use errors.Is().
type FENError struct {
	Err   error  // The underlying sentinel error
	Field string // FEN field name ("placement", "side", ...)
	Index int    // 0-based character offset within the field (-1 if not applicable)
	Char  rune   // Offending character (0 if not applicable)
	Text  string // The offending field text
}

// Error returns a formatted error message including all available context.
func (e *FENError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	if e.Index >= 0 {
		if e.Char != 0 {
			parts = append(parts, fmt.Sprintf("character %q at position %d", e.Char, e.Index))
		} else {
			parts = append(parts, fmt.Sprintf("position %d", e.Index))
		}
	} else if e.Text != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Text))
	}

	context := strings.Join(parts, ": ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "FEN error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the FENError wrapper.
func (e *FENError) Unwrap() error {
	return e.Err
}

// LineError wraps errors with input context (source name and line number).
type LineError struct {
	Err  error  // The underlying error
	File string // Source file name (if known)
	Line int    // 1-based line number (0 if unknown)
}

// Error returns a formatted error message including all available context.
func (e *LineError) Error() string {
	loc := e.File
	if loc == "" {
		loc = "<stdin>"
	}
	if e.Line > 0 {
		loc += fmt.Sprintf(":%d", e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", loc, e.Err)
	}
	return loc
}

// Unwrap returns the underlying error.
func (e *LineError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's tree matches target.
// It forwards to the standard library so callers importing this package
// under the name "errors" keep access to it.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
