// Package testutil provides shared test utilities for the bitboard-go project.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		reportf(t, formatMessage(msgAndArgs...), "mismatch (-want +got):\n%s", diff)
	}
}

// AssertBoard compares two 64-bit boards and, on mismatch, prints both as
// 8x8 grids with rank 8 on top. Boards are taken as uint64 so that any
// bitboard type can be passed after conversion.
func AssertBoard(t *testing.T, got, want uint64, msgAndArgs ...interface{}) {
	t.Helper()
	if got == want {
		return
	}
	reportf(t, formatMessage(msgAndArgs...), "board = %d; want %d\ngot:\n%swant:\n%s",
		got, want, Grid(got), Grid(want))
}

// Grid draws a 64-bit board with 'x' for set bits, rank 8 first.
func Grid(b uint64) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b&(1<<uint(rank*8+file)) != 0 {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		reportf(t, formatMessage(msgAndArgs...), "unexpected error: %v", err)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		reportf(t, formatMessage(msgAndArgs...), "expected error %v but got nil", target)
		return
	}
	if !errors.Is(err, target) {
		reportf(t, formatMessage(msgAndArgs...), "error = %v; want %v", err, target)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		reportf(t, formatMessage(msgAndArgs...), "%q does not contain %q", got, substr)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		reportf(t, formatMessage(msgAndArgs...), "expected true but got false")
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		reportf(t, formatMessage(msgAndArgs...), "expected false but got true")
	}
}

// reportf reports a failure, prefixed with msg when it is not empty.
func reportf(t *testing.T, msg, format string, args ...interface{}) {
	t.Helper()
	text := fmt.Sprintf(format, args...)
	if msg != "" {
		t.Errorf("%s: %s", msg, text)
	} else {
		t.Error(text)
	}
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
