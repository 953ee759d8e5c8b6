package dataset

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// NotFoundError indicates one or more required source files are missing.
// The message carries the resolved directory so the operator knows where
// the loader looked.
type NotFoundError struct {
	Dir     string
	Missing []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("data files not found in %s (missing: %s); regenerate the source files first",
		e.Dir, strings.Join(e.Missing, ", "))
}

// ProcessingError indicates a failure during column mapping, type coercion,
// or derived-field computation. It wraps the original cause and captures a
// stack trace for operator debugging; nothing downstream should see a
// half-derived table.
type ProcessingError struct {
	Op    string
	Err   error
	Stack []byte
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing %s: %v", e.Op, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }

// Trace returns the stack captured when the error was created.
func (e *ProcessingError) Trace() string { return string(e.Stack) }

func newProcessingError(op string, err error) *ProcessingError {
	return &ProcessingError{Op: op, Err: err, Stack: debug.Stack()}
}
