package cli

import "fmt"

// Exit codes reported by vigil commands.
const (
	// ExitOK means the verdict was positive.
	ExitOK = 0
	// ExitViolations means validation ran to completion and found violations.
	ExitViolations = 1
	// ExitOperational means validation could not run (unreadable artifact,
	// bad configuration).
	ExitOperational = 2
)

// VerdictError signals a negative verdict to the command layer without
// printing anything further; the report has already been written.
type VerdictError struct {
	Violations int
}

func (e *VerdictError) Error() string {
	return fmt.Sprintf("validation failed with %d violation(s)", e.Violations)
}

// OperationalError wraps a failure that prevented validation from running at
// all, as distinct from a negative verdict.
type OperationalError struct {
	Err error
}

func (e *OperationalError) Error() string {
	return e.Err.Error()
}

func (e *OperationalError) Unwrap() error {
	return e.Err
}
