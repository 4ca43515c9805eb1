// Package errors defines the command-level error types that map onto process
// exit codes.
package errors

import "fmt"

// CheckFailedError signals that the aggregation completed but the security
// gate tripped: the report contains critical findings. It carries the exit
// code so the CLI entrypoint can exit non-zero without treating the run as
// an execution failure.
type CheckFailedError struct {
	CriticalCount int
}

func (e *CheckFailedError) Error() string {
	return fmt.Sprintf("%d critical issue(s) found", e.CriticalCount)
}

// ExitCode returns the process exit code for the failed check.
func (e *CheckFailedError) ExitCode() int {
	return 1
}

// NewCheckFailedError creates a CheckFailedError for the given count.
func NewCheckFailedError(criticalCount int) *CheckFailedError {
	return &CheckFailedError{CriticalCount: criticalCount}
}
