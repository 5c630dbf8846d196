package cmd

import (
	"errors"

	"github.com/bjaus/csv2md"
)

const (
	ExitOK     = 0
	ExitSystem = 1
	ExitUsage  = 2
	ExitRead   = 3
	ExitWrite  = 4
)

// ExitCode maps a command error to a stable process exit code.
func ExitCode(err error) int {
	if err == nil || IsBrokenPipe(err) {
		return ExitOK
	}
	if IsUsageError(err) {
		return ExitUsage
	}

	var readErr *csv2md.SourceReadError
	var rowErr *csv2md.MalformedRowError
	if errors.As(err, &readErr) || errors.As(err, &rowErr) {
		return ExitRead
	}

	var writeErr *csv2md.WriteError
	if errors.As(err, &writeErr) {
		return ExitWrite
	}
	return ExitSystem
}
