package cmd

import (
	"errors"
	"io"
	"syscall"
)

// UsageError reports a bad flag, argument, flag value or config file.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// IsUsageError reports whether err is or wraps a [UsageError].
func IsUsageError(err error) bool {
	var e *UsageError
	return errors.As(err, &e)
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers like `head` close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
