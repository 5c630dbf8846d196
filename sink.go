package csv2md

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

const (
	stdoutName = "<stdout>"
	fileMode   = 0o644
)

// Write delivers content. An empty dest or "-" prints content plus a
// trailing newline to stdout (os.Stdout if nil). Any other dest receives
// content verbatim, created or truncated according to mode. New files are
// created with mode 0644 in either write mode.
func Write(stdout io.Writer, dest, content string, mode WriteMode) error {
	if dest == "" || dest == "-" {
		if stdout == nil {
			stdout = os.Stdout
		}
		if _, err := io.WriteString(stdout, content+"\n"); err != nil {
			return &WriteError{Destination: stdoutName, Err: err}
		}
		return nil
	}
	var err error
	switch mode {
	case WriteAtomic:
		err = writeAtomic(dest, content)
	default:
		err = os.WriteFile(dest, []byte(content), fileMode)
	}
	if err != nil {
		return &WriteError{Destination: dest, Err: err}
	}
	return nil
}

// writeAtomic replaces dest through a temp file. The temp file is created
// 0600 and only takes the mode of an existing dest, so a new dest is
// chmod'ed to match the truncating path.
func writeAtomic(dest, content string) error {
	_, statErr := os.Stat(dest)
	if err := atomic.WriteFile(dest, strings.NewReader(content)); err != nil {
		return err
	}
	if errors.Is(statErr, fs.ErrNotExist) {
		return os.Chmod(dest, fileMode)
	}
	return nil
}
