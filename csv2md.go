package csv2md

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedMeasure   = errors.New("unsupported width measure")
	ErrUnsupportedRowPolicy = errors.New("unsupported row policy")
)

// Row is one record of fields, positionally aligned with the header.
type Row []string

// Table is an ordered sequence of rows. The first row is the header.
type Table []Row

// ColumnWidths holds one padded width per column: the widest field in the
// column plus two.
type ColumnWidths []int

// RowPolicy decides what happens to a data row whose field count differs
// from the header's.
type RowPolicy string

const (
	// RowsPad pads short rows with empty fields and truncates long rows to
	// the header width.
	RowsPad RowPolicy = "pad"
	// RowsReject fails ingestion with a [MalformedRowError].
	RowsReject RowPolicy = "reject"
)

var rowPolicies = []RowPolicy{RowsPad, RowsReject}

// String returns the policy name.
func (p RowPolicy) String() string { return string(p) }

// ParseRowPolicy parses a row policy name. The empty string selects [RowsPad].
func ParseRowPolicy(s string) (RowPolicy, error) {
	if s == "" {
		return RowsPad, nil
	}
	for _, p := range rowPolicies {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedRowPolicy, s)
}

// WriteMode controls how the sink replaces a destination file.
type WriteMode int

const (
	// WriteTruncate creates or truncates the destination in place.
	WriteTruncate WriteMode = iota
	// WriteAtomic writes a sibling temp file and renames it over the
	// destination.
	WriteAtomic
)

// Options control ingestion. Zero values select [MeasureRunes] and
// [RowsPad].
type Options struct {
	Measure Measure
	Rows    RowPolicy
}

// Validate reports an unknown measure or row policy, wrapping
// [ErrUnsupportedMeasure] or [ErrUnsupportedRowPolicy].
func (o Options) Validate() error {
	if _, err := ParseMeasure(string(o.Measure)); err != nil {
		return err
	}
	if _, err := ParseRowPolicy(string(o.Rows)); err != nil {
		return err
	}
	return nil
}

// Config is the resolved configuration for one conversion.
type Config struct {
	Options

	// Source is the input path. Empty or "-" reads standard input.
	Source string

	// Destination is the output path. Empty or "-" writes standard output.
	Destination string

	// Delimiter is the requested field separator. Only comma is supported;
	// other values are carried for diagnostics and otherwise ignored.
	Delimiter string
	Debug     bool
	WriteMode WriteMode
}

// --- Errors ---

// SourceReadError reports a source that could not be opened or parsed.
type SourceReadError struct {
	Source string
	Err    error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Source, e.Err)
}

func (e *SourceReadError) Unwrap() error { return e.Err }

// MalformedRowError reports a data row whose field count differs from the
// header under [RowsReject].
type MalformedRowError struct {
	Source string
	Record int // 1-based, header is record 1
	Line   int
	Got    int
	Want   int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("read %s: record %d (line %d) has %d fields, header has %d",
		e.Source, e.Record, e.Line, e.Got, e.Want)
}

// WriteError reports a destination that could not be written.
type WriteError struct {
	Destination string
	Err         error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Destination, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
