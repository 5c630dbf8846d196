package csv2md

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
)

const (
	stdinName = "<stdin>"
	bom       = "\ufeff"
)

// IngestPath reads a table from the file at path. An empty path or "-"
// reads stdin instead.
func IngestPath(path string, stdin io.Reader, opts Options) (Table, ColumnWidths, error) {
	if path == "" || path == "-" {
		return Ingest(stdin, stdinName, opts)
	}
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &SourceReadError{Source: path, Err: err}
	}
	defer f.Close()
	return Ingest(f, path, opts)
}

// Ingest parses comma-separated records from r. The first record becomes the
// header and seeds the column widths; each later record may only grow them.
// name identifies r in errors. A source with no records yields an empty table
// and no error. Invalid opts fail before r is read.
func Ingest(r io.Reader, name string, opts Options) (Table, ColumnWidths, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	cr := csv.NewReader(r)
	// Field counts are checked below so the row policy decides.
	cr.FieldsPerRecord = -1

	var (
		table  Table
		widths ColumnWidths
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, &SourceReadError{Source: name, Err: err}
		}
		row := Row(rec)
		if len(table) == 0 {
			row[0] = strings.TrimPrefix(row[0], bom)
			widths = seedWidths(row, opts.Measure)
			table = append(table, row)
			continue
		}
		if len(row) != len(widths) {
			if opts.Rows == RowsReject {
				line, _ := cr.FieldPos(0)
				return nil, nil, &MalformedRowError{
					Source: name,
					Record: len(table) + 1,
					Line:   line,
					Got:    len(row),
					Want:   len(widths),
				}
			}
			row = fitRow(row, len(widths))
		}
		widths = widths.Observe(row, opts.Measure)
		table = append(table, row)
	}
	return table, widths, nil
}
