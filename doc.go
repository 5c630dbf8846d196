// Package csv2md renders comma-separated data as a fixed-width markdown table.
//
// A conversion is three strictly sequential stages. [Ingest] parses the
// records and measures each column, [Render] lays the rows out as aligned
// lines, and [Write] delivers the text to a file or standard output.
// [Convert] runs all three from a resolved [Config]:
//
//	err := csv2md.Convert(csv2md.Config{Source: "people.csv"}, os.Stdin, os.Stdout)
//
// # Layout
//
// Given
//
//	name,age
//	Alice,30
//	Bob,7
//
// the output is
//
//	| name  | age |
//	|-------|-----|
//	| Alice | 30  |
//	| Bob   | 7   |
//
// Each column is as wide as its widest field plus two: one leading space and
// at least one trailing space. The separator line has the same width as
// every other line.
//
// # Widths
//
// By default display length is counted in Unicode code points
// ([MeasureRunes]), so "café" is four positions wide regardless of its byte
// length. [MeasureCells] counts terminal cells instead, giving East Asian
// wide characters two positions.
//
// # Ragged rows
//
// Rows whose field count differs from the header are padded or truncated to
// the header under [RowsPad], or rejected with a [MalformedRowError] under
// [RowsReject].
//
// # Errors
//
// The package reports failures with typed errors:
//
//   - [SourceReadError] — the source cannot be opened or is not valid CSV
//   - [MalformedRowError] — a ragged row under [RowsReject]
//   - [WriteError] — the destination cannot be written
//
// and sentinel errors for option parsing:
//
//   - [ErrUnsupportedMeasure] — unknown measure name
//   - [ErrUnsupportedRowPolicy] — unknown row policy name
package csv2md
