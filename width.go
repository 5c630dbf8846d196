package csv2md

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Measure selects how the display length of a field is counted.
type Measure string

const (
	// MeasureRunes counts Unicode code points.
	MeasureRunes Measure = "runes"
	// MeasureCells counts terminal cells, so East Asian wide characters take
	// two positions.
	MeasureCells Measure = "cells"
)

var measures = []Measure{MeasureRunes, MeasureCells}

// String returns the measure name.
func (m Measure) String() string { return string(m) }

// ParseMeasure parses a measure name. The empty string selects [MeasureRunes].
func ParseMeasure(s string) (Measure, error) {
	if s == "" {
		return MeasureRunes, nil
	}
	for _, m := range measures {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMeasure, s)
}

// Len returns the display length of s. Unknown measures count runes.
func (m Measure) Len(s string) int {
	if m == MeasureCells {
		return runewidth.StringWidth(s)
	}
	return utf8.RuneCountInString(s)
}

// Observe grows w so every column is at least as wide as the matching field
// of row plus two. Widths never shrink. Fields beyond len(w) are ignored.
func (w ColumnWidths) Observe(row Row, m Measure) ColumnWidths {
	for i, cell := range row {
		if i >= len(w) {
			break
		}
		if n := m.Len(cell) + 2; n > w[i] {
			w[i] = n
		}
	}
	return w
}

func seedWidths(header Row, m Measure) ColumnWidths {
	return make(ColumnWidths, len(header)).Observe(header, m)
}

// padCell right-pads s with spaces to width positions under m. Text already
// at or beyond width is returned unchanged.
func padCell(s string, width int, m Measure) string {
	pad := width - m.Len(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

// fitRow pads row with empty fields or truncates it to n fields.
func fitRow(row Row, n int) Row {
	if len(row) >= n {
		return row[:n]
	}
	fitted := make(Row, n)
	copy(fitted, row)
	return fitted
}
