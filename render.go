package csv2md

import (
	"strings"
)

// Render lays out t as markdown table lines: the header, a dash separator,
// then one line per data row. Every cell is a space plus the field, padded
// to its column width under m. Missing fields render empty and fields past
// the last width are dropped. An empty table renders no lines.
func Render(t Table, widths ColumnWidths, m Measure) []string {
	if len(t) == 0 {
		return nil
	}
	lines := make([]string, 0, len(t)+1)
	for r, row := range t {
		lines = append(lines, renderRow(row, widths, m))
		if r == 0 {
			lines = append(lines, separator(widths))
		}
	}
	return lines
}

// Join concatenates lines, terminating each with a newline.
func Join(lines []string) string {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func renderRow(row Row, widths ColumnWidths, m Measure) string {
	var sb strings.Builder
	sb.WriteByte('|')
	for i, width := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		sb.WriteString(padCell(" "+cell, width, m))
		sb.WriteByte('|')
	}
	return sb.String()
}

func separator(widths ColumnWidths) string {
	var sb strings.Builder
	sb.WriteByte('|')
	for _, width := range widths {
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteByte('|')
	}
	return sb.String()
}
