package csv2md

import (
	"io"
)

// Convert runs the whole pipeline: ingest the source, render the table and
// deliver it. Nothing is written when ingestion fails.
func Convert(cfg Config, stdin io.Reader, stdout io.Writer) error {
	table, widths, err := IngestPath(cfg.Source, stdin, cfg.Options)
	if err != nil {
		return err
	}
	content := Join(Render(table, widths, cfg.Measure))
	return Write(stdout, cfg.Destination, content, cfg.WriteMode)
}
