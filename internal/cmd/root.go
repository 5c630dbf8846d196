// Package cmd implements the csv2md command line.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bjaus/csv2md"
	"github.com/bjaus/csv2md/internal/config"
	"github.com/bjaus/csv2md/internal/logging"
)

type flags struct {
	infile     string
	outfile    string
	fs         string
	debug      bool
	width      string
	rows       string
	atomic     bool
	logFormat  string
	configFile string
}

func newRootCmd(a *App) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "csv2md",
		Short: "Convert CSV into a markdown table",
		Long: `csv2md reads comma-separated data and writes it as a fixed-width,
pipe-delimited markdown table. The first record is the header.

Input is read from --infile, or standard input when it is empty or "-".
Output goes to --outfile, or standard output when it is empty or "-".

Config file (default ~/.config/csv2md/config.yaml, env: CSV2MD_CONFIG):
  width: runes        # runes | cells
  rows: pad           # pad | reject
  atomic: false
  log_format: text    # text | json

Examples:
  csv2md -i people.csv
  csv2md -i people.csv -o people.md --atomic
  cat people.csv | csv2md --rows reject`,
		Version:       fmt.Sprintf("%s (commit: %s)", a.Version, a.Commit),
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, &f)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	bindFlags(cmd.Flags(), &f)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, f *flags) {
	fs.StringVarP(&f.infile, "infile", "i", "", "CSV input file (default: stdin)")
	fs.StringVarP(&f.outfile, "outfile", "o", "", "Markdown output file (default: stdout)")
	fs.StringVarP(&f.fs, "fs", "f", ",", "[Unsupported] Field separator; only comma is read")
	fs.BoolVarP(&f.debug, "debug", "d", false, "Enable debug logging")
	fs.StringVar(&f.width, "width", string(csv2md.MeasureRunes), "Width measure (runes|cells)")
	fs.StringVar(&f.rows, "rows", string(csv2md.RowsPad), "Ragged row policy (pad|reject)")
	fs.BoolVar(&f.atomic, "atomic", false, "Replace --outfile atomically via a temp file")
	fs.StringVar(&f.logFormat, "log-format", string(logging.FormatText), "Log format (text|json)")
	fs.StringVar(&f.configFile, "config", "", "Config file (default: ~/.config/csv2md/config.yaml)")
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &UsageError{Err: err}
	}
	return nil
}

func run(cmd *cobra.Command, f *flags) error {
	fileCfg, err := loadConfig(f.configFile)
	if err != nil {
		return &UsageError{Err: err}
	}
	cfg, logFormat, err := resolve(cmd.Flags(), f, fileCfg)
	if err != nil {
		return &UsageError{Err: err}
	}

	logger := logging.New(cfg.Debug, cmd.ErrOrStderr(), logFormat)
	logger.Debug("resolved configuration",
		slog.String("infile", cfg.Source),
		slog.String("outfile", cfg.Destination),
		slog.String("fs", cfg.Delimiter),
		slog.String("width", cfg.Measure.String()),
		slog.String("rows", cfg.Rows.String()),
		slog.Bool("atomic", cfg.WriteMode == csv2md.WriteAtomic),
	)
	if cfg.Delimiter != "," {
		logger.Warn("field separator is not supported, reading comma-separated input", slog.String("fs", cfg.Delimiter))
	}

	stdin := cmd.InOrStdin()
	if isStdio(cfg.Source) && isTerminal(stdin) {
		logger.Info("reading CSV from standard input, finish with Ctrl-D")
	}

	if err := csv2md.Convert(cfg, stdin, cmd.OutOrStdout()); err != nil {
		return err
	}
	if !isStdio(cfg.Destination) {
		logger.Debug("wrote markdown table", slog.String("outfile", cfg.Destination))
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	return config.Load(path)
}

// resolve merges flags over the config file. A flag wins when it was set
// explicitly or the config file leaves the value empty.
func resolve(fs *pflag.FlagSet, f *flags, fileCfg *config.Config) (csv2md.Config, logging.Format, error) {
	measure, err := csv2md.ParseMeasure(pick(fs, "width", f.width, fileCfg.Width))
	if err != nil {
		return csv2md.Config{}, "", err
	}
	rows, err := csv2md.ParseRowPolicy(pick(fs, "rows", f.rows, fileCfg.Rows))
	if err != nil {
		return csv2md.Config{}, "", err
	}
	logFormat, err := logging.ParseFormat(pick(fs, "log-format", f.logFormat, fileCfg.LogFormat))
	if err != nil {
		return csv2md.Config{}, "", err
	}

	atomic := f.atomic
	if !fs.Changed("atomic") {
		atomic = fileCfg.Atomic
	}
	mode := csv2md.WriteTruncate
	if atomic {
		mode = csv2md.WriteAtomic
	}

	return csv2md.Config{
		Options:     csv2md.Options{Measure: measure, Rows: rows},
		Source:      f.infile,
		Destination: f.outfile,
		Delimiter:   pick(fs, "fs", f.fs, fileCfg.FS),
		Debug:       f.debug,
		WriteMode:   mode,
	}, logFormat, nil
}

func pick(fs *pflag.FlagSet, name, flagVal, cfgVal string) string {
	if fs.Changed(name) || cfgVal == "" {
		return flagVal
	}
	return cfgVal
}

func isStdio(path string) bool {
	return path == "" || path == "-"
}

func isTerminal(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
