package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// App owns CLI wiring and the process streams.
type App struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Version string
	Commit  string
}

// NewApp constructs an App bound to the process streams.
func NewApp() *App {
	return &App{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Version: "dev",
		Commit:  "unknown",
	}
}

// Execute runs the CLI with the provided args. Errors are printed to Stderr
// and returned so the caller can map them with [ExitCode].
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.RootCommand()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		// The reader went away (e.g. `| head`); nothing left to report.
		if IsBrokenPipe(err) {
			return nil
		}
		printCommandError(a.Stderr, root, err)
		return err
	}
	return nil
}

// RootCommand builds the root command bound to the app's streams.
func (a *App) RootCommand() *cobra.Command {
	root := newRootCmd(a)
	root.SetIn(a.Stdin)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)
	return root
}

func printCommandError(w io.Writer, root *cobra.Command, err error) {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	if IsUsageError(err) {
		_, _ = fmt.Fprintf(w, "Run '%s --help' for usage.\n", root.CommandPath())
	}
}
