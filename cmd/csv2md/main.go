package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bjaus/csv2md/internal/cmd"
)

// Version information set via ldflags during build
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Without this the runtime kills the process on a write to a closed
	// stdout pipe, before the error can reach the exit-code mapping.
	signal.Ignore(syscall.SIGPIPE)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	app := cmd.NewApp()
	app.Version = Version
	app.Commit = Commit
	if err := app.Execute(ctx, args); err != nil {
		return cmd.ExitCode(err)
	}
	return cmd.ExitOK
}
