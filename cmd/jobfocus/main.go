// Command jobfocus browses job postings from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/jobfocus/internal/cli"
	"github.com/rshade/jobfocus/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(extractExitCode(err))
	}
}

// run executes the root command with a context cancelled on SIGINT/SIGTERM.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.Execute(ctx, cli.NewRootCmd(version.GetVersion()))
}

// extractExitCode returns the exit code carried by a cli.ExitError, or 1.
func extractExitCode(err error) int {
	return cli.ExitCode(err)
}
