// Package main is the entry point for the udon CLI.
package main

import (
	"errors"
	"os"

	"github.com/udonlang/udon/internal/cli"
	"github.com/udonlang/udon/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err != nil {
		// ErrDocumentErrors and ErrRunFailed are exit-code signals, not
		// failures worth logging.
		if !errors.Is(err, cli.ErrDocumentErrors) && !errors.Is(err, cli.ErrRunFailed) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
	}
	return cli.ExitCode(err)
}
