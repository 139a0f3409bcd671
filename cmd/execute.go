package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"firestige.xyz/v6hdr/internal/core"
)

// Process exit codes.
const (
	ExitOK             = 0
	ExitUsage          = 1 // wrong arguments or flags
	ExitMalformedInput = 2 // header text too short, not hex, or rejected by --strict
	ExitFailure        = 3 // configuration, logging or output failure
)

// Execute runs the command line and returns the process exit code.
// This is called by main.main().
func Execute() int {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}

	var usage *core.UsageError
	if errors.As(err, &usage) {
		fmt.Fprintln(stderr, usage.Msg)
	} else {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return exitCode(err)
}

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	var (
		usage *core.UsageError
		parse *core.ParseError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &usage):
		return ExitUsage
	case errors.As(err, &parse):
		return ExitMalformedInput
	default:
		return ExitFailure
	}
}
