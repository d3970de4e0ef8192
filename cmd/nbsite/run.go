package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	flag "github.com/spf13/pflag"
)

// Command names.
const (
	cmdBuild      = "build"
	cmdNotebooks  = "notebooks"
	cmdReport     = "report"
	cmdInitConfig = "init-config"
	cmdVersion    = "version"
	cmdHelp       = "help"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoNotebooksDir = errors.New("notebooks directory not found")
	ErrNoReport       = errors.New("report file not found")
	ErrReadReport     = errors.New("failed to read report")
	ErrOutputDir      = errors.New("failed to prepare output directory")
	ErrWritePage      = errors.New("failed to write page")
)

// runMain dispatches a command and returns the process exit code.
// args[0] is the program name. Without a command, build runs.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	cmd := cmdBuild
	if len(args) > 0 && isCommand(args[0]) {
		cmd, args = args[0], args[1:]
	} else if len(args) > 0 && !isFlag(args[0]) {
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}

	var err error
	switch cmd {
	case cmdHelp:
		return runHelp(args, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "nbsite %s\n", Version)
		return ExitSuccess
	case cmdInitConfig:
		err = runInitConfig(args, env)
	default:
		err = runBuildCommand(ctx, cmd, args, env)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommand reports whether s names a command.
func isCommand(s string) bool {
	switch s {
	case cmdBuild, cmdNotebooks, cmdReport, cmdInitConfig, cmdVersion, cmdHelp:
		return true
	}
	return false
}

// isFlag reports whether s looks like a flag.
func isFlag(s string) bool {
	return len(s) > 1 && s[0] == '-'
}

// newLogger builds the structured logger for a run.
// Progress lines already report per-document outcomes, so records below
// error level are only shown with verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
