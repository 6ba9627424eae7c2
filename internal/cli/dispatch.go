// Package cli parses the command line and runs one command against the store.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"todos/internal/commands"
	"todos/internal/config"
	"todos/internal/ctxlog"
	"todos/internal/exitcode"
	"todos/internal/todo"
)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	remote   commands.RemoteFactory
}

// NewDispatcher creates a new dispatcher with the given registry and remote
// backend factory.
func NewDispatcher(registry *commands.Registry, remote commands.RemoteFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		remote:   remote,
	}
}

// Run parses arguments, dispatches to the command and returns the exit code.
//
// For commands that operate on tasks the store is loaded after all arguments
// are validated and written back after the command succeeds, whether or not
// the command changed anything.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: command required")
		commands.WriteHelp(errOut, d.registry)
		return exitcode.UserError
	}

	cmdName := args[0]

	// Flags require a command
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	var overrides config.Overrides
	fs.StringVar(&overrides.Dir, "config", "", "")
	fs.StringVar(&overrides.StorePath, "file", "", "")
	fs.BoolVar(&overrides.Quiet, "quiet", false, "")
	fs.BoolVar(&overrides.Debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return reportFlagError(cmd, err, out, errOut)
	}

	// Dash-prefixed task text needs "--" first: todos add -- "-5 degrees"
	positional := fs.Args()
	if err := cmd.Parse(positional); err != nil {
		fmt.Fprintf(errOut, "error: %v\nusage: %s\n", err, cmd.Usage())
		return exitcode.UserError
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	logger := ctxlog.New(errOut, cfg.Debug)
	ctx = ctxlog.WithLogger(ctx, logger)

	env := &commands.Env{
		Config: cfg,
		Remote: d.remote,
	}
	if !cmd.NeedsStore() {
		return cmd.Run(ctx, env, out, errOut)
	}

	store, err := todo.FromCSVFile(cfg.StorePath)
	if err != nil {
		return commands.ReportStoreError(errOut, err)
	}
	logger.Debug("loaded store", "path", cfg.StorePath, "tasks", store.Len())
	env.Store = store

	if code := cmd.Run(ctx, env, out, errOut); code != exitcode.Success {
		return code
	}

	if err := store.Save(cfg.StorePath); err != nil {
		return commands.ReportStoreError(errOut, err)
	}
	logger.Debug("saved store", "path", cfg.StorePath, "tasks", store.Len())
	return exitcode.Success
}

// reportFlagError prints a flag parsing failure in the CLI's error format.
func reportFlagError(cmd commands.Command, err error, out, errOut io.Writer) int {
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(out, "usage: %s\n", cmd.Usage())
		return exitcode.Success
	}

	errStr := err.Error()
	switch {
	case strings.HasPrefix(errStr, "flag needs an argument:"):
		fmt.Fprintf(errOut, "error: %s\n", errStr)
	case strings.HasPrefix(errStr, "flag provided but not defined:"):
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
	default:
		fmt.Fprintf(errOut, "error: %s\n", errStr)
	}
	return exitcode.UserError
}
