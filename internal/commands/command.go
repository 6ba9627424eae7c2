// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todos/internal/config"
	"todos/internal/remote"
	"todos/internal/todo"
)

// RemoteFactory creates the remote backend on demand.
// Used to inject a fake backend in tests.
type RemoteFactory func(ctx context.Context, cfg *config.Config) (remote.Service, error)

// Env is what a command runs against.
type Env struct {
	// Config is always set.
	Config *config.Config

	// Store is the loaded task store; nil if NeedsStore() returns false.
	Store *todo.Store

	// Remote builds the remote backend; only push uses it.
	Remote RemoteFactory
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command operates on the task store.
	// The store is then loaded before Run and saved after a successful Run.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Parse validates positional arguments after flag parsing and keeps the
	// parsed values. It runs before the store is touched; errors are usage
	// errors.
	Parse(args []string) error

	// Run executes the command and returns an exit code.
	Run(ctx context.Context, env *Env, out, errOut io.Writer) int
}

// UsageError reports bad or missing positional arguments.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &UsageError{msg: fmt.Sprintf(format, args...)}
}

// noArgs is the Parse implementation for commands without positional args.
func noArgs(args []string) error {
	if len(args) > 0 {
		return usagef("unexpected argument: %s", args[0])
	}
	return nil
}
