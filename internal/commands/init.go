package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todos/internal/exitcode"
	"todos/internal/todo"
)

func init() {
	Register(&InitCmd{})
}

// InitCmd implements the init command. The store file must exist before any
// task command can load or save it.
type InitCmd struct{}

func (c *InitCmd) Name() string      { return "init" }
func (c *InitCmd) Aliases() []string { return nil }
func (c *InitCmd) Synopsis() string  { return "Create an empty store file" }
func (c *InitCmd) Usage() string     { return "todos init" }
func (c *InitCmd) NeedsStore() bool  { return false }

func (c *InitCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *InitCmd) Parse(args []string) error { return noArgs(args) }

func (c *InitCmd) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	created, err := todo.Create(env.Config.StorePath)
	if err != nil {
		return ReportStoreError(errOut, err)
	}

	if !env.Config.Quiet {
		if created {
			fmt.Fprintf(out, "created %s\n", env.Config.StorePath)
		} else {
			fmt.Fprintf(out, "%s already exists\n", env.Config.StorePath)
		}
	}
	return exitcode.Success
}
