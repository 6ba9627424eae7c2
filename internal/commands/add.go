package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todos/internal/ctxlog"
	"todos/internal/exitcode"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command. Each positional argument is one task.
type AddCmd struct {
	texts []string
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add one task per argument" }
func (c *AddCmd) Usage() string     { return "todos add <task> [<task>...]" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Parse(args []string) error {
	c.texts = nil
	if len(args) == 0 {
		return usagef("task text required")
	}
	c.texts = append([]string(nil), args...)
	return nil
}

// Texts returns the parsed task texts.
func (c *AddCmd) Texts() []string { return c.texts }

func (c *AddCmd) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	added, err := env.Store.AddTodos(c.texts...)
	if err != nil {
		return ReportStoreError(errOut, err)
	}
	for _, t := range added {
		ctxlog.FromContext(ctx).Debug("added task", "id", t.ID)
	}

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
