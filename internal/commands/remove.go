package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todos/internal/exitcode"
)

func init() {
	Register(&RemoveCmd{})
}

// RemoveCmd implements the remove command.
type RemoveCmd struct {
	id uint64
}

func (c *RemoveCmd) Name() string      { return "remove" }
func (c *RemoveCmd) Aliases() []string { return []string{"rm"} }
func (c *RemoveCmd) Synopsis() string  { return "Delete a task by id" }
func (c *RemoveCmd) Usage() string     { return "todos remove <id>" }
func (c *RemoveCmd) NeedsStore() bool  { return true }

func (c *RemoveCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RemoveCmd) Parse(args []string) error {
	c.id = 0
	id, err := parseTaskID(args)
	if err != nil {
		return err
	}
	c.id = id
	return nil
}

// ID returns the parsed task id.
func (c *RemoveCmd) ID() uint64 { return c.id }

// Run removes the task. An unknown id is not an error.
func (c *RemoveCmd) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	env.Store.RemoveTodo(c.id)

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
