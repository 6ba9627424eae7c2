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
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct {
	id uint64
}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return nil }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed" }
func (c *DoneCmd) Usage() string     { return "todos done <id>" }
func (c *DoneCmd) NeedsStore() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Parse(args []string) error {
	c.id = 0
	id, err := parseTaskID(args)
	if err != nil {
		return err
	}
	c.id = id
	return nil
}

// ID returns the parsed task id.
func (c *DoneCmd) ID() uint64 { return c.id }

// Run completes the task. The store is left sorted by id either way, and an
// unknown id is not an error.
func (c *DoneCmd) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	if !env.Store.CompleteTodo(c.id) {
		ctxlog.FromContext(ctx).Debug("no task with id", "id", c.id)
	}

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
