package commands

import (
	"context"
	"flag"
	"io"

	"todos/internal/exitcode"
	"todos/internal/output"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "Print all tasks" }
func (c *ListCmd) Usage() string     { return "todos list" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Parse(args []string) error { return noArgs(args) }

func (c *ListCmd) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	tasks := env.Store.Tasks()
	if len(tasks) == 0 {
		if !env.Config.Quiet {
			output.FormatEmpty(out)
		}
		return exitcode.Success
	}

	for _, task := range tasks {
		output.FormatTask(out, task)
	}
	return exitcode.Success
}
