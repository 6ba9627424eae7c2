package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todos/internal/exitcode"
)

func init() {
	Register(&ResetCmd{})
}

// ResetCmd implements the reset command.
type ResetCmd struct{}

func (c *ResetCmd) Name() string      { return "reset" }
func (c *ResetCmd) Aliases() []string { return nil }
func (c *ResetCmd) Synopsis() string  { return "Discard all tasks" }
func (c *ResetCmd) Usage() string     { return "todos reset" }
func (c *ResetCmd) NeedsStore() bool  { return true }

func (c *ResetCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ResetCmd) Parse(args []string) error { return noArgs(args) }

// Run empties the loaded store; the final save then clears the file.
func (c *ResetCmd) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	env.Store.Reset()

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
