package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todos/internal/ctxlog"
	"todos/internal/exitcode"
	"todos/internal/todo"
)

func init() {
	Register(&RestoreCmd{})
}

// RestoreCmd implements the restore command.
type RestoreCmd struct {
	path string
}

func (c *RestoreCmd) Name() string      { return "restore" }
func (c *RestoreCmd) Aliases() []string { return nil }
func (c *RestoreCmd) Synopsis() string  { return "Replace all tasks with those in another file" }
func (c *RestoreCmd) Usage() string     { return "todos restore <file>" }
func (c *RestoreCmd) NeedsStore() bool  { return true }

func (c *RestoreCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RestoreCmd) Parse(args []string) error {
	c.path = ""
	switch {
	case len(args) == 0:
		return usagef("file path required")
	case len(args) > 1:
		return usagef("unexpected argument: %s", args[1])
	}
	c.path = args[0]
	return nil
}

// Path returns the parsed source file.
func (c *RestoreCmd) Path() string { return c.path }

// Run loads c.path into the store. The final save still targets the
// configured store path, not c.path.
func (c *RestoreCmd) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	loaded, err := todo.FromCSVFile(c.path)
	if err != nil {
		return ReportStoreError(errOut, err)
	}
	env.Store.Replace(loaded)
	ctxlog.FromContext(ctx).Debug("restored store", "from", c.path, "tasks", loaded.Len())

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
