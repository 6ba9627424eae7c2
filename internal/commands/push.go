package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todos/internal/ctxlog"
	"todos/internal/exitcode"
	"todos/internal/output"
	"todos/internal/remote"
)

func init() {
	Register(&PushCmd{})
}

// PushCmd implements the push command: it copies open tasks to Google Tasks.
type PushCmd struct {
	listName string
}

// SetListName sets the list name (for testing).
func (c *PushCmd) SetListName(name string) {
	c.listName = name
}

func (c *PushCmd) Name() string      { return "push" }
func (c *PushCmd) Aliases() []string { return nil }
func (c *PushCmd) Synopsis() string  { return "Copy open tasks to Google Tasks" }
func (c *PushCmd) Usage() string     { return "todos push [--list <list-name>]" }
func (c *PushCmd) NeedsStore() bool  { return true }

func (c *PushCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *PushCmd) Parse(args []string) error { return noArgs(args) }

// Run creates one remote task per open local task whose text is not already
// an open task in the target list. Nothing is ever deleted or completed
// remotely.
func (c *PushCmd) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	logger := ctxlog.FromContext(ctx)
	if env.Remote == nil {
		fmt.Fprintln(errOut, "error: backend error: no remote configured")
		return exitcode.BackendError
	}

	svc, err := env.Remote(ctx, env.Config)
	if err != nil {
		return reportRemoteError(errOut, err)
	}

	var list remote.TaskList
	if c.listName != "" {
		list, err = svc.ResolveList(ctx, c.listName)
	} else {
		list, err = svc.DefaultList(ctx)
	}
	if err != nil {
		return reportRemoteError(errOut, err)
	}

	existing, err := svc.ListOpenTitles(ctx, list.ID)
	if err != nil {
		return reportRemoteError(errOut, err)
	}
	seen := make(map[string]bool, len(existing))
	for _, title := range existing {
		seen[title] = true
	}

	pushed := 0
	for task := range env.Store.AllIncompleteTodos() {
		if seen[task.Text] {
			logger.Debug("already on remote", "id", task.ID)
			continue
		}
		if err := svc.CreateTask(ctx, list.ID, task.Text); err != nil {
			return reportRemoteError(errOut, err)
		}
		seen[task.Text] = true
		pushed++
	}
	logger.Debug("push finished", "list", list.Title, "pushed", pushed)

	if !env.Config.Quiet {
		output.FormatPushed(out, pushed)
	}
	return exitcode.Success
}
