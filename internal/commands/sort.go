package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todos/internal/exitcode"
)

const (
	sortByStatus = "status"
	sortByID     = "id"
)

func init() {
	Register(&SortCmd{})
}

// SortCmd implements the sort command.
type SortCmd struct {
	by string
}

// SetBy sets the sort key (for testing).
func (c *SortCmd) SetBy(by string) {
	c.by = by
}

func (c *SortCmd) Name() string      { return "sort" }
func (c *SortCmd) Aliases() []string { return nil }
func (c *SortCmd) Synopsis() string  { return "Sort tasks, open ones first" }
func (c *SortCmd) Usage() string     { return "todos sort [--by status|id]" }
func (c *SortCmd) NeedsStore() bool  { return true }

func (c *SortCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.by, "by", sortByStatus, "")
}

func (c *SortCmd) Parse(args []string) error {
	if c.by != sortByStatus && c.by != sortByID {
		return usagef("invalid sort key: %s", c.by)
	}
	return noArgs(args)
}

func (c *SortCmd) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	if c.by == sortByID {
		env.Store.SortByID()
	} else {
		env.Store.SortByIsComplete()
	}

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
