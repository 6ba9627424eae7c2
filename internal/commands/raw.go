package commands

import (
	"context"
	"flag"
	"io"
	"iter"

	"todos/internal/exitcode"
	"todos/internal/output"
	"todos/internal/todo"
)

// RawKind selects which tasks raw prints.
type RawKind int

const (
	// RawDone prints completed tasks.
	RawDone RawKind = iota + 1

	// RawTodo prints incomplete tasks.
	RawTodo
)

var rawKinds = map[string]RawKind{
	"done": RawDone,
	"todo": RawTodo,
}

func init() {
	Register(&RawCmd{})
}

// RawCmd implements the raw command group: "raw done" and "raw todo".
type RawCmd struct {
	kind RawKind
}

func (c *RawCmd) Name() string      { return "raw" }
func (c *RawCmd) Aliases() []string { return nil }
func (c *RawCmd) Synopsis() string  { return "Print only the text of done or open tasks, no id or status" }
func (c *RawCmd) Usage() string     { return "todos raw done|todo" }
func (c *RawCmd) NeedsStore() bool  { return true }

func (c *RawCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RawCmd) Parse(args []string) error {
	c.kind = 0
	if len(args) == 0 {
		return usagef("raw subcommand required: done or todo")
	}
	kind, ok := rawKinds[args[0]]
	if !ok {
		return usagef("unknown raw subcommand: %s", args[0])
	}
	if len(args) > 1 {
		return usagef("unexpected argument: %s", args[1])
	}
	c.kind = kind
	return nil
}

// Kind returns the parsed sub-command.
func (c *RawCmd) Kind() RawKind { return c.kind }

func (c *RawCmd) Run(ctx context.Context, env *Env, out, errOut io.Writer) int {
	var tasks iter.Seq[*todo.Task]
	switch c.kind {
	case RawDone:
		tasks = env.Store.AllCompletedTodos()
	case RawTodo:
		tasks = env.Store.AllIncompleteTodos()
	default:
		return exitcode.UserError
	}

	for task := range tasks {
		output.FormatRaw(out, task)
	}
	return exitcode.Success
}
