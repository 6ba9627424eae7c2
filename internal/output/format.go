// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"todos/internal/todo"
)

// NoTasks is printed by list for an empty store on a terminal.
const NoTasks = "no tasks found"

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// FormatEmpty writes what list prints for an empty store: a hint on a
// terminal, a single blank line otherwise.
func FormatEmpty(w io.Writer) {
	if IsTerminal(w) {
		fmt.Fprintln(w, NoTasks)
		return
	}
	fmt.Fprintln(w)
}

// FormatTask writes a task block for the list command.
// Format: "#{ID} is done|not done\n{TEXT}\n\n"
func FormatTask(w io.Writer, task todo.Task) {
	fmt.Fprintf(w, "#%d is %s\n%s\n\n", task.ID, status(task), task.Text)
}

// FormatRaw writes only the task text, one per line.
func FormatRaw(w io.Writer, task *todo.Task) {
	fmt.Fprintln(w, task.Text)
}

// FormatPushed reports how many tasks were created remotely.
func FormatPushed(w io.Writer, n int) {
	fmt.Fprintf(w, "pushed %d\n", n)
}

func status(task todo.Task) string {
	if task.IsComplete {
		return "done"
	}
	return "not done"
}
