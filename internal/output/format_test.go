package output

import (
	"bytes"
	"os"
	"testing"

	"todos/internal/todo"
)

func TestFormatTask(t *testing.T) {
	tests := []struct {
		task todo.Task
		want string
	}{
		{todo.Task{ID: 0, Text: "buy milk"}, "#0 is not done\nbuy milk\n\n"},
		{todo.Task{ID: 12, IsComplete: true, Text: "walk dog"}, "#12 is done\nwalk dog\n\n"},
		{todo.Task{ID: 3}, "#3 is not done\n\n\n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		FormatTask(&buf, tt.task)
		if buf.String() != tt.want {
			t.Errorf("FormatTask(%+v) = %q, want %q", tt.task, buf.String(), tt.want)
		}
	}
}

func TestFormatRaw(t *testing.T) {
	var buf bytes.Buffer
	FormatRaw(&buf, &todo.Task{ID: 4, IsComplete: true, Text: "walk dog"})
	if buf.String() != "walk dog\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestFormatEmpty_NotATerminal(t *testing.T) {
	var buf bytes.Buffer
	FormatEmpty(&buf)
	if buf.String() != "\n" {
		t.Errorf("unexpected output %q", buf.String())
	}

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("regular file reported as terminal")
	}
	FormatEmpty(f)
	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "\n" {
		t.Errorf("unexpected file output %q", data)
	}
}

func TestFormatPushed(t *testing.T) {
	var buf bytes.Buffer
	FormatPushed(&buf, 2)
	if buf.String() != "pushed 2\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
