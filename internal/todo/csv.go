package todo

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// maxID is reserved so that the next id never wraps.
const maxID = math.MaxUint64

// errBadBool is returned for a completion field that is not "true" or "false".
var errBadBool = errors.New("provided string was not `true` or `false`")

// FromCSVFile reads and parses the store file at path.
func FromCSVFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return FromCSV(string(data))
}

// FromCSV parses newline-separated records of the form id,is_complete,"text".
// Quote characters in the text field are stripped. There is no escaping, so a
// text containing a comma is split into an extra column and rejected.
func FromCSV(csv string) (*Store, error) {
	s := New()
	n := 0
	for line := range strings.Lines(csv) {
		n++
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		task, err := parseRecord(line)
		if err != nil {
			err.Line = n
			return nil, err
		}
		s.tasks = append(s.tasks, task)
	}

	for _, t := range s.tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s, nil
}

// parseRecord parses a single record. Missing trailing fields keep their zero
// values.
func parseRecord(line string) (Task, *ParseError) {
	var task Task
	for i, field := range strings.Split(line, ",") {
		switch i {
		case 0:
			id, err := strconv.ParseUint(field, 10, 64)
			if err != nil {
				return Task{}, &ParseError{Msg: "invalid id", Err: err}
			}
			if id == maxID {
				return Task{}, &ParseError{Msg: "id out of range"}
			}
			task.ID = id
		case 1:
			done, err := parseBool(field)
			if err != nil {
				return Task{}, &ParseError{Msg: "invalid completion flag", Err: err}
			}
			task.IsComplete = done
		case 2:
			task.Text = strings.ReplaceAll(field, `"`, "")
		default:
			return Task{}, &ParseError{Msg: "too many columns on line"}
		}
	}
	return task, nil
}

// parseBool accepts only the literals written by ToCSV.
func parseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, errBadBool
}

// ToCSV serializes the store in its current order, one record per line.
func (s *Store) ToCSV() string {
	var b strings.Builder
	for _, t := range s.tasks {
		fmt.Fprintf(&b, "%d,%t,\"%s\"\n", t.ID, t.IsComplete, t.Text)
	}
	return b.String()
}

// Save truncates the existing file at path and writes the serialized store.
// The file is not created if it is missing.
func (s *Store) Save(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	if _, err := f.WriteString(s.ToCSV()); err != nil {
		f.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	return nil
}

// Create creates an empty store file at path. It reports false without error
// if the file already exists.
func Create(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, &IOError{Op: "create", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return false, &IOError{Op: "close", Path: path, Err: err}
	}
	return true, nil
}
