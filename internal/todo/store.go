// Package todo holds the task store and its CSV persistence.
package todo

import (
	"cmp"
	"errors"
	"iter"
	"slices"
)

// ErrIDsExhausted is returned by AddTodos when no unused id is left.
var ErrIDsExhausted = errors.New("task ids exhausted")

// Task is a single todo item.
type Task struct {
	ID         uint64
	IsComplete bool
	Text       string
}

// Store is an ordered list of tasks plus the next id to hand out.
// The zero value is an empty store.
type Store struct {
	nextID uint64
	tasks  []Task
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Len returns the number of tasks.
func (s *Store) Len() int { return len(s.tasks) }

// NextID returns the id the next added task will receive.
func (s *Store) NextID() uint64 { return s.nextID }

// Tasks returns a copy of the tasks in store order.
func (s *Store) Tasks() []Task {
	return slices.Clone(s.tasks)
}

// AddTodos appends one incomplete task per text, in order, and returns them.
// If the texts would need an id past the largest storable one, nothing is
// added and ErrIDsExhausted is returned.
func (s *Store) AddTodos(texts ...string) ([]Task, error) {
	if uint64(len(texts)) > maxID-s.nextID {
		return nil, ErrIDsExhausted
	}
	added := make([]Task, 0, len(texts))
	for _, text := range texts {
		t := Task{ID: s.nextID, Text: text}
		s.nextID++
		s.tasks = append(s.tasks, t)
		added = append(added, t)
	}
	return added, nil
}

// RemoveTodo removes every task with the given id. The id is not reused.
func (s *Store) RemoveTodo(id uint64) {
	s.tasks = slices.DeleteFunc(s.tasks, func(t Task) bool { return t.ID == id })
}

// CompleteTodo marks the task with the given id complete and reports whether
// it was found. It leaves the store sorted by id.
func (s *Store) CompleteTodo(id uint64) bool {
	s.SortByID()
	i, ok := slices.BinarySearchFunc(s.tasks, id, func(t Task, id uint64) int {
		return cmp.Compare(t.ID, id)
	})
	if !ok {
		return false
	}
	s.tasks[i].IsComplete = true
	return true
}

// SortByID stably sorts tasks by ascending id.
func (s *Store) SortByID() {
	slices.SortStableFunc(s.tasks, func(a, b Task) int {
		return cmp.Compare(a.ID, b.ID)
	})
}

// SortByIsComplete stably sorts incomplete tasks before complete ones.
func (s *Store) SortByIsComplete() {
	slices.SortStableFunc(s.tasks, func(a, b Task) int {
		return cmp.Compare(boolKey(a.IsComplete), boolKey(b.IsComplete))
	})
}

func boolKey(b bool) int {
	if b {
		return 1
	}
	return 0
}

// AllCompletedTodos yields the complete tasks in store order.
func (s *Store) AllCompletedTodos() iter.Seq[*Task] {
	return s.filter(func(t *Task) bool { return t.IsComplete })
}

// AllIncompleteTodos yields the incomplete tasks in store order.
func (s *Store) AllIncompleteTodos() iter.Seq[*Task] {
	return s.filter(func(t *Task) bool { return !t.IsComplete })
}

func (s *Store) filter(keep func(*Task) bool) iter.Seq[*Task] {
	return func(yield func(*Task) bool) {
		for i := range s.tasks {
			t := &s.tasks[i]
			if keep(t) && !yield(t) {
				return
			}
		}
	}
}

// Reset discards all tasks and restarts ids at zero.
func (s *Store) Reset() {
	*s = Store{}
}

// Replace makes s a copy of other.
func (s *Store) Replace(other *Store) {
	s.nextID = other.nextID
	s.tasks = slices.Clone(other.tasks)
}
