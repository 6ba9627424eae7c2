package todo_test

import (
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todos/internal/todo"
)

func TestAddTodos_AssignsSequentialIDs(t *testing.T) {
	s := todo.New()
	added, err := s.AddTodos("a", "b")
	require.NoError(t, err)

	want := []todo.Task{
		{ID: 0, Text: "a"},
		{ID: 1, Text: "b"},
	}
	if diff := cmp.Diff(want, s.Tasks()); diff != "" {
		t.Errorf("tasks mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, want, added)
	assert.Equal(t, uint64(2), s.NextID())
}

func TestRemoveTodo_DoesNotReuseID(t *testing.T) {
	s := todo.New()
	s.AddTodos("a", "b", "c")
	s.RemoveTodo(2)
	s.AddTodos("d")

	ids := taskIDs(s)
	assert.Equal(t, []uint64{0, 1, 3}, ids)
	assert.Equal(t, uint64(4), s.NextID())
}

func TestAddTodos_IDsExhausted(t *testing.T) {
	s := mustParse(t, "3,false,\"a\"\n18446744073709551614,false,\"b\"\n")
	assert.Equal(t, uint64(math.MaxUint64), s.NextID())

	added, err := s.AddTodos("c")
	assert.ErrorIs(t, err, todo.ErrIDsExhausted)
	assert.Nil(t, added)
	assert.Equal(t, []uint64{3, 18446744073709551614}, taskIDs(s))
	assert.Equal(t, uint64(math.MaxUint64), s.NextID())
}

func TestAddTodos_AllOrNothingNearLimit(t *testing.T) {
	s := mustParse(t, "18446744073709551613,false,\"a\"\n")

	_, err := s.AddTodos("b", "c")
	require.ErrorIs(t, err, todo.ErrIDsExhausted)
	assert.Equal(t, 1, s.Len())

	added, err := s.AddTodos("b")
	require.NoError(t, err)
	assert.Equal(t, []todo.Task{{ID: 18446744073709551614, Text: "b"}}, added)
}

func TestRemoveTodo_Absent(t *testing.T) {
	s := todo.New()
	s.AddTodos("a")
	s.RemoveTodo(42)
	assert.Equal(t, 1, s.Len())
}

func TestIDsStayUnique(t *testing.T) {
	s := todo.New()
	for i := 0; i < 20; i++ {
		s.AddTodos("x", "y")
		s.RemoveTodo(uint64(i))
	}

	ids := taskIDs(s)
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	assert.Equal(t, len(sorted), len(slices.Compact(sorted)), "duplicate ids in %v", ids)
	for _, id := range ids {
		assert.Less(t, id, s.NextID())
	}
}

func TestCompleteTodo(t *testing.T) {
	s := mustParse(t, "2,false,\"c\"\n0,false,\"a\"\n1,false,\"b\"\n")

	require.True(t, s.CompleteTodo(1))

	want := []todo.Task{
		{ID: 0, Text: "a"},
		{ID: 1, IsComplete: true, Text: "b"},
		{ID: 2, Text: "c"},
	}
	if diff := cmp.Diff(want, s.Tasks()); diff != "" {
		t.Errorf("tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestCompleteTodo_AbsentLeavesStoreUnchanged(t *testing.T) {
	s := todo.New()
	s.AddTodos("a", "b")
	before := s.Tasks()

	assert.False(t, s.CompleteTodo(7))
	assert.Equal(t, before, s.Tasks())
	assert.Equal(t, uint64(2), s.NextID())
}

func TestSortByIsComplete_IsStable(t *testing.T) {
	s := mustParse(t, "0,false,\"a\"\n1,true,\"b\"\n2,false,\"c\"\n")
	s.SortByIsComplete()
	assert.Equal(t, []uint64{0, 2, 1}, taskIDs(s))
}

func TestSortByID(t *testing.T) {
	s := mustParse(t, "5,true,\"e\"\n1,false,\"a\"\n3,false,\"c\"\n")
	s.SortByID()
	assert.Equal(t, []uint64{1, 3, 5}, taskIDs(s))
}

func TestFilters(t *testing.T) {
	s := mustParse(t, "0,true,\"a\"\n1,false,\"b\"\n2,true,\"c\"\n")

	var done, open []string
	for task := range s.AllCompletedTodos() {
		done = append(done, task.Text)
	}
	for task := range s.AllIncompleteTodos() {
		open = append(open, task.Text)
	}
	assert.Equal(t, []string{"a", "c"}, done)
	assert.Equal(t, []string{"b"}, open)

	// Sequences can be ranged over again and stop early.
	count := 0
	for range s.AllCompletedTodos() {
		count++
		break
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, 3, s.Len())
}

func TestReset(t *testing.T) {
	s := todo.New()
	s.AddTodos("a", "b")
	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, uint64(0), s.NextID())
	assert.Equal(t, "", s.ToCSV())
}

func TestReplace(t *testing.T) {
	s := todo.New()
	s.AddTodos("a")
	other := mustParse(t, "9,true,\"z\"\n")

	s.Replace(other)
	other.AddTodos("later")

	assert.Equal(t, []todo.Task{{ID: 9, IsComplete: true, Text: "z"}}, s.Tasks())
	assert.Equal(t, uint64(10), s.NextID())
}

func TestScenario(t *testing.T) {
	s := todo.New()
	s.AddTodos("buy milk", "walk dog")
	require.True(t, s.CompleteTodo(0))
	s.SortByIsComplete()

	assert.Equal(t, []uint64{1, 0}, taskIDs(s))
	assert.Equal(t, "1,false,\"walk dog\"\n0,true,\"buy milk\"\n", s.ToCSV())
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.csv")
	created, err := todo.Create(path)
	require.NoError(t, err)
	require.True(t, created)

	s := todo.New()
	s.AddTodos("one", "two")
	require.NoError(t, s.Save(path))

	loaded, err := todo.FromCSVFile(path)
	require.NoError(t, err)
	assert.Equal(t, s.Tasks(), loaded.Tasks())

	created, err = todo.Create(path)
	require.NoError(t, err)
	assert.False(t, created, "existing file must be left alone")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0,false,\"one\"\n1,false,\"two\"\n", string(data))
}

func TestSave_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")
	err := todo.New().Save(path)

	var ioErr *todo.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "open", ioErr.Op)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func taskIDs(s *todo.Store) []uint64 {
	var ids []uint64
	for _, task := range s.Tasks() {
		ids = append(ids, task.ID)
	}
	return ids
}

func mustParse(t *testing.T, csv string) *todo.Store {
	t.Helper()
	s, err := todo.FromCSV(csv)
	require.NoError(t, err)
	return s
}
