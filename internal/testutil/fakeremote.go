// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"strings"
	"sync"

	"todos/internal/remote"
)

// DefaultListID is the ID used for the default list.
const DefaultListID = "@default"

// FakeRemote is an in-memory implementation of remote.Service for testing.
type FakeRemote struct {
	mu    sync.RWMutex
	lists []remote.TaskList
	open  map[string][]string // listID -> open titles

	// Error injection for testing
	DefaultListErr    error
	ResolveListErr    error
	ListOpenTitlesErr error
	CreateTaskErr     error
}

// NewFakeRemote creates a FakeRemote with an empty default list.
func NewFakeRemote() *FakeRemote {
	return &FakeRemote{
		lists: []remote.TaskList{{ID: DefaultListID, Title: "My Tasks", IsDefault: true}},
		open:  map[string][]string{DefaultListID: nil},
	}
}

// AddList adds an empty named list.
func (f *FakeRemote) AddList(id, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, remote.TaskList{ID: id, Title: title})
	f.open[id] = nil
}

// AddTask adds an open task to a list.
func (f *FakeRemote) AddTask(listID, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open[listID] = append(f.open[listID], title)
}

// Titles returns the open titles of a list.
func (f *FakeRemote) Titles(listID string) []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]string(nil), f.open[listID]...)
}

// DefaultList implements remote.Service.
func (f *FakeRemote) DefaultList(ctx context.Context) (remote.TaskList, error) {
	if f.DefaultListErr != nil {
		return remote.TaskList{}, f.DefaultListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, l := range f.lists {
		if l.IsDefault {
			return l, nil
		}
	}
	return remote.TaskList{}, errors.New("no default list")
}

// ResolveList implements remote.Service.
func (f *FakeRemote) ResolveList(ctx context.Context, name string) (remote.TaskList, error) {
	if f.ResolveListErr != nil {
		return remote.TaskList{}, f.ResolveListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	want := strings.ToLower(strings.TrimSpace(name))
	var matches []remote.TaskList
	for _, l := range f.lists {
		if strings.ToLower(strings.TrimSpace(l.Title)) == want {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return remote.TaskList{}, remote.ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return remote.TaskList{}, remote.ErrAmbiguous
	}
}

// ListOpenTitles implements remote.Service.
func (f *FakeRemote) ListOpenTitles(ctx context.Context, listID string) ([]string, error) {
	if f.ListOpenTitlesErr != nil {
		return nil, f.ListOpenTitlesErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	titles, ok := f.open[listID]
	if !ok {
		return nil, remote.ErrNotFound
	}
	return append([]string(nil), titles...), nil
}

// CreateTask implements remote.Service.
func (f *FakeRemote) CreateTask(ctx context.Context, listID, title string) error {
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.open[listID]; !ok {
		return remote.ErrNotFound
	}
	f.open[listID] = append(f.open[listID], title)
	return nil
}
