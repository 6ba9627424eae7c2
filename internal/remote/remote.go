// Package remote defines the backend-agnostic interface used to mirror local
// tasks into a hosted task list.
package remote

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a named list does not exist.
var ErrNotFound = errors.New("not found")

// ErrAmbiguous is returned when more than one list matches a name.
var ErrAmbiguous = errors.New("ambiguous")

// ErrAuth marks errors caused by missing, expired or revoked credentials.
var ErrAuth = errors.New("auth")

// TaskList represents a remote task list.
type TaskList struct {
	ID        string
	Title     string
	IsDefault bool
}

// Service is the remote task backend.
// Commands never import a vendor SDK directly.
type Service interface {
	// DefaultList returns the user's default task list.
	DefaultList(ctx context.Context) (TaskList, error)

	// ResolveList finds a list by name (case-insensitive, trimmed).
	// Returns ErrNotFound or ErrAmbiguous.
	ResolveList(ctx context.Context, name string) (TaskList, error)

	// ListOpenTitles returns the titles of every open task in a list.
	ListOpenTitles(ctx context.Context, listID string) ([]string, error)

	// CreateTask creates a new open task in the list.
	CreateTask(ctx context.Context, listID, title string) error
}
