package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteStore writes csv to todos.csv in a fresh temp dir and returns its path.
func WriteStore(t *testing.T, csv string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todos.csv")
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatalf("failed to write store: %v", err)
	}
	return path
}

// ReadStore returns the contents of the store file at path.
func ReadStore(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read store: %v", err)
	}
	return string(data)
}
