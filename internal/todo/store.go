package todo

import (
	"fmt"

	"github.com/starford/writedown/internal/storage"
)

// FileName is the task file's location relative to the root.
const FileName = "todo.txt"

// Store loads the task file from a storage root. It is read-only.
type Store struct {
	store storage.Provider
}

// NewStore returns a Store reading FileName under p.
func NewStore(p storage.Provider) *Store {
	return &Store{store: p}
}

// Path returns the absolute path of the task file.
func (s *Store) Path() (string, error) {
	return s.store.Abs(FileName)
}

// Load returns every task in on-disk line order. A missing or unreadable
// task file is an error.
func (s *Store) Load() ([]Task, error) {
	lines, err := s.store.ReadLines(FileName)
	if err != nil {
		return nil, fmt.Errorf("todo: load: %w", err)
	}
	tasks := make([]Task, len(lines))
	for i, line := range lines {
		tasks[i] = Parse(line)
	}
	return tasks, nil
}
