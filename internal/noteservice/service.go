// Package noteservice coordinates path resolution, note aggregation, the
// task file, and the optional search index behind one API.
package noteservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/starford/writedown/internal/aggregator"
	"github.com/starford/writedown/internal/apperr"
	"github.com/starford/writedown/internal/index"
	"github.com/starford/writedown/internal/resolver"
	"github.com/starford/writedown/internal/storage"
	"github.com/starford/writedown/internal/todo"
)

// DefaultSearchLimit caps search results when no limit is given.
const DefaultSearchLimit = 20

// Service is the single entry point used by the CLI and the MCP server.
type Service struct {
	store    storage.Provider
	resolver *resolver.Resolver
	notes    *aggregator.Aggregator
	tasks    *todo.Store
	db       index.NoteIndex
}

// NewService wires a Service. db may be nil when no index is open.
func NewService(store storage.Provider, res *resolver.Resolver, db index.NoteIndex) *Service {
	return &Service{
		store:    store,
		resolver: res,
		notes:    aggregator.New(store),
		tasks:    todo.NewStore(store),
		db:       db,
	}
}

// Root returns the absolute notes root.
func (s *Service) Root() string {
	return s.store.Root()
}

// ResolveNote returns the note to edit for context, creating its directory.
func (s *Service) ResolveNote(_ context.Context, noteContext string) (string, error) {
	return s.resolver.NotePath(noteContext)
}

// ResolveFile returns the explicitly named file to edit.
func (s *Service) ResolveFile(_ context.Context, name string) (string, error) {
	return s.resolver.FilePath(name)
}

// TodoPath returns the absolute path of the task file.
func (s *Service) TodoPath() (string, error) {
	return s.tasks.Path()
}

// RenderContext writes every note under dir as one document.
func (s *Service) RenderContext(_ context.Context, w io.Writer, dir string) error {
	return s.notes.Render(w, dir)
}

// ReadNote returns the content of a file under the root.
func (s *Service) ReadNote(_ context.Context, path string) (string, error) {
	data, err := s.store.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", apperr.ErrNotFound, path)
		}
		return "", err
	}
	return string(data), nil
}

// Contexts lists every context directory under the root.
func (s *Service) Contexts(_ context.Context) ([]string, error) {
	return s.store.Dirs()
}

// TaskLines returns the whole task file for display.
func (s *Service) TaskLines(_ context.Context) ([]string, error) {
	tasks, err := s.tasks.Load()
	if err != nil {
		return nil, err
	}
	return todo.Lines(tasks), nil
}

// QueryTasks runs a query over the task file.
func (s *Service) QueryTasks(_ context.Context, tokens []string) ([]string, error) {
	tasks, err := s.tasks.Load()
	if err != nil {
		return nil, err
	}
	return todo.Lines(todo.Query(tasks, tokens)), nil
}

// Search runs a full-text search over indexed notes below noteContext, or
// over every note when noteContext is empty.
func (s *Service) Search(_ context.Context, query, noteContext string, limit int) ([]index.SearchResult, error) {
	if s.db == nil {
		return nil, apperr.ErrIndexUnavailable
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	results, err := s.db.Search(query, noteContext, limit)
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].Path = filepath.ToSlash(results[i].Path)
	}
	return nonNilSlice(results), nil
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
