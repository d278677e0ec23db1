// Package testutil provides shared test helpers for setting up note roots and indexes.
package testutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/starford/writedown/internal/index"
	"github.com/starford/writedown/internal/noteservice"
	"github.com/starford/writedown/internal/resolver"
	"github.com/starford/writedown/internal/storage"
)

// Day is the fixed date used by test clocks.
var Day = time.Date(2024, 3, 9, 8, 30, 0, 0, time.UTC)

// TestDB opens a temporary SQLite index that is closed on cleanup.
func TestDB(t *testing.T) *index.DB {
	t.Helper()
	db, err := index.Open(filepath.Join(t.TempDir(), "writedown-test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestRoot creates a temporary notes root. Symlinks in the temp path are
// resolved so rendered headers compare equal.
func TestRoot(t *testing.T) *storage.FS {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return store
}

// WriteFiles writes slash-separated path → content pairs under store's
// root, creating parent directories.
func WriteFiles(t *testing.T, store storage.Provider, files map[string]string) {
	t.Helper()
	for p, content := range files {
		abs := filepath.Join(store.Root(), filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", p, err)
		}
		if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}
}

// TestService builds a Service over a fresh root with default context
// "daily", a clock fixed at Day, and an index when withIndex is set.
func TestService(t *testing.T, withIndex bool) (*noteservice.Service, *storage.FS, *index.DB) {
	t.Helper()
	store := TestRoot(t)
	var db *index.DB
	var idx index.NoteIndex
	if withIndex {
		db = TestDB(t)
		idx = db
	}
	res := resolver.New(store, "daily", func() time.Time { return Day })
	return noteservice.NewService(store, res, idx), store, db
}

// Logger returns a logger that discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
