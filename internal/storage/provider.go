// Package storage defines the note tree file-system abstraction.
package storage

import (
	"io/fs"

	"github.com/starford/writedown/internal/models"
)

// Provider is the interface for file operations under the root.
// Every path argument is relative to the root.
type Provider interface {
	// Root returns the absolute root directory.
	Root() string
	// Abs resolves path against the root, rejecting escapes.
	Abs(path string) (string, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
	// MkdirAll creates dir and any missing parents.
	MkdirAll(dir string) error
	// List returns metadata for every .md file under dir, in walk order.
	List(dir string) ([]models.NoteMetadata, error)
	// Dirs returns every non-hidden directory under the root.
	Dirs() ([]string, error)
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// ReadLines returns the physical lines of the file at path without line terminators.
	ReadLines(path string) ([]string, error)
}
