package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/starford/writedown/internal/apperr"
	"github.com/starford/writedown/internal/models"
)

// FS implements Provider backed by the local file system.
type FS struct {
	root string // absolute path to the notes root
}

var _ Provider = (*FS)(nil)

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, nil
}

// Root returns the absolute root directory.
func (f *FS) Root() string {
	return f.root
}

// Abs resolves a relative path against the root and rejects any result
// that escapes it.
func (f *FS) Abs(rel string) (string, error) {
	if rel == "" {
		return f.root, nil
	}
	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("storage: %w: absolute paths not allowed: %s", apperr.ErrInvalidContext, rel)
	}
	abs := filepath.Join(f.root, cleaned)
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) && abs != f.root {
		return "", fmt.Errorf("storage: %w: path escapes root: %s", apperr.ErrInvalidContext, rel)
	}
	return abs, nil
}

// Stat returns file info for a path under the root.
func (f *FS) Stat(rel string) (fs.FileInfo, error) {
	abs, err := f.Abs(rel)
	if err != nil {
		return nil, err
	}
	return os.Stat(abs)
}

// MkdirAll creates dir (relative to root) with all missing parents.
func (f *FS) MkdirAll(dir string) error {
	abs, err := f.Abs(dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}
	return nil
}

// List walks dir (relative to root) and returns metadata for every .md file.
// A symlinked dir is walked at its target and symlinked notes are read
// through their links; returned paths stay under dir. Entries come back in
// lexical walk order.
func (f *FS) List(dir string) ([]models.NoteMetadata, error) {
	base, err := f.Abs(dir)
	if err != nil {
		return nil, err
	}
	target, err := filepath.EvalSymlinks(base)
	if err != nil {
		return nil, fmt.Errorf("storage: list: %w", err)
	}
	prefix, err := filepath.Rel(f.root, base)
	if err != nil {
		return nil, fmt.Errorf("storage: list: %w", err)
	}

	var out []models.NoteMetadata
	err = filepath.WalkDir(target, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), models.NoteSuffix) {
			return nil
		}
		// Stat follows links; dangling links and non-files are skipped.
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		sub, err := filepath.Rel(target, p)
		if err != nil {
			return err
		}
		out = append(out, models.NoteMetadata{
			Path:      filepath.Join(prefix, sub),
			Name:      d.Name(),
			Checksum:  Checksum(data),
			UpdatedAt: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage: list: %w", err)
	}
	return out, nil
}

// Dirs returns every directory under the root, relative and sorted.
// Hidden directories and their children are skipped.
func (f *FS) Dirs() ([]string, error) {
	var out []string
	err := filepath.WalkDir(f.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() || p == f.root {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		rel, _ := filepath.Rel(f.root, p)
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage: dirs: %w", err)
	}
	sort.Strings(out)
	return out, nil
}

// Read returns the raw bytes of a file under the root.
func (f *FS) Read(path string) ([]byte, error) {
	abs, err := f.Abs(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	return data, nil
}

// ReadLines returns the file's physical lines. A trailing newline does not
// produce an extra empty line; an empty file has no lines.
func (f *FS) ReadLines(path string) ([]string, error) {
	data, err := f.Read(path)
	if err != nil {
		return nil, err
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text into lines the way a line-oriented file reader
// does: "\n" terminates a line and is not part of it.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// Checksum returns the hex-encoded SHA-256 digest of data.
func Checksum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
