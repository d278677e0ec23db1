// Package resolver maps a context under the notes root to the note file
// to edit or the directory to display.
package resolver

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/starford/writedown/internal/apperr"
	"github.com/starford/writedown/internal/models"
	"github.com/starford/writedown/internal/storage"
)

// DateLayout is the filename stamp of a dated note.
const DateLayout = "2006-01-02"

// Clock supplies the date used for dated note filenames.
type Clock func() time.Time

// Resolver derives note paths under a storage root.
type Resolver struct {
	store          storage.Provider
	defaultContext string
	now            Clock
}

// New returns a Resolver. A nil clock means time.Now.
func New(store storage.Provider, defaultContext string, now Clock) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{store: store, defaultContext: defaultContext, now: now}
}

// DatedPath returns the absolute path of today's note in context without
// touching the file system. An empty context selects the default context.
func (r *Resolver) DatedPath(context string) (string, error) {
	rel, err := r.datedRel(context)
	if err != nil {
		return "", err
	}
	return r.store.Abs(rel)
}

// datedRel returns today's note in context relative to the root.
func (r *Resolver) datedRel(context string) (string, error) {
	if context == "" {
		if r.defaultContext == "" {
			return "", fmt.Errorf("resolver: %w: DEFAULT_CONTEXT is not defined", apperr.ErrConfiguration)
		}
		context = r.defaultContext
	}
	filename := r.now().Format(DateLayout) + models.NoteSuffix
	return filepath.Join(filepath.FromSlash(context), filename), nil
}

// NotePath resolves the note to edit for context.
//
// With a context, an existing file at root/context wins, then an existing
// file at root/context.md, then the dated path. The parent directory of a
// dated path is created; the note file itself is not.
func (r *Resolver) NotePath(context string) (string, error) {
	if context != "" {
		for _, candidate := range []string{context, context + models.NoteSuffix} {
			path, ok, err := r.existingFile(candidate)
			if err != nil {
				return "", err
			}
			if ok {
				return path, nil
			}
		}
	}

	rel, err := r.datedRel(context)
	if err != nil {
		return "", err
	}
	path, err := r.store.Abs(rel)
	if err != nil {
		return "", err
	}
	if err := r.store.MkdirAll(filepath.Dir(rel)); err != nil {
		return "", fmt.Errorf("resolver: create context dir: %w", err)
	}
	return path, nil
}

// FilePath resolves an explicitly named file: root/name.md when it exists
// as a file, otherwise root/name verbatim. Nothing is created.
func (r *Resolver) FilePath(name string) (string, error) {
	path, ok, err := r.existingFile(name + models.NoteSuffix)
	if err != nil {
		return "", err
	}
	if ok {
		return path, nil
	}
	return r.store.Abs(name)
}

// Directory returns the absolute directory for a context to display.
func (r *Resolver) Directory(context string) (string, error) {
	return r.store.Abs(context)
}

func (r *Resolver) existingFile(rel string) (string, bool, error) {
	abs, err := r.store.Abs(rel)
	if err != nil {
		return "", false, err
	}
	// Any stat failure counts as "no such file" and falls through to the
	// next candidate.
	info, err := r.store.Stat(rel)
	if err != nil {
		return abs, false, nil
	}
	return abs, info.Mode().IsRegular(), nil
}
