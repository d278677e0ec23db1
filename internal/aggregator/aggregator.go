// Package aggregator renders every note under a context directory as a
// single Markdown document.
package aggregator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/starford/writedown/internal/apperr"
	"github.com/starford/writedown/internal/resolver"
	"github.com/starford/writedown/internal/storage"
)

// Aggregator collects and renders notes from a storage root.
type Aggregator struct {
	store storage.Provider
}

// New returns an Aggregator over store.
func New(store storage.Provider) *Aggregator {
	return &Aggregator{store: store}
}

// Render writes the notes under context to w. Notes are ordered by
// filename only; same-named notes in different subdirectories keep walk
// order. Each note gets a "## <stem><breadcrumb>" header followed by its
// lines with trailing whitespace trimmed and a blank separator.
func (a *Aggregator) Render(w io.Writer, context string) error {
	dir, err := a.store.Abs(context)
	if err != nil {
		return err
	}
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("aggregator: %w: %s", apperr.ErrNotFound, dir)
		}
		return fmt.Errorf("aggregator: stat: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("aggregator: %w: the path %s points to a file, specify a directory instead",
			apperr.ErrNotADirectory, dir)
	}

	notes, err := a.store.List(context)
	if err != nil {
		return err
	}
	sort.SliceStable(notes, func(i, j int) bool { return notes[i].Name < notes[j].Name })

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n\n", displayDir(dir))
	for _, n := range notes {
		lines, err := a.store.ReadLines(n.Path)
		if err != nil {
			return err
		}
		abs := filepath.Join(a.store.Root(), n.Path)
		fmt.Fprintf(bw, "## %s%s\n\n", n.Stem(), resolver.Breadcrumb(dir, abs))
		for _, line := range lines {
			bw.WriteString(strings.TrimRightFunc(line, unicode.IsSpace))
			bw.WriteByte('\n')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// displayDir resolves symlinks for the document header, falling back to
// the unresolved path.
func displayDir(dir string) string {
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		return resolved
	}
	return dir
}
