package index

import (
	"path"
	"path/filepath"
	"strings"
)

// NoteIndex defines the note indexing operations consumers depend on.
type NoteIndex interface {
	UpsertNote(n NoteRow, body string) error
	DeleteNote(path string) error
	GetChecksum(path string) (string, error)
	AllChecksums() (map[string]string, error)
	Search(query, context string, limit int) ([]SearchResult, error)
	Close() error
}

var _ NoteIndex = (*DB)(nil)

// contextClause limits a search to one context and everything below it.
// It takes the arguments returned by contextArgs.
const contextClause = `(? = '' OR notes.context = ? OR instr(notes.context, ?) = 1)`

// contextArgs normalises context to the stored slash-separated form; an
// empty result matches the whole root.
func contextArgs(context string) []any {
	scope := strings.Trim(path.Clean(filepath.ToSlash(context)), "/")
	if scope == "." {
		scope = ""
	}
	return []any{scope, scope, scope + "/"}
}
