//go:build sqlite_fts5

package index

import (
	"database/sql"
	"fmt"
	"strings"
)

func initFTS(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE VIRTUAL TABLE IF NOT EXISTS notes_fts USING fts5(
			path UNINDEXED,
			title,
			body,
			tags,
			tokenize = 'unicode61 remove_diacritics 2'
		);
	`)
	return err
}

func ftsUpsert(tx *sql.Tx, path, title, body string, tags []string) error {
	if _, err := tx.Exec(`DELETE FROM notes_fts WHERE path = ?`, path); err != nil {
		return fmt.Errorf("index: clear fts: %w", err)
	}
	_, err := tx.Exec(`INSERT INTO notes_fts (path, title, body, tags) VALUES (?, ?, ?, ?)`,
		path, title, body, strings.Join(tags, " "))
	if err != nil {
		return fmt.Errorf("index: upsert fts: %w", err)
	}
	return nil
}

func ftsDelete(tx *sql.Tx, path string) error {
	if _, err := tx.Exec(`DELETE FROM notes_fts WHERE path = ?`, path); err != nil {
		return fmt.Errorf("index: delete fts: %w", err)
	}
	return nil
}

// Search performs an FTS5 full-text search within context (empty for all
// notes) and returns matching results with snippets. The query is quoted as
// a single phrase so sigils like +work are literal.
func (db *DB) Search(query, context string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 20
	}
	phrase := `"` + strings.ReplaceAll(query, `"`, `""`) + `"`
	args := append([]any{phrase}, contextArgs(context)...)
	args = append(args, limit)
	rows, err := db.conn.Query(`
		SELECT notes_fts.path,
		       notes_fts.title,
		       snippet(notes_fts, 2, '**', '**', '...', 32)
		FROM notes_fts
		JOIN notes ON notes.path = notes_fts.path
		WHERE notes_fts MATCH ?
		  AND `+contextClause+`
		ORDER BY bm25(notes_fts)
		LIMIT ?
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("index: search: %w", err)
	}
	defer rows.Close()

	var out []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.Path, &r.Title, &r.Snippet); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
