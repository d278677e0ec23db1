package index

import (
	"log/slog"
	"path/filepath"

	"github.com/starford/writedown/internal/models"
	"github.com/starford/writedown/internal/parser"
	"github.com/starford/writedown/internal/storage"
)

// Sync walks the notes root and brings the index up to date:
//   - new/changed notes are parsed and upserted
//   - notes removed from disk are deleted from the index
func Sync(db *DB, store storage.Provider, logger *slog.Logger) error {
	metas, err := store.List("")
	if err != nil {
		return err
	}

	checksums, err := db.AllChecksums()
	if err != nil {
		return err
	}

	disk := make(map[string]struct{}, len(metas))
	for _, m := range metas {
		disk[m.Path] = struct{}{}

		if checksums[m.Path] == m.Checksum {
			continue
		}

		data, err := store.Read(m.Path)
		if err != nil {
			logger.Warn("sync: read failed", slog.String("path", m.Path), slog.String("error", err.Error()))
			continue
		}
		if err := indexFile(db, m.Path, data); err != nil {
			logger.Warn("sync: index failed", slog.String("path", m.Path), slog.String("error", err.Error()))
		} else {
			logger.Debug("sync: indexed", slog.String("path", m.Path))
		}
	}

	for p := range checksums {
		if _, ok := disk[p]; !ok {
			if err := db.DeleteNote(p); err != nil {
				logger.Warn("sync: delete failed", slog.String("path", p), slog.String("error", err.Error()))
			} else {
				logger.Debug("sync: removed stale", slog.String("path", p))
			}
		}
	}

	return nil
}

// indexFile parses a note and upserts it. The context column is the
// note's directory relative to the root, slash-separated.
func indexFile(db *DB, path string, data []byte) error {
	stem := models.NoteMetadata{Name: filepath.Base(path)}.Stem()
	res, err := parser.Parse(data, stem)
	if err != nil {
		return err
	}
	context := filepath.ToSlash(filepath.Dir(path))
	if context == "." {
		context = ""
	}
	return db.UpsertNote(NoteRow{
		Path:     path,
		Context:  context,
		Title:    res.Title,
		Checksum: storage.Checksum(data),
		Tags:     res.Tags,
	}, res.Body)
}
