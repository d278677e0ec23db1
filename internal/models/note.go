// Package models defines the domain types for writedown notes.
package models

import (
	"strings"
	"time"
)

// NoteSuffix is the content-type suffix carried by every note file.
const NoteSuffix = ".md"

// NoteMetadata is a lightweight representation returned by list operations.
type NoteMetadata struct {
	Path      string    `json:"path"` // relative to root, OS separators
	Name      string    `json:"name"` // base filename including suffix
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Stem returns the filename without the note suffix.
func (m NoteMetadata) Stem() string {
	return strings.TrimSuffix(m.Name, NoteSuffix)
}
