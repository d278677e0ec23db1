// Package ui renders aggregated notes for a terminal.
package ui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

const (
	defaultWrapWidth = 80
	maxWrapWidth     = 100
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// WrapWidth returns the terminal width of f capped at 100 columns, or 80
// when it cannot be detected.
func WrapWidth(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return defaultWrapWidth
	}
	return min(w, maxWrapWidth)
}

// RenderMarkdown renders markdown with glamour's auto style, returning the
// input unchanged if rendering fails.
func RenderMarkdown(markdown string, width int) string {
	if width <= 0 {
		width = defaultWrapWidth
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}
