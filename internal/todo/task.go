// Package todo reads the plaintext task file and answers queries over it.
//
// A task is one line of todo.txt. Lines starting with "x " are done;
// lines starting with "(<c>)" carry priority c. Both are plain prefix
// checks on the raw line, independent of each other.
package todo

import (
	"strings"
	"unicode"
)

const (
	donePrefix   = "x "
	sigilProject = '+'
	sigilContext = '@'
)

// Task is one parsed line of the task file.
type Task struct {
	Raw      string // the line without its terminator
	Done     bool
	Priority string // single character, empty when absent
}

// Parse classifies a single line. It never fails: lines without a
// well-formed priority prefix simply have no priority.
func Parse(line string) Task {
	t := Task{
		Raw:  line,
		Done: strings.HasPrefix(line, donePrefix),
	}
	if r := []rune(line); len(r) >= 3 && r[0] == '(' && r[2] == ')' {
		t.Priority = string(r[1])
	}
	return t
}

// HasPriority reports whether the line carries a priority marker.
func (t Task) HasPriority() bool {
	return t.Priority != ""
}

// String returns the raw text with trailing whitespace removed.
func (t Task) String() string {
	return strings.TrimRightFunc(t.Raw, unicode.IsSpace)
}
