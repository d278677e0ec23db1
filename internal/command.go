package internal

import (
	"fmt"

	"github.com/starford/writedown/internal/apperr"
)

// DefaultShowTarget is shown when --show is given without a context.
const DefaultShowTarget = "daily"

// todoShowTarget makes --show print the task file instead of a directory.
const todoShowTarget = "todo"

// Mode is the single operation one invocation performs.
type Mode int

const (
	ModeEdit Mode = iota
	ModeShowTodo
	ModeShow
	ModeDirs
	ModeFile
	ModeTodo
	ModeQuery
	ModeSearch
	ModeServe
)

var modeNames = map[Mode]string{
	ModeEdit:     "edit",
	ModeShowTodo: "show-todo",
	ModeShow:     "show",
	ModeDirs:     "dirs",
	ModeFile:     "file",
	ModeTodo:     "todo",
	ModeQuery:    "query",
	ModeSearch:   "search",
	ModeServe:    "serve",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Request is the parsed command line before a mode is chosen.
type Request struct {
	Args   []string
	Show   bool
	Dirs   bool
	File   string
	Todo   bool
	Query  bool
	Search string
	Serve  bool
	Pretty bool
	Date   string
}

// Command is a Request reduced to one mode and its operands.
type Command struct {
	Mode   Mode
	Target string
	// Scope limits a search to a context; empty searches every note.
	Scope  string
	Tokens []string
	Pretty bool
	Date   string
}

// precedence is checked top to bottom; the first match wins and
// ModeEdit applies when nothing matches.
var precedence = []struct {
	mode  Mode
	match func(Request) bool
}{
	{ModeShowTodo, func(r Request) bool { return r.Show && r.Todo }},
	{ModeShow, func(r Request) bool { return r.Show }},
	{ModeDirs, func(r Request) bool { return r.Dirs }},
	{ModeFile, func(r Request) bool { return r.File != "" }},
	{ModeTodo, func(r Request) bool { return r.Todo }},
	{ModeQuery, func(r Request) bool { return r.Query }},
	{ModeSearch, func(r Request) bool { return r.Search != "" }},
	{ModeServe, func(r Request) bool { return r.Serve }},
}

// SelectCommand picks the mode for r. Flags that lose to a higher mode
// are ignored.
func SelectCommand(r Request) (Command, error) {
	mode := ModeEdit
	for _, p := range precedence {
		if p.match(r) {
			mode = p.mode
			break
		}
	}

	cmd := Command{Mode: mode, Pretty: r.Pretty, Date: r.Date}

	if mode == ModeQuery {
		if len(r.Args) == 0 {
			return Command{}, fmt.Errorf("%w: query needs at least one token", apperr.ErrUsage)
		}
		cmd.Tokens = append([]string(nil), r.Args...)
		return cmd, nil
	}

	if len(r.Args) > 1 {
		return Command{}, fmt.Errorf("%w: expected at most one context, got %d", apperr.ErrUsage, len(r.Args))
	}
	var arg string
	if len(r.Args) == 1 {
		arg = r.Args[0]
	}

	switch mode {
	case ModeShow:
		cmd.Target = arg
		if cmd.Target == "" {
			cmd.Target = DefaultShowTarget
		}
		if cmd.Target == todoShowTarget {
			cmd.Mode = ModeShowTodo
			cmd.Target = ""
		}
	case ModeFile:
		cmd.Target = r.File
	case ModeSearch:
		cmd.Target = r.Search
		cmd.Scope = arg
	case ModeEdit:
		cmd.Target = arg
	}
	return cmd, nil
}
