package launch

import "context"

// DefaultEditor is used when no editor is configured.
const DefaultEditor = "vim"

// vim opens at the end of the file in insert mode.
var vimArgs = []string{"+normal G$", "+startinsert"}

// Editor opens note files in the configured editor.
type Editor struct {
	runner  Runner
	command string
}

// NewEditor returns an Editor for command; empty means DefaultEditor.
func NewEditor(runner Runner, command string) *Editor {
	if command == "" {
		command = DefaultEditor
	}
	return &Editor{runner: runner, command: command}
}

// Open blocks until the editor exits.
func (e *Editor) Open(ctx context.Context, path string) error {
	return e.runner.Run(ctx, e.command, EditorArgs(e.command, path)...)
}

// EditorArgs returns the arguments for editing path with command.
func EditorArgs(command, path string) []string {
	if command == DefaultEditor {
		return append(append([]string{}, vimArgs...), path)
	}
	return []string{path}
}
