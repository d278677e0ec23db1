package launch

import "context"

// DefaultTreeCommand lists directories without their notes.
const DefaultTreeCommand = "tree"

// Tree prints the context hierarchy under a root.
type Tree struct {
	runner  Runner
	command string
}

// NewTree returns a Tree using command; empty means DefaultTreeCommand.
func NewTree(runner Runner, command string) *Tree {
	if command == "" {
		command = DefaultTreeCommand
	}
	return &Tree{runner: runner, command: command}
}

// Show runs the lister on root with note files excluded.
func (t *Tree) Show(ctx context.Context, root string) error {
	return t.runner.Run(ctx, t.command, "-I", "*.md", root)
}
