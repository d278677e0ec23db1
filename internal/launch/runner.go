// Package launch hands paths to external programs: the editor and the
// directory tree lister.
package launch

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Runner starts an external program and waits for it to exit.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs programs with the given stdio attached.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run looks name up on PATH and runs it to completion.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("launch: %s not found in PATH: %w", name, err)
	}
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("launch: %s: %w", name, err)
	}
	return nil
}
