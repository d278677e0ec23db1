package internal

import (
	"io"
	"os"
	"time"

	"github.com/starford/writedown/internal/launch"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config  *Config
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	now     func() time.Time
	runner  launch.Runner
	version string
}

func newApplication() *application {
	return &application{
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		now:     time.Now,
		version: "dev",
	}
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithIO replaces the process streams. Nil leaves a stream unchanged.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(a *application) {
		if stdin != nil {
			a.stdin = stdin
		}
		if stdout != nil {
			a.stdout = stdout
		}
		if stderr != nil {
			a.stderr = stderr
		}
	}
}

// WithClock sets the clock used for dated note names.
func WithClock(now func() time.Time) Option {
	return func(a *application) {
		a.now = now
	}
}

// WithRunner sets how the editor and tree lister are started.
func WithRunner(r launch.Runner) Option {
	return func(a *application) {
		a.runner = r
	}
}

// WithVersion sets the version reported by the MCP server.
func WithVersion(v string) Option {
	return func(a *application) {
		a.version = v
	}
}
