// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/starford/writedown/internal/index"
	"github.com/starford/writedown/internal/launch"
	"github.com/starford/writedown/internal/mcpserver"
	"github.com/starford/writedown/internal/noteservice"
	"github.com/starford/writedown/internal/resolver"
	"github.com/starford/writedown/internal/storage"
	"github.com/starford/writedown/internal/timeparsing"
	"github.com/starford/writedown/internal/ui"
)

// Run performs the operation selected by cmd.
func Run(ctx context.Context, cmd Command, opts ...Option) error {
	app := newApplication()

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	if app.runner == nil {
		app.runner = launch.ExecRunner{Stdin: app.stdin, Stdout: app.stdout, Stderr: app.stderr}
	}

	cfg := app.config

	logger := slog.New(slog.NewJSONHandler(app.stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Debug("Configuration loaded",
		slog.String("root", cfg.Root),
		slog.String("default_context", cfg.DefaultContext),
		slog.String("index_path", cfg.IndexPath),
		slog.String("mode", cmd.Mode.String()))

	if err := os.MkdirAll(cfg.Root, 0o755); err != nil {
		return fmt.Errorf("create root dir: %w", err)
	}

	store, err := storage.NewFS(cfg.Root)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	clock := app.now
	if cmd.Date != "" {
		day, err := timeparsing.ParseDate(cmd.Date, app.now())
		if err != nil {
			return err
		}
		clock = timeparsing.Fixed(day)
	}
	res := resolver.New(store, cfg.DefaultContext, clock)

	var db *index.DB
	if cmd.Mode == ModeSearch || cmd.Mode == ModeServe {
		if db, err = index.Open(cfg.IndexPath); err != nil {
			return fmt.Errorf("init index: %w", err)
		}
		defer db.Close()

		if err := index.Sync(db, store, logger); err != nil {
			logger.Warn("initial sync failed", slog.String("error", err.Error()))
		}
	}

	var idx index.NoteIndex
	if db != nil {
		idx = db
	}
	svc := noteservice.NewService(store, res, idx)
	editor := launch.NewEditor(app.runner, cfg.DefaultEditor)

	switch cmd.Mode {
	case ModeShowTodo:
		lines, err := svc.TaskLines(ctx)
		if err != nil {
			return err
		}
		return app.printLines(lines)

	case ModeShow:
		return app.show(ctx, svc, cmd)

	case ModeDirs:
		return launch.NewTree(app.runner, cfg.TreeCommand).Show(ctx, store.Root())

	case ModeFile:
		path, err := svc.ResolveFile(ctx, cmd.Target)
		if err != nil {
			return err
		}
		return editor.Open(ctx, path)

	case ModeTodo:
		path, err := svc.TodoPath()
		if err != nil {
			return err
		}
		return editor.Open(ctx, path)

	case ModeQuery:
		lines, err := svc.QueryTasks(ctx, cmd.Tokens)
		if err != nil {
			return err
		}
		return app.printLines(lines)

	case ModeSearch:
		return app.search(ctx, svc, cmd.Target, cmd.Scope)

	case ModeServe:
		return app.serve(ctx, svc, db, store, logger)

	default:
		path, err := svc.ResolveNote(ctx, cmd.Target)
		if err != nil {
			return err
		}
		logger.Debug("opening note", slog.String("path", path))
		return editor.Open(ctx, path)
	}
}

func (a *application) printLines(lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(a.stdout, line); err != nil {
			return err
		}
	}
	return nil
}

func (a *application) show(ctx context.Context, svc *noteservice.Service, cmd Command) error {
	if !cmd.Pretty {
		return svc.RenderContext(ctx, a.stdout, cmd.Target)
	}

	var buf bytes.Buffer
	if err := svc.RenderContext(ctx, &buf, cmd.Target); err != nil {
		return err
	}
	out := buf.String()
	if f, ok := a.stdout.(*os.File); ok && ui.IsTerminal(f) {
		out = ui.RenderMarkdown(out, ui.WrapWidth(f))
	}
	_, err := io.WriteString(a.stdout, out)
	return err
}

func (a *application) search(ctx context.Context, svc *noteservice.Service, query, scope string) error {
	results, err := svc.Search(ctx, query, scope, noteservice.DefaultSearchLimit)
	if err != nil {
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(a.stdout, "%s: %s\n", r.Path, r.Title); err != nil {
			return err
		}
		if snippet := strings.Join(strings.Fields(r.Snippet), " "); snippet != "" {
			if _, err := fmt.Fprintf(a.stdout, "    %s\n", snippet); err != nil {
				return err
			}
		}
	}
	return nil
}

// serve runs the MCP server on the process streams while the watcher
// keeps the index current. Closing stdin or a signal stops both.
func (a *application) serve(ctx context.Context, svc *noteservice.Service, db *index.DB, store storage.Provider, logger *slog.Logger) error {
	srv := mcpserver.New(svc, a.version)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return index.Watch(gCtx, db, store, logger, func(kind, path string) {
			logger.Debug("index changed", slog.String("kind", kind), slog.String("path", path))
		})
	})

	g.Go(func() error {
		defer cancel()
		logger.Info("Starting MCP server", slog.String("root", store.Root()))
		if err := srv.Listen(gCtx, a.stdin, a.stdout); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
			cancel()
		case <-gCtx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("MCP server stopped")
	return nil
}
