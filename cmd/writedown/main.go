package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/starford/writedown/internal"
	pkgconfig "github.com/starford/writedown/pkg/config"
	"github.com/urfave/cli/v3"
)

var version = "dev"

const defaultConfigPath = "~/.writedown/config.yaml"

func run(ctx context.Context, cmd *cli.Command) error {
	command, err := internal.SelectCommand(internal.Request{
		Args:   cmd.Args().Slice(),
		Show:   cmd.Bool("show"),
		Dirs:   cmd.Bool("dirs"),
		File:   cmd.String("file"),
		Todo:   cmd.Bool("todo"),
		Query:  cmd.Bool("query"),
		Search: cmd.String("search"),
		Serve:  cmd.Bool("mcp"),
		Pretty: cmd.Bool("pretty"),
		Date:   cmd.String("date"),
	})
	if err != nil {
		return err
	}

	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.Load(configPath, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithVersion(version),
	}

	if err := internal.Run(ctx, command, opts...); err != nil {
		return fmt.Errorf("%s: %w", command.Mode, err)
	}

	return nil
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "writedown",
		Usage:     "Dated Markdown notes organised by context, plus a todo.txt task file",
		ArgsUsage: "[context | query tokens...]",
		Version:   version,
		Action:    run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: defaultConfigPath,
				Value:       defaultConfigPath,
				Sources:     cli.EnvVars("WRITEDOWN_CONFIG"),
			},
			&cli.BoolFlag{
				Name:    "show",
				Aliases: []string{"s"},
				Usage:   "Print every note under a context directory (default daily, \"todo\" prints the task file)",
			},
			&cli.BoolFlag{
				Name:    "dirs",
				Aliases: []string{"d"},
				Usage:   "Show the context directory tree",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Open a specific file under the root (NAME.md if it exists)",
			},
			&cli.BoolFlag{
				Name:    "todo",
				Aliases: []string{"t"},
				Usage:   "Open the task file, or print it together with --show",
			},
			&cli.BoolFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "Query the task file: p|priority|done followed by +project/@context filters",
			},
			&cli.StringFlag{
				Name:  "search",
				Usage: "Full-text search through notes, limited to the context argument when given",
			},
			&cli.BoolFlag{
				Name:  "mcp",
				Usage: "Serve notes and tasks as MCP tools over stdio",
			},
			&cli.BoolFlag{
				Name:    "pretty",
				Aliases: []string{"p"},
				Usage:   "Render --show output as styled Markdown on a terminal",
			},
			&cli.StringFlag{
				Name:  "date",
				Usage: "Resolve dated notes for another day (YYYY-MM-DD, yesterday, last friday)",
			},
		},
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
