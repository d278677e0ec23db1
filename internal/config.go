package internal

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/writedown/internal/apperr"
	"github.com/starford/writedown/internal/launch"
	pkgconfig "github.com/starford/writedown/pkg/config"
)

// DefaultIndexFile is created under Root when INDEX_PATH is not set.
const DefaultIndexFile = ".writedown.db"

// Config represents the application configuration. Keys are upper-case
// to stay compatible with existing ~/.writedown/config.yaml files.
type Config struct {
	Root           string     `yaml:"ROOT"`
	DefaultContext string     `yaml:"DEFAULT_CONTEXT"`
	DefaultEditor  string     `yaml:"DEFAULT_EDITOR"`
	TreeCommand    string     `yaml:"TREE_COMMAND"`
	IndexPath      string     `yaml:"INDEX_PATH"`
	LogLevel       slog.Level `yaml:"LOG_LEVEL"`
}

// Validate validates the configuration and fills derived defaults.
// DEFAULT_CONTEXT is optional here; it is only required when a note is
// resolved without a context.
func (c *Config) Validate() error {
	root, err := pkgconfig.ExpandHome(c.Root)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrConfiguration, err)
	}
	c.Root = root

	if err := validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required, validation.By(absolutePath)),
	); err != nil {
		return fmt.Errorf("%w: %w", apperr.ErrConfiguration, err)
	}

	if c.IndexPath == "" {
		c.IndexPath = filepath.Join(c.Root, DefaultIndexFile)
	}
	if c.IndexPath, err = pkgconfig.ExpandHome(c.IndexPath); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrConfiguration, err)
	}
	if c.TreeCommand == "" {
		c.TreeCommand = launch.DefaultTreeCommand
	}
	return nil
}

func absolutePath(value interface{}) error {
	s, _ := value.(string)
	if !filepath.IsAbs(s) {
		return errors.New("must be an absolute path")
	}
	return nil
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		TreeCommand: launch.DefaultTreeCommand,
		LogLevel:    slog.LevelWarn,
	}
}
