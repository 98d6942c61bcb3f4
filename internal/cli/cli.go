// Package cli implements the framegen command-line interface.
//
// This package provides commands for generating structural frame models from
// building configurations, rendering them as DOT or SVG drawings, and
// managing the local model cache. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Build the node lattice and frame elements from a configuration
//   - render: Produce a DOT or SVG drawing of the generated model
//   - report: Print the generation summary, stability review, and load cases
//   - presets: Pick a preset building interactively and generate it
//   - config: Scaffold and inspect configuration files
//   - cache: Manage the local model cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/IVANSLASH/framegen/pkg/buildinfo"
	"github.com/IVANSLASH/framegen/pkg/cache"
	"github.com/IVANSLASH/framegen/pkg/config"
	"github.com/IVANSLASH/framegen/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "framegen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "framegen",
		Short:        "Framegen generates orthogonal frame models from building geometry",
		Long:         `Framegen is a CLI tool that turns building geometry (bay grids, story heights, cantilever overhangs) into a validated structural model of nodes, columns, and beams, ready for frame analysis or drawing.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.reportCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(newCache(noCache), c.Logger)
}

func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/framegen/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// loadConfig reads the configuration file, or returns the packaged defaults
// when path is empty. Validation warnings are printed but do not stop the run.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, warnings, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	for _, w := range warnings {
		printWarning("%s", w)
	}
	return cfg, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
