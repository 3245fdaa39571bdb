// Package cli implements the staircast command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/staircast/staircast/pkg/buildinfo"
	"github.com/staircast/staircast/pkg/cache"
	"github.com/staircast/staircast/pkg/library"
	"github.com/staircast/staircast/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "staircast"

	// envCacheDir overrides the artifact cache directory.
	envCacheDir = "STAIRCAST_CACHE_DIR"

	// envLibraryDir overrides the design library directory.
	envLibraryDir = "STAIRCAST_LIBRARY_DIR"

	// envMongoURI selects the MongoDB design store backend.
	envMongoURI = "STAIRCAST_MONGO_URI"

	// envRedisURL selects the Redis cache backend.
	envRedisURL = "STAIRCAST_REDIS_URL"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogWarn  = log.WarnLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

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
		Use:          "staircast",
		Short:        "Staircast turns staircase specs into drawings and meshes",
		Long:         `Staircast is a CLI tool for computing cut-section geometry from declarative staircase specs and rendering it as dimensioned section drawings, printable meshes, and machine-readable JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.computeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.libraryCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cache, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

// newCache selects the cache backend: Redis when STAIRCAST_REDIS_URL is
// set, a file cache under the XDG cache directory otherwise.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if url := os.Getenv(envRedisURL); url != "" {
		rc, err := cache.NewRedisCache(ctx, url)
		if err == nil {
			return rc, nil
		}
		c.Logger.Warn("redis cache unavailable, using file cache", "err", err)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// newStore opens the design library: MongoDB when STAIRCAST_MONGO_URI is
// set, a file store otherwise.
func (c *CLI) newStore(ctx context.Context) (library.Store, error) {
	if uri := os.Getenv(envMongoURI); uri != "" {
		return library.NewMongoStore(ctx, uri)
	}
	return library.NewFileStore(os.Getenv(envLibraryDir))
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory, honoring STAIRCAST_CACHE_DIR and
// falling back to the XDG standard (~/.cache/staircast/).
func cacheDir() (string, error) {
	if dir := os.Getenv(envCacheDir); dir != "" {
		return dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Format Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
