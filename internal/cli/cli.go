// Package cli implements the wayfinder command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wayfinder/pkg/cache"
	"github.com/matzehuels/wayfinder/pkg/config"
	"github.com/matzehuels/wayfinder/pkg/definition"
	"github.com/matzehuels/wayfinder/pkg/history"
	"github.com/matzehuels/wayfinder/pkg/solve"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any subcommand runs. It starts as the
	// defaults so commands built in tests work without a file.
	Config *config.Config

	configPath string
	verbose    bool
	errOut     io.Writer // spinner and status lines
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		errOut: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Backend Factories
// =============================================================================

// newRunner creates a solve runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*solve.Runner, error) {
	ch, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	runner := solve.NewRunner(ch, nil, c.Logger)
	runner.TTL = c.Config.Cache.TTL.Duration
	return runner, nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.Config.Cache.Backend {
	case config.BackendRedis:
		r := c.Config.Redis
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     r.Addr,
			Password: r.Password,
			DB:       r.DB,
			Prefix:   r.Prefix,
		})
	case config.BackendFile:
		dir, err := c.cacheDir()
		if err != nil {
			// No home directory, run without a cache
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
	return cache.NewNullCache(), nil
}

// newStore opens the configured history store. It returns nil when history
// is disabled.
func (c *CLI) newStore(ctx context.Context) (history.Store, error) {
	switch c.Config.History.Backend {
	case config.BackendMongo:
		m := c.Config.Mongo
		return history.NewMongoStore(ctx, history.MongoConfig{
			URI:        m.URI,
			Database:   m.Database,
			Collection: m.Collection,
		})
	case config.BackendMemory:
		return history.NewMemoryStore(), nil
	case config.BackendFile:
		return history.NewFileStore(c.Config.History.Dir)
	}
	return nil, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the file cache directory: the configured one, or the
// XDG cache directory (~/.cache/wayfinder/).
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return config.CacheDir()
}

// =============================================================================
// Definitions
// =============================================================================

// loadDefinition resolves arg as a built-in name first, then as a file.
func loadDefinition(arg string) (*definition.Definition, error) {
	if def, ok := definition.Builtin(arg); ok {
		return def, nil
	}
	if _, err := os.Stat(arg); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s is neither a built-in problem nor a file (see 'wayfinder builtins')", arg)
	}
	return definition.Load(arg)
}
