// Package config loads wayfinder's TOML configuration file.
//
// The file lives at $XDG_CONFIG_HOME/wayfinder/config.toml (falling back to
// ~/.config/wayfinder/config.toml). Every field is optional; missing fields
// take the values from [Default]:
//
//	[cache]
//	backend = "redis"
//	ttl = "72h"
//
//	[redis]
//	addr = "localhost:6379"
//
//	[history]
//	backend = "mongo"
//
//	[mongo]
//	uri = "mongodb://localhost:27017"
//
//	[server]
//	addr = ":8080"
//	solve_timeout = "30s"
//
//	[search]
//	default_strategy = "astar"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wayfinder/pkg/errors"
	"github.com/matzehuels/wayfinder/pkg/search"
)

// AppName names the config, cache and data directories.
const AppName = "wayfinder"

// Backend names shared by the cache and history sections.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// Config is the full configuration file.
type Config struct {
	Cache   CacheConfig   `toml:"cache"`
	Redis   RedisConfig   `toml:"redis"`
	History HistoryConfig `toml:"history"`
	Mongo   MongoConfig   `toml:"mongo"`
	Server  ServerConfig  `toml:"server"`
	Search  SearchConfig  `toml:"search"`
}

// CacheConfig selects the report cache backend.
type CacheConfig struct {
	Backend string   `toml:"backend"` // file, redis or none
	Dir     string   `toml:"dir"`
	TTL     Duration `toml:"ttl"`
}

// RedisConfig configures the Redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// HistoryConfig selects the run history backend.
type HistoryConfig struct {
	Backend string `toml:"backend"` // file, mongo, memory or none
	Dir     string `toml:"dir"`
}

// MongoConfig configures the MongoDB history backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr          string   `toml:"addr"`
	SolveTimeout  Duration `toml:"solve_timeout"`
	MaxIterations int      `toml:"max_iterations"`
}

// SearchConfig holds CLI defaults.
type SearchConfig struct {
	DefaultStrategy string `toml:"default_strategy"`
	Ceiling         int    `toml:"ceiling"`
}

// Duration is a time.Duration that decodes from strings like "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{
			Backend: BackendFile,
			TTL:     Duration{7 * 24 * time.Hour},
		},
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: AppName + ":",
		},
		History: HistoryConfig{Backend: BackendFile},
		Mongo: MongoConfig{
			URI:        "mongodb://localhost:27017",
			Database:   AppName,
			Collection: "runs",
		},
		Server: ServerConfig{
			Addr:          ":8080",
			SolveTimeout:  Duration{30 * time.Second},
			MaxIterations: 5_000_000,
		},
		Search: SearchConfig{
			DefaultStrategy: search.AStar.String(),
			Ceiling:         64,
		},
	}
}

// Load reads the file at path on top of [Default]. An empty path means
// [DefaultPath]; a missing file at the default path is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks backend names and the default strategy.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q", c.Cache.Backend)
	}
	switch c.History.Backend {
	case BackendFile, BackendMongo, BackendMemory, BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown history backend %q", c.History.Backend)
	}
	if c.Cache.Backend == BackendRedis && c.Redis.Addr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "redis cache requires redis.addr")
	}
	if c.History.Backend == BackendMongo && c.Mongo.URI == "" {
		return errors.New(errors.ErrCodeInvalidInput, "mongo history requires mongo.uri")
	}
	if _, err := search.ParseStrategy(c.Search.DefaultStrategy); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidStrategy, err, "search.default_strategy")
	}
	if err := errors.ValidateDepth(c.Search.Ceiling); err != nil {
		return fmt.Errorf("search.ceiling: %w", err)
	}
	if c.Server.MaxIterations < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "server.max_iterations cannot be negative")
	}
	return nil
}

// DefaultPath returns the XDG config file location.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigDir returns $XDG_CONFIG_HOME/wayfinder or ~/.config/wayfinder.
func ConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// CacheDir returns $XDG_CACHE_HOME/wayfinder or ~/.cache/wayfinder.
func CacheDir() (string, error) {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

// DataDir returns $XDG_DATA_HOME/wayfinder or ~/.local/share/wayfinder.
func DataDir() (string, error) {
	return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

func xdgDir(env, fallback string) (string, error) {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback, AppName), nil
}
