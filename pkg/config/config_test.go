package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/wayfinder/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[cache]
backend = "redis"
ttl = "72h"

[redis]
addr = "cache:6379"
db = 2

[history]
backend = "memory"

[server]
addr = ":9090"
solve_timeout = "5s"

[search]
default_strategy = "ucs"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Cache.Backend != BackendRedis {
		t.Errorf("Cache.Backend = %q, want redis", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL.Duration != 72*time.Hour {
		t.Errorf("Cache.TTL = %v, want 72h", cfg.Cache.TTL)
	}
	if cfg.Redis.Addr != "cache:6379" || cfg.Redis.DB != 2 {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if cfg.Server.SolveTimeout.Duration != 5*time.Second {
		t.Errorf("Server.SolveTimeout = %v, want 5s", cfg.Server.SolveTimeout)
	}
	if cfg.Search.DefaultStrategy != "ucs" {
		t.Errorf("Search.DefaultStrategy = %q", cfg.Search.DefaultStrategy)
	}

	// Unset fields keep defaults
	if cfg.Mongo.Database != AppName {
		t.Errorf("Mongo.Database = %q, want default %q", cfg.Mongo.Database, AppName)
	}
	if cfg.Server.MaxIterations != Default().Server.MaxIterations {
		t.Errorf("Server.MaxIterations = %d, want default", cfg.Server.MaxIterations)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"missing explicit file", filepath.Join(dir, "nope.toml"), errors.ErrCodeFileNotFound},
		{"bad toml", write("bad.toml", "[cache\nbackend ="), errors.ErrCodeInvalidFormat},
		{"bad duration", write("dur.toml", "[server]\nsolve_timeout = \"soon\""), errors.ErrCodeInvalidFormat},
		{"unknown backend", write("backend.toml", "[cache]\nbackend = \"memcached\""), errors.ErrCodeInvalidInput},
		{"unknown strategy", write("strategy.toml", "[search]\ndefault_strategy = \"hill\""), errors.ErrCodeInvalidStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load should fail")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v (%v)", got, tt.code, err)
			}
		})
	}
}

func TestLoadDefaultPathMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no file = %v", err)
	}
	if cfg.Cache.Backend != BackendFile {
		t.Errorf("Cache.Backend = %q, want default", cfg.Cache.Backend)
	}
}

func TestXDGDirs(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(base, "cache"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))

	tests := []struct {
		name string
		fn   func() (string, error)
		want string
	}{
		{"config", ConfigDir, filepath.Join(base, "config", AppName)},
		{"cache", CacheDir, filepath.Join(base, "cache", AppName)},
		{"data", DataDir, filepath.Join(base, "data", AppName)},
		{"default path", DefaultPath, filepath.Join(base, "config", AppName, "config.toml")},
	}
	for _, tt := range tests {
		got, err := tt.fn()
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, got, tt.want)
		}
	}
}
