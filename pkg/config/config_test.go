package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/tilings/pkg/errors"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
[cache]
backend = "redis"
ttl = "2h"
redis_addr = "cache:6379"

[separation]
max_passes = 4

[log]
level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.RedisAddr != "cache:6379" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Cache.TTL.Duration != 2*time.Hour {
		t.Errorf("Cache.TTL = %v, want 2h", cfg.Cache.TTL)
	}
	if cfg.Separation.MaxPasses != 4 {
		t.Errorf("Separation.MaxPasses = %d, want 4", cfg.Separation.MaxPasses)
	}
	if cfg.Inferral.Length != 2 {
		t.Errorf("Inferral.Length = %d, want the default 2", cfg.Inferral.Length)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"bad toml", "[cache\n", errors.ErrCodeInvalidInput},
		{"unknown key", "[cache]\ncolour = 1\n", errors.ErrCodeInvalidInput},
		{"bad backend", "[cache]\nbackend = \"s3\"\n", errors.ErrCodeInvalidInput},
		{"bad passes", "[separation]\nmax_passes = 0\n", errors.ErrCodeInvalidInput},
		{"bad length", "[inferral]\nlength = -1\n", errors.ErrCodeInvalidInput},
		{"bad level", "[log]\nlevel = \"loud\"\n", errors.ErrCodeInvalidInput},
		{"bad ttl", "[cache]\nttl = \"soon\"\n", errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("Load() error = %v, code %q, want %q", err, got, tt.code)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() of a missing explicit file = %v, want FILE_NOT_FOUND", err)
	}

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") without a default file = %v", err)
	}
	if cfg.Separation.MaxPasses != Default().Separation.MaxPasses {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Cache.Backend = BackendBadger
	cfg.Inferral.Length = 3
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	if err := cfg.Write(path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Cache.Backend != BackendBadger || got.Inferral.Length != 3 || got.Cache.TTL != cfg.Cache.TTL {
		t.Errorf("Load(Write(cfg)) = %+v", got)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got, want := DefaultPath(), filepath.Join("/xdg", "tilings", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %s, want %s", got, want)
	}
}
