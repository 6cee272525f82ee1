// Package config loads the tilings configuration file.
//
// The file is TOML and every key is optional:
//
//	[cache]
//	backend = "file"          # file, redis, mongo, badger or none
//	dir = "~/.cache/tilings"
//	ttl = "720h"
//	redis_addr = "localhost:6379"
//	redis_db = 0
//	mongo_uri = "mongodb://localhost:27017"
//	mongo_database = "tilings"
//	mongo_collection = "rules"
//
//	[separation]
//	max_passes = 10
//
//	[inferral]
//	length = 2
//
//	[log]
//	level = "info"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tilings/pkg/algorithms/separation"
	tilerrors "github.com/matzehuels/tilings/pkg/errors"
)

const appName = "tilings"

// Cache backends.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendBadger = "badger"
	BackendNone   = "none"
)

var backends = []string{BackendFile, BackendRedis, BackendMongo, BackendBadger, BackendNone}

var levels = []string{"debug", "info", "warn", "error"}

// Duration is a time.Duration written as a string such as "720h".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the full configuration.
type Config struct {
	Cache      CacheConfig      `toml:"cache"`
	Separation SeparationConfig `toml:"separation"`
	Inferral   InferralConfig   `toml:"inferral"`
	Log        LogConfig        `toml:"log"`
}

// CacheConfig selects and configures the result cache.
type CacheConfig struct {
	Backend         string   `toml:"backend"`
	Dir             string   `toml:"dir"`
	TTL             Duration `toml:"ttl"`
	RedisAddr       string   `toml:"redis_addr"`
	RedisDB         int      `toml:"redis_db"`
	MongoURI        string   `toml:"mongo_uri"`
	MongoDatabase   string   `toml:"mongo_database"`
	MongoCollection string   `toml:"mongo_collection"`
}

// SeparationConfig bounds repeated row and column separation.
type SeparationConfig struct {
	MaxPasses int `toml:"max_passes"`
}

// InferralConfig sets the obstruction length for full inferral.
type InferralConfig struct {
	Length int `toml:"length"`
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{
			Backend:         BackendFile,
			Dir:             defaultCacheDir(),
			TTL:             Duration{30 * 24 * time.Hour},
			RedisAddr:       "localhost:6379",
			MongoURI:        "mongodb://localhost:27017",
			MongoDatabase:   appName,
			MongoCollection: "rules",
		},
		Separation: SeparationConfig{MaxPasses: separation.DefaultMaxPasses},
		Inferral:   InferralConfig{Length: 2},
		Log:        LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path means [DefaultPath]; a
// missing default file is not an error, a missing explicit one is. Unknown
// keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		if explicit {
			return nil, tilerrors.Wrap(tilerrors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, tilerrors.Wrap(tilerrors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, tilerrors.New(tilerrors.ErrCodeInvalidInput,
			"unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	cfg.Cache.Dir = expandHome(cfg.Cache.Dir)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if !slices.Contains(backends, c.Cache.Backend) {
		return tilerrors.New(tilerrors.ErrCodeInvalidInput,
			"cache.backend %q must be one of %s", c.Cache.Backend, strings.Join(backends, ", "))
	}
	if c.Cache.Backend == BackendFile || c.Cache.Backend == BackendBadger {
		if c.Cache.Dir == "" {
			return tilerrors.New(tilerrors.ErrCodeInvalidInput, "cache.dir is required for the %s backend", c.Cache.Backend)
		}
	}
	if c.Cache.TTL.Duration < 0 {
		return tilerrors.New(tilerrors.ErrCodeInvalidInput, "cache.ttl must not be negative")
	}
	if c.Separation.MaxPasses < 1 {
		return tilerrors.New(tilerrors.ErrCodeInvalidInput,
			"separation.max_passes must be positive, got %d", c.Separation.MaxPasses)
	}
	if c.Inferral.Length < 1 {
		return tilerrors.New(tilerrors.ErrCodeInvalidInput,
			"inferral.length must be positive, got %d", c.Inferral.Length)
	}
	if !slices.Contains(levels, c.Log.Level) {
		return tilerrors.New(tilerrors.ErrCodeInvalidInput,
			"log.level %q must be one of %s", c.Log.Level, strings.Join(levels, ", "))
	}
	return nil
}

// Write encodes c as TOML to path, creating parent directories.
func (c *Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}

// DefaultPath returns $XDG_CONFIG_HOME/tilings/config.toml, falling back to
// ~/.config/tilings/config.toml.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", appName, "config.toml")
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// defaultCacheDir follows the XDG cache convention (~/.cache/tilings).
func defaultCacheDir() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cache", appName)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
