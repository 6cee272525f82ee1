package cli

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/tilings/pkg/cache"
	"github.com/matzehuels/tilings/pkg/config"
)

func TestOpenCache(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	tests := []struct {
		backend string
		want    string
	}{
		{config.BackendNone, "cache.NullCache"},
		{config.BackendFile, "*cache.FileCache"},
		{config.BackendBadger, "*cache.BadgerCache"},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cc := config.Default().Cache
			cc.Backend = tt.backend
			cc.Dir = dir
			ch, err := openCache(ctx, cc)
			if err != nil {
				t.Fatalf("openCache(%s) error: %v", tt.backend, err)
			}
			defer ch.Close()
			if got := typeName(ch); got != tt.want {
				t.Errorf("openCache(%s) = %s, want %s", tt.backend, got, tt.want)
			}
			if _, ok := ch.(cache.Clearer); !ok {
				t.Errorf("%s cache does not implement Clearer", tt.backend)
			}
		})
	}

	cc := config.Default().Cache
	cc.Backend = "s3"
	if _, err := openCache(ctx, cc); err == nil {
		t.Error("openCache(s3) should fail")
	}
}

func typeName(v any) string {
	switch v.(type) {
	case cache.NullCache:
		return "cache.NullCache"
	case *cache.FileCache:
		return "*cache.FileCache"
	case *cache.BadgerCache:
		return "*cache.BadgerCache"
	}
	return "unknown"
}

func TestNewCacheFallsBackWhenUnavailable(t *testing.T) {
	c := New(&strings.Builder{}, LogInfo)
	c.Config.Cache.Backend = config.BackendRedis
	c.Config.Cache.RedisAddr = "127.0.0.1:1"
	ch, err := c.newCache(context.Background())
	if err != nil {
		t.Fatalf("newCache() error: %v", err)
	}
	if _, ok := ch.(cache.NullCache); !ok {
		t.Errorf("newCache() with an unreachable redis = %T, want NullCache", ch)
	}
}

func TestNewCacheDisabled(t *testing.T) {
	c := New(&strings.Builder{}, LogInfo)
	c.noCache = true
	ch, _ := c.newCache(context.Background())
	if _, ok := ch.(cache.NullCache); !ok {
		t.Errorf("newCache() with --no-cache = %T, want NullCache", ch)
	}
}

func TestCacheLocation(t *testing.T) {
	cc := config.Default().Cache
	cc.Dir = "/tmp/tilings"
	tests := []struct {
		backend string
		want    string
	}{
		{config.BackendFile, "/tmp/tilings"},
		{config.BackendBadger, filepath.Join("/tmp/tilings", "badger")},
		{config.BackendRedis, "redis://localhost:6379"},
		{config.BackendNone, "disabled"},
	}
	for _, tt := range tests {
		cc.Backend = tt.backend
		if got := cacheLocation(cc); got != tt.want {
			t.Errorf("cacheLocation(%s) = %q, want %q", tt.backend, got, tt.want)
		}
	}
}
