// Package observability provides hooks for metrics and logging.
//
// Strategy and cache code emits events through the registered hooks; the
// defaults do nothing. Hooks are registered by main, so library packages
// never import a metrics backend directly.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    m := observability.NewMetrics(prometheus.NewRegistry())
//	    observability.SetStrategyHooks(m)
//	    observability.SetCacheHooks(m)
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Strategy().OnStrategyStart(ctx, "factor", cells)
//	// ... apply the strategy ...
//	observability.Strategy().OnStrategyComplete(ctx, "factor", children, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Strategy Hooks
// =============================================================================

// StrategyHooks receives events from strategy application.
type StrategyHooks interface {
	// OnStrategyStart records that a strategy began on a tiling with the
	// given number of active cells.
	OnStrategyStart(ctx context.Context, strategy string, cells int)

	// OnStrategyComplete records the outcome. children is zero when the
	// strategy did not apply.
	OnStrategyComplete(ctx context.Context, strategy string, children int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopStrategyHooks is a no-op implementation of StrategyHooks.
type NoopStrategyHooks struct{}

func (NoopStrategyHooks) OnStrategyStart(context.Context, string, int) {}
func (NoopStrategyHooks) OnStrategyComplete(context.Context, string, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	strategyHooks StrategyHooks = NoopStrategyHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetStrategyHooks registers custom strategy hooks. Nil is ignored.
func SetStrategyHooks(h StrategyHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		strategyHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Strategy returns the registered strategy hooks.
func Strategy() StrategyHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return strategyHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	strategyHooks = NoopStrategyHooks{}
	cacheHooks = NoopCacheHooks{}
}
