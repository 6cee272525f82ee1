package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/tilings/pkg/algorithms/separation"
	"github.com/matzehuels/tilings/pkg/cache"
	"github.com/matzehuels/tilings/pkg/observability"
	"github.com/matzehuels/tilings/pkg/rule"
	"github.com/matzehuels/tilings/pkg/tiling"
)

// Cache key types reported to the cache hooks.
const (
	keyTypeRule        = "rule"
	keyTypeSeparations = "separations"
)

// Runner applies strategies with caching.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can share one Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the lifetime of cached entries; zero means cache.TTLRule.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// If logger is nil, log output is discarded.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// TilingHash returns the content hash used in cache keys.
func TilingHash(t *tiling.Tiling) string {
	return cache.Hash([]byte(t.Key()))
}

// Apply applies opts.Strategy to t, serving the rule from the cache unless
// opts.Refresh is set. A strategy that does not apply yields a result with
// a nil Rule, which is cached as well.
func (r *Runner) Apply(ctx context.Context, t *tiling.Tiling, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	start := time.Now()
	res := &Result{
		RunID:      uuid.NewString(),
		Strategy:   opts.Strategy,
		TilingHash: TilingHash(t),
	}
	logger := opts.Logger.With("run", res.RunID[:8], "strategy", opts.Strategy)
	key := r.Keyer.RuleKey(opts.Strategy, res.TilingHash, opts.RuleKeyOpts())

	if !opts.Refresh {
		if rl, hit := r.lookupRule(ctx, key, logger); hit {
			res.Rule, res.Cached = rl, true
			res.Duration = time.Since(start)
			logger.Debug("rule from cache", "applied", res.Applied())
			return res, nil
		}
	}

	observability.Strategy().OnStrategyStart(ctx, opts.Strategy, len(t.ActiveCells()))
	rl, err := Compute(t, opts)
	res.Duration = time.Since(start)
	children := 0
	if rl != nil {
		children = len(rl.Children)
	}
	observability.Strategy().OnStrategyComplete(ctx, opts.Strategy, children, res.Duration, err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.Strategy, err)
	}
	res.Rule = rl

	if data, err := json.Marshal(rl); err == nil {
		if err := r.Cache.Set(ctx, key, data, r.ttl()); err != nil {
			logger.Warn("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, keyTypeRule, len(data))
		}
	}

	logger.Info("applied strategy",
		"applied", res.Applied(),
		"children", children,
		"duration", res.Duration)
	return res, nil
}

// lookupRule reads a cached rule. A stored null is a hit with a nil rule.
// Entries that fail to decode are treated as misses.
func (r *Runner) lookupRule(ctx context.Context, key string, logger *log.Logger) (*rule.Rule, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeRule)
		return nil, false
	}
	var rl *rule.Rule
	if err := json.Unmarshal(data, &rl); err != nil {
		logger.Debug("discarding corrupt cache entry", "err", err)
		observability.Cache().OnCacheMiss(ctx, keyTypeRule)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyTypeRule)
	return rl, true
}

// ApplyAll applies opts to every tiling concurrently, at most GOMAXPROCS at
// a time. Results are in input order. The first error cancels the rest.
func (r *Runner) ApplyAll(ctx context.Context, tilings []*tiling.Tiling, opts Options) ([]*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	results := make([]*Result, len(tilings))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, t := range tilings {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.Apply(ctx, t, opts)
			if err != nil {
				return fmt.Errorf("tiling %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Separations returns every distinct single separation of t, finest
// first; with onlyMax only the finest orders are used. The list is cached
// as JSON. cached reports a cache hit.
func (r *Runner) Separations(ctx context.Context, t *tiling.Tiling, onlyMax, refresh bool) (out []*tiling.Tiling, cached bool, err error) {
	key := r.Keyer.SeparationsKey(TilingHash(t), onlyMax)
	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if err := json.Unmarshal(data, &out); err == nil {
				observability.Cache().OnCacheHit(ctx, keyTypeSeparations)
				return out, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeSeparations)
	}

	start := time.Now()
	observability.Strategy().OnStrategyStart(ctx, StrategySeparateOnce, len(t.ActiveCells()))
	for s := range separation.NewSingle(t).AllSeparatedTilings(onlyMax) {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		out = append(out, s)
	}
	observability.Strategy().OnStrategyComplete(ctx, StrategySeparateOnce, len(out), time.Since(start), nil)

	if data, err := json.Marshal(out); err == nil {
		if err := r.Cache.Set(ctx, key, data, r.ttl()); err == nil {
			observability.Cache().OnCacheSet(ctx, keyTypeSeparations, len(data))
		}
	}
	r.Logger.Debug("enumerated separations", "count", len(out), "only_max", onlyMax)
	return out, false, nil
}

func (r *Runner) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.TTLRule
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
