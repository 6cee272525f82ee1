// Package cli implements the tilings command-line interface.
//
// Commands read a tiling from a JSON or YAML file, apply a strategy through
// the pipeline runner and print the resulting rule. Results are cached in
// the backend named by the config file.
//
// # Commands
//
//   - separate: row/column separation, once or to a fixpoint
//   - factor: split a tiling into independent factors
//   - infer: obstruction and empty-cell inferral
//   - apply: run one strategy over many tilings
//   - graph: draw the row and column inequality graphs
//   - place: point placement on a single gridded permutation
//   - browse: page through the children of a rule interactively
//   - cache: clear or locate the rule cache
package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tilings/pkg/buildinfo"
	"github.com/matzehuels/tilings/pkg/cache"
	"github.com/matzehuels/tilings/pkg/config"
	"github.com/matzehuels/tilings/pkg/observability"
	"github.com/matzehuels/tilings/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "tilings"

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
	Config *config.Config

	configPath  string
	noCache     bool
	metricsFile string
	registry    *prometheus.Registry
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Tilings applies combinatorial strategies to gridded permutation classes",
		Long: `Tilings reads tilings (grids of cells constrained by gridded obstructions
and requirements) and applies strategies to them: row/column separation,
factorisation and obstruction inferral.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return c.setup(cmd) },
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.flushMetrics()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.BoolVar(&c.noCache, "no-cache", false, "disable the rule cache")
	flags.StringVar(&c.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	root.AddCommand(c.separateCommand())
	root.AddCommand(c.factorCommand())
	root.AddCommand(c.inferCommand())
	root.AddCommand(c.applyCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.placeCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config, applies its log level and registers metrics.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		c.SetLogLevel(level)
	}

	c.registry = prometheus.NewRegistry()
	m := observability.NewMetrics(c.registry)
	observability.SetStrategyHooks(m)
	observability.SetCacheHooks(m)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

func (c *CLI) flushMetrics() error {
	if c.metricsFile == "" || c.registry == nil {
		return nil
	}
	if err := observability.WriteTextfile(c.registry, c.metricsFile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	c.Logger.Debug("wrote metrics", "path", c.metricsFile)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	ch, err := c.newCache(ctx)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(ch, nil, c.Logger)
	r.TTL = c.Config.Cache.TTL.Duration
	return r, nil
}

// newCache opens the configured backend. A cache that cannot be opened is
// reported and replaced by a NullCache so the command still runs.
func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	ch, err := openCache(ctx, c.Config.Cache)
	if err != nil {
		c.Logger.Warn("cache unavailable, continuing without it", "backend", c.Config.Cache.Backend, "err", err)
		return cache.NewNullCache(), nil
	}
	return ch, nil
}

func openCache(ctx context.Context, cc config.CacheConfig) (cache.Cache, error) {
	switch cc.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendFile:
		fc, err := cache.NewFileCache(cc.Dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	case config.BackendBadger:
		bc, err := cache.NewBadgerCache(badgerDir(cc))
		if err != nil {
			return nil, err
		}
		return bc, nil
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{Addr: cc.RedisAddr, DB: cc.RedisDB})
		if err != nil {
			return nil, err
		}
		return rc, nil
	case config.BackendMongo:
		mc, err := cache.NewMongoCache(ctx, cache.MongoOptions{
			URI:        cc.MongoURI,
			Database:   cc.MongoDatabase,
			Collection: cc.MongoCollection,
		})
		if err != nil {
			return nil, err
		}
		return mc, nil
	}
	return nil, fmt.Errorf("unknown cache backend %q", cc.Backend)
}

// badgerDir keeps the Badger files apart from file-cache entries.
func badgerDir(cc config.CacheConfig) string {
	return filepath.Join(cc.Dir, "badger")
}

// cacheLocation describes where the configured backend stores entries.
func cacheLocation(cc config.CacheConfig) string {
	switch cc.Backend {
	case config.BackendFile:
		return cc.Dir
	case config.BackendBadger:
		return badgerDir(cc)
	case config.BackendRedis:
		return "redis://" + cc.RedisAddr
	case config.BackendMongo:
		return fmt.Sprintf("%s (%s.%s)", cc.MongoURI, cc.MongoDatabase, cc.MongoCollection)
	}
	return "disabled"
}
