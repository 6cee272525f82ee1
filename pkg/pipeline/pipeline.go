// Package pipeline applies strategies to tilings with caching, logging and
// instrumentation.
//
// The algorithm packages under pkg/algorithms are pure: they take a tiling
// and return a rule. This package is the layer the CLI talks to. It
// validates options, looks the rule up in a [cache.Cache], computes it on a
// miss, and reports each run through the observability hooks.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Apply(ctx, t, pipeline.Options{Strategy: pipeline.StrategyFactor})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Applied() {
//	    fmt.Println(res.Rule)
//	}
//
// Apply a strategy to many tilings at once:
//
//	results, err := runner.ApplyAll(ctx, tilings, opts)
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tilings/pkg/algorithms/separation"
	"github.com/matzehuels/tilings/pkg/cache"
	"github.com/matzehuels/tilings/pkg/errors"
	"github.com/matzehuels/tilings/pkg/rule"
)

// =============================================================================
// Strategies
// =============================================================================

// Strategy names accepted by [Options.Strategy].
const (
	StrategySeparate            = "separate"
	StrategySeparateOnce        = "separate-once"
	StrategyFactor              = "factor"
	StrategyFactorMonotone      = "factor-monotone"
	StrategyFactorInterleaving  = "factor-interleaving"
	StrategyInferSubobstruction = "infer-subobstruction"
	StrategyInferAll            = "infer-all"
	StrategyInferEmptyCells     = "infer-empty-cells"
)

// Strategies lists every strategy in the order the CLI presents them.
var Strategies = []string{
	StrategySeparate,
	StrategySeparateOnce,
	StrategyFactor,
	StrategyFactorMonotone,
	StrategyFactorInterleaving,
	StrategyInferSubobstruction,
	StrategyInferAll,
	StrategyInferEmptyCells,
}

// DefaultLength is the obstruction length used by [StrategyInferAll].
const DefaultLength = 2

// ValidateStrategy checks that a strategy name is known.
func ValidateStrategy(name string) error {
	if !slices.Contains(Strategies, name) {
		return errors.New(errors.ErrCodeInvalidStrategy,
			"invalid strategy: %q (must be one of: %s)", name, strings.Join(Strategies, ", "))
	}
	return nil
}

// =============================================================================
// Options
// =============================================================================

// Options configures a strategy application.
type Options struct {
	Strategy  string `json:"strategy"`
	MaxPasses int    `json:"max_passes,omitempty"` // separate
	Length    int    `json:"length,omitempty"`     // infer-all
	Workable  bool   `json:"workable,omitempty"`   // factor*
	Refresh   bool   `json:"refresh,omitempty"`    // bypass cached rules

	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := ValidateStrategy(o.Strategy); err != nil {
		return err
	}
	if o.MaxPasses < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max passes must not be negative, got %d", o.MaxPasses)
	}
	if o.Length < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "length must not be negative, got %d", o.Length)
	}
	if o.MaxPasses == 0 {
		o.MaxPasses = separation.DefaultMaxPasses
	}
	if o.Length == 0 {
		o.Length = DefaultLength
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}
	o.validated = true
	return nil
}

// RuleKeyOpts returns the cache key options that affect the strategy's
// result. Parameters the strategy ignores are left zero so they do not
// split the cache.
func (o *Options) RuleKeyOpts() cache.RuleKeyOpts {
	switch o.Strategy {
	case StrategySeparate:
		return cache.RuleKeyOpts{MaxPasses: o.MaxPasses}
	case StrategyInferAll:
		return cache.RuleKeyOpts{Length: o.Length}
	case StrategyFactor, StrategyFactorMonotone, StrategyFactorInterleaving:
		return cache.RuleKeyOpts{Workable: o.Workable}
	}
	return cache.RuleKeyOpts{}
}

// =============================================================================
// Result
// =============================================================================

// Result is the outcome of one strategy application.
type Result struct {
	// RunID identifies this application in logs.
	RunID string

	// Strategy is the strategy that was applied.
	Strategy string

	// TilingHash is the content hash of the input tiling.
	TilingHash string

	// Rule is nil when the strategy does not apply to the tiling.
	Rule *rule.Rule

	// Cached reports whether the rule came from the cache.
	Cached bool

	// Duration covers the lookup and, on a miss, the computation.
	Duration time.Duration
}

// Applied reports whether the strategy produced a rule.
func (r *Result) Applied() bool { return r.Rule != nil }

// Children returns the number of child tilings, zero when not applied.
func (r *Result) Children() int {
	if r.Rule == nil {
		return 0
	}
	return len(r.Rule.Children)
}

func (r *Result) String() string {
	if !r.Applied() {
		return fmt.Sprintf("%s: not applicable", r.Strategy)
	}
	return fmt.Sprintf("%s: %d children", r.Strategy, r.Children())
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
