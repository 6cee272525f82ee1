package pipeline

import (
	"github.com/matzehuels/tilings/pkg/algorithms/factor"
	"github.com/matzehuels/tilings/pkg/algorithms/inferral"
	"github.com/matzehuels/tilings/pkg/algorithms/separation"
	"github.com/matzehuels/tilings/pkg/errors"
	"github.com/matzehuels/tilings/pkg/rule"
	"github.com/matzehuels/tilings/pkg/tiling"
)

// Compute applies the strategy in opts to t without caching. The rule is
// nil when the strategy does not apply. opts must be validated.
func Compute(t *tiling.Tiling, opts Options) (*rule.Rule, error) {
	switch opts.Strategy {
	case StrategySeparate:
		s, err := separation.New(t, separation.WithMaxPasses(opts.MaxPasses))
		if err != nil {
			return nil, err
		}
		return s.Rule(), nil
	case StrategySeparateOnce:
		return separation.NewSingle(t).Rule(), nil
	case StrategyFactor, StrategyFactorMonotone, StrategyFactorInterleaving:
		mode, err := factor.ParseMode(opts.Strategy)
		if err != nil {
			return nil, err
		}
		return factor.New(t, mode).Rule(opts.Workable), nil
	case StrategyInferSubobstruction:
		return inferral.Subobstruction(t).Rule(), nil
	case StrategyInferAll:
		return inferral.All(t, opts.Length).Rule(), nil
	case StrategyInferEmptyCells:
		return inferral.EmptyCell(t).Rule(), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStrategy, "invalid strategy: %q", opts.Strategy)
}
