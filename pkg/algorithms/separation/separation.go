package separation

import (
	"github.com/matzehuels/tilings/pkg/errors"
	"github.com/matzehuels/tilings/pkg/gridded"
	"github.com/matzehuels/tilings/pkg/rule"
	"github.com/matzehuels/tilings/pkg/tiling"
)

// DefaultMaxPasses bounds the number of single separations applied by [New].
const DefaultMaxPasses = 10

// Option configures [New].
type Option func(*RowColSeparation)

// WithMaxPasses sets the number of single separations after which a tiling
// that is still separable is reported as diverging. With 0 any separable
// tiling diverges. Negative values are ignored.
func WithMaxPasses(n int) Option {
	return func(s *RowColSeparation) {
		if n >= 0 {
			s.maxPasses = n
		}
	}
}

// RowColSeparation separates a tiling repeatedly until no further
// refinement exists.
type RowColSeparation struct {
	original  *tiling.Tiling
	separated *tiling.Tiling
	passes    int
	cellMap   map[gridded.Cell]gridded.Cell
	maxPasses int
}

// New separates t to a fixpoint. It fails with SEPARATION_DIVERGED when the
// tiling is still separable after the maximum number of passes.
func New(t *tiling.Tiling, opts ...Option) (*RowColSeparation, error) {
	s := &RowColSeparation{original: t, maxPasses: DefaultMaxPasses}
	for _, opt := range opts {
		opt(s)
	}

	s.cellMap = identity(t.ActiveCells())
	cur := t
	for {
		single := NewSingle(cur)
		if !single.Separable() {
			break
		}
		if s.passes == s.maxPasses {
			return nil, errors.New(errors.ErrCodeDiverged,
				"tiling still separable after %d passes", s.maxPasses)
		}
		next := single.SeparatedTiling()
		s.cellMap = compose(s.cellMap, single.CellMap(), next.ForwardMap())
		cur = next
		s.passes++
	}
	s.separated = cur
	return s, nil
}

func identity(cells []gridded.Cell) map[gridded.Cell]gridded.Cell {
	m := make(map[gridded.Cell]gridded.Cell, len(cells))
	for _, c := range cells {
		m[c] = c
	}
	return m
}

// compose follows each original cell through the separation of a pass and
// the compaction of the resulting tiling. Cells that end up empty are
// dropped.
func compose(total, sep, forward map[gridded.Cell]gridded.Cell) map[gridded.Cell]gridded.Cell {
	out := make(map[gridded.Cell]gridded.Cell, len(total))
	for orig, cur := range total {
		mid, ok := sep[cur]
		if !ok {
			continue
		}
		if final, ok := forward[mid]; ok {
			out[orig] = final
		}
	}
	return out
}

// Tiling returns the input tiling.
func (s *RowColSeparation) Tiling() *tiling.Tiling { return s.original }

// SeparatedTiling returns the fully separated tiling, or the input when it
// is not separable.
func (s *RowColSeparation) SeparatedTiling() *tiling.Tiling { return s.separated }

// Separable reports whether at least one pass changed the tiling.
func (s *RowColSeparation) Separable() bool { return s.passes > 0 }

// Passes returns the number of single separations applied.
func (s *RowColSeparation) Passes() int { return s.passes }

// CellMap returns where each active cell of the input ended up.
func (s *RowColSeparation) CellMap() map[gridded.Cell]gridded.Cell {
	m := make(map[gridded.Cell]gridded.Cell, len(s.cellMap))
	for k, v := range s.cellMap {
		m[k] = v
	}
	return m
}

// Rule returns the inferral rule to the separated tiling, or nil when the
// tiling is not separable.
func (s *RowColSeparation) Rule() *rule.Rule {
	if !s.Separable() {
		return nil
	}
	return rule.NewInferral(FormalStep, s.original, s.separated).WithCellMap(s.cellMap)
}
