package factor

import (
	"fmt"
	"slices"

	"github.com/matzehuels/tilings/pkg/errors"
	"github.com/matzehuels/tilings/pkg/gridded"
	"github.com/matzehuels/tilings/pkg/rule"
	"github.com/matzehuels/tilings/pkg/tiling"
)

// Mode selects which cells sharing a row or column are joined.
type Mode int

const (
	// ModeNone joins all cells sharing a row or column.
	ModeNone Mode = iota
	// ModeMonotoneInterleaving joins cells sharing a row or column unless
	// one of them is monotone.
	ModeMonotoneInterleaving
	// ModeInterleaving never joins cells because of their position.
	ModeInterleaving
)

var modeNames = map[Mode]string{
	ModeNone:                 "factor",
	ModeMonotoneInterleaving: "factor-monotone",
	ModeInterleaving:         "factor-interleaving",
}

// String returns the strategy name of the mode.
func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses a strategy name returned by [Mode.String].
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidStrategy, "unknown factor mode %q", s)
}

// FormalStep describes the factorisation in rules.
func (m Mode) FormalStep() string {
	switch m {
	case ModeMonotoneInterleaving:
		return "The factor with monotone interleaving of the tiling."
	case ModeInterleaving:
		return "The factor with interleaving of the tiling."
	default:
		return "The factor of the tiling."
	}
}

// Constructor names how the factors combine.
func (m Mode) Constructor() rule.Constructor {
	if m == ModeNone {
		return rule.ConstructorCartesian
	}
	return rule.ConstructorOther
}

// Factor computes the factors of a tiling. Components and factors are
// computed on first use.
type Factor struct {
	tiling *tiling.Tiling
	mode   Mode
	rows   int

	components [][]gridded.Cell
	factors    []*tiling.Tiling
}

// New prepares the factorisation of t.
func New(t *tiling.Tiling, mode Mode) *Factor {
	_, rows := t.Dimensions()
	return &Factor{tiling: t, mode: mode, rows: rows}
}

// Tiling returns the tiling being factored.
func (f *Factor) Tiling() *tiling.Tiling { return f.tiling }

// Mode returns the factorisation mode.
func (f *Factor) Mode() Mode { return f.mode }

func (f *Factor) index(c gridded.Cell) int { return c.Col*f.rows + c.Row }

func (f *Factor) uniteCells(uf *UnionFind, cells []gridded.Cell) {
	for _, c := range cells[min(1, len(cells)):] {
		uf.Union(f.index(cells[0]), f.index(c))
	}
}

func (f *Factor) uniteAll(uf *UnionFind) {
	for _, ob := range f.tiling.Obstructions() {
		f.uniteCells(uf, ob.Cells())
	}
	for _, list := range f.tiling.Requirements() {
		var cells []gridded.Cell
		for _, r := range list {
			cells = append(cells, r.Cells()...)
		}
		f.uniteCells(uf, cells)
	}
	if f.mode == ModeInterleaving {
		return
	}
	active := f.tiling.ActiveCells()
	for i, c1 := range active {
		for _, c2 := range active[i+1:] {
			if c1.Col != c2.Col && c1.Row != c2.Row {
				continue
			}
			if f.mode == ModeMonotoneInterleaving &&
				(f.tiling.IsMonotoneCell(c1) || f.tiling.IsMonotoneCell(c2)) {
				continue
			}
			uf.Union(f.index(c1), f.index(c2))
		}
	}
}

// Components returns the active cells grouped into factors. Groups are
// sorted and ordered by their first cell.
func (f *Factor) Components() [][]gridded.Cell {
	if f.components != nil {
		return f.components
	}
	cols, rows := f.tiling.Dimensions()
	uf := NewUnionFind(cols * rows)
	f.uniteAll(uf)

	group := make(map[int]int)
	components := [][]gridded.Cell{}
	for _, c := range f.tiling.ActiveCells() {
		root := uf.Find(f.index(c))
		i, ok := group[root]
		if !ok {
			i = len(components)
			group[root] = i
			components = append(components, nil)
		}
		components[i] = append(components[i], c)
	}
	f.components = components
	return components
}

// Factorable reports whether the tiling has more than one factor.
func (f *Factor) Factorable() bool { return len(f.Components()) > 1 }

// Factors returns one tiling per component holding the obstructions and
// requirement lists that start in it.
func (f *Factor) Factors() []*tiling.Tiling {
	if f.factors != nil {
		return f.factors
	}
	obs := f.tiling.Obstructions()
	reqs := f.tiling.Requirements()
	for _, comp := range f.Components() {
		in := func(c gridded.Cell) bool {
			_, ok := slices.BinarySearchFunc(comp, c, gridded.Cell.Compare)
			return ok
		}
		var fobs []gridded.GriddedPerm
		for _, ob := range obs {
			if ob.Len() > 0 && in(ob.Position(0)) {
				fobs = append(fobs, ob)
			}
		}
		var freqs [][]gridded.GriddedPerm
		for _, list := range reqs {
			if len(list) > 0 && list[0].Len() > 0 && in(list[0].Position(0)) {
				freqs = append(freqs, list)
			}
		}
		f.factors = append(f.factors, tiling.New(fobs, freqs, tiling.SkipMinimize()))
	}
	return f.factors
}

// Rule returns the decomposition into factors, or nil when the tiling has a
// single factor. workable marks the factors for further expansion.
func (f *Factor) Rule(workable bool) *rule.Rule {
	if !f.Factorable() {
		return nil
	}
	return rule.NewDecomposition(f.mode.FormalStep(), f.tiling, f.Factors(), f.mode.Constructor(), workable)
}
