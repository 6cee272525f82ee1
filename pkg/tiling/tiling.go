package tiling

import (
	"slices"
	"strings"
	"sync"

	"github.com/matzehuels/tilings/pkg/gridded"
)

// Tiling is an immutable, normalised set of obstructions and requirement
// lists over a grid. Construct with [New]; the zero value is not usable.
type Tiling struct {
	obstructions []gridded.GriddedPerm
	requirements [][]gridded.GriddedPerm
	cols, rows   int
	active       []gridded.Cell
	forward      map[gridded.Cell]gridded.Cell
	opts         options

	emptyOnce sync.Once
	empty     bool
}

type options struct {
	keepEmpty    bool
	skipMinimize bool
}

// Option configures [New].
type Option func(*options)

// KeepEmptyRowsCols leaves rows and columns without active cells in place.
func KeepEmptyRowsCols() Option {
	return func(o *options) { o.keepEmpty = true }
}

// SkipMinimize keeps obstructions and requirements that are implied by
// others. Input is still sorted and de-duplicated.
func SkipMinimize() Option {
	return func(o *options) { o.skipMinimize = true }
}

// New normalises obstructions and requirements into a tiling. The inputs are
// not retained.
func New(obstructions []gridded.GriddedPerm, requirements [][]gridded.GriddedPerm, opts ...Option) *Tiling {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	t := &Tiling{opts: o}

	obs := gridded.SortUnique(slices.Clone(obstructions))
	if len(obs) > 0 && obs[0].IsEmpty() {
		return t.makeEmpty()
	}
	if !o.skipMinimize {
		obs = minimal(obs)
	}

	reqs := make([][]gridded.GriddedPerm, 0, len(requirements))
	for _, list := range requirements {
		list = gridded.SortUnique(slices.Clone(list))
		if !o.skipMinimize {
			list = slices.DeleteFunc(list, func(r gridded.GriddedPerm) bool {
				return r.Contains(obs...)
			})
			list = minimal(list)
		}
		if len(list) == 0 {
			return t.makeEmpty()
		}
		if list[0].IsEmpty() {
			continue
		}
		reqs = append(reqs, list)
	}
	reqs = sortLists(reqs)

	t.obstructions, t.requirements = obs, reqs
	t.computeDimensions()
	t.computeActive()
	t.fillEmpty()
	if o.keepEmpty {
		t.forward = t.identityMap()
	} else {
		t.removeEmptyRowsCols()
	}
	return t
}

// Empty returns the tiling with no gridded permutations.
func Empty() *Tiling {
	return (&Tiling{}).makeEmpty()
}

func (t *Tiling) makeEmpty() *Tiling {
	t.obstructions = []gridded.GriddedPerm{gridded.Empty()}
	t.requirements = nil
	t.cols, t.rows = 1, 1
	t.active = nil
	t.forward = map[gridded.Cell]gridded.Cell{}
	t.emptyOnce.Do(func() { t.empty = true })
	return t
}

// minimal drops every gridded perm that contains an earlier kept one. The
// input is sorted, so shorter perms are kept first within each length.
func minimal(gps []gridded.GriddedPerm) []gridded.GriddedPerm {
	byLen := slices.Clone(gps)
	slices.SortStableFunc(byLen, func(a, b gridded.GriddedPerm) int { return a.Len() - b.Len() })
	kept := make([]gridded.GriddedPerm, 0, len(gps))
	for _, g := range byLen {
		if !g.Contains(kept...) {
			kept = append(kept, g)
		}
	}
	return gridded.SortUnique(kept)
}

func sortLists(lists [][]gridded.GriddedPerm) [][]gridded.GriddedPerm {
	slices.SortFunc(lists, func(a, b []gridded.GriddedPerm) int {
		return slices.CompareFunc(a, b, gridded.Compare)
	})
	return slices.CompactFunc(lists, func(a, b []gridded.GriddedPerm) bool {
		return slices.EqualFunc(a, b, gridded.GriddedPerm.Equal)
	})
}

func (t *Tiling) allPerms(yield func(gridded.GriddedPerm)) {
	for _, ob := range t.obstructions {
		yield(ob)
	}
	for _, list := range t.requirements {
		for _, r := range list {
			yield(r)
		}
	}
}

func (t *Tiling) computeDimensions() {
	t.cols, t.rows = 1, 1
	t.allPerms(func(g gridded.GriddedPerm) {
		for _, c := range g.Cells() {
			t.cols = max(t.cols, c.Col+1)
			t.rows = max(t.rows, c.Row+1)
		}
	})
}

// computeActive collects the cells mentioned by a non-point obstruction or a
// requirement, minus the cells holding a point obstruction.
func (t *Tiling) computeActive() {
	empty := make(map[gridded.Cell]bool)
	mentioned := make(map[gridded.Cell]bool)
	for _, ob := range t.obstructions {
		if c, ok := ob.IsPoint(); ok {
			empty[c] = true
			continue
		}
		for _, c := range ob.Cells() {
			mentioned[c] = true
		}
	}
	for _, list := range t.requirements {
		for _, r := range list {
			for _, c := range r.Cells() {
				mentioned[c] = true
			}
		}
	}
	for c := range mentioned {
		if !empty[c] {
			t.active = append(t.active, c)
		}
	}
	slices.SortFunc(t.active, gridded.Cell.Compare)
}

func (t *Tiling) fillEmpty() {
	var added []gridded.GriddedPerm
	for col := 0; col < t.cols; col++ {
		for row := 0; row < t.rows; row++ {
			c := gridded.Cell{Col: col, Row: row}
			if !t.IsActive(c) && !t.hasPointObstruction(c) {
				added = append(added, gridded.Point(c))
			}
		}
	}
	if len(added) > 0 {
		t.obstructions = gridded.SortUnique(append(t.obstructions, added...))
	}
}

func (t *Tiling) hasPointObstruction(c gridded.Cell) bool {
	return slices.ContainsFunc(t.obstructions, func(ob gridded.GriddedPerm) bool {
		p, ok := ob.IsPoint()
		return ok && p == c
	})
}

func (t *Tiling) identityMap() map[gridded.Cell]gridded.Cell {
	m := make(map[gridded.Cell]gridded.Cell, t.cols*t.rows)
	for col := 0; col < t.cols; col++ {
		for row := 0; row < t.rows; row++ {
			c := gridded.Cell{Col: col, Row: row}
			m[c] = c
		}
	}
	return m
}

// removeEmptyRowsCols compacts the grid onto the rows and columns holding an
// active cell. Obstructions touching a removed row or column can never occur
// and are dropped.
func (t *Tiling) removeEmptyRowsCols() {
	if len(t.active) == 0 {
		t.forward = map[gridded.Cell]gridded.Cell{}
		if len(t.requirements) == 0 {
			t.obstructions = []gridded.GriddedPerm{gridded.Point(gridded.Cell{})}
			t.cols, t.rows = 1, 1
		}
		return
	}
	colMap := make(map[int]int)
	rowMap := make(map[int]int)
	var cols, rows []int
	for _, c := range t.active {
		cols = append(cols, c.Col)
		rows = append(rows, c.Row)
	}
	slices.Sort(cols)
	slices.Sort(rows)
	for i, c := range slices.Compact(cols) {
		colMap[c] = i
	}
	for i, r := range slices.Compact(rows) {
		rowMap[r] = i
	}
	if len(colMap) == t.cols && len(rowMap) == t.rows {
		t.forward = t.identityMap()
		return
	}

	t.forward = make(map[gridded.Cell]gridded.Cell)
	for c := range t.identityMap() {
		nc, okc := colMap[c.Col]
		nr, okr := rowMap[c.Row]
		if okc && okr {
			t.forward[c] = gridded.Cell{Col: nc, Row: nr}
		}
	}
	mapping := func(c gridded.Cell) gridded.Cell { return t.forward[c] }
	kept := func(g gridded.GriddedPerm) bool {
		for _, c := range g.Cells() {
			if _, ok := t.forward[c]; !ok {
				return false
			}
		}
		return true
	}

	obs := make([]gridded.GriddedPerm, 0, len(t.obstructions))
	for _, ob := range t.obstructions {
		if kept(ob) {
			obs = append(obs, ob.Minimize(mapping))
		}
	}
	reqs := make([][]gridded.GriddedPerm, 0, len(t.requirements))
	for _, list := range t.requirements {
		mapped := make([]gridded.GriddedPerm, 0, len(list))
		for _, r := range list {
			if kept(r) {
				mapped = append(mapped, r.Minimize(mapping))
			}
		}
		reqs = append(reqs, gridded.SortUnique(mapped))
	}
	active := make([]gridded.Cell, len(t.active))
	for i, c := range t.active {
		active[i] = t.forward[c]
	}

	t.obstructions = gridded.SortUnique(obs)
	t.requirements = sortLists(reqs)
	t.active = active
	t.cols, t.rows = len(colMap), len(rowMap)
}

// Obstructions returns the obstructions in sorted order.
func (t *Tiling) Obstructions() []gridded.GriddedPerm { return slices.Clone(t.obstructions) }

// Requirements returns the requirement lists, each sorted.
func (t *Tiling) Requirements() [][]gridded.GriddedPerm {
	out := make([][]gridded.GriddedPerm, len(t.requirements))
	for i, list := range t.requirements {
		out[i] = slices.Clone(list)
	}
	return out
}

// Dimensions returns the number of columns and rows.
func (t *Tiling) Dimensions() (cols, rows int) { return t.cols, t.rows }

// ActiveCells returns the cells that may hold points, sorted.
func (t *Tiling) ActiveCells() []gridded.Cell { return slices.Clone(t.active) }

// IsActive reports whether c may hold points.
func (t *Tiling) IsActive(c gridded.Cell) bool {
	_, ok := slices.BinarySearchFunc(t.active, c, gridded.Cell.Compare)
	return ok
}

// EmptyCells returns the cells of the grid that are not active, sorted.
func (t *Tiling) EmptyCells() []gridded.Cell {
	var out []gridded.Cell
	for col := 0; col < t.cols; col++ {
		for row := 0; row < t.rows; row++ {
			c := gridded.Cell{Col: col, Row: row}
			if !t.IsActive(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

// ForwardMap returns where each cell of the input grid ended up. Cells in
// removed rows or columns are absent.
func (t *Tiling) ForwardMap() map[gridded.Cell]gridded.Cell {
	m := make(map[gridded.Cell]gridded.Cell, len(t.forward))
	for k, v := range t.forward {
		m[k] = v
	}
	return m
}

// IsMonotoneCell reports whether c is forced increasing or decreasing by a
// length-2 obstruction inside it.
func (t *Tiling) IsMonotoneCell(c gridded.Cell) bool {
	_, ok := t.monotone(c)
	return ok
}

// monotone returns the pattern of the length-2 single-cell obstruction in c.
func (t *Tiling) monotone(c gridded.Cell) (increasing bool, ok bool) {
	for _, ob := range t.obstructions {
		if ob.Len() != 2 {
			continue
		}
		if oc, single := ob.IsSingleCell(); single && oc == c {
			return ob.Value(0) > ob.Value(1), true
		}
	}
	return false, false
}

// CellBasis returns the patterns of the single-cell obstructions in c.
func (t *Tiling) CellBasis(c gridded.Cell) []string {
	var out []string
	for _, ob := range t.obstructions {
		if oc, ok := ob.IsSingleCell(); ok && oc == c {
			out = append(out, ob.Pattern().String())
		}
	}
	return out
}

// AddObstruction returns a new tiling with ob added, built with the options
// of t.
func (t *Tiling) AddObstruction(ob gridded.GriddedPerm) *Tiling {
	return t.AddObstructions([]gridded.GriddedPerm{ob})
}

// AddObstructions returns a new tiling with obs added.
func (t *Tiling) AddObstructions(obs []gridded.GriddedPerm) *Tiling {
	all := append(slices.Clone(t.obstructions), obs...)
	return New(all, t.requirements, t.options()...)
}

// AddRequirement returns a new tiling with the requirement list added.
func (t *Tiling) AddRequirement(list []gridded.GriddedPerm) *Tiling {
	reqs := append(t.Requirements(), slices.Clone(list))
	return New(t.obstructions, reqs, t.options()...)
}

// AddSingleCellRequirement requires patt to occur inside cell.
func (t *Tiling) AddSingleCellRequirement(patt []int, cell gridded.Cell) (*Tiling, error) {
	req, err := gridded.SingleCell(patt, cell)
	if err != nil {
		return nil, err
	}
	return t.AddRequirement([]gridded.GriddedPerm{req}), nil
}

func (t *Tiling) options() []Option {
	var opts []Option
	if t.opts.keepEmpty {
		opts = append(opts, KeepEmptyRowsCols())
	}
	if t.opts.skipMinimize {
		opts = append(opts, SkipMinimize())
	}
	return opts
}

// Equal reports whether t and u have the same obstructions and requirements.
func (t *Tiling) Equal(u *Tiling) bool {
	if !slices.EqualFunc(t.obstructions, u.obstructions, gridded.GriddedPerm.Equal) {
		return false
	}
	return slices.EqualFunc(t.requirements, u.requirements, func(a, b []gridded.GriddedPerm) bool {
		return slices.EqualFunc(a, b, gridded.GriddedPerm.Equal)
	})
}

// Key returns a string identifying t up to [Tiling.Equal].
func (t *Tiling) Key() string {
	var b strings.Builder
	for _, ob := range t.obstructions {
		b.WriteString(ob.Key())
		b.WriteByte(';')
	}
	for _, list := range t.requirements {
		b.WriteByte('|')
		for _, r := range list {
			b.WriteString(r.Key())
			b.WriteByte(';')
		}
	}
	return b.String()
}
