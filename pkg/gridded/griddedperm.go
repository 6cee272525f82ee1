package gridded

import (
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/tilings/pkg/errors"
	"github.com/matzehuels/tilings/pkg/perm"
)

// GriddedPerm is a permutation pattern with a cell assigned to each point.
// The zero value is the empty gridded permutation.
type GriddedPerm struct {
	patt  perm.Perm
	pos   []Cell
	cells []Cell // distinct cells, sorted
}

// New builds a gridded permutation. It fails with INVALID_PATTERN when patt
// is not a permutation and LENGTH_MISMATCH when the lengths differ.
func New(patt []int, pos []Cell) (GriddedPerm, error) {
	p, err := perm.New(patt)
	if err != nil {
		return GriddedPerm{}, err
	}
	if len(pos) != len(p) {
		return GriddedPerm{}, errors.New(errors.ErrCodeLengthMismatch,
			"pattern %v has %d points but %d positions were given", patt, len(p), len(pos))
	}
	return build(p, slices.Clone(pos)), nil
}

// MustNew is like New but panics on invalid input. Intended for fixtures.
func MustNew(patt []int, pos ...Cell) GriddedPerm {
	g, err := New(patt, pos)
	if err != nil {
		panic(err)
	}
	return g
}

// SingleCell places every point of patt in cell.
func SingleCell(patt []int, cell Cell) (GriddedPerm, error) {
	pos := make([]Cell, len(patt))
	for i := range pos {
		pos[i] = cell
	}
	return New(patt, pos)
}

// Point returns the length-1 gridded permutation in cell.
func Point(cell Cell) GriddedPerm {
	return build(perm.Perm{0}, []Cell{cell})
}

// Empty returns the empty gridded permutation.
func Empty() GriddedPerm {
	return GriddedPerm{}
}

// build assumes p is valid and takes ownership of pos.
func build(p perm.Perm, pos []Cell) GriddedPerm {
	cells := slices.Clone(pos)
	slices.SortFunc(cells, Cell.Compare)
	return GriddedPerm{patt: p, pos: pos, cells: slices.Compact(cells)}
}

// Len returns the number of points.
func (g GriddedPerm) Len() int { return len(g.patt) }

// Pattern returns a copy of the underlying permutation.
func (g GriddedPerm) Pattern() perm.Perm { return g.patt.Clone() }

// Positions returns a copy of the cells in point order.
func (g GriddedPerm) Positions() []Cell { return slices.Clone(g.pos) }

// Position returns the cell of point i.
func (g GriddedPerm) Position(i int) Cell { return g.pos[i] }

// Value returns the pattern value of point i.
func (g GriddedPerm) Value(i int) int { return g.patt[i] }

// Cells returns the distinct cells occupied, sorted.
func (g GriddedPerm) Cells() []Cell { return slices.Clone(g.cells) }

// Occupies reports whether some point lies in cell.
func (g GriddedPerm) Occupies(cell Cell) bool {
	_, ok := slices.BinarySearchFunc(g.cells, cell, Cell.Compare)
	return ok
}

// IsEmpty reports whether g has no points.
func (g GriddedPerm) IsEmpty() bool { return len(g.patt) == 0 }

// IsPoint reports whether g has exactly one point, returning its cell.
func (g GriddedPerm) IsPoint() (Cell, bool) {
	if len(g.patt) == 1 {
		return g.pos[0], true
	}
	return Cell{}, false
}

// IsSingleCell reports whether all points lie in one cell, returning it.
func (g GriddedPerm) IsSingleCell() (Cell, bool) {
	if len(g.cells) == 1 {
		return g.cells[0], true
	}
	return Cell{}, false
}

// IsInterleaving reports whether g occupies two distinct cells sharing a row
// or a column.
func (g GriddedPerm) IsInterleaving() bool {
	for i, c := range g.cells {
		for _, d := range g.cells[i+1:] {
			if c.Col == d.Col || c.Row == d.Row {
				return true
			}
		}
	}
	return false
}

// Contradictory reports whether the gridding is inconsistent with the
// pattern: for i < j the column of i must not exceed the column of j, and
// the rows must follow the relative order of the values.
func (g GriddedPerm) Contradictory() bool {
	n := len(g.patt)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.pos[i].Col > g.pos[j].Col {
				return true
			}
			if g.patt[i] < g.patt[j] && g.pos[i].Row > g.pos[j].Row {
				return true
			}
			if g.patt[i] > g.patt[j] && g.pos[i].Row < g.pos[j].Row {
				return true
			}
		}
	}
	return false
}

// Occurrences yields the index tuples of other at which g occurs: the
// pattern matches and every matched point sits in the same cell as the
// corresponding point of g.
func (g GriddedPerm) Occurrences(other GriddedPerm) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if len(g.patt) > len(other.patt) {
			return
		}
		for _, c := range g.cells {
			if !other.Occupies(c) {
				return
			}
		}
		for occ := range perm.Occurrences(g.patt, other.patt) {
			if !g.matchesCells(other, occ) {
				continue
			}
			if !yield(occ) {
				return
			}
		}
	}
}

func (g GriddedPerm) matchesCells(other GriddedPerm, occ []int) bool {
	for i, j := range occ {
		if g.pos[i] != other.pos[j] {
			return false
		}
	}
	return true
}

// OccursIn reports whether g occurs in other.
func (g GriddedPerm) OccursIn(other GriddedPerm) bool {
	for range g.Occurrences(other) {
		return true
	}
	return false
}

// Contains reports whether any of patts occurs in g.
func (g GriddedPerm) Contains(patts ...GriddedPerm) bool {
	for _, p := range patts {
		if p.OccursIn(g) {
			return true
		}
	}
	return false
}

// Avoids reports whether none of patts occurs in g.
func (g GriddedPerm) Avoids(patts ...GriddedPerm) bool {
	return !g.Contains(patts...)
}

// PointsInCell returns the indices of the points in cell, ascending.
func (g GriddedPerm) PointsInCell(cell Cell) []int {
	var idx []int
	for i, c := range g.pos {
		if c == cell {
			idx = append(idx, i)
		}
	}
	return idx
}

// IsolatedCells returns, in point order, the cells of points that share
// neither a row nor a column with any other point.
func (g GriddedPerm) IsolatedCells() []Cell {
	var out []Cell
	for i, c := range g.pos {
		isolated := true
		for j, d := range g.pos {
			if i != j && (c.Col == d.Col || c.Row == d.Row) {
				isolated = false
				break
			}
		}
		if isolated {
			out = append(out, c)
		}
	}
	return out
}

// IsIsolated reports whether no point outside indices shares a row or column
// with a point at one of indices.
func (g GriddedPerm) IsIsolated(indices []int) bool {
	for i, c := range g.pos {
		if slices.Contains(indices, i) {
			continue
		}
		for _, j := range indices {
			if c.Col == g.pos[j].Col || c.Row == g.pos[j].Row {
				return false
			}
		}
	}
	return true
}

// RemoveCells deletes every point lying in one of cells.
func (g GriddedPerm) RemoveCells(cells []Cell) GriddedPerm {
	var vals []int
	var pos []Cell
	for i, c := range g.pos {
		if slices.Contains(cells, c) {
			continue
		}
		vals = append(vals, g.patt[i])
		pos = append(pos, c)
	}
	return build(perm.Standardize(vals), pos)
}

// RemovePoint deletes the point at index.
func (g GriddedPerm) RemovePoint(index int) GriddedPerm {
	pos := slices.Concat(g.pos[:index], g.pos[index+1:])
	return build(g.patt.Remove(index), pos)
}

// Subperm returns the gridded permutation formed by the points at indices,
// which must be increasing.
func (g GriddedPerm) Subperm(indices []int) GriddedPerm {
	vals := make([]int, len(indices))
	pos := make([]Cell, len(indices))
	for k, i := range indices {
		vals[k] = g.patt[i]
		pos[k] = g.pos[i]
	}
	return build(perm.Standardize(vals), pos)
}

// AllSubperms returns every proper, non-empty gridded subpermutation
// obtained by deleting points, without duplicates, shortest first.
func (g GriddedPerm) AllSubperms() []GriddedPerm {
	n := len(g.patt)
	seen := make(map[string]bool)
	var out []GriddedPerm
	for r := 1; r < n; r++ {
		for idx := range combinations(n, r) {
			sub := g.Subperm(idx)
			if k := sub.Key(); !seen[k] {
				seen[k] = true
				out = append(out, sub)
			}
		}
	}
	return out
}

// combinations yields the r-subsets of 0..n-1 in lexicographic order.
func combinations(n, r int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		idx := perm.Seq(r)
		for {
			if !yield(slices.Clone(idx)) {
				return
			}
			i := r - 1
			for i >= 0 && idx[i] == n-r+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < r; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// Minimize maps every point's cell through mapping.
func (g GriddedPerm) Minimize(mapping func(Cell) Cell) GriddedPerm {
	pos := make([]Cell, len(g.pos))
	for i, c := range g.pos {
		pos[i] = mapping(c)
	}
	return build(g.patt, pos)
}

// Equal reports structural equality.
func (g GriddedPerm) Equal(h GriddedPerm) bool {
	return g.patt.Equal(h.patt) && slices.Equal(g.pos, h.pos)
}

// Compare orders by pattern, then by positions.
func Compare(a, b GriddedPerm) int {
	if c := perm.Compare(a.patt, b.patt); c != 0 {
		return c
	}
	return slices.CompareFunc(a.pos, b.pos, Cell.Compare)
}

// Key returns a string that identifies g, for use as a map key.
func (g GriddedPerm) Key() string {
	var b strings.Builder
	for i, v := range g.patt {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte('|')
	for i, c := range g.pos {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(c.Col))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Row))
	}
	return b.String()
}

// String renders g as "021: (0, 0), (1, 1), (1, 0)".
func (g GriddedPerm) String() string {
	parts := make([]string, len(g.pos))
	for i, c := range g.pos {
		parts[i] = c.String()
	}
	return g.patt.String() + ": " + strings.Join(parts, ", ")
}

// SortUnique sorts gps and removes duplicates in place, returning the
// shortened slice.
func SortUnique(gps []GriddedPerm) []GriddedPerm {
	slices.SortFunc(gps, Compare)
	return slices.CompactFunc(gps, GriddedPerm.Equal)
}
