package separation

import (
	"iter"
	"slices"

	"github.com/matzehuels/tilings/pkg/gridded"
	"github.com/matzehuels/tilings/pkg/graph"
	"github.com/matzehuels/tilings/pkg/rule"
	"github.com/matzehuels/tilings/pkg/tiling"
)

// FormalStep describes a separation in rules.
const FormalStep = "Row and column separation"

// Single is one application of row and column separation to a tiling.
// Derived values are computed on first use and cached.
type Single struct {
	tiling *tiling.Tiling
	cells  []gridded.Cell

	rowMatrix, colMatrix [][]int
	rowOrder, colOrder   [][]gridded.Cell
}

// NewSingle prepares a separation of t.
func NewSingle(t *tiling.Tiling) *Single {
	return &Single{tiling: t, cells: t.ActiveCells()}
}

// Tiling returns the tiling being separated.
func (s *Single) Tiling() *tiling.Tiling { return s.tiling }

// cellIndex returns the position of c among the active cells.
func (s *Single) cellIndex(c gridded.Cell) (int, bool) {
	return slices.BinarySearchFunc(s.cells, c, gridded.Cell.Compare)
}

// basicMatrix relates cells whose coordinate on the axis is strictly
// smaller.
func (s *Single) basicMatrix(rows bool) [][]int {
	coord := func(c gridded.Cell) int {
		if rows {
			return c.Row
		}
		return c.Col
	}
	m := make([][]int, len(s.cells))
	for i, a := range s.cells {
		m[i] = make([]int, len(s.cells))
		for j, b := range s.cells {
			if coord(a) < coord(b) {
				m[i][j] = 1
			}
		}
	}
	return m
}

// rowCellOrder returns the lower and upper cell of a length-2 obstruction
// spanning two cells of a row: an increasing obstruction forces the right
// cell below the left one.
func rowCellOrder(ob gridded.GriddedPerm) (small, big gridded.Cell) {
	c1, c2 := ob.Position(0), ob.Position(1)
	if ob.Value(0) == 0 {
		return c2, c1
	}
	return c1, c2
}

// colCellOrder returns the left and right cell of a length-2 obstruction
// spanning two cells of a column: the second point's cell must come first.
func colCellOrder(ob gridded.GriddedPerm) (small, big gridded.Cell) {
	return ob.Position(1), ob.Position(0)
}

func (s *Single) matrices() ([][]int, [][]int) {
	if s.rowMatrix != nil {
		return s.rowMatrix, s.colMatrix
	}
	rowM, colM := s.basicMatrix(true), s.basicMatrix(false)
	for _, ob := range s.tiling.Obstructions() {
		if ob.Len() != 2 {
			continue
		}
		if _, single := ob.IsSingleCell(); single {
			continue
		}
		c1, c2 := ob.Position(0), ob.Position(1)
		m, order := rowM, rowCellOrder
		switch {
		case c1.Row == c2.Row:
		case c1.Col == c2.Col:
			m, order = colM, colCellOrder
		default:
			continue
		}
		// An obstruction touching an inactive cell cannot occur.
		small, big := order(ob)
		i, ok1 := s.cellIndex(small)
		j, ok2 := s.cellIndex(big)
		if ok1 && ok2 {
			m[i][j] = 1
		}
	}
	s.rowMatrix, s.colMatrix = rowM, colM
	return rowM, colM
}

func (s *Single) ineqGraph(m [][]int) *graph.Graph[gridded.Cell] {
	g, err := graph.New(s.cells, m, gridded.Cell.Compare)
	if err != nil {
		// The matrices are built square over the active cells.
		panic(err)
	}
	return g
}

// RowIneqGraph returns the graph of forced vertical orders between cells.
func (s *Single) RowIneqGraph() *graph.Graph[gridded.Cell] {
	m, _ := s.matrices()
	return s.ineqGraph(m)
}

// ColIneqGraph returns the graph of forced horizontal orders between cells.
func (s *Single) ColIneqGraph() *graph.Graph[gridded.Cell] {
	_, m := s.matrices()
	return s.ineqGraph(m)
}

// MaxRowOrder returns a finest grouping of the active cells into rows,
// bottom first.
func (s *Single) MaxRowOrder() [][]gridded.Cell {
	if s.rowOrder == nil {
		s.rowOrder = graph.MaximalOrder(s.RowIneqGraph())
	}
	return s.rowOrder
}

// MaxColOrder returns a finest grouping of the active cells into columns,
// left first.
func (s *Single) MaxColOrder() [][]gridded.Cell {
	if s.colOrder == nil {
		s.colOrder = graph.MaximalOrder(s.ColIneqGraph())
	}
	return s.colOrder
}

// Separable reports whether the finest orders have more rows or columns
// than the tiling.
func (s *Single) Separable() bool {
	cols, rows := s.tiling.Dimensions()
	return len(s.MaxRowOrder()) > rows || len(s.MaxColOrder()) > cols
}

// CellMap returns where each active cell goes in the separated grid.
func (s *Single) CellMap() map[gridded.Cell]gridded.Cell {
	return cellMap(s.MaxRowOrder(), s.MaxColOrder())
}

// cellMap sends each cell to (index of its column group, index of its row
// group).
func cellMap(rowOrder, colOrder [][]gridded.Cell) map[gridded.Cell]gridded.Cell {
	m := make(map[gridded.Cell]gridded.Cell)
	for i, group := range rowOrder {
		for _, c := range group {
			m[c] = gridded.Cell{Row: i}
		}
	}
	for i, group := range colOrder {
		for _, c := range group {
			nc := m[c]
			nc.Col = i
			m[c] = nc
		}
	}
	return m
}

// SeparatedTiling returns the tiling regridded along the finest orders.
func (s *Single) SeparatedTiling() *tiling.Tiling {
	return s.separate(s.MaxRowOrder(), s.MaxColOrder())
}

// AllSeparatedTilings yields the distinct separations for every pair of
// row and column orders, finest first. With onlyMax only the finest orders
// are used.
func (s *Single) AllSeparatedTilings(onlyMax bool) iter.Seq[*tiling.Tiling] {
	return func(yield func(*tiling.Tiling) bool) {
		var colOrders [][][]gridded.Cell
		for o := range graph.AllOrders(s.ColIneqGraph(), onlyMax) {
			colOrders = append(colOrders, o)
		}
		seen := make(map[string]bool)
		for rowOrder := range graph.AllOrders(s.RowIneqGraph(), onlyMax) {
			for _, colOrder := range colOrders {
				t := s.separate(rowOrder, colOrder)
				if seen[t.Key()] {
					continue
				}
				seen[t.Key()] = true
				if !yield(t) {
					return
				}
			}
		}
	}
}

// separate maps every non-point obstruction and every requirement through
// the cell map of the orders. Obstructions that become contradictory can no
// longer occur and are dropped.
func (s *Single) separate(rowOrder, colOrder [][]gridded.Cell) *tiling.Tiling {
	m := cellMap(rowOrder, colOrder)
	mapped := func(g gridded.GriddedPerm) (gridded.GriddedPerm, bool) {
		for _, c := range g.Cells() {
			if _, ok := m[c]; !ok {
				return g, false
			}
		}
		return g.Minimize(func(c gridded.Cell) gridded.Cell { return m[c] }), true
	}

	var obs []gridded.GriddedPerm
	for _, ob := range s.tiling.Obstructions() {
		if _, point := ob.IsPoint(); point {
			continue
		}
		if g, ok := mapped(ob); ok && !g.Contradictory() {
			obs = append(obs, g)
		}
	}
	var reqs [][]gridded.GriddedPerm
	for _, list := range s.tiling.Requirements() {
		var out []gridded.GriddedPerm
		for _, r := range list {
			if g, ok := mapped(r); ok {
				out = append(out, g)
			}
		}
		reqs = append(reqs, out)
	}
	return tiling.New(obs, reqs)
}

// Rule returns the inferral rule for the separation, or nil when the tiling
// is not separable.
func (s *Single) Rule() *rule.Rule {
	if !s.Separable() {
		return nil
	}
	return rule.NewInferral(FormalStep, s.tiling, s.SeparatedTiling()).WithCellMap(s.CellMap())
}
