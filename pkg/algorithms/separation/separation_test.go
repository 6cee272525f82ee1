package separation

import (
	"maps"
	"slices"
	"testing"

	"github.com/matzehuels/tilings/pkg/errors"
	"github.com/matzehuels/tilings/pkg/gridded"
	"github.com/matzehuels/tilings/pkg/tiling"
)

type gp = gridded.GriddedPerm

func c(col, row int) gridded.Cell { return gridded.Cell{Col: col, Row: row} }

func ob(patt []int, cells ...gridded.Cell) gp { return gridded.MustNew(patt, cells...) }

func av012(cell gridded.Cell) gp { return ob([]int{0, 1, 2}, cell, cell, cell) }
func inc(cell gridded.Cell) gp  { return ob([]int{0, 1}, cell, cell) }
func pt(cell gridded.Cell) gp   { return gridded.Point(cell) }

var (
	up   = []int{0, 1}
	down = []int{1, 0}
)

func separable1() *tiling.Tiling {
	return tiling.New([]gp{
		av012(c(0, 0)), av012(c(1, 0)), av012(c(2, 0)),
		ob(up, c(0, 0), c(1, 0)),
		ob(up, c(1, 0), c(2, 0)),
		ob(up, c(0, 0), c(2, 0)),
	}, nil)
}

func separable3() *tiling.Tiling {
	return tiling.New([]gp{
		av012(c(0, 0)), av012(c(1, 0)), av012(c(2, 0)), av012(c(3, 0)),
		ob(up, c(0, 0), c(2, 0)),
		ob(up, c(0, 0), c(3, 0)),
		ob(up, c(1, 0), c(2, 0)),
		ob(up, c(1, 0), c(3, 0)),
	}, nil)
}

func separable4() *tiling.Tiling {
	return tiling.New([]gp{
		pt(c(1, 1)), pt(c(1, 2)),
		inc(c(0, 0)), inc(c(0, 1)), inc(c(0, 2)), inc(c(1, 0)),
		ob(up, c(0, 0), c(0, 1)),
		ob(up, c(0, 1), c(0, 2)),
		ob(down, c(0, 2), c(0, 0)),
		ob(up, c(0, 0), c(0, 2)),
	}, [][]gp{{pt(c(0, 1))}})
}

func notSeparable() []*tiling.Tiling {
	return []*tiling.Tiling{
		tiling.New([]gp{
			av012(c(0, 0)), av012(c(1, 0)), av012(c(2, 0)),
			ob(up, c(0, 0), c(1, 0)),
			ob(up, c(1, 0), c(2, 0)),
		}, nil),
		tiling.New([]gp{
			av012(c(0, 0)), av012(c(1, 0)), av012(c(2, 0)), av012(c(3, 0)),
			ob(up, c(0, 0), c(1, 0)),
			ob(up, c(0, 0), c(2, 0)),
			ob(up, c(1, 0), c(2, 0)),
			ob(up, c(2, 0), c(3, 0)),
		}, nil),
		tiling.New([]gp{
			av012(c(0, 0)), av012(c(1, 0)), av012(c(2, 0)), av012(c(3, 0)),
			ob(up, c(0, 0), c(2, 0)),
			ob(up, c(0, 0), c(3, 0)),
			ob(down, c(1, 0), c(2, 0)),
			ob(up, c(1, 0), c(3, 0)),
		}, nil),
		tiling.New([]gp{pt(c(0, 0))}, nil),
	}
}

// crowded is a five by five tiling with many length-2 obstructions between
// its cells.
func crowded() *tiling.Tiling {
	return tiling.New([]gp{
		pt(c(0, 0)),
		pt(c(0, 1)),
		pt(c(0, 3)),
		pt(c(1, 0)),
		pt(c(1, 2)),
		pt(c(1, 3)),
		pt(c(1, 4)),
		pt(c(2, 1)),
		pt(c(2, 3)),
		pt(c(3, 0)),
		pt(c(3, 1)),
		pt(c(3, 2)),
		pt(c(3, 4)),
		pt(c(4, 1)),
		pt(c(4, 3)),
		ob([]int{0, 1}, c(0, 2), c(0, 2)),
		ob([]int{0, 1}, c(0, 2), c(2, 2)),
		ob([]int{0, 1}, c(0, 4), c(4, 4)),
		ob([]int{0, 1}, c(1, 1), c(1, 1)),
		ob([]int{0, 1}, c(2, 0), c(2, 0)),
		ob([]int{0, 1}, c(2, 2), c(2, 2)),
		ob([]int{0, 1}, c(2, 2), c(2, 4)),
		ob([]int{0, 1}, c(2, 4), c(2, 4)),
		ob([]int{0, 1}, c(2, 4), c(4, 4)),
		ob([]int{0, 1}, c(3, 3), c(3, 3)),
		ob([]int{0, 1}, c(4, 0), c(4, 4)),
		ob([]int{0, 1}, c(4, 2), c(4, 2)),
		ob([]int{0, 1}, c(4, 2), c(4, 4)),
		ob([]int{1, 0}, c(0, 2), c(2, 2)),
		ob([]int{1, 0}, c(1, 1), c(1, 1)),
		ob([]int{1, 0}, c(2, 2), c(2, 0)),
		ob([]int{1, 0}, c(2, 2), c(2, 2)),
		ob([]int{1, 0}, c(2, 2), c(4, 2)),
		ob([]int{1, 0}, c(2, 4), c(2, 2)),
		ob([]int{1, 0}, c(2, 4), c(4, 4)),
		ob([]int{1, 0}, c(3, 3), c(3, 3)),
		ob([]int{1, 0}, c(4, 4), c(4, 2)),
		ob([]int{0, 1, 2}, c(0, 2), c(0, 4), c(0, 4)),
		ob([]int{0, 1, 2}, c(0, 2), c(0, 4), c(2, 4)),
		ob([]int{0, 1, 2}, c(0, 4), c(0, 4), c(0, 4)),
		ob([]int{0, 1, 2}, c(0, 4), c(0, 4), c(2, 4)),
		ob([]int{0, 1, 2}, c(2, 0), c(4, 0), c(4, 0)),
		ob([]int{0, 1, 2}, c(2, 0), c(4, 0), c(4, 2)),
		ob([]int{0, 1, 2}, c(4, 0), c(4, 0), c(4, 2)),
		ob([]int{0, 2, 1}, c(0, 2), c(0, 4), c(4, 4)),
		ob([]int{0, 2, 1}, c(2, 0), c(2, 2), c(4, 0)),
		ob([]int{0, 2, 1}, c(2, 0), c(4, 4), c(4, 0)),
		ob([]int{1, 0, 2}, c(2, 2), c(4, 0), c(4, 2)),
		ob([]int{1, 0, 2}, c(4, 4), c(4, 4), c(4, 4)),
		ob([]int{1, 2, 0}, c(4, 4), c(4, 4), c(4, 4)),
		ob([]int{2, 0, 1}, c(4, 4), c(4, 4), c(4, 4)),
		ob([]int{0, 2, 1, 3}, c(4, 0), c(4, 0), c(4, 0), c(4, 0)),
		ob([]int{0, 2, 3, 1}, c(4, 0), c(4, 0), c(4, 0), c(4, 0)),
		ob([]int{0, 3, 1, 2}, c(4, 0), c(4, 0), c(4, 0), c(4, 0)),
		ob([]int{0, 3, 1, 2}, c(4, 0), c(4, 2), c(4, 0), c(4, 0)),
		ob([]int{1, 2, 0, 3}, c(4, 0), c(4, 0), c(4, 0), c(4, 0)),
		ob([]int{2, 0, 1, 3}, c(2, 0), c(4, 0), c(4, 0), c(4, 0)),
		ob([]int{2, 0, 1, 3}, c(4, 0), c(4, 0), c(4, 0), c(4, 0)),
	}, [][]gp{
		{pt(c(1, 1))},
		{pt(c(2, 2))},
		{pt(c(3, 3))},
	})
}

func equalOrder(a, b [][]gridded.Cell) bool {
	return slices.EqualFunc(a, b, slices.Equal[[]gridded.Cell])
}

func TestCellOrder(t *testing.T) {
	tests := []struct {
		name       string
		ob         gp
		col        bool
		small, big gridded.Cell
	}{
		{"column increasing", ob(up, c(0, 0), c(0, 1)), true, c(0, 1), c(0, 0)},
		{"column decreasing", ob(down, c(0, 1), c(0, 0)), true, c(0, 0), c(0, 1)},
		{"row increasing", ob(up, c(0, 0), c(1, 0)), false, c(1, 0), c(0, 0)},
		{"row decreasing", ob(down, c(0, 0), c(1, 0)), false, c(0, 0), c(1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := rowCellOrder
			if tt.col {
				order = colCellOrder
			}
			small, big := order(tt.ob)
			if small != tt.small || big != tt.big {
				t.Errorf("order = (%v, %v), want (%v, %v)", small, big, tt.small, tt.big)
			}
		})
	}
}

func TestBasicMatrix(t *testing.T) {
	s := NewSingle(separable4())
	for _, rows := range []bool{true, false} {
		m := s.basicMatrix(rows)
		for i, a := range s.cells {
			for j, b := range s.cells {
				want := 0
				if (rows && a.Row < b.Row) || (!rows && a.Col < b.Col) {
					want = 1
				}
				if m[i][j] != want {
					t.Errorf("basicMatrix(%v)[%v][%v] = %d, want %d", rows, a, b, m[i][j], want)
				}
			}
		}
	}
}

func TestIneqMatrices(t *testing.T) {
	s := NewSingle(separable4())
	_, colM := s.matrices()
	extra := map[[2]gridded.Cell]bool{
		{c(0, 1), c(0, 0)}: true,
		{c(0, 2), c(0, 0)}: true,
		{c(0, 2), c(0, 1)}: true,
		{c(0, 0), c(0, 2)}: true,
	}
	for i, a := range s.cells {
		for j, b := range s.cells {
			want := 0
			if a.Col < b.Col || extra[[2]gridded.Cell{a, b}] {
				want = 1
			}
			if colM[i][j] != want {
				t.Errorf("col matrix [%v][%v] = %d, want %d", a, b, colM[i][j], want)
			}
		}
	}
	if !slices.EqualFunc(s.ColIneqGraph().Matrix(), colM, slices.Equal[[]int]) {
		t.Error("ColIneqGraph() does not use the column matrix")
	}
}

func TestAllOrders(t *testing.T) {
	one := NewSingle(tiling.New([]gp{ob(up, c(0, 0), c(1, 0))}, nil))
	if got, want := one.MaxRowOrder(), [][]gridded.Cell{{c(1, 0)}, {c(0, 0)}}; !equalOrder(got, want) {
		t.Errorf("MaxRowOrder() = %v, want %v", got, want)
	}
	if got, want := one.MaxColOrder(), [][]gridded.Cell{{c(0, 0)}, {c(1, 0)}}; !equalOrder(got, want) {
		t.Errorf("MaxColOrder() = %v, want %v", got, want)
	}

	both := NewSingle(tiling.New([]gp{ob(up, c(0, 0), c(1, 0)), ob(down, c(0, 0), c(1, 0))}, nil))
	first := both.MaxRowOrder()
	if !equalOrder(first, [][]gridded.Cell{{c(1, 0)}, {c(0, 0)}}) &&
		!equalOrder(first, [][]gridded.Cell{{c(0, 0)}, {c(1, 0)}}) {
		t.Errorf("MaxRowOrder() = %v", first)
	}
}

func TestSeparate(t *testing.T) {
	tl := tiling.New([]gp{
		ob(up, c(0, 0), c(1, 0)),
		ob([]int{2, 0, 1}, c(0, 0), c(1, 0), c(1, 0)),
		ob([]int{2, 0, 1}, c(0, 0), c(0, 0), c(0, 0)),
		ob([]int{2, 0, 1}, c(1, 0), c(1, 0), c(1, 0)),
	}, [][]gp{{pt(c(1, 0))}})
	got := NewSingle(tl).separate(
		[][]gridded.Cell{{c(1, 0)}, {c(0, 0)}},
		[][]gridded.Cell{{c(0, 0)}, {c(1, 0)}},
	)
	want := tiling.New([]gp{
		ob([]int{2, 0, 1}, c(0, 1), c(1, 0), c(1, 0)),
		ob([]int{2, 0, 1}, c(0, 1), c(0, 1), c(0, 1)),
		ob([]int{2, 0, 1}, c(1, 0), c(1, 0), c(1, 0)),
	}, [][]gp{{pt(c(1, 0))}})
	if !got.Equal(want) {
		t.Errorf("separate() =\n%v\nwant\n%v", got, want)
	}
}

func TestAllSeparatedTilings(t *testing.T) {
	tl := tiling.New([]gp{
		inc(c(0, 0)), inc(c(1, 0)),
		ob(up, c(0, 0), c(1, 0)),
		ob(down, c(0, 0), c(1, 0)),
	}, nil)
	for _, onlyMax := range []bool{true, false} {
		n := 0
		for range NewSingle(tl).AllSeparatedTilings(onlyMax) {
			n++
		}
		if n != 2 {
			t.Errorf("AllSeparatedTilings(%v) yielded %d tilings, want 2", onlyMax, n)
		}
	}
}

func TestSeparatedTiling(t *testing.T) {
	rowInc := tiling.New([]gp{inc(c(0, 0)), inc(c(1, 0)), ob(up, c(0, 0), c(1, 0))}, nil)

	tests := []struct {
		name string
		in   *tiling.Tiling
		want *tiling.Tiling
	}{
		{
			name: "two cells in a row",
			in:   rowInc,
			want: tiling.New([]gp{inc(c(0, 1)), inc(c(1, 0))}, nil),
		},
		{
			name: "three cells in a row",
			in:   separable1(),
			want: tiling.New([]gp{
				pt(c(0, 0)), pt(c(0, 1)), pt(c(1, 0)), pt(c(1, 2)), pt(c(2, 1)), pt(c(2, 2)),
				av012(c(0, 2)), av012(c(1, 1)), av012(c(2, 0)),
			}, nil),
		},
		{
			name: "pairs of cells",
			in:   separable3(),
			want: tiling.New([]gp{
				pt(c(0, 0)), pt(c(1, 0)), pt(c(2, 1)), pt(c(3, 1)),
				av012(c(0, 1)), av012(c(1, 1)), av012(c(2, 0)), av012(c(3, 0)),
			}, nil),
		},
		{
			name: "column with requirement",
			in:   separable4(),
			want: tiling.New([]gp{
				inc(c(0, 2)), inc(c(1, 1)), inc(c(2, 0)), inc(c(3, 0)),
				ob(down, c(0, 2), c(2, 0)),
			}, [][]gp{{pt(c(1, 1))}}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if !s.Separable() || s.Passes() != 1 {
				t.Errorf("Separable() = %v, Passes() = %d", s.Separable(), s.Passes())
			}
			if got := s.SeparatedTiling(); !got.Equal(tt.want) {
				t.Errorf("SeparatedTiling() =\n%v\nwant\n%v", got, tt.want)
			}
			if !NewSingle(tt.in).SeparatedTiling().Equal(tt.want) {
				t.Error("single application disagrees with the fixpoint")
			}
			if r := s.Rule(); r == nil || r.FormalStep != FormalStep || !r.Children[0].Equal(tt.want) {
				t.Errorf("Rule() = %v", r)
			}
		})
	}
}

func TestNotSeparable(t *testing.T) {
	for i, tl := range notSeparable() {
		s, err := New(tl)
		if err != nil {
			t.Fatal(err)
		}
		if s.Separable() || !s.SeparatedTiling().Equal(tl) {
			t.Errorf("tiling %d separated into\n%v", i, s.SeparatedTiling())
		}
		if s.Rule() != nil || NewSingle(tl).Rule() != nil {
			t.Errorf("tiling %d has a separation rule", i)
		}
	}
}

func TestFixpoint(t *testing.T) {
	for _, tl := range []*tiling.Tiling{separable1(), separable3(), separable4()} {
		s, err := New(tl, WithMaxPasses(3))
		if err != nil {
			t.Fatal(err)
		}
		again, err := New(s.SeparatedTiling())
		if err != nil {
			t.Fatal(err)
		}
		if again.Separable() || !again.SeparatedTiling().Equal(s.SeparatedTiling()) {
			t.Errorf("separating twice changed\n%v\ninto\n%v", s.SeparatedTiling(), again.SeparatedTiling())
		}
	}
}

func TestFixpointCrowded(t *testing.T) {
	tl := crowded()
	s, err := New(tl)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Separable() {
		t.Fatal("Separable() = false, want true")
	}
	out := s.SeparatedTiling()
	if NewSingle(out).Separable() {
		t.Errorf("separated tiling is still separable:\n%v", out)
	}
	again, err := New(out)
	if err != nil {
		t.Fatal(err)
	}
	if again.Passes() != 0 || !again.SeparatedTiling().Equal(out) {
		t.Errorf("separating again took %d passes and gave\n%v", again.Passes(), again.SeparatedTiling())
	}
	for from := range s.CellMap() {
		if !tl.IsActive(from) {
			t.Errorf("CellMap() has inactive cell %v", from)
		}
	}
}

func TestMaxPasses(t *testing.T) {
	tests := []struct {
		name       string
		maxPasses  int
		wantErr    bool
		wantPasses int
	}{
		{"zero passes", 0, true, 0},
		{"one pass", 1, false, 1},
		{"negative ignored", -1, false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(separable1(), WithMaxPasses(tt.maxPasses))
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeDiverged) {
					t.Errorf("New() error = %v, want %s", err, errors.ErrCodeDiverged)
				}
				if s != nil {
					t.Error("New() returned a separation alongside the error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if s.Passes() != tt.wantPasses {
				t.Errorf("Passes() = %d, want %d", s.Passes(), tt.wantPasses)
			}
		})
	}

	// A tiling with nothing to separate never diverges.
	for i, tl := range notSeparable() {
		if _, err := New(tl, WithMaxPasses(0)); err != nil {
			t.Errorf("tiling %d: New() error = %v", i, err)
		}
	}
}

func TestCompose(t *testing.T) {
	total := identity([]gridded.Cell{c(0, 0), c(1, 0), c(2, 0), c(3, 0)})

	// First pass: (3, 0) is not separated and (2, 0) is compacted away.
	total = compose(total,
		map[gridded.Cell]gridded.Cell{c(0, 0): c(0, 1), c(1, 0): c(1, 0), c(2, 0): c(2, 0)},
		map[gridded.Cell]gridded.Cell{c(0, 1): c(0, 1), c(1, 0): c(1, 0)},
	)
	// Second pass follows from where the first left each cell.
	total = compose(total,
		map[gridded.Cell]gridded.Cell{c(0, 1): c(0, 2), c(1, 0): c(1, 0)},
		map[gridded.Cell]gridded.Cell{c(0, 2): c(0, 1), c(1, 0): c(1, 0)},
	)

	want := map[gridded.Cell]gridded.Cell{c(0, 0): c(0, 1), c(1, 0): c(1, 0)}
	if !maps.Equal(total, want) {
		t.Errorf("compose() = %v, want %v", total, want)
	}
}

func TestInactiveCellObstruction(t *testing.T) {
	tl := tiling.New([]gp{
		pt(c(1, 0)),
		inc(c(0, 0)),
		ob(up, c(0, 0), c(1, 0)),
	}, nil, tiling.SkipMinimize(), tiling.KeepEmptyRowsCols())
	if got := tl.ActiveCells(); len(got) != 1 || got[0] != c(0, 0) {
		t.Fatalf("ActiveCells() = %v, want [(0, 0)]", got)
	}

	single := NewSingle(tl)
	if single.Separable() {
		t.Error("Separable() = true for a single active cell")
	}
	if got := single.RowIneqGraph().NumVertices(); got != 1 {
		t.Errorf("RowIneqGraph() has %d vertices, want 1", got)
	}
	if _, err := New(tl); err != nil {
		t.Errorf("New() error = %v", err)
	}
}

func TestCellMap(t *testing.T) {
	s, err := New(separable1())
	if err != nil {
		t.Fatal(err)
	}
	want := map[gridded.Cell]gridded.Cell{
		c(0, 0): c(0, 2),
		c(1, 0): c(1, 1),
		c(2, 0): c(2, 0),
	}
	got := s.CellMap()
	if len(got) != len(want) {
		t.Fatalf("CellMap() = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("CellMap()[%v] = %v, want %v", k, got[k], v)
		}
	}
	r := s.Rule()
	if len(r.CellMap) != 3 || r.CellMap[0].From != c(0, 0) || r.CellMap[0].To != c(0, 2) {
		t.Errorf("Rule().CellMap = %v", r.CellMap)
	}
}
