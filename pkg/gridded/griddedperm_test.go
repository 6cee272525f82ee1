package gridded

import (
	"slices"
	"testing"

	"github.com/matzehuels/tilings/pkg/errors"
)

func c(col, row int) Cell { return Cell{Col: col, Row: row} }

// 1032 with two points in (0, 0) and the others in column 2.
func simpleOb() GriddedPerm {
	return MustNew([]int{1, 0, 3, 2}, c(0, 0), c(0, 0), c(2, 2), c(2, 1))
}

func singleCellOb() GriddedPerm {
	g, _ := SingleCell([]int{1, 0, 3, 2}, c(2, 2))
	return g
}

func typicalOb() GriddedPerm {
	return MustNew([]int{1, 0, 2, 4, 3}, c(0, 0), c(0, 0), c(1, 0), c(1, 1), c(1, 1))
}

func isolatedOb() GriddedPerm {
	return MustNew([]int{0, 1, 2}, c(0, 0), c(1, 1), c(2, 2))
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		patt []int
		pos  []Cell
		code errors.Code
	}{
		{"valid", []int{0, 1}, []Cell{c(0, 0), c(1, 1)}, ""},
		{"empty", []int{}, nil, ""},
		{"bad pattern", []int{0, 2}, []Cell{c(0, 0), c(0, 0)}, errors.ErrCodeInvalidPattern},
		{"too few cells", []int{0, 1}, []Cell{c(0, 0)}, errors.ErrCodeLengthMismatch},
		{"too many cells", []int{0}, []Cell{c(0, 0), c(0, 0)}, errors.ErrCodeLengthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.patt, tt.pos)
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("New() code = %q, want %q (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestOccupies(t *testing.T) {
	g := simpleOb()
	for _, cell := range []Cell{c(0, 0), c(2, 1), c(2, 2)} {
		if !g.Occupies(cell) {
			t.Errorf("Occupies(%v) = false, want true", cell)
		}
	}
	for _, cell := range []Cell{c(0, 1), c(3, 1), c(2, 0)} {
		if g.Occupies(cell) {
			t.Errorf("Occupies(%v) = true, want false", cell)
		}
	}
}

func TestContradictory(t *testing.T) {
	tests := []struct {
		name string
		g    GriddedPerm
		want bool
	}{
		{"consistent", MustNew([]int{0, 2, 1}, c(0, 0), c(1, 1), c(1, 0)), false},
		{"rising pair moves down", MustNew([]int{0, 1}, c(0, 1), c(0, 0)), true},
		{"falling pair moves up", MustNew([]int{1, 0}, c(0, 0), c(1, 1)), true},
		{"column decreases", MustNew([]int{1, 0}, c(1, 0), c(0, 0)), true},
		{"empty", Empty(), false},
	}

	for _, tt := range tests {
		if got := tt.g.Contradictory(); got != tt.want {
			t.Errorf("%s: Contradictory() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func collect(g, other GriddedPerm) [][]int {
	var out [][]int
	for occ := range g.Occurrences(other) {
		out = append(out, occ)
	}
	return out
}

func TestOccurrences(t *testing.T) {
	text := simpleOb()
	tests := []struct {
		g    GriddedPerm
		want [][]int
	}{
		{MustNew([]int{0, 2, 1}, c(0, 0), c(2, 2), c(2, 1)), [][]int{{0, 2, 3}, {1, 2, 3}}},
		{MustNew([]int{1, 0, 2}, c(0, 0), c(0, 0), c(2, 1)), [][]int{{0, 1, 3}}},
		{MustNew([]int{1, 0, 2}, c(0, 0), c(0, 0), c(2, 2)), [][]int{{0, 1, 2}}},
		{MustNew([]int{0, 1, 2}, c(0, 0), c(2, 2), c(2, 1)), nil},
		{MustNew([]int{1, 0, 2}, c(0, 0), c(2, 2), c(2, 2)), nil},
	}

	for _, tt := range tests {
		got := collect(tt.g, text)
		if !slices.EqualFunc(got, tt.want, slices.Equal[[]int]) {
			t.Errorf("%v occurrences = %v, want %v", tt.g, got, tt.want)
		}
		if tt.g.OccursIn(text) != (len(tt.want) > 0) {
			t.Errorf("%v OccursIn = %v", tt.g, !(len(tt.want) > 0))
		}
	}

	if !text.Contains(Empty()) {
		t.Error("every gridded perm contains the empty one")
	}
	if !text.Avoids(Point(c(1, 1))) {
		t.Error("simple ob should avoid a point in (1, 1)")
	}
}

func TestRemoveCells(t *testing.T) {
	g := simpleOb()
	tests := []struct {
		cells []Cell
		want  GriddedPerm
	}{
		{[]Cell{c(0, 0)}, MustNew([]int{1, 0}, c(2, 2), c(2, 1))},
		{[]Cell{c(0, 0), c(2, 2)}, MustNew([]int{0}, c(2, 1))},
		{[]Cell{c(0, 1), c(1, 2)}, g},
	}

	for _, tt := range tests {
		if got := g.RemoveCells(tt.cells); !got.Equal(tt.want) {
			t.Errorf("RemoveCells(%v) = %v, want %v", tt.cells, got, tt.want)
		}
	}
}

func TestPointsInCell(t *testing.T) {
	g := simpleOb()
	if got := g.PointsInCell(c(0, 0)); !slices.Equal(got, []int{0, 1}) {
		t.Errorf("PointsInCell((0, 0)) = %v, want [0 1]", got)
	}
	if got := g.PointsInCell(c(0, 1)); len(got) != 0 {
		t.Errorf("PointsInCell((0, 1)) = %v, want []", got)
	}
}

func TestIsolated(t *testing.T) {
	if got := simpleOb().IsolatedCells(); len(got) != 0 {
		t.Errorf("simple ob isolated cells = %v, want none", got)
	}
	want := []Cell{c(0, 0), c(1, 1), c(2, 2)}
	if got := isolatedOb().IsolatedCells(); !slices.Equal(got, want) {
		t.Errorf("isolated ob isolated cells = %v, want %v", got, want)
	}
	if !isolatedOb().IsIsolated([]int{1}) {
		t.Error("middle point of isolated ob should be isolated")
	}
	if simpleOb().IsIsolated([]int{0}) {
		t.Error("point sharing a cell is not isolated")
	}
}

func TestShapeQueries(t *testing.T) {
	if _, ok := typicalOb().IsPoint(); ok {
		t.Error("typical ob is not a point")
	}
	if cell, ok := Point(c(3, 2)).IsPoint(); !ok || cell != c(3, 2) {
		t.Errorf("IsPoint = %v, %v, want (3, 2), true", cell, ok)
	}
	if _, ok := simpleOb().IsSingleCell(); ok {
		t.Error("simple ob is not single cell")
	}
	if cell, ok := singleCellOb().IsSingleCell(); !ok || cell != c(2, 2) {
		t.Errorf("IsSingleCell = %v, %v, want (2, 2), true", cell, ok)
	}
	if !typicalOb().IsInterleaving() {
		t.Error("typical ob shares column 1 across two cells")
	}
	if isolatedOb().IsInterleaving() {
		t.Error("isolated ob is not interleaving")
	}
	if !Empty().IsEmpty() || simpleOb().IsEmpty() {
		t.Error("IsEmpty mismatch")
	}
}

func TestAllSubperms(t *testing.T) {
	g := MustNew([]int{0, 1}, c(0, 0), c(1, 1))
	got := g.AllSubperms()
	want := []GriddedPerm{Point(c(0, 0)), Point(c(1, 1))}
	if !slices.EqualFunc(got, want, GriddedPerm.Equal) {
		t.Errorf("AllSubperms = %v, want %v", got, want)
	}

	// two points of the same cell give the same subperm once
	same, _ := SingleCell([]int{0, 1}, c(0, 0))
	if n := len(same.AllSubperms()); n != 1 {
		t.Errorf("single cell 01 has %d distinct subperms, want 1", n)
	}
}

func TestCompareAndSort(t *testing.T) {
	a := MustNew([]int{0}, c(0, 0))
	b := MustNew([]int{0}, c(1, 0))
	d := MustNew([]int{0, 1}, c(0, 0), c(0, 0))
	got := SortUnique([]GriddedPerm{d, b, a, b})
	want := []GriddedPerm{a, b, d}
	if !slices.EqualFunc(got, want, GriddedPerm.Equal) {
		t.Errorf("SortUnique = %v, want %v", got, want)
	}
	if a.Key() == b.Key() {
		t.Error("distinct gridded perms must have distinct keys")
	}
}

func TestMinimize(t *testing.T) {
	g := MustNew([]int{0, 1}, c(0, 0), c(2, 2))
	got := g.Minimize(func(cell Cell) Cell { return Cell{Col: cell.Col / 2, Row: cell.Row / 2} })
	want := MustNew([]int{0, 1}, c(0, 0), c(1, 1))
	if !got.Equal(want) {
		t.Errorf("Minimize = %v, want %v", got, want)
	}
}

func TestString(t *testing.T) {
	got := MustNew([]int{0, 2, 1}, c(0, 0), c(1, 1), c(1, 0)).String()
	want := "021: (0, 0), (1, 1), (1, 0)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseCellAndDirection(t *testing.T) {
	cell, err := ParseCell("(2, 3)")
	if err != nil || cell != c(2, 3) {
		t.Errorf("ParseCell = %v, %v, want (2, 3)", cell, err)
	}
	if _, err := ParseCell("2"); err == nil {
		t.Error("ParseCell(\"2\") should fail")
	}

	d, err := ParseDirection("N")
	if err != nil || d != North {
		t.Errorf("ParseDirection(N) = %v, %v", d, err)
	}
	if _, err := ParseDirection("up"); !errors.Is(err, errors.ErrCodeInvalidDirection) {
		t.Errorf("ParseDirection(up) err = %v, want INVALID_DIRECTION", err)
	}
	if Direction(7).Valid() {
		t.Error("Direction(7) should not be valid")
	}
}
