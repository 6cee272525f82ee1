package factor

import (
	"slices"
	"testing"

	"github.com/matzehuels/tilings/pkg/gridded"
	"github.com/matzehuels/tilings/pkg/rule"
	"github.com/matzehuels/tilings/pkg/tiling"
)

type gp = gridded.GriddedPerm

func c(col, row int) gridded.Cell { return gridded.Cell{Col: col, Row: row} }

func av012(cell gridded.Cell) gp { return gridded.MustNew([]int{0, 1, 2}, cell, cell, cell) }
func inc(cell gridded.Cell) gp  { return gridded.MustNew([]int{0, 1}, cell, cell) }

func equalComponents(a, b [][]gridded.Cell) bool {
	return slices.EqualFunc(a, b, slices.Equal[[]gridded.Cell])
}

func TestComponents(t *testing.T) {
	diagonal := []gp{av012(c(0, 0)), av012(c(1, 1))}
	row := []gp{av012(c(0, 0)), av012(c(1, 0))}

	tests := []struct {
		name string
		obs  []gp
		reqs [][]gp
		mode Mode
		want [][]gridded.Cell
	}{
		{
			name: "disjoint cells",
			obs:  diagonal,
			want: [][]gridded.Cell{{c(0, 0)}, {c(1, 1)}},
		},
		{
			name: "shared obstruction",
			obs:  append(slices.Clone(diagonal), gridded.MustNew([]int{0, 1}, c(0, 0), c(1, 1))),
			want: [][]gridded.Cell{{c(0, 0), c(1, 1)}},
		},
		{
			name: "shared requirement list",
			obs:  diagonal,
			reqs: [][]gp{{gridded.Point(c(0, 0)), gridded.Point(c(1, 1))}},
			want: [][]gridded.Cell{{c(0, 0), c(1, 1)}},
		},
		{
			name: "separate requirement lists",
			obs:  diagonal,
			reqs: [][]gp{{gridded.Point(c(0, 0))}, {gridded.Point(c(1, 1))}},
			want: [][]gridded.Cell{{c(0, 0)}, {c(1, 1)}},
		},
		{
			name: "same row",
			obs:  row,
			want: [][]gridded.Cell{{c(0, 0), c(1, 0)}},
		},
		{
			name: "same row with interleaving",
			obs:  row,
			mode: ModeInterleaving,
			want: [][]gridded.Cell{{c(0, 0)}, {c(1, 0)}},
		},
		{
			name: "same row, neither monotone",
			obs:  row,
			mode: ModeMonotoneInterleaving,
			want: [][]gridded.Cell{{c(0, 0), c(1, 0)}},
		},
		{
			name: "same row, one monotone",
			obs:  []gp{inc(c(0, 0)), av012(c(1, 0))},
			mode: ModeMonotoneInterleaving,
			want: [][]gridded.Cell{{c(0, 0)}, {c(1, 0)}},
		},
		{
			name: "same column, one monotone, no interleaving",
			obs:  []gp{inc(c(0, 0)), av012(c(0, 1))},
			want: [][]gridded.Cell{{c(0, 0), c(0, 1)}},
		},
		{
			name: "point tiling",
			obs:  []gp{gridded.Point(c(0, 0))},
			want: [][]gridded.Cell{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tiling.New(tt.obs, tt.reqs), tt.mode)
			if got := f.Components(); !equalComponents(got, tt.want) {
				t.Errorf("Components() = %v, want %v", got, tt.want)
			}
			if got, want := f.Factorable(), len(tt.want) > 1; got != want {
				t.Errorf("Factorable() = %v, want %v", got, want)
			}
		})
	}
}

func TestFactors(t *testing.T) {
	tl := tiling.New(
		[]gp{av012(c(0, 0)), av012(c(1, 1)), inc(c(2, 2))},
		[][]gp{{gridded.Point(c(1, 1))}},
	)
	got := New(tl, ModeNone).Factors()
	want := []*tiling.Tiling{
		tiling.New([]gp{av012(c(0, 0))}, nil),
		tiling.New([]gp{av012(c(0, 0))}, [][]gp{{gridded.Point(c(0, 0))}}),
		tiling.New([]gp{inc(c(0, 0))}, nil),
	}
	if len(got) != len(want) {
		t.Fatalf("Factors() returned %d tilings, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("Factors()[%d] =\n%v\nwant\n%v", i, got[i], want[i])
		}
	}
}

func TestRule(t *testing.T) {
	tl := tiling.New([]gp{inc(c(0, 0)), av012(c(1, 0)), av012(c(2, 1))}, nil)

	tests := []struct {
		mode     Mode
		children int
		step     string
		cons     rule.Constructor
	}{
		{ModeNone, 2, "The factor of the tiling.", rule.ConstructorCartesian},
		{ModeMonotoneInterleaving, 3, "The factor with monotone interleaving of the tiling.", rule.ConstructorOther},
		{ModeInterleaving, 3, "The factor with interleaving of the tiling.", rule.ConstructorOther},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			r := New(tl, tt.mode).Rule(true)
			if r == nil {
				t.Fatal("Rule() = nil")
			}
			if len(r.Children) != tt.children {
				t.Errorf("len(Children) = %d, want %d", len(r.Children), tt.children)
			}
			if r.FormalStep != tt.step || r.Constructor != tt.cons {
				t.Errorf("Rule() = (%q, %q), want (%q, %q)", r.FormalStep, r.Constructor, tt.step, tt.cons)
			}
			if !r.IgnoreParent || !r.Workable[0] || r.Inferable[0] {
				t.Errorf("Rule() flags = %+v", r)
			}
		})
	}

	if r := New(tiling.New([]gp{av012(c(0, 0))}, nil), ModeNone).Rule(true); r != nil {
		t.Errorf("Rule() of a single factor = %v, want nil", r)
	}
	if r := New(tl, ModeNone).Rule(false); r.IgnoreParent || r.Workable[1] {
		t.Errorf("Rule(false) flags = %+v", r)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeNone, ModeMonotoneInterleaving, ModeInterleaving} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMode("product"); err == nil {
		t.Error("ParseMode(product) succeeded")
	}
}
