package gridded

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/tilings/pkg/errors"
)

func everyCellOb() GriddedPerm {
	return MustNew([]int{0, 3, 6, 1, 4, 7, 2, 5, 8},
		c(0, 0), c(0, 1), c(0, 2), c(1, 0), c(1, 1), c(1, 2), c(2, 0), c(2, 1), c(2, 2))
}

func TestCompressRoundTrip(t *testing.T) {
	obs := []GriddedPerm{simpleOb(), singleCellOb(), everyCellOb(), typicalOb(), isolatedOb(), Empty()}
	dict := NewPatternDict()

	for _, g := range obs {
		got, err := Decompress(g.Compress(nil), nil)
		if err != nil {
			t.Fatalf("Decompress(%v): %v", g, err)
		}
		if !got.Equal(g) {
			t.Errorf("rank round trip = %v, want %v", got, g)
		}

		got, err = Decompress(g.Compress(dict), dict)
		if err != nil {
			t.Fatalf("Decompress(%v) with dict: %v", g, err)
		}
		if !got.Equal(g) {
			t.Errorf("dict round trip = %v, want %v", got, g)
		}
	}

	// simple and single cell share the pattern 1032
	if dict.Len() != 5 {
		t.Errorf("dict has %d patterns, want 5", dict.Len())
	}
}

func TestCompressLayout(t *testing.T) {
	g := MustNew([]int{1, 0}, c(0, 1), c(2, 0))
	got := g.Compress(nil)
	want := []int{3, 0, 1, 2, 0}
	if len(got) != len(want) {
		t.Fatalf("Compress = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Compress = %v, want %v", got, want)
		}
	}
}

func TestDecompressErrors(t *testing.T) {
	if _, err := Decompress([]int{2, 0}, nil); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("even length err = %v", err)
	}
	if _, err := Decompress([]int{7, 0, 0}, NewPatternDict()); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("unknown id err = %v", err)
	}
	// rank 2 is 01, which needs four coordinates
	if _, err := Decompress([]int{2, 0, 0}, nil); !errors.Is(err, errors.ErrCodeLengthMismatch) {
		t.Errorf("short positions err = %v", err)
	}
}

func TestJSON(t *testing.T) {
	g := MustNew([]int{0, 2, 1}, c(0, 0), c(1, 1), c(1, 0))
	data, err := json.Marshal(g)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"patt":[0,2,1],"pos":[[0,0],[1,1],[1,0]]}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var back GriddedPerm
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(g) {
		t.Errorf("Unmarshal = %v, want %v", back, g)
	}

	if data, _ := json.Marshal(Empty()); string(data) != `{"patt":[],"pos":[]}` {
		t.Errorf("empty Marshal = %s", data)
	}

	bad := []string{
		`{"patt":[0,0],"pos":[[0,0],[0,0]]}`,
		`{"patt":[0],"pos":[]}`,
		`{"patt":[0],"pos":[[0]]}`,
	}
	for _, s := range bad {
		if err := json.Unmarshal([]byte(s), &back); err == nil {
			t.Errorf("Unmarshal(%s) should fail", s)
		}
	}
}

func TestSymmetries(t *testing.T) {
	g := typicalOb()

	if got := g.Reverse(Identity).Reverse(Identity); !got.Equal(g) {
		t.Errorf("reverse twice = %v, want %v", got, g)
	}
	if got := g.Inverse(Identity).Inverse(Identity); !got.Equal(g) {
		t.Errorf("inverse twice = %v, want %v", got, g)
	}
	if got := g.Complement(Identity).Complement(Identity); !got.Equal(g) {
		t.Errorf("complement twice = %v, want %v", got, g)
	}
	if got := g.Antidiagonal(Identity).Antidiagonal(Identity); !got.Equal(g) {
		t.Errorf("antidiagonal twice = %v, want %v", got, g)
	}
	if got := g.Rotate180(Identity).Rotate180(Identity); !got.Equal(g) {
		t.Errorf("rotate180 twice = %v, want %v", got, g)
	}
	r := g
	for range 4 {
		r = r.Rotate90(Identity)
	}
	if !r.Equal(g) {
		t.Errorf("rotate90 four times = %v, want %v", r, g)
	}
	if got := g.Rotate90(Identity).Rotate270(Identity); !got.Equal(g) {
		t.Errorf("rotate90 then rotate270 = %v, want %v", got, g)
	}
}

func TestSymmetriesOnGrid(t *testing.T) {
	// typical ob lives on a 2x2 grid
	const cols = 2
	reverse := func(cell Cell) Cell { return Cell{Col: cols - 1 - cell.Col, Row: cell.Row} }
	rot90 := func(cell Cell) Cell { return Cell{Col: cell.Row, Row: cols - 1 - cell.Col} }

	g := typicalOb()
	rev := g.Reverse(reverse)
	if rev.Contradictory() {
		t.Errorf("reverse %v should stay consistent", rev)
	}
	want := MustNew([]int{3, 4, 2, 0, 1}, c(0, 1), c(0, 1), c(0, 0), c(1, 0), c(1, 0))
	if !rev.Equal(want) {
		t.Errorf("Reverse = %v, want %v", rev, want)
	}

	r := g
	for range 4 {
		r = r.Rotate90(rot90)
		if r.Contradictory() {
			t.Fatalf("rotation %v should stay consistent", r)
		}
	}
	if !r.Equal(g) {
		t.Errorf("rotate90 four times on grid = %v, want %v", r, g)
	}
}
