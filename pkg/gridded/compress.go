package gridded

import (
	"github.com/matzehuels/tilings/pkg/errors"
	"github.com/matzehuels/tilings/pkg/perm"
)

// PatternDict is a bidirectional table between patterns and small integer
// ids, used to compress collections of gridded permutations that share few
// distinct patterns.
type PatternDict struct {
	ids   map[string]int
	patts []perm.Perm
}

// NewPatternDict returns an empty dictionary.
func NewPatternDict() *PatternDict {
	return &PatternDict{ids: make(map[string]int)}
}

// ID returns the id of p, assigning the next free id if p is new.
func (d *PatternDict) ID(p perm.Perm) int {
	k := p.String()
	if id, ok := d.ids[k]; ok {
		return id
	}
	id := len(d.patts)
	d.ids[k] = id
	d.patts = append(d.patts, p.Clone())
	return id
}

// Pattern returns the pattern stored under id.
func (d *PatternDict) Pattern(id int) (perm.Perm, bool) {
	if id < 0 || id >= len(d.patts) {
		return nil, false
	}
	return d.patts[id].Clone(), true
}

// Len returns the number of stored patterns.
func (d *PatternDict) Len() int { return len(d.patts) }

// Compress encodes g as [patternID, col0, row0, col1, row1, ...]. The
// pattern id comes from dict when it is non-nil and from [perm.Rank]
// otherwise.
func (g GriddedPerm) Compress(dict *PatternDict) []int {
	out := make([]int, 1, 1+2*len(g.pos))
	if dict != nil {
		out[0] = dict.ID(g.patt)
	} else {
		out[0] = perm.Rank(g.patt)
	}
	for _, c := range g.pos {
		out = append(out, c.Col, c.Row)
	}
	return out
}

// Decompress inverts [GriddedPerm.Compress] given the same dict (or nil).
func Decompress(data []int, dict *PatternDict) (GriddedPerm, error) {
	if len(data) == 0 || len(data)%2 == 0 {
		return GriddedPerm{}, errors.New(errors.ErrCodeInvalidInput,
			"compressed gridded perm must have odd length, got %d", len(data))
	}
	var p perm.Perm
	if dict != nil {
		var ok bool
		if p, ok = dict.Pattern(data[0]); !ok {
			return GriddedPerm{}, errors.New(errors.ErrCodeNotFound, "no pattern with id %d", data[0])
		}
	} else {
		var err error
		if p, err = perm.Unrank(data[0]); err != nil {
			return GriddedPerm{}, err
		}
	}
	pos := make([]Cell, 0, len(data)/2)
	for i := 1; i < len(data); i += 2 {
		pos = append(pos, Cell{Col: data[i], Row: data[i+1]})
	}
	return New(p, pos)
}
