// Package rule describes the result of applying a strategy to a tiling: the
// parent, the children it was rewritten into, and how the children combine.
package rule

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/tilings/pkg/gridded"
	"github.com/matzehuels/tilings/pkg/tiling"
)

// Constructor names how the children of a decomposition combine.
type Constructor string

const (
	// ConstructorNone marks an inferral rule, which has a single child
	// equivalent to the parent.
	ConstructorNone Constructor = ""
	// ConstructorCartesian combines independent children as a product.
	ConstructorCartesian Constructor = "cartesian"
	// ConstructorOther is any decomposition that is not a plain product.
	ConstructorOther Constructor = "other"
)

// CellMapping records where a cell of the parent ended up in a child.
type CellMapping struct {
	From gridded.Cell `json:"from"`
	To   gridded.Cell `json:"to"`
}

// Rule is the outcome of a strategy.
type Rule struct {
	FormalStep    string           `json:"formal_step"`
	Parent        *tiling.Tiling   `json:"parent"`
	Children      []*tiling.Tiling `json:"children"`
	Constructor   Constructor      `json:"constructor,omitempty"`
	IgnoreParent  bool             `json:"ignore_parent"`
	Workable      []bool           `json:"workable"`
	PossiblyEmpty []bool           `json:"possibly_empty"`
	Inferable     []bool           `json:"inferable"`
	CellMap       []CellMapping    `json:"cell_map,omitempty"`
}

// NewInferral returns a rule replacing parent with the equivalent child.
func NewInferral(step string, parent, child *tiling.Tiling) *Rule {
	return &Rule{
		FormalStep:    step,
		Parent:        parent,
		Children:      []*tiling.Tiling{child},
		IgnoreParent:  true,
		Workable:      []bool{true},
		PossiblyEmpty: []bool{false},
		Inferable:     []bool{true},
	}
}

// NewDecomposition returns a rule splitting parent into children that
// combine through c. workable marks every child for further expansion and
// lets the parent be dropped.
func NewDecomposition(step string, parent *tiling.Tiling, children []*tiling.Tiling, c Constructor, workable bool) *Rule {
	n := len(children)
	return &Rule{
		FormalStep:    step,
		Parent:        parent,
		Children:      children,
		Constructor:   c,
		IgnoreParent:  workable,
		Workable:      repeat(workable, n),
		PossiblyEmpty: repeat(false, n),
		Inferable:     repeat(false, n),
	}
}

func repeat(v bool, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// WithCellMap attaches a cell mapping, sorted by source cell.
func (r *Rule) WithCellMap(m map[gridded.Cell]gridded.Cell) *Rule {
	r.CellMap = r.CellMap[:0]
	for _, from := range slices.SortedFunc(maps.Keys(m), gridded.Cell.Compare) {
		r.CellMap = append(r.CellMap, CellMapping{From: from, To: m[from]})
	}
	return r
}

// IsInferral reports whether r has a single child equivalent to its parent.
func (r *Rule) IsInferral() bool {
	return r.Constructor == ConstructorNone && len(r.Children) == 1
}

// String renders the formal step followed by the parent and each child.
func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(r.FormalStep)
	b.WriteString("\n")
	if r.Parent != nil {
		b.WriteString(r.Parent.String())
	}
	for i, c := range r.Children {
		if r.Constructor == ConstructorNone {
			b.WriteString("=\n")
		} else {
			fmt.Fprintf(&b, "child %d (%s):\n", i, r.Constructor)
		}
		b.WriteString(c.String())
	}
	return b.String()
}
