package tiling

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/tilings/pkg/gridded"
)

// Symbols drawn for monotone cells.
const (
	SymbolIncreasing = "/"
	SymbolDecreasing = "\\"
)

// CellLabel returns the symbol drawn for c: blank for an empty cell, a slash
// for a monotone cell, and otherwise a number shared by all cells with the
// same basis. The numbering follows the first appearance in column-major
// order.
func (t *Tiling) CellLabel(c gridded.Cell) string {
	return t.labels()[c]
}

func (t *Tiling) labels() map[gridded.Cell]string {
	out := make(map[gridded.Cell]string, len(t.active))
	ids := make(map[string]int)
	for _, c := range t.active {
		if inc, ok := t.monotone(c); ok {
			out[c] = SymbolDecreasing
			if inc {
				out[c] = SymbolIncreasing
			}
			continue
		}
		basis := strings.Join(t.CellBasis(c), ", ")
		id, ok := ids[basis]
		if !ok {
			id = len(ids) + 1
			ids[basis] = id
		}
		out[c] = fmt.Sprint(id)
	}
	return out
}

// Legend returns the basis of each numbered label, in label order.
func (t *Tiling) Legend() []string {
	labels := t.labels()
	seen := make(map[string]bool)
	var out []string
	for _, c := range t.active {
		l := labels[c]
		if l == SymbolIncreasing || l == SymbolDecreasing || seen[l] {
			continue
		}
		seen[l] = true
		basis := t.CellBasis(c)
		if len(basis) == 0 {
			out = append(out, l+": Av()")
			continue
		}
		out = append(out, fmt.Sprintf("%s: Av(%s)", l, strings.Join(basis, ", ")))
	}
	return out
}

// CrossingObstructions returns the obstructions spanning more than one cell.
func (t *Tiling) CrossingObstructions() []gridded.GriddedPerm {
	return slices.DeleteFunc(t.Obstructions(), func(ob gridded.GriddedPerm) bool {
		_, single := ob.IsSingleCell()
		return single || ob.IsEmpty()
	})
}

// String draws the grid with the highest row first, followed by the legend,
// crossing obstructions and requirement lists.
func (t *Tiling) String() string {
	if len(t.obstructions) == 1 && t.obstructions[0].IsEmpty() {
		return "empty tiling\n"
	}
	labels := t.labels()
	width := 1
	for _, l := range labels {
		width = max(width, len(l))
	}
	sep := "+" + strings.Repeat(strings.Repeat("-", width)+"+", t.cols) + "\n"

	var b strings.Builder
	b.WriteString(sep)
	for row := t.rows - 1; row >= 0; row-- {
		b.WriteByte('|')
		for col := 0; col < t.cols; col++ {
			fmt.Fprintf(&b, "%-*s|", width, labels[gridded.Cell{Col: col, Row: row}])
		}
		b.WriteByte('\n')
		b.WriteString(sep)
	}
	for _, l := range t.Legend() {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	if crossing := t.CrossingObstructions(); len(crossing) > 0 {
		b.WriteString("Crossing obstructions:\n")
		for _, ob := range crossing {
			fmt.Fprintf(&b, "%v\n", ob)
		}
	}
	for i, list := range t.requirements {
		fmt.Fprintf(&b, "Requirement %d:\n", i)
		for _, r := range list {
			fmt.Fprintf(&b, "%v\n", r)
		}
	}
	return b.String()
}
