package gridded

import (
	"slices"

	"github.com/matzehuels/tilings/pkg/perm"
)

// CellTransform maps a cell of the original grid to the symmetric grid.
type CellTransform func(Cell) Cell

// Identity leaves cells unchanged.
func Identity(c Cell) Cell { return c }

func mapCells(transf CellTransform, pos []Cell) []Cell {
	out := make([]Cell, len(pos))
	for i, c := range pos {
		out[i] = transf(c)
	}
	return out
}

// Reverse flips g over the vertical axis.
func (g GriddedPerm) Reverse(transf CellTransform) GriddedPerm {
	pos := mapCells(transf, g.pos)
	slices.Reverse(pos)
	return build(g.patt.Reverse(), pos)
}

// Complement flips g over the horizontal axis.
func (g GriddedPerm) Complement(transf CellTransform) GriddedPerm {
	return build(g.patt.Complement(), mapCells(transf, g.pos))
}

// Inverse flips g over the main diagonal.
func (g GriddedPerm) Inverse(transf CellTransform) GriddedPerm {
	inv := g.patt.Inverse()
	return build(inv, mapCells(transf, perm.Apply(inv, g.pos)))
}

// Antidiagonal flips g over the anti-diagonal.
func (g GriddedPerm) Antidiagonal(transf CellTransform) GriddedPerm {
	return build(g.patt.FlipAntidiagonal(), mapCells(transf, perm.Apply(g.patt.RotateLeft(), g.pos)))
}

// Rotate90 turns g a quarter turn clockwise.
func (g GriddedPerm) Rotate90(transf CellTransform) GriddedPerm {
	return build(g.patt.Rotate(), mapCells(transf, perm.Apply(g.patt.Inverse(), g.pos)))
}

// Rotate180 turns g half way round.
func (g GriddedPerm) Rotate180(transf CellTransform) GriddedPerm {
	pos := mapCells(transf, g.pos)
	slices.Reverse(pos)
	return build(g.patt.Rotate180(), pos)
}

// Rotate270 turns g a quarter turn counter-clockwise.
func (g GriddedPerm) Rotate270(transf CellTransform) GriddedPerm {
	rotated := g.patt.RotateLeft()
	return build(rotated, mapCells(transf, perm.Apply(rotated, g.pos)))
}
