// Package tiling implements the tiling container the structural algorithms
// read from and build: a grid of cells constrained by obstructions (gridded
// permutations that must not occur) and requirement lists (disjunctions of
// gridded permutations, at least one of which must occur).
//
// # Normalisation
//
// [New] normalises its input before anything else sees it:
//
//   - obstructions are sorted, de-duplicated and minimised, so none contains
//     another
//   - requirements containing an obstruction are dropped, and each requirement
//     list is minimised the same way
//   - an empty requirement list, or the empty obstruction, makes the tiling
//     empty
//   - cells that no obstruction or requirement mentions receive a point
//     obstruction
//   - rows and columns without active cells are removed and the mapping from
//     old to new cells is kept (see [Tiling.ForwardMap])
//
// The options [KeepEmptyRowsCols] and [SkipMinimize] switch off the last and
// the minimisation steps respectively.
//
// # Emptiness
//
// [Tiling.IsEmpty] decides whether any gridded permutation on the tiling
// avoids every obstruction and contains a requirement from every list. It
// searches breadth first from the empty permutation, growing candidates one
// point at a time inside active cells, so it is exponential in the total
// requirement length. The answer is cached on the instance.
package tiling
