// Package separation refines the rows and columns of a tiling.
//
// Cells sharing a row are often forced into a fixed vertical order by the
// length-2 obstructions between them: with 01 forbidden across (0, 0) and
// (1, 0), every point of (1, 0) lies below every point of (0, 0), so the row
// can be split in two. The same holds for columns. [Single] performs one
// such refinement by building an inequality [graph.Graph] per axis over the
// active cells and reading off its finest vertex order.
//
// A single refinement can expose new inequalities, so [New] repeats it until
// nothing changes, up to [DefaultMaxPasses] times, and composes the cell
// maps of every pass.
package separation
