// Package factor splits a tiling into independent factors.
//
// Two active cells belong to the same factor when an obstruction or a
// requirement list touches both of them. Depending on the [Mode], cells
// sharing a row or a column are also joined:
//
//   - [ModeNone] joins every such pair, and the factors combine as a
//     cartesian product.
//   - [ModeMonotoneInterleaving] joins them only when neither cell is
//     monotone.
//   - [ModeInterleaving] never joins on geometry alone.
//
// Components are computed with a [UnionFind] over the cells of the grid.
package factor
