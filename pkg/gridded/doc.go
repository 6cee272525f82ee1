// Package gridded implements gridded permutations: permutation patterns whose
// points are each assigned to a cell of a rectangular grid.
//
// # Overview
//
// A [GriddedPerm] pairs a [perm.Perm] with one [Cell] per point, in index
// order. Gridded permutations are immutable values; every operation returns
// new instances and equality is structural (see [GriddedPerm.Equal] and
// [GriddedPerm.Key]).
//
// A gridded permutation is contradictory when its cells cannot be realised:
// columns must not decrease left to right, and within the grid a rising pair
// of points must not move down a row (a falling pair must not move up).
//
// # Placement
//
// The geometric operations model inserting a new row and column into the
// grid around a point:
//
//   - [GriddedPerm.BoundingBox]: where a new point in a cell may go
//   - [GriddedPerm.StretchGridding]: re-grid around a new point
//   - [GriddedPerm.PlacePoint]: force an extremal point into a cell
//   - [GriddedPerm.InsertPoint]: every way to add a point to a cell
//   - [GriddedPerm.PointSeparation]: split a cell's column or row in two
//
// # Encodings
//
// Gridded permutations serialise to JSON as {"patt": [...], "pos": [[c, r], ...]}
// and compress to an integer slice [patternID, c0, r0, c1, r1, ...] where the
// pattern id is either [perm.Rank] or an index into a [PatternDict].
package gridded
