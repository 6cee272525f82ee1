package gridded

import (
	"iter"
	"slices"

	"github.com/matzehuels/tilings/pkg/errors"
)

// ForcedPointIndex returns the index of the point in cell that is extremal
// towards dir: the rightmost for East, the leftmost for West, the highest
// for North and the lowest for South. ok is false when cell is empty.
func (g GriddedPerm) ForcedPointIndex(cell Cell, dir Direction) (index int, ok bool, err error) {
	if !dir.Compass() {
		return 0, false, invalidDirection(dir)
	}
	points := g.PointsInCell(cell)
	if len(points) == 0 {
		return 0, false, nil
	}
	switch dir {
	case East:
		return points[len(points)-1], true, nil
	case West:
		return points[0], true, nil
	case North:
		return slices.MaxFunc(points, func(a, b int) int { return g.patt[a] - g.patt[b] }), true, nil
	default:
		return slices.MinFunc(points, func(a, b int) int { return g.patt[a] - g.patt[b] }), true, nil
	}
}

// BoundingBox returns the inclusive index and value ranges at which a new
// point could be inserted into cell. When the cell's column holds points the
// index range spans them; otherwise it lies between the nearest columns to
// either side. Values are derived from the cell's row the same way.
func (g GriddedPerm) BoundingBox(cell Cell) (minIndex, maxIndex, minValue, maxValue int) {
	n := len(g.patt)
	inRow, inCol := false, false
	minValue, maxValue = n, -1
	minIndex, maxIndex = n, -1
	below, above := -1, n
	left, right := -1, n
	for i, c := range g.pos {
		v := g.patt[i]
		switch {
		case c.Row == cell.Row:
			inRow = true
			minValue, maxValue = min(minValue, v), max(maxValue, v)
		case c.Row < cell.Row:
			below = max(below, v)
		default:
			above = min(above, v)
		}
		switch {
		case c.Col == cell.Col:
			inCol = true
			minIndex, maxIndex = min(minIndex, i), max(maxIndex, i)
		case c.Col < cell.Col:
			left = max(left, i)
		default:
			right = min(right, i)
		}
	}
	if inRow {
		maxValue++
	} else {
		minValue, maxValue = below+1, above
	}
	if inCol {
		maxIndex++
	} else {
		minIndex, maxIndex = left+1, right
	}
	return minIndex, maxIndex, minValue, maxValue
}

// PointTranslation returns the cell of point index after a new row and a
// new column are inserted at insert = (index, value). Points at or beyond
// the insertion move two cells right (up), making room for the new point's
// own column (row) and a copy of the split one.
func (g GriddedPerm) PointTranslation(index int, insert [2]int) Cell {
	c := g.pos[index]
	if index >= insert[0] {
		c.Col += 2
	}
	if g.patt[index] >= insert[1] {
		c.Row += 2
	}
	return c
}

// StretchGridding translates every point as if a point were inserted at
// insert = (index, value).
func (g GriddedPerm) StretchGridding(insert [2]int) GriddedPerm {
	pos := make([]Cell, len(g.pos))
	for i := range g.pos {
		pos[i] = g.PointTranslation(i, insert)
	}
	return build(g.patt, pos)
}

// removeAndStretch deletes point index and stretches the grid around it.
func (g GriddedPerm) removeAndStretch(index int) GriddedPerm {
	at := [2]int{index, g.patt[index]}
	pos := make([]Cell, 0, len(g.pos)-1)
	for i := range g.pos {
		if i != index {
			pos = append(pos, g.PointTranslation(i, at))
		}
	}
	return build(g.patt.Remove(index), pos)
}

// PlacePoint returns the gridded permutations obtained by placing a new
// point into cell, extremal towards dir, and splitting the grid around it.
//
// When g occupies cell and dir is a compass direction, the extremal point
// of g in that direction may itself be the placed point; that case yields g
// with the point removed. The remaining results stretch g around every
// position in the bounding box, tightened so the placed point stays extremal.
// With dir None every point in the cell is tried as the placed point.
//
// skipRedundant omits stretch positions adjacent to the forced point on the
// forced axis; those results contain the forced result.
func (g GriddedPerm) PlacePoint(cell Cell, dir Direction, skipRedundant bool) ([]GriddedPerm, error) {
	if !dir.Valid() {
		return nil, invalidDirection(dir)
	}
	var res []GriddedPerm
	minIndex, maxIndex, minValue, maxValue := g.BoundingBox(cell)
	forced, forcedVal := -1, -1
	if g.Occupies(cell) {
		if dir != None {
			forced, _, _ = g.ForcedPointIndex(cell, dir)
			forcedVal = g.patt[forced]
			res = append(res, g.removeAndStretch(forced))
		} else {
			for _, i := range g.PointsInCell(cell) {
				res = append(res, g.removeAndStretch(i))
			}
		}
		switch dir {
		case East:
			minIndex = forced + 1
		case North:
			minValue = forcedVal + 1
		case West:
			maxIndex = forced
		case South:
			maxValue = forcedVal
		}
	}
	skip := skipRedundant && forced >= 0
	for i := minIndex; i <= maxIndex; i++ {
		if skip && (dir == North || dir == South) && (i == forced || i == forced+1) {
			continue
		}
		for j := minValue; j <= maxValue; j++ {
			if skip && (dir == East || dir == West) && (j == forcedVal || j == forcedVal+1) {
				continue
			}
			res = append(res, g.StretchGridding([2]int{i, j}))
		}
	}
	return res, nil
}

// InsertPoint yields every gridded permutation obtained from g by inserting
// one new point into cell, at each index and value in the bounding box.
func (g GriddedPerm) InsertPoint(cell Cell) iter.Seq[GriddedPerm] {
	return func(yield func(GriddedPerm) bool) {
		minIndex, maxIndex, minValue, maxValue := g.BoundingBox(cell)
		for idx := minIndex; idx <= maxIndex; idx++ {
			for val := minValue; val <= maxValue; val++ {
				pos := slices.Insert(slices.Clone(g.pos), idx, cell)
				if !yield(build(g.patt.Insert(idx, val), pos)) {
					return
				}
			}
		}
	}
}

// PointSeparation splits the column of cell in two (West, East) or its row
// in two (North, South), with the placed point in the part named by dir, and
// returns every way the points of cell can be divided between the parts.
//
// It fails with OBSTRUCTION_SPANS_AXIS when another point lies in the same
// column (for West/East) or row (for North/South) outside cell.
func (g GriddedPerm) PointSeparation(cell Cell, dir Direction) ([]GriddedPerm, error) {
	points := g.PointsInCell(cell)
	switch dir {
	case West, East:
		for _, p := range g.pos {
			if p.Col == cell.Col && p.Row != cell.Row {
				return nil, errors.New(errors.ErrCodeSpansAxis,
					"%v occupies a cell in the same column as separation cell %v", g, cell)
			}
		}
		if len(points) == 0 {
			return []GriddedPerm{g.shift(func(i int, c Cell) bool { return c.Col >= cell.Col }, 1, 0)}, nil
		}
		lo, hi := points[0], points[len(points)-1]+1
		if dir == West {
			hi = points[0] + 1
		} else {
			lo = points[len(points)-1]
		}
		res := make([]GriddedPerm, 0, hi-lo+1)
		for k := lo; k <= hi; k++ {
			res = append(res, g.shift(func(i int, _ Cell) bool { return i >= k }, 1, 0))
		}
		return res, nil

	case North, South:
		for _, p := range g.pos {
			if p.Col != cell.Col && p.Row == cell.Row {
				return nil, errors.New(errors.ErrCodeSpansAxis,
					"%v occupies a cell in the same row as separation cell %v", g, cell)
			}
		}
		if len(points) == 0 {
			return []GriddedPerm{g.shift(func(i int, c Cell) bool { return c.Row >= cell.Row }, 0, 1)}, nil
		}
		vals := make([]int, len(points))
		for k, i := range points {
			vals[k] = g.patt[i]
		}
		slices.Sort(vals)
		lo, hi := vals[0], vals[len(vals)-1]+1
		if dir == South {
			hi = vals[0] + 1
		} else {
			lo = vals[len(vals)-1]
		}
		res := make([]GriddedPerm, 0, hi-lo+1)
		for k := lo; k <= hi; k++ {
			res = append(res, g.shift(func(i int, _ Cell) bool { return g.patt[i] >= k }, 0, 1))
		}
		return res, nil
	}
	return nil, invalidDirection(dir)
}

// shift moves the points selected by moved by (dc, dr).
func (g GriddedPerm) shift(moved func(i int, c Cell) bool, dc, dr int) GriddedPerm {
	pos := make([]Cell, len(g.pos))
	for i, c := range g.pos {
		if moved(i, c) {
			c.Col += dc
			c.Row += dr
		}
		pos[i] = c
	}
	return build(g.patt, pos)
}
