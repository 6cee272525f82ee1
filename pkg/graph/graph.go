package graph

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/matzehuels/tilings/pkg/errors"
)

// Edge is a directed edge between vertex indices.
type Edge struct {
	From, To int
}

// Graph is a weighted directed graph over groups of labels of type V.
// Copies made with [Graph.Clone] or [Graph.BreakCycleInAllWays] share no
// state with their source.
type Graph[V any] struct {
	labels  [][]V // each sorted by cmp
	weights []int
	matrix  [][]int
	cmp     func(a, b V) int

	reduced bool
	acyclic bool
}

// New builds a graph with one vertex per label. matrix[i][j] is the weight
// of the edge from vertex i to vertex j. It fails with INVALID_INPUT unless
// the matrix is square, matches the vertex count and has no negative
// entries. The inputs are copied.
func New[V any](vertices []V, matrix [][]int, cmp func(a, b V) int) (*Graph[V], error) {
	n := len(vertices)
	if len(matrix) != n {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"matrix has %d rows for %d vertices", len(matrix), n)
	}
	g := &Graph[V]{
		labels:  make([][]V, n),
		weights: make([]int, n),
		matrix:  make([][]int, n),
		cmp:     cmp,
	}
	for i, row := range matrix {
		if len(row) != n {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"matrix row %d has %d entries, want %d", i, len(row), n)
		}
		for j, w := range row {
			if w < 0 {
				return nil, errors.New(errors.ErrCodeInvalidInput,
					"negative weight %d on edge %d -> %d", w, i, j)
			}
		}
		g.matrix[i] = slices.Clone(row)
		g.labels[i] = []V{vertices[i]}
		g.weights[i] = 1
	}
	return g, nil
}

// NumVertices returns the number of vertices.
func (g *Graph[V]) NumVertices() int { return len(g.weights) }

// Labels returns the label group of every vertex.
func (g *Graph[V]) Labels() [][]V {
	out := make([][]V, len(g.labels))
	for i, l := range g.labels {
		out[i] = slices.Clone(l)
	}
	return out
}

// Weights returns the weight of every vertex.
func (g *Graph[V]) Weights() []int { return slices.Clone(g.weights) }

// Matrix returns a copy of the adjacency matrix.
func (g *Graph[V]) Matrix() [][]int {
	out := make([][]int, len(g.matrix))
	for i, row := range g.matrix {
		out[i] = slices.Clone(row)
	}
	return out
}

// IsReduced reports whether [Graph.Reduce] has run since the last change.
func (g *Graph[V]) IsReduced() bool { return g.reduced }

// Clone returns an independent copy of g.
func (g *Graph[V]) Clone() *Graph[V] {
	return &Graph[V]{
		labels:  g.Labels(),
		weights: g.Weights(),
		matrix:  g.Matrix(),
		cmp:     g.cmp,
		reduced: g.reduced,
		acyclic: g.acyclic,
	}
}

// Merge folds vertex v2 into v1: labels are joined, weights and matrix rows
// and columns summed, and edges at the merged vertex lighter than the
// product of their endpoint weights are removed. Indices above v2 shift down
// by one. It panics if v1 == v2 or either is out of range.
func (g *Graph[V]) Merge(v1, v2 int) {
	n := g.NumVertices()
	if v1 == v2 || v1 < 0 || v2 < 0 || v1 >= n || v2 >= n {
		panic(fmt.Sprintf("graph: cannot merge vertices %d and %d of %d", v1, v2, n))
	}
	merged := append(g.labels[v1], g.labels[v2]...)
	slices.SortFunc(merged, g.cmp)
	g.labels[v1] = merged
	g.labels = slices.Delete(g.labels, v2, v2+1)

	g.weights[v1] += g.weights[v2]
	g.weights = slices.Delete(g.weights, v2, v2+1)

	g.addMatrixRows(v1, v2)
	g.addMatrixColumns(v1, v2)
	if v1 > v2 {
		v1--
	}
	g.trimEdges(v1)
	g.reduced, g.acyclic = false, false
}

// addMatrixRows adds row r2 to row r1 and deletes r2.
func (g *Graph[V]) addMatrixRows(r1, r2 int) {
	for j, w := range g.matrix[r2] {
		g.matrix[r1][j] += w
	}
	g.matrix = slices.Delete(g.matrix, r2, r2+1)
}

// addMatrixColumns adds column c2 to column c1 and deletes c2.
func (g *Graph[V]) addMatrixColumns(c1, c2 int) {
	for i, row := range g.matrix {
		row[c1] += row[c2]
		g.matrix[i] = slices.Delete(row, c2, c2+1)
	}
}

// trimEdges removes the edges touching v whose weight is below the product
// of the weights of their endpoints.
func (g *Graph[V]) trimEdges(v int) {
	for u := range g.weights {
		limit := g.weights[v] * g.weights[u]
		g.deleteEdgeIfSmall(v, u, limit)
		g.deleteEdgeIfSmall(u, v, limit)
	}
}

func (g *Graph[V]) deleteEdgeIfSmall(from, to, limit int) {
	if g.matrix[from][to] < limit {
		g.matrix[from][to] = 0
	}
}

func (g *Graph[V]) isEdge(from, to int) bool { return g.matrix[from][to] != 0 }

// Reduce merges vertices with no edge between them, first pair in index
// order, until every pair of vertices is related. It is a no-op on a
// reduced graph.
func (g *Graph[V]) Reduce() {
	if g.reduced {
		return
	}
	for {
		u, v, ok := g.findNonEdge()
		if !ok {
			break
		}
		g.Merge(u, v)
	}
	g.reduced = true
}

func (g *Graph[V]) findNonEdge() (int, int, bool) {
	n := g.NumVertices()
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if !g.isEdge(u, v) && !g.isEdge(v, u) {
				return u, v, true
			}
		}
	}
	return 0, 0, false
}

// IsAcyclic reports whether the reduced graph has no cycle. The answer is
// cached until the next merge.
func (g *Graph[V]) IsAcyclic() (bool, error) {
	if !g.reduced {
		return false, errors.Precondition("graph must be reduced before checking for cycles")
	}
	if g.acyclic || g.NumVertices() == 0 {
		return true, nil
	}
	_, found, _ := g.FindCycle()
	return !found, nil
}

// FindCycle returns the edges of a cycle in the reduced graph. Cycles of
// length two are preferred; a reduced graph with a cycle always has one of
// length two or three. found is false, and the graph is marked acyclic, when
// there is none.
func (g *Graph[V]) FindCycle() (cycle []Edge, found bool, err error) {
	if !g.reduced {
		return nil, false, errors.Precondition("graph must be reduced before searching for cycles")
	}
	n := g.NumVertices()
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if g.isEdge(u, v) && g.isEdge(v, u) {
				return []Edge{{u, v}, {v, u}}, true, nil
			}
		}
	}
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				if cycle := g.triangle(a, b, c); cycle != nil {
					return cycle, true, nil
				}
			}
		}
	}
	g.acyclic = true
	return nil, false, nil
}

// triangle returns a 3-cycle through a, b and c, trying a->b->c->a first.
func (g *Graph[V]) triangle(a, b, c int) []Edge {
	for _, cycle := range [][]Edge{
		{{a, b}, {b, c}, {c, a}},
		{{a, c}, {c, b}, {b, a}},
	} {
		if g.isEdge(cycle[0].From, cycle[0].To) &&
			g.isEdge(cycle[1].From, cycle[1].To) &&
			g.isEdge(cycle[2].From, cycle[2].To) {
			return cycle
		}
	}
	return nil
}

// BreakCycleInAllWays yields, for each edge, an unreduced copy of g with
// that edge removed.
func (g *Graph[V]) BreakCycleInAllWays(edges []Edge) iter.Seq[*Graph[V]] {
	return func(yield func(*Graph[V]) bool) {
		for _, e := range edges {
			h := g.Clone()
			h.matrix[e.From][e.To] = 0
			h.reduced, h.acyclic = false, false
			if !yield(h) {
				return
			}
		}
	}
}

// VertexOrder returns the label groups of a reduced acyclic graph from
// first to last: vertices with the fewest missing out-edges come first,
// ties broken by label order.
func (g *Graph[V]) VertexOrder() ([][]V, error) {
	if !g.reduced {
		return nil, errors.Precondition("graph must be reduced before ordering")
	}
	if ok, _ := g.IsAcyclic(); !ok {
		return nil, errors.Precondition("graph must be acyclic to be ordered")
	}
	return g.order(), nil
}

func (g *Graph[V]) order() [][]V {
	zeros := make([]int, g.NumVertices())
	for i, row := range g.matrix {
		for _, w := range row {
			if w == 0 {
				zeros[i]++
			}
		}
	}
	idx := make([]int, len(zeros))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		if zeros[a] != zeros[b] {
			return zeros[a] - zeros[b]
		}
		return slices.CompareFunc(g.labels[a], g.labels[b], g.cmp)
	})
	out := make([][]V, len(idx))
	for i, v := range idx {
		out[i] = slices.Clone(g.labels[v])
	}
	return out
}

// Less orders graphs for the search queue: a graph with more vertices comes
// first.
func (g *Graph[V]) Less(h *Graph[V]) bool {
	return g.NumVertices() > h.NumVertices()
}

// compareLabels orders graphs with the same vertex count by their label
// groups.
func (g *Graph[V]) compareLabels(h *Graph[V]) int {
	return slices.CompareFunc(g.labels, h.labels, func(a, b []V) int {
		return slices.CompareFunc(a, b, g.cmp)
	})
}

// String lists the label groups, weights and matrix rows.
func (g *Graph[V]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Graph over the vertices %v\n", g.labels)
	fmt.Fprintf(&b, "Vertex weight is %v\n", g.weights)
	for _, row := range g.matrix {
		fmt.Fprintf(&b, "%v\n", row)
	}
	return b.String()
}
