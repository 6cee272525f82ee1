package factor

// UnionFind is a disjoint-set forest over the integers 0..n-1 with union by
// size and path compression.
type UnionFind struct {
	parent []int
	size   []int
	count  int
}

// NewUnionFind returns n singleton sets.
func NewUnionFind(n int) *UnionFind {
	u := &UnionFind{parent: make([]int, n), size: make([]int, n), count: n}
	for i := range u.parent {
		u.parent[i] = i
		u.size[i] = 1
	}
	return u
}

// Find returns the representative of the set holding x.
func (u *UnionFind) Find(x int) int {
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[x] != root {
		u.parent[x], x = root, u.parent[x]
	}
	return root
}

// Union merges the sets of x and y. It reports false when they were
// already joined.
func (u *UnionFind) Union(x, y int) bool {
	rx, ry := u.Find(x), u.Find(y)
	if rx == ry {
		return false
	}
	if u.size[rx] < u.size[ry] {
		rx, ry = ry, rx
	}
	u.parent[ry] = rx
	u.size[rx] += u.size[ry]
	u.count--
	return true
}

// Connected reports whether x and y are in the same set.
func (u *UnionFind) Connected(x, y int) bool { return u.Find(x) == u.Find(y) }

// Size returns the number of elements in the set holding x.
func (u *UnionFind) Size(x int) int { return u.size[u.Find(x)] }

// Count returns the number of disjoint sets.
func (u *UnionFind) Count() int { return u.count }
