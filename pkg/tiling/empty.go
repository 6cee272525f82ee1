package tiling

import "github.com/matzehuels/tilings/pkg/gridded"

// IsEmpty reports whether no gridded permutation on t avoids every
// obstruction while containing a requirement from every list.
func (t *Tiling) IsEmpty() bool {
	t.emptyOnce.Do(func() { t.empty = t.search() })
	return t.empty
}

// search grows gridded permutations point by point inside active cells. A
// witness, if one exists, has at most the sum of the longest requirement of
// each list as length, and every prefix of the growth avoids the
// obstructions, so the search is exhaustive up to that bound.
func (t *Tiling) search() bool {
	for _, ob := range t.obstructions {
		if ob.IsEmpty() {
			return true
		}
	}
	if len(t.requirements) == 0 {
		return false
	}
	bound := 0
	for _, list := range t.requirements {
		longest := 0
		for _, r := range list {
			longest = max(longest, r.Len())
		}
		bound += longest
	}

	frontier := []gridded.GriddedPerm{gridded.Empty()}
	for length := 0; length <= bound && len(frontier) > 0; length++ {
		seen := make(map[string]bool)
		var next []gridded.GriddedPerm
		for _, g := range frontier {
			if t.satisfies(g) {
				return false
			}
			if length == bound {
				continue
			}
			for _, c := range t.active {
				for h := range g.InsertPoint(c) {
					k := h.Key()
					if seen[k] {
						continue
					}
					seen[k] = true
					if !h.Contains(t.obstructions...) {
						next = append(next, h)
					}
				}
			}
		}
		frontier = next
	}
	return true
}

func (t *Tiling) satisfies(g gridded.GriddedPerm) bool {
	for _, list := range t.requirements {
		if !g.Contains(list...) {
			return false
		}
	}
	return true
}
