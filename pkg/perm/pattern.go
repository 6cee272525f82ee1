package perm

import (
	"cmp"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/tilings/pkg/errors"
)

// Perm is a permutation of 0..n-1. A Perm is treated as an immutable value;
// every method returns a new slice.
type Perm []int

// New validates values as a permutation of 0..len(values)-1 and returns a
// copy. It fails with errors.ErrCodeInvalidPattern otherwise.
func New(values []int) (Perm, error) {
	if !IsPerm(values) {
		return nil, errors.New(errors.ErrCodeInvalidPattern, "not a permutation: %v", values)
	}
	return Perm(slices.Clone(values)), nil
}

// IsPerm reports whether values is a permutation of 0..len(values)-1.
func IsPerm(values []int) bool {
	seen := make([]bool, len(values))
	for _, v := range values {
		if v < 0 || v >= len(values) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Standardize returns the permutation order isomorphic to values, which must
// be distinct. Standardize([]int{5, 2, 9}) is (1, 0, 2).
func Standardize(values []int) Perm {
	idx := Seq(len(values))
	slices.SortFunc(idx, func(a, b int) int { return cmp.Compare(values[a], values[b]) })
	out := make(Perm, len(values))
	for rank, i := range idx {
		out[i] = rank
	}
	return out
}

// Len returns the number of points.
func (p Perm) Len() int { return len(p) }

// Clone returns an independent copy of p.
func (p Perm) Clone() Perm { return slices.Clone(p) }

// Equal reports whether p and q are the same permutation.
func (p Perm) Equal(q Perm) bool { return slices.Equal(p, q) }

// Compare orders permutations lexicographically, a proper prefix first.
func Compare(p, q Perm) int { return slices.Compare(p, q) }

// String renders p as its one-line notation, e.g. "021". Values above 9 are
// separated by commas.
func (p Perm) String() string {
	if len(p) <= 10 {
		var b strings.Builder
		for _, v := range p {
			b.WriteByte(byte('0' + v))
		}
		if len(p) == 0 {
			return "ε"
		}
		return b.String()
	}
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Occurrences yields, in lexicographic order of index tuples, every
// increasing index tuple at which pattern occurs in text. The sequence is
// lazy and may be ranged over any number of times.
func Occurrences(pattern, text []int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		k := len(pattern)
		if k > len(text) {
			return
		}
		if k == 0 {
			yield([]int{})
			return
		}
		chosen := make([]int, 0, k)
		var search func(start int) bool
		search = func(start int) bool {
			depth := len(chosen)
			if depth == k {
				return yield(slices.Clone(chosen))
			}
			for j := start; j <= len(text)-(k-depth); j++ {
				if !fits(pattern, text, chosen, j) {
					continue
				}
				chosen = append(chosen, j)
				ok := search(j + 1)
				chosen = chosen[:depth]
				if !ok {
					return false
				}
			}
			return true
		}
		search(0)
	}
}

// fits reports whether text[j] relates to the already matched points the
// same way pattern[len(chosen)] relates to the pattern prefix.
func fits(pattern, text, chosen []int, j int) bool {
	k := len(chosen)
	for i, c := range chosen {
		if (pattern[i] < pattern[k]) != (text[c] < text[j]) {
			return false
		}
	}
	return true
}

// ContainedIn reports whether p occurs in text.
func (p Perm) ContainedIn(text []int) bool {
	for range Occurrences(p, text) {
		return true
	}
	return false
}

// Insert returns the permutation with value inserted at index; existing
// values >= value are incremented. Insert(len(p), len(p)) appends a new
// maximum.
func (p Perm) Insert(index, value int) Perm {
	out := make(Perm, 0, len(p)+1)
	for i, v := range p {
		if i == index {
			out = append(out, value)
		}
		if v >= value {
			v++
		}
		out = append(out, v)
	}
	if index >= len(p) {
		out = append(out, value)
	}
	return out
}

// Remove deletes the point at index and standardizes the rest.
func (p Perm) Remove(index int) Perm {
	out := make(Perm, 0, len(p)-1)
	removed := p[index]
	for i, v := range p {
		if i == index {
			continue
		}
		if v > removed {
			v--
		}
		out = append(out, v)
	}
	return out
}

// Apply permutes seq by p: out[i] = seq[p[i]].
func Apply[T any](p Perm, seq []T) []T {
	out := make([]T, len(p))
	for i, v := range p {
		out[i] = seq[v]
	}
	return out
}
