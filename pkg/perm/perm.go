package perm

import (
	"iter"
	"slices"
)

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
// This is useful for initializing permutation arrays or creating index sequences.
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	if n <= 0 {
		return []int{}
	}
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n.
// For n <= 1, Factorial returns 1.
//
// Note that factorials grow extremely fast: 13! = 6,227,020,800 exceeds 32-bit int.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// Generate returns permutations of [0, 1, ..., n-1] using Heap's algorithm.
//
// If limit > 0, Generate returns at most limit permutations.
// If limit <= 0, Generate returns all n! permutations.
//
// Each returned slice is a separate allocation, safe to modify without affecting others.
//
// Heap's algorithm generates permutations in a non-lexicographic order, but
// efficiently produces each permutation exactly once. Use [All] when the
// order matters.
func Generate(n, limit int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	if n == 1 {
		return [][]int{{0}}
	}

	perm := Seq(n)
	state := make([]int, n)

	capacity := limit
	if capacity <= 0 || n <= 12 {
		capacity = Factorial(min(n, 12))
	}
	result := make([][]int, 0, capacity)
	result = append(result, slices.Clone(perm))

	for i := 0; i < n && (limit <= 0 || len(result) < limit); {
		if state[i] < i {
			if i&1 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[state[i]], perm[i] = perm[i], perm[state[i]]
			}
			result = append(result, slices.Clone(perm))
			state[i]++
			i = 0
		} else {
			state[i] = 0
			i++
		}
	}
	return result
}

// All yields every permutation of length n in lexicographic order.
// Each yielded Perm is a fresh allocation.
func All(n int) iter.Seq[Perm] {
	return func(yield func(Perm) bool) {
		if n < 0 {
			return
		}
		p := Perm(Seq(n))
		for {
			if !yield(slices.Clone(p)) {
				return
			}
			if !nextLex(p) {
				return
			}
		}
	}
}

// nextLex advances p to its lexicographic successor in place.
func nextLex(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] > p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] < p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])
	return true
}
