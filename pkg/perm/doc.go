// Package perm provides permutation patterns and the primitives that gridded
// permutations are built on.
//
// # Overview
//
// A [Perm] is a permutation of 0..n-1 read as a point set: index i carries
// the value p[i]. Patterns are compared up to order isomorphism, so the
// package offers:
//
//   - [Standardize]: rank-reduce any sequence of distinct integers
//   - [Occurrences]: lazily enumerate where one pattern occurs in another
//   - [Rank] and [Unrank]: a bijection between all permutations and the
//     non-negative integers, used for compact encodings
//   - The eight symmetries of the square ([Perm.Reverse], [Perm.Inverse],
//     [Perm.Rotate], ...)
//
// # Ranking
//
// The rank of a permutation of length n is the number of permutations of
// every shorter length plus its lexicographic rank among length-n
// permutations:
//
//	rank(()) = 0
//	rank((0)) = 1
//	rank((0,1)) = 2, rank((1,0)) = 3
//	rank((0,1,2)) = 4, ...
//
// # Generation
//
// [All] yields every permutation of a given length in lexicographic order.
// [Generate] uses Heap's algorithm when order does not matter and a cap on
// the number of permutations is wanted.
package perm
