package perm

import "github.com/matzehuels/tilings/pkg/errors"

// Rank returns the intrinsic id of p: the number of permutations of every
// shorter length plus the lexicographic rank of p among its own length.
func Rank(p Perm) int {
	n := len(p)
	offset := 0
	for k := 0; k < n; k++ {
		offset += Factorial(k)
	}
	return offset + lexRank(p)
}

// lexRank computes the Lehmer-code rank of p among permutations of len(p).
func lexRank(p Perm) int {
	n := len(p)
	rank := 0
	for i := 0; i < n; i++ {
		smaller := 0
		for j := i + 1; j < n; j++ {
			if p[j] < p[i] {
				smaller++
			}
		}
		rank += smaller * Factorial(n-1-i)
	}
	return rank
}

// Unrank inverts [Rank].
func Unrank(id int) (Perm, error) {
	if id < 0 {
		return nil, errors.New(errors.ErrCodeInvalidPattern, "negative pattern id %d", id)
	}
	n := 0
	for id >= Factorial(n) {
		id -= Factorial(n)
		n++
	}
	avail := Seq(n)
	out := make(Perm, 0, n)
	for i := n - 1; i >= 0; i-- {
		f := Factorial(i)
		k := id / f
		id %= f
		out = append(out, avail[k])
		avail = append(avail[:k], avail[k+1:]...)
	}
	return out, nil
}
