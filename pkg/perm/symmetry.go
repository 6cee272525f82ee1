package perm

import "slices"

// Reverse reads p right to left.
func (p Perm) Reverse() Perm {
	out := slices.Clone(p)
	slices.Reverse(out)
	return out
}

// Complement flips p upside down: value v becomes n-1-v.
func (p Perm) Complement() Perm {
	n := len(p)
	out := make(Perm, n)
	for i, v := range p {
		out[i] = n - 1 - v
	}
	return out
}

// Inverse swaps the roles of index and value.
func (p Perm) Inverse() Perm {
	out := make(Perm, len(p))
	for i, v := range p {
		out[v] = i
	}
	return out
}

// Rotate turns the diagram of p 90 degrees clockwise.
func (p Perm) Rotate() Perm {
	return p.Inverse().Complement()
}

// RotateLeft turns the diagram of p 90 degrees counter-clockwise.
func (p Perm) RotateLeft() Perm {
	return p.Inverse().Reverse()
}

// Rotate180 turns the diagram of p half way round.
func (p Perm) Rotate180() Perm {
	return p.Reverse().Complement()
}

// FlipAntidiagonal reflects the diagram of p in its anti-diagonal.
func (p Perm) FlipAntidiagonal() Perm {
	return p.Inverse().Rotate180()
}
