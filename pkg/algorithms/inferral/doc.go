// Package inferral adds obstructions that a tiling already implies.
//
// A candidate gridded permutation can be forbidden when requiring it makes
// the tiling empty: it never occurs, so adding it as an obstruction leaves
// the set of gridded permutations unchanged. An [Inferral] tests candidates
// shortest first against a tiling that grows with every accepted
// obstruction.
//
// The constructors differ only in where candidates come from:
//
//   - [Subobstruction] tries every subpattern of an existing obstruction.
//   - [All] tries every consistent gridded permutation of a given length.
//   - [EmptyCell] tries single points and so finds cells that must be empty.
package inferral
