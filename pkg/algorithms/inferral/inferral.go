package inferral

import (
	"iter"
	"slices"
	"strings"

	"github.com/matzehuels/tilings/pkg/gridded"
	"github.com/matzehuels/tilings/pkg/perm"
	"github.com/matzehuels/tilings/pkg/rule"
	"github.com/matzehuels/tilings/pkg/tiling"
)

// Candidates returns the gridded permutations to try as new obstructions
// of t.
type Candidates func(t *tiling.Tiling) []gridded.GriddedPerm

// Inferral computes the obstructions of a tiling that can be added without
// changing it.
type Inferral struct {
	tiling     *tiling.Tiling
	candidates Candidates
	emptyCells bool

	newObs []gridded.GriddedPerm
	done   bool
}

// New prepares an inferral over the candidates produced for t.
func New(t *tiling.Tiling, candidates Candidates) *Inferral {
	return &Inferral{tiling: t, candidates: candidates}
}

// Subobstruction infers subpatterns of the existing obstructions.
func Subobstruction(t *tiling.Tiling) *Inferral {
	return New(t, SubobstructionCandidates)
}

// All infers obstructions of the given length.
func All(t *tiling.Tiling, length int) *Inferral {
	return New(t, AllCandidates(length))
}

// EmptyCell infers point obstructions, which empty the cells they lie in.
func EmptyCell(t *tiling.Tiling) *Inferral {
	i := All(t, 1)
	i.emptyCells = true
	return i
}

// SubobstructionCandidates returns every non-empty proper subpattern of the
// obstructions of t, sorted and without duplicates.
func SubobstructionCandidates(t *tiling.Tiling) []gridded.GriddedPerm {
	var out []gridded.GriddedPerm
	for _, ob := range t.Obstructions() {
		out = append(out, ob.AllSubperms()...)
	}
	return gridded.SortUnique(out)
}

// AllCandidates returns a candidate source for the gridded permutations of
// the given length over the active cells that are consistent, avoid every
// obstruction and are not forced by a requirement list.
func AllCandidates(length int) Candidates {
	return func(t *tiling.Tiling) []gridded.GriddedPerm {
		obs := t.Obstructions()
		reqs := t.Requirements()
		active := t.ActiveCells()

		var out []gridded.GriddedPerm
		for p := range perm.All(length) {
			for pos := range cellTuples(active, length) {
				g, err := gridded.New(p, pos)
				if err != nil {
					continue
				}
				if g.Contradictory() || g.Contains(obs...) || required(g, reqs) {
					continue
				}
				out = append(out, g)
			}
		}
		return out
	}
}

// required reports whether every gridded permutation on the tiling holds g
// because some list has g inside each of its requirements.
func required(g gridded.GriddedPerm, reqs [][]gridded.GriddedPerm) bool {
	for _, list := range reqs {
		if !slices.ContainsFunc(list, func(r gridded.GriddedPerm) bool { return !r.Contains(g) }) {
			return true
		}
	}
	return false
}

// cellTuples yields every n-tuple of cells, in lexicographic order.
func cellTuples(cells []gridded.Cell, n int) iter.Seq[[]gridded.Cell] {
	return func(yield func([]gridded.Cell) bool) {
		if len(cells) == 0 && n > 0 {
			return
		}
		idx := make([]int, n)
		for {
			tuple := make([]gridded.Cell, n)
			for i, j := range idx {
				tuple[i] = cells[j]
			}
			if !yield(tuple) {
				return
			}
			i := n - 1
			for i >= 0 && idx[i] == len(cells)-1 {
				idx[i] = 0
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
		}
	}
}

// CanAddObstruction reports whether requiring ob empties t.
func CanAddObstruction(ob gridded.GriddedPerm, t *tiling.Tiling) bool {
	return t.AddRequirement([]gridded.GriddedPerm{ob}).IsEmpty()
}

// Tiling returns the input tiling.
func (i *Inferral) Tiling() *tiling.Tiling { return i.tiling }

// NewObs returns the candidates accepted as obstructions. Candidates are
// tried shortest first against the tiling with every earlier accepted
// candidate added.
func (i *Inferral) NewObs() []gridded.GriddedPerm {
	if i.done {
		return i.newObs
	}
	candidates := i.candidates(i.tiling)
	slices.SortStableFunc(candidates, func(a, b gridded.GriddedPerm) int { return a.Len() - b.Len() })

	acc := tiling.New(i.tiling.Obstructions(), i.tiling.Requirements(), tiling.KeepEmptyRowsCols())
	for _, ob := range candidates {
		if CanAddObstruction(ob, acc) {
			i.newObs = append(i.newObs, ob)
			acc = acc.AddObstruction(ob)
		}
	}
	i.done = true
	return i.newObs
}

// ObstructionInferredTiling returns the tiling with the new obstructions.
func (i *Inferral) ObstructionInferredTiling() *tiling.Tiling {
	obs := append(i.tiling.Obstructions(), i.NewObs()...)
	return tiling.New(obs, i.tiling.Requirements())
}

// EmptyCells returns the cells of the new point obstructions.
func (i *Inferral) EmptyCells() []gridded.Cell {
	var out []gridded.Cell
	for _, ob := range i.NewObs() {
		if c, ok := ob.IsPoint(); ok {
			out = append(out, c)
		}
	}
	return out
}

// FormalStep describes the inferral in rules.
func (i *Inferral) FormalStep() string {
	var parts []string
	if i.emptyCells {
		for _, c := range i.EmptyCells() {
			parts = append(parts, c.String())
		}
		return "The cells " + strings.Join(parts, ", ") + " are empty."
	}
	for _, ob := range i.NewObs() {
		parts = append(parts, ob.String())
	}
	return "Added the obstructions {" + strings.Join(parts, "; ") + "}."
}

// Rule returns the inferral to the tiling with the new obstructions, or nil
// when none were found.
func (i *Inferral) Rule() *rule.Rule {
	if len(i.NewObs()) == 0 {
		return nil
	}
	return rule.NewInferral(i.FormalStep(), i.tiling, i.ObstructionInferredTiling())
}
