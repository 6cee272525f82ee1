package inferral_test

import (
	"fmt"

	"github.com/matzehuels/tilings/pkg/algorithms/inferral"
	"github.com/matzehuels/tilings/pkg/gridded"
	"github.com/matzehuels/tilings/pkg/tiling"
)

func ExampleEmptyCell() {
	a, b := gridded.Cell{Col: 0, Row: 0}, gridded.Cell{Col: 1, Row: 0}
	t := tiling.New(
		[]gridded.GriddedPerm{
			gridded.MustNew([]int{0, 1}, a, b),
			gridded.MustNew([]int{1, 0}, a, b),
		},
		[][]gridded.GriddedPerm{{gridded.Point(b)}},
	)

	inf := inferral.EmptyCell(t)
	fmt.Println(inf.EmptyCells())
	fmt.Println(inf.FormalStep())
	// Output:
	// [(0, 0)]
	// The cells (0, 0) are empty.
}
