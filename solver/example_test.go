package solver_test

import (
	"fmt"

	"github.com/katalvlaran/laniakea/board"
	"github.com/katalvlaran/laniakea/objective"
	"github.com/katalvlaran/laniakea/solver"
)

// ExampleSolve reconstructs a 4x4 puzzle from its centers alone. Each ●
// marks a galaxy center on the doubled lattice; the solver derives the
// only wall set whose regions are all symmetric about their centers.
func ExampleSolve() {
	obj, err := objective.FromString(
		"┌───┬───┬───┬───┐\n" +
			"│             ● │\n" +
			"├   ·   · ● ·   ┤\n" +
			"│               │\n" +
			"├ ● ·   ·   ·   ┤\n" +
			"│     ●         │\n" +
			"├   ·   ·   ●   ┤\n" +
			"│               │\n" +
			"└───┴───┴───┴───┘")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	solution, err := solver.Solve(obj)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	b, err := board.FromBorders(obj.Width(), obj.Height(), solution.Walls)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(b.String())
	// Output:
	// ┌─┬───┬─┐
	// │ ├─┐ └─┤
	// │ │ ├───┤
	// │ │ │   │
	// └─┴─┴───┘
}
