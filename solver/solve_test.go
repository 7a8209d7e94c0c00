package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/laniakea/generator"
	"github.com/katalvlaran/laniakea/geometry"
	"github.com/katalvlaran/laniakea/objective"
)

func TestSolve_twoSingletonColumnsNeedAnInteriorWall(t *testing.T) {
	// Two 1x1 galaxies side by side: the only consistent wall set is the
	// frame plus the border directly between them.
	obj, err := objective.New(2, 1, []objective.Center{
		{Position: geometry.NewPosition(0, 0)},
		{Position: geometry.NewPosition(0, 2)},
	})
	require.NoError(t, err)

	solution, err := Solve(obj)
	require.NoError(t, err)

	assert.Contains(t, solution.Walls, geometry.Right(geometry.NewPosition(0, 0)))
}

func TestSolve_singleCenterFillsTheWholeGrid(t *testing.T) {
	// One center in a grid with no other galaxies: nothing forces an
	// interior wall, so the solution is just the frame.
	obj, err := objective.New(2, 2, []objective.Center{
		{Position: geometry.NewPosition(1, 1)},
	})
	require.NoError(t, err)

	solution, err := Solve(obj)
	require.NoError(t, err)

	assert.ElementsMatch(t, frameBorders(2, 2), solution.Walls)
}

func TestSolve_contradictsWhenNoGalaxyCanReachACell(t *testing.T) {
	// Two centers in a 1-wide, 3-tall strip, with pre-placed walls
	// sealing off the middle cell on both sides: that cell can't be
	// reached from either galaxy's footprint, so no assignment of it is
	// possible and the objective is unsatisfiable.
	obj, err := objective.New(1, 3, []objective.Center{
		{Position: geometry.NewPosition(0, 0)},
		{Position: geometry.NewPosition(4, 0)},
	}, objective.WithWalls(
		geometry.Down(geometry.NewPosition(1, 0)),
		geometry.Up(geometry.NewPosition(1, 0)),
	))
	require.NoError(t, err)

	_, err = Solve(obj)
	assert.ErrorIs(t, err, ErrContradiction)
}

func TestSolve_matchesTheGeneratorsOwnBorders(t *testing.T) {
	// A solver given the exact objective implied by a generated universe
	// must recover that universe's own border set: the puzzle is
	// constructed to have a unique solution by construction.
	for _, seed := range []int64{1, 2, 3, 4, 5} {
		u, err := generator.Generate(4, 4, seed)
		require.NoError(t, err)

		obj := objective.FromUniverse(u)
		solution, err := Solve(obj)
		require.NoError(t, err, "seed %d", seed)

		assert.ElementsMatch(t, u.Borders(), solution.Walls, "seed %d", seed)
	}
}

// frameBorders returns just the outer frame of a width x height grid,
// the expected solution when nothing forces an interior wall.
func frameBorders(width, height int) []geometry.Border {
	var borders []geometry.Border
	for col := 0; col < width; col++ {
		borders = append(borders, geometry.Up(geometry.NewPosition(0, col)))
		borders = append(borders, geometry.Down(geometry.NewPosition(height-1, col)))
	}
	for row := 0; row < height; row++ {
		borders = append(borders, geometry.Left(geometry.NewPosition(row, 0)))
		borders = append(borders, geometry.Right(geometry.NewPosition(row, width-1)))
	}
	return borders
}
