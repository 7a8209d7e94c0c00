package universe

import "github.com/katalvlaran/laniakea/geometry"

// Universe is a dense width x height grid of galaxy ids.
type Universe struct {
	grid   [][]int
	width  int
	height int
	nextID int
}

// New returns a Universe where every cell is its own singleton galaxy,
// identified by its row-major index.
func New(width, height int) Universe {
	grid := make([][]int, height)
	for row := 0; row < height; row++ {
		grid[row] = make([]int, width)
		for col := 0; col < width; col++ {
			grid[row][col] = row*width + col
		}
	}
	return Universe{grid: grid, width: width, height: height, nextID: width * height}
}

// Width returns the universe's width.
func (u Universe) Width() int { return u.width }

// Height returns the universe's height.
func (u Universe) Height() int { return u.height }

// GalaxyID returns the id of the galaxy p belongs to. p must be inside
// the universe.
func (u Universe) GalaxyID(p geometry.Position) int {
	return u.grid[p.Row][p.Col]
}

// SetGalaxyID sets the id of the galaxy p belongs to. p must be inside
// the universe.
func (u Universe) SetGalaxyID(p geometry.Position, id int) {
	u.grid[p.Row][p.Col] = id
}

// IsInside reports whether p lies within the universe's bounds.
func (u Universe) IsInside(p geometry.Position) bool {
	return p.Row >= 0 && p.Row < u.height && p.Col >= 0 && p.Col < u.width
}

// Clone returns an independent copy of u: mutating the copy's grid never
// affects the original, and vice versa. The generator's best-of-k
// branching relies on this to try several candidate steps from the same
// starting state.
func (u Universe) Clone() Universe {
	grid := make([][]int, len(u.grid))
	for row, cells := range u.grid {
		grid[row] = append([]int(nil), cells...)
	}
	return Universe{grid: grid, width: u.width, height: u.height, nextID: u.nextID}
}
