package universe

import (
	"sort"

	"github.com/katalvlaran/laniakea/galaxy"
	"github.com/katalvlaran/laniakea/geometry"
)

// AreNeighbours reports whether p1 and p2 are both inside the universe
// and share a galaxy id.
func (u Universe) AreNeighbours(p1, p2 geometry.Position) bool {
	return u.IsInside(p1) && u.IsInside(p2) && u.GalaxyID(p1) == u.GalaxyID(p2)
}

// AdjacentPositions returns p's in-bounds orthogonal neighbours.
func (u Universe) AdjacentPositions(p geometry.Position) []geometry.Position {
	adjacent := make([]geometry.Position, 0, 4)
	if p.Row > 0 {
		adjacent = append(adjacent, p.Up())
	}
	if p.Row < u.height-1 {
		adjacent = append(adjacent, p.Down())
	}
	if p.Col > 0 {
		adjacent = append(adjacent, p.Left())
	}
	if p.Col < u.width-1 {
		adjacent = append(adjacent, p.Right())
	}
	return adjacent
}

// Neighbours returns p's adjacent positions that share its galaxy id.
func (u Universe) Neighbours(p geometry.Position) []geometry.Position {
	var neighbours []geometry.Position
	for _, n := range u.AdjacentPositions(p) {
		if u.AreNeighbours(p, n) {
			neighbours = append(neighbours, n)
		}
	}
	return neighbours
}

// AdjacentNonNeighbours returns p's adjacent positions that do NOT share
// its galaxy id — candidates for growing p's galaxy.
func (u Universe) AdjacentNonNeighbours(p geometry.Position) []geometry.Position {
	var result []geometry.Position
	for _, n := range u.AdjacentPositions(p) {
		if !u.AreNeighbours(p, n) {
			result = append(result, n)
		}
	}
	return result
}

// entries iterates every position in the universe together with its
// galaxy id, in row-major order.
func (u Universe) entries(fn func(p geometry.Position, id int)) {
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			fn(geometry.NewPosition(row, col), u.grid[row][col])
		}
	}
}

// GetGalaxy returns the galaxy containing p: every position sharing p's
// galaxy id.
func (u Universe) GetGalaxy(p geometry.Position) galaxy.Galaxy {
	id := u.GalaxyID(p)
	var positions []geometry.Position
	u.entries(func(q geometry.Position, qID int) {
		if qID == id {
			positions = append(positions, q)
		}
	})
	return galaxy.FromPositions(positions...)
}

// GetGalaxies groups every position in the universe by galaxy id and
// returns one Galaxy per id, in ascending id order.
func (u Universe) GetGalaxies() []galaxy.Galaxy {
	byID := make(map[int][]geometry.Position)
	u.entries(func(p geometry.Position, id int) {
		byID[id] = append(byID[id], p)
	})
	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	galaxies := make([]galaxy.Galaxy, 0, len(ids))
	for _, id := range ids {
		galaxies = append(galaxies, galaxy.FromPositions(byID[id]...))
	}
	return galaxies
}

// RemoveAllNeighbours gives p a fresh galaxy id of its own, severing it
// from every neighbour. Ids are handed out from a monotonically
// increasing counter rather than rescanned for a gap, since nothing ever
// needs ids to stay dense.
func (u *Universe) RemoveAllNeighbours(p geometry.Position) {
	u.SetGalaxyID(p, u.nextID)
	u.nextID++
}

// MakeNeighbours moves the single cell p2 into p1's galaxy (the rest of
// p2's former galaxy keeps its id), without otherwise checking or
// preserving galaxy validity.
func (u Universe) MakeNeighbours(p1, p2 geometry.Position) {
	u.SetGalaxyID(p2, u.GalaxyID(p1))
}

// RemovePositionsFromGalaxy removes each position in toRemove from g,
// keeping the universe's galaxies valid (or singleton) throughout. Each
// removed position becomes, at least temporarily, its own galaxy; if
// removing it breaks the remaining galaxy's symmetry, its mirror is
// removed too, and if that still leaves the galaxy invalid (e.g.
// disconnected, or missing its center), the entire remaining galaxy is
// broken up into singles.
func (u *Universe) RemovePositionsFromGalaxy(g galaxy.Galaxy, toRemove []geometry.Position) {
	remaining := g
	for _, p := range toRemove {
		u.RemoveAllNeighbours(p)
		remaining = remaining.WithoutPosition(p)
		if !remaining.IsSymmetric() {
			mirror := g.MirrorPosition(p)
			u.RemoveAllNeighbours(mirror)
			remaining = remaining.WithoutPosition(mirror)
		}
		if !remaining.IsEmptyOrValid() {
			for _, leftover := range remaining.Positions() {
				u.RemoveAllNeighbours(leftover)
			}
			return
		}
	}
}

// IsValid reports whether every galaxy in the universe is valid.
func (u Universe) IsValid() bool {
	for _, g := range u.GetGalaxies() {
		if !g.IsValid() {
			return false
		}
	}
	return true
}

// Positions returns every position in the universe, in row-major order.
func (u Universe) Positions() []geometry.Position {
	positions := make([]geometry.Position, 0, u.width*u.height)
	u.entries(func(p geometry.Position, _ int) { positions = append(positions, p) })
	return positions
}

// FromGalaxies builds a Universe just large enough to contain every
// position across galaxies, assigning each galaxy a fresh id of its own.
// Cells not covered by any galaxy keep their initial singleton ids.
func FromGalaxies(galaxies []galaxy.Galaxy) Universe {
	width, height := 0, 0
	for _, g := range galaxies {
		for _, p := range g.Positions() {
			if p.Col+1 > width {
				width = p.Col + 1
			}
			if p.Row+1 > height {
				height = p.Row + 1
			}
		}
	}
	u := New(width, height)
	for _, g := range galaxies {
		id := u.nextID
		u.nextID++
		for _, p := range g.Positions() {
			u.SetGalaxyID(p, id)
		}
	}
	return u
}
