package galaxy

import (
	"sort"

	"github.com/katalvlaran/laniakea/geometry"
)

// Size returns the number of positions in the galaxy.
func (g Galaxy) Size() int {
	return len(g.positions)
}

// IsEmpty reports whether the galaxy has no positions.
func (g Galaxy) IsEmpty() bool {
	return len(g.positions) == 0
}

// ContainsPosition reports whether p belongs to the galaxy.
func (g Galaxy) ContainsPosition(p geometry.Position) bool {
	_, ok := g.positions[p]
	return ok
}

// Positions returns the galaxy's positions, sorted for determinism.
func (g Galaxy) Positions() []geometry.Position {
	positions := make([]geometry.Position, 0, len(g.positions))
	for p := range g.positions {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].Less(positions[j]) })
	return positions
}

// WithPosition returns a copy of the galaxy with p added.
func (g Galaxy) WithPosition(p geometry.Position) Galaxy {
	result := g.clone()
	result.positions[p] = struct{}{}
	return result
}

// WithoutPosition returns a copy of the galaxy with p removed.
func (g Galaxy) WithoutPosition(p geometry.Position) Galaxy {
	result := g.clone()
	delete(result.positions, p)
	return result
}

// AddPosition adds p to the galaxy in place, leaving it in a potentially
// invalid state.
func (g Galaxy) AddPosition(p geometry.Position) {
	g.positions[p] = struct{}{}
}

// RemovePosition removes p from the galaxy in place, leaving it in a
// potentially invalid state.
func (g Galaxy) RemovePosition(p geometry.Position) {
	delete(g.positions, p)
}

func (g Galaxy) clone() Galaxy {
	result := New()
	for p := range g.positions {
		result.positions[p] = struct{}{}
	}
	return result
}

// BoundingRectangle returns the smallest rectangle containing every
// position in the galaxy.
func (g Galaxy) BoundingRectangle() geometry.Rectangle {
	return geometry.BoundingRectangle(g.Positions())
}

// Center returns the galaxy's center, expressed in half-steps. The center
// of a galaxy containing only (0,0) is (0,0); the center of a galaxy
// containing (0,0) and (0,1) is (0,1); the center of a galaxy containing
// only (0,1) is (0,2). An empty galaxy's center is (0,0).
func (g Galaxy) Center() geometry.Position {
	if g.IsEmpty() {
		return geometry.Position{}
	}
	r := g.BoundingRectangle()
	return geometry.NewPosition(r.MinRow+r.MaxRow-1, r.MinCol+r.MaxCol-1)
}

// MirrorPosition returns the mirror image of p about the galaxy's center.
func (g Galaxy) MirrorPosition(p geometry.Position) geometry.Position {
	return p.MirrorThrough(g.Center())
}

// IsSymmetric reports whether every position's mirror image (about the
// galaxy's center) also belongs to the galaxy.
func (g Galaxy) IsSymmetric() bool {
	for p := range g.positions {
		if !g.ContainsPosition(g.MirrorPosition(p)) {
			return false
		}
	}
	return true
}

// ContainsCenter reports whether every cell of the galaxy's footprint
// (see geometry.FootprintCells) belongs to the galaxy.
func (g Galaxy) ContainsCenter() bool {
	for _, p := range geometry.FootprintCells(g.Center()) {
		if !g.ContainsPosition(p) {
			return false
		}
	}
	return true
}

// IsConnected reports whether the galaxy's positions form a single
// 4-connected region. An empty galaxy is considered connected.
func (g Galaxy) IsConnected() bool {
	if g.IsEmpty() {
		return true
	}
	var first geometry.Position
	for p := range g.positions {
		first = p
		break
	}
	remaining := make(map[geometry.Position]struct{}, len(g.positions))
	for p := range g.positions {
		remaining[p] = struct{}{}
	}
	delete(remaining, first)
	queue := []geometry.Position{first}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbours(current) {
			if _, ok := remaining[n]; ok {
				delete(remaining, n)
				queue = append(queue, n)
			}
		}
	}
	return len(remaining) == 0
}

// IsValid reports whether the galaxy is non-empty, connected, contains its
// own center, and is rotationally symmetric about that center.
func (g Galaxy) IsValid() bool {
	return !g.IsEmpty() && g.ContainsCenter() && g.IsConnected() && g.IsSymmetric()
}

// IsEmptyOrValid reports whether the galaxy is either empty or valid — the
// invariant maintained by the generator between steps.
func (g Galaxy) IsEmptyOrValid() bool {
	return g.IsEmpty() || g.IsValid()
}

// Neighbours returns the orthogonal neighbours of p that belong to the
// galaxy.
func (g Galaxy) Neighbours(p geometry.Position) []geometry.Position {
	neighbours := make([]geometry.Position, 0, 4)
	for _, n := range p.Adjacent() {
		if g.ContainsPosition(n) {
			neighbours = append(neighbours, n)
		}
	}
	return neighbours
}

// Borders returns the borders separating the galaxy from the rest of the
// grid.
func (g Galaxy) Borders() []geometry.Border {
	seen := make(map[geometry.Border]struct{})
	for p1 := range g.positions {
		for _, p2 := range p1.Adjacent() {
			if !g.ContainsPosition(p2) {
				seen[geometry.NewBorder(p1, p2)] = struct{}{}
			}
		}
	}
	borders := make([]geometry.Border, 0, len(seen))
	for b := range seen {
		borders = append(borders, b)
	}
	sort.Slice(borders, func(i, j int) bool { return borders[i].Less(borders[j]) })
	return borders
}

// isMirrorSymmetric reports whether every cell is mirrored across the
// vertical axis passing through the center — a stricter symmetry than
// IsSymmetric (which only requires 180-degree rotational symmetry), used
// to pick between spanning-tree tie-break strategies.
func (g Galaxy) isMirrorSymmetric() bool {
	center := g.Center()
	for p := range g.positions {
		mirrored := geometry.NewPosition(p.Row, center.Col-p.Col)
		if !g.ContainsPosition(mirrored) {
			return false
		}
	}
	return true
}
