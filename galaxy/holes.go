package galaxy

import "github.com/katalvlaran/laniakea/geometry"

// isHole reports whether p is surrounded by the galaxy on all four sides
// without itself belonging to the galaxy.
func (g Galaxy) isHole(p geometry.Position) bool {
	return !g.ContainsPosition(p) && len(g.Neighbours(p)) == 4
}

// Holes returns every position within the galaxy's bounding rectangle
// that the galaxy surrounds but does not contain.
func (g Galaxy) Holes() []geometry.Position {
	var holes []geometry.Position
	for _, p := range g.BoundingRectangle().Positions() {
		if g.isHole(p) {
			holes = append(holes, p)
		}
	}
	return holes
}

// isTurn reports whether p belongs to the galaxy and has exactly two
// orthogonal neighbours in the galaxy that are perpendicular to each
// other (an "elbow" cell).
func (g Galaxy) isTurn(p geometry.Position) bool {
	if !g.ContainsPosition(p) {
		return false
	}
	up := g.ContainsPosition(p.Up())
	down := g.ContainsPosition(p.Down())
	left := g.ContainsPosition(p.Left())
	right := g.ContainsPosition(p.Right())
	switch {
	case up && right && !down && !left:
		return true
	case !up && right && down && !left:
		return true
	case !up && !right && down && left:
		return true
	case up && !right && !down && left:
		return true
	default:
		return false
	}
}

// isLeaf reports whether p belongs to the galaxy and has at most one
// orthogonal neighbour in the galaxy.
func (g Galaxy) isLeaf(p geometry.Position) bool {
	if !g.ContainsPosition(p) {
		return false
	}
	up := g.ContainsPosition(p.Up())
	down := g.ContainsPosition(p.Down())
	left := g.ContainsPosition(p.Left())
	right := g.ContainsPosition(p.Right())
	count := 0
	for _, has := range []bool{up, down, left, right} {
		if has {
			count++
		}
	}
	return count <= 1
}

// IsZigZag reports whether every cell of the galaxy is either a turn or a
// leaf, and at least one cell is a turn — i.e. the galaxy is a single
// one-cell-wide path that changes direction, never going straight for two
// cells in a row. Score treats these as degenerate (score 0). A
// single-cell galaxy has no turns, so it is not zig-zag.
func (g Galaxy) IsZigZag() bool {
	anyTurn := false
	for p := range g.positions {
		if !g.isTurn(p) && !g.isLeaf(p) {
			return false
		}
		if g.isTurn(p) {
			anyTurn = true
		}
	}
	return anyTurn
}
