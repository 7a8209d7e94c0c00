package universe

import (
	"strings"

	"github.com/katalvlaran/laniakea/geometry"
)

// String renders the universe as a box-drawing diagram: a vertex carries
// a wall segment wherever the two cells on either side of it belong to
// different galaxies.
func (u Universe) String() string {
	var b strings.Builder
	for row := 0; row <= u.height; row++ {
		var line strings.Builder
		for col := 0; col <= u.width; col++ {
			bottomRight := geometry.NewPosition(row, col)
			bottomLeft := bottomRight.Left()
			topLeft := bottomLeft.Up()
			topRight := bottomRight.Up()

			top := u.bordered(topLeft, topRight)
			right := u.bordered(topRight, bottomRight)
			bottom := u.bordered(bottomLeft, bottomRight)
			left := u.bordered(topLeft, bottomLeft)

			line.WriteString(boxGlyph(top, right, bottom, left))
		}
		b.WriteString(line.String())
		if row != u.height {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// bordered reports whether a wall separates p1 and p2: true at the
// universe's own edge (exactly one of p1, p2 inside), true between two
// inside cells of different galaxies, and false when both lie outside
// (nothing to wall off) or share a galaxy.
func (u Universe) bordered(p1, p2 geometry.Position) bool {
	in1, in2 := u.IsInside(p1), u.IsInside(p2)
	if in1 != in2 {
		return true
	}
	if !in1 {
		return false
	}
	return !u.AreNeighbours(p1, p2)
}

// boxGlyph returns the two-column box-drawing cell covering a grid
// vertex, given which of its four edges carry a wall segment. Matches
// the 16-entry table shared by galaxy and board rendering.
func boxGlyph(top, right, bottom, left bool) string {
	switch {
	case !top && !right && !bottom && !left:
		return "  "
	case !top && !right && !bottom && left:
		return "╴ "
	case !top && !right && bottom && !left:
		return "╷ "
	case !top && !right && bottom && left:
		return "┐ "
	case !top && right && !bottom && !left:
		return "╶─"
	case !top && right && !bottom && left:
		return "──"
	case !top && right && bottom && !left:
		return "┌─"
	case !top && right && bottom && left:
		return "┬─"
	case top && !right && !bottom && !left:
		return "╵ "
	case top && !right && !bottom && left:
		return "┘ "
	case top && !right && bottom && !left:
		return "│ "
	case top && !right && bottom && left:
		return "┤ "
	case top && right && !bottom && !left:
		return "└─"
	case top && right && !bottom && left:
		return "┴─"
	case top && right && bottom && !left:
		return "├─"
	default:
		return "┼─"
	}
}
