package board

import (
	"strings"

	"github.com/katalvlaran/laniakea/geometry"
)

// String renders the board as a box-drawing diagram: a vertex carries a
// bar in each direction whose border is a wall. Matches the 16-entry
// glyph table shared by galaxy and universe rendering, so a board built
// from a universe's Borders renders identically to that universe's own
// String, apart from the trailing spaces Universe.String keeps on each
// line and this method trims.
func (b Board) String() string {
	var out strings.Builder
	for row := 0; row <= b.height; row++ {
		var line strings.Builder
		for col := 0; col <= b.width; col++ {
			bottomRight := geometry.NewPosition(row, col)
			bottomLeft := bottomRight.Left()
			topLeft := bottomLeft.Up()
			topRight := bottomRight.Up()

			top := b.wallBetween(topLeft, topRight)
			right := b.wallBetween(topRight, bottomRight)
			bottom := b.wallBetween(bottomLeft, bottomRight)
			left := b.wallBetween(topLeft, bottomLeft)

			line.WriteString(boxGlyph(top, right, bottom, left))
		}
		out.WriteString(strings.TrimRight(line.String(), " "))
		if row != b.height {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// wallBetween reports whether a wall separates p1 and p2, treating a pair
// where both positions lie outside the board as "nothing to wall off"
// (false) rather than frame (true) — the corner case the vertex-diagram
// loop walks through at the board's own corners.
func (b Board) wallBetween(p1, p2 geometry.Position) bool {
	in1, in2 := b.isInside(p1), b.isInside(p2)
	if in1 != in2 {
		return true
	}
	if !in1 {
		return false
	}
	return b.IsWall(geometry.NewBorder(p1, p2))
}

// boxGlyph returns the two-column box-drawing cell covering a grid
// vertex, given which of its four edges carry a wall segment.
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
