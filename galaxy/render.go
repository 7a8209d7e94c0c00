package galaxy

import (
	"strings"

	"github.com/katalvlaran/laniakea/geometry"
)

// String renders the galaxy as a box-drawing diagram of its outline,
// relative to its own bounding rectangle.
func (g Galaxy) String() string {
	bounds := g.BoundingRectangle()
	shifted := make(map[geometry.Position]struct{}, g.Size())
	for p := range g.positions {
		shifted[geometry.NewPosition(p.Row-bounds.MinRow, p.Col-bounds.MinCol)] = struct{}{}
	}
	contains := func(p geometry.Position) bool {
		_, ok := shifted[p]
		return ok
	}

	height := bounds.Height()
	width := bounds.Width()

	var b strings.Builder
	for row := 0; row <= height; row++ {
		var line strings.Builder
		for col := 0; col <= width; col++ {
			bottomRight := geometry.NewPosition(row, col)
			bottomLeft := bottomRight.Left()
			topLeft := bottomLeft.Up()
			topRight := bottomRight.Up()

			hasTL, hasTR := contains(topLeft), contains(topRight)
			hasBL, hasBR := contains(bottomLeft), contains(bottomRight)

			line.WriteString(boxGlyph(hasTL != hasTR, hasTR != hasBR, hasBL != hasBR, hasTL != hasBL))
		}
		b.WriteString(line.String())
		if row != height {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
