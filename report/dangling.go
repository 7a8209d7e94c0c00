package report

import (
	"github.com/katalvlaran/laniakea/board"
	"github.com/katalvlaran/laniakea/geometry"
)

// isDangling reports whether w fails to connect, at one of its two
// endpoints, to another active wall or the frame. A vertical border is
// checked against the three borders meeting each of its endpoints (the
// same-direction neighbour one row over, and the two perpendicular
// borders crossing that endpoint); board.Board.IsWall already reports
// every frame border as active, so a border sitting on the grid's own
// edge needs no special case: the neighbour-above/below check degrades
// to "is this the frame", which is already the right answer.
func isDangling(b board.Board, w geometry.Border) bool {
	p1, p2 := w.P1, w.P2
	if w.IsVertical() {
		p1Up, p2Up := p1.Up(), p2.Up()
		topConnects := b.IsWall(geometry.NewBorder(p1, p1Up)) ||
			b.IsWall(geometry.NewBorder(p1Up, p2Up)) ||
			b.IsWall(geometry.NewBorder(p2Up, p2))

		p1Down, p2Down := p1.Down(), p2.Down()
		bottomConnects := b.IsWall(geometry.NewBorder(p1, p1Down)) ||
			b.IsWall(geometry.NewBorder(p1Down, p2Down)) ||
			b.IsWall(geometry.NewBorder(p2Down, p2))

		return !(topConnects && bottomConnects)
	}

	p1Left, p2Left := p1.Left(), p2.Left()
	leftConnects := b.IsWall(geometry.NewBorder(p1, p1Left)) ||
		b.IsWall(geometry.NewBorder(p1Left, p2Left)) ||
		b.IsWall(geometry.NewBorder(p2Left, p2))

	p1Right, p2Right := p1.Right(), p2.Right()
	rightConnects := b.IsWall(geometry.NewBorder(p1, p1Right)) ||
		b.IsWall(geometry.NewBorder(p1Right, p2Right)) ||
		b.IsWall(geometry.NewBorder(p2Right, p2))

	return !(leftConnects && rightConnects)
}

// danglingBorders returns every active wall of b that is dangling,
// sorted for determinism.
func danglingBorders(b board.Board) []geometry.Border {
	var dangling []geometry.Border
	for _, w := range b.Walls() {
		if isDangling(b, w) {
			dangling = append(dangling, w)
		}
	}
	return dangling
}
