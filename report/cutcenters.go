package report

import (
	"github.com/katalvlaran/laniakea/board"
	"github.com/katalvlaran/laniakea/geometry"
)

// isCenterCut reports whether an active wall bisects center's footprint:
// a cell-placed center can never be cut (its footprint is a single
// cell); an edge-placed center is cut iff the edge it sits on is itself
// a wall; a vertex-placed center is cut iff any of the four borders
// between its four footprint cells is a wall.
func isCenterCut(b board.Board, center geometry.Position) bool {
	placement := geometry.Classify(center)
	switch placement.Kind {
	case geometry.PlacementVerticalEdge, geometry.PlacementHorizontalEdge:
		return b.IsWall(placement.Edge)
	case geometry.PlacementVertex:
		r, c := placement.Corners.MinRow, placement.Corners.MinCol
		topLeft := geometry.NewPosition(r, c)
		topRight := geometry.NewPosition(r, c+1)
		bottomLeft := geometry.NewPosition(r+1, c)
		bottomRight := geometry.NewPosition(r+1, c+1)
		return b.IsWall(geometry.NewBorder(topLeft, topRight)) ||
			b.IsWall(geometry.NewBorder(topRight, bottomRight)) ||
			b.IsWall(geometry.NewBorder(bottomRight, bottomLeft)) ||
			b.IsWall(geometry.NewBorder(topLeft, bottomLeft))
	default:
		return false
	}
}
