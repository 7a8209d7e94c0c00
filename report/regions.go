package report

import (
	"sort"

	"github.com/katalvlaran/laniakea/board"
	"github.com/katalvlaran/laniakea/galaxy"
	"github.com/katalvlaran/laniakea/geometry"
)

// regionsOf flood-fills the board across its active walls, grouping
// every cell into the connected region it belongs to. Walked with an
// explicit FIFO queue, the same non-recursive traversal shape used
// throughout this module wherever a BFS is needed (see
// galaxy.Galaxy.HammingDistances, solver's reachability pruning).
func regionsOf(b board.Board) map[geometry.Position]galaxy.Galaxy {
	width, height := b.Width(), b.Height()
	regionID := make(map[geometry.Position]int, width*height)
	var regionCells [][]geometry.Position

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			start := geometry.NewPosition(row, col)
			if _, seen := regionID[start]; seen {
				continue
			}
			id := len(regionCells)
			regionID[start] = id
			cells := []geometry.Position{start}
			queue := []geometry.Position{start}
			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				for _, n := range inBoundsNeighbours(p, width, height) {
					if _, seen := regionID[n]; seen {
						continue
					}
					if b.IsWall(geometry.NewBorder(p, n)) {
						continue
					}
					regionID[n] = id
					cells = append(cells, n)
					queue = append(queue, n)
				}
			}
			regionCells = append(regionCells, cells)
		}
	}

	byPosition := make(map[geometry.Position]galaxy.Galaxy, width*height)
	for _, cells := range regionCells {
		g := galaxy.FromPositions(cells...)
		for _, p := range cells {
			byPosition[p] = g
		}
	}
	return byPosition
}

func inBoundsNeighbours(p geometry.Position, width, height int) []geometry.Position {
	var neighbours []geometry.Position
	for _, n := range p.Adjacent() {
		if n.Row >= 0 && n.Row < height && n.Col >= 0 && n.Col < width {
			neighbours = append(neighbours, n)
		}
	}
	return neighbours
}

func sortPositions(positions []geometry.Position) {
	sort.Slice(positions, func(i, j int) bool { return positions[i].Less(positions[j]) })
}
