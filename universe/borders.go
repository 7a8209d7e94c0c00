package universe

import (
	"sort"

	"github.com/katalvlaran/laniakea/geometry"
)

// Borders returns every border implied by the universe: an interior
// border wherever two in-bounds adjacent cells carry different galaxy
// ids, plus every frame border (one endpoint outside the grid), sorted
// for determinism. This is the derived view external collaborators (a
// board renderer, the solver's round-trip test) read the universe
// through.
func (u Universe) Borders() []geometry.Border {
	seen := make(map[geometry.Border]struct{})
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			p := geometry.NewPosition(row, col)
			right := p.Right()
			if u.IsInside(right) {
				if !u.AreNeighbours(p, right) {
					seen[geometry.NewBorder(p, right)] = struct{}{}
				}
			} else {
				seen[geometry.NewBorder(p, right)] = struct{}{}
			}
			down := p.Down()
			if u.IsInside(down) {
				if !u.AreNeighbours(p, down) {
					seen[geometry.NewBorder(p, down)] = struct{}{}
				}
			} else {
				seen[geometry.NewBorder(p, down)] = struct{}{}
			}
			if col == 0 {
				seen[geometry.NewBorder(p, p.Left())] = struct{}{}
			}
			if row == 0 {
				seen[geometry.NewBorder(p, p.Up())] = struct{}{}
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
