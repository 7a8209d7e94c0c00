package solver

import (
	"github.com/katalvlaran/laniakea/geometry"
	"github.com/katalvlaran/laniakea/objective"
)

// galaxyID is a center's index into state.centers.
type galaxyID = int

// state is the solver's mutable working state: a border -> known-value
// map (an absent border is unknown) and, per cell, the set of galaxy
// identifiers it might still belong to. The resulting wall set is
// sorted before it ever leaves the package, so unordered map iteration
// inside propagation never leaks into output.
type state struct {
	width, height int
	centers       []objective.Center
	borders       map[geometry.Border]bool
	possible      map[geometry.Position]map[galaxyID]struct{}
}

// newState builds the initial state for obj: every frame border and
// every pre-placed wall is known true; every cell can belong to any
// center, except the cells in a center's own footprint, which can only
// belong to that center.
func newState(obj objective.Objective) *state {
	width, height := obj.Width(), obj.Height()
	centers := obj.Centers()

	borders := make(map[geometry.Border]bool)
	for _, wall := range obj.Walls() {
		borders[wall] = true
	}
	for col := 0; col < width; col++ {
		borders[geometry.Up(geometry.NewPosition(0, col))] = true
		borders[geometry.Down(geometry.NewPosition(height-1, col))] = true
	}
	for row := 0; row < height; row++ {
		borders[geometry.Left(geometry.NewPosition(row, 0))] = true
		borders[geometry.Right(geometry.NewPosition(row, width-1))] = true
	}

	possible := make(map[geometry.Position]map[galaxyID]struct{}, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			ids := make(map[galaxyID]struct{}, len(centers))
			for id := range centers {
				ids[id] = struct{}{}
			}
			possible[geometry.NewPosition(row, col)] = ids
		}
	}
	for id, c := range centers {
		for _, p := range geometry.FootprintCells(c.Position) {
			restrictTo(possible[p], id)
		}
	}

	return &state{width: width, height: height, centers: centers, borders: borders, possible: possible}
}

// restrictTo removes every id from ids except keep.
func restrictTo(ids map[galaxyID]struct{}, keep galaxyID) {
	for id := range ids {
		if id != keep {
			delete(ids, id)
		}
	}
}

// clone returns an independent deep copy of s, used by the case-split
// rule to explore an assumption without disturbing the original.
func (s *state) clone() *state {
	borders := make(map[geometry.Border]bool, len(s.borders))
	for border, value := range s.borders {
		borders[border] = value
	}
	possible := make(map[geometry.Position]map[galaxyID]struct{}, len(s.possible))
	for p, ids := range s.possible {
		copied := make(map[galaxyID]struct{}, len(ids))
		for id := range ids {
			copied[id] = struct{}{}
		}
		possible[p] = copied
	}
	return &state{width: s.width, height: s.height, centers: s.centers, borders: borders, possible: possible}
}

// setBorder records border's value if it wasn't already known, or
// reports a contradiction if it disagrees with what was already known.
func (s *state) setBorder(border geometry.Border, value bool) (changed, contradiction bool) {
	if existing, ok := s.borders[border]; ok {
		return false, existing != value
	}
	s.borders[border] = value
	return true, false
}

// singleID reports the one galaxy identifier p is certainly a member of,
// if its possibility set has narrowed to exactly one.
func (s *state) singleID(p geometry.Position) (galaxyID, bool) {
	ids := s.possible[p]
	if len(ids) != 1 {
		return 0, false
	}
	for id := range ids {
		return id, true
	}
	return 0, false
}

// allPositions returns every cell of the grid in row-major order.
func (s *state) allPositions() []geometry.Position {
	positions := make([]geometry.Position, 0, s.width*s.height)
	for row := 0; row < s.height; row++ {
		for col := 0; col < s.width; col++ {
			positions = append(positions, geometry.NewPosition(row, col))
		}
	}
	return positions
}
