package galaxy

import "github.com/katalvlaran/laniakea/geometry"

// Galaxy is a set of grid positions. The zero value is an empty galaxy
// that can be queried, but AddPosition panics on it; New returns an empty
// galaxy that can be filled in place.
type Galaxy struct {
	positions map[geometry.Position]struct{}
}

// New returns an empty galaxy.
func New() Galaxy {
	return Galaxy{positions: make(map[geometry.Position]struct{})}
}

// FromPositions builds a galaxy containing exactly the given positions.
func FromPositions(positions ...geometry.Position) Galaxy {
	g := New()
	for _, p := range positions {
		g.positions[p] = struct{}{}
	}
	return g
}

// FromRectangle builds a galaxy containing every cell of r.
func FromRectangle(r geometry.Rectangle) Galaxy {
	return FromPositions(r.Positions()...)
}
