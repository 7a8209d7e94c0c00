package objective

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/laniakea/geometry"
)

// Center is one entry of an Objective: a half-step center position,
// optionally carrying a target galaxy size. Size is zero when unset;
// since a real galaxy can never have size zero, the zero value doubles
// safely as the "no target size" sentinel.
type Center struct {
	Position geometry.Position
	Size     int
}

// HasSize reports whether this center carries a target size.
func (c Center) HasSize() bool {
	return c.Size > 0
}

// Option configures an Objective via functional arguments.
type Option func(*config)

type config struct {
	walls []geometry.Border
}

// WithWalls pre-places the given walls as known-true borders before the
// solver begins propagation.
func WithWalls(walls ...geometry.Border) Option {
	return func(c *config) {
		c.walls = append(c.walls, walls...)
	}
}

// Objective is the public statement of a puzzle: the grid dimensions, a
// set of centers, and any pre-placed walls.
type Objective struct {
	width, height int
	centers       []Center
	walls         []geometry.Border
}

// New validates and builds an Objective. It fails with ErrInvalidDimensions
// if width or height isn't positive, ErrCenterOutOfBounds if any center's
// footprint falls outside the grid, or ErrOverlappingFootprints if two
// centers' footprints share a cell.
func New(width, height int, centers []Center, opts ...Option) (Objective, error) {
	if width <= 0 || height <= 0 {
		return Objective{}, fmt.Errorf("objective: New(%d, %d): %w", width, height, ErrInvalidDimensions)
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	occupied := make(map[geometry.Position]geometry.Position, len(centers))
	for _, c := range centers {
		for _, cell := range geometry.FootprintCells(c.Position) {
			if cell.Row < 0 || cell.Row >= height || cell.Col < 0 || cell.Col >= width {
				return Objective{}, fmt.Errorf("objective: center %v: %w", c.Position, ErrCenterOutOfBounds)
			}
			if owner, taken := occupied[cell]; taken && owner != c.Position {
				return Objective{}, fmt.Errorf("objective: centers %v and %v: %w", owner, c.Position, ErrOverlappingFootprints)
			}
			occupied[cell] = c.Position
		}
	}

	sorted := append([]Center(nil), centers...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Position.Less(sorted[j].Position) })

	walls := append([]geometry.Border(nil), cfg.walls...)
	sort.Slice(walls, func(i, j int) bool { return walls[i].Less(walls[j]) })

	return Objective{width: width, height: height, centers: sorted, walls: walls}, nil
}

// Width returns the objective's grid width.
func (o Objective) Width() int { return o.width }

// Height returns the objective's grid height.
func (o Objective) Height() int { return o.height }

// Centers returns the objective's centers, sorted by position for
// determinism.
func (o Objective) Centers() []Center {
	return append([]Center(nil), o.centers...)
}

// Count returns the number of centers — the solver's C, the upper bound
// on galaxy identifiers a cell may carry.
func (o Objective) Count() int {
	return len(o.centers)
}

// Walls returns the objective's pre-placed walls, sorted for determinism.
func (o Objective) Walls() []geometry.Border {
	return append([]geometry.Border(nil), o.walls...)
}
