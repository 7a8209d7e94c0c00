package board

import (
	"fmt"

	"github.com/katalvlaran/laniakea/geometry"
)

// Board is a width x height grid's set of active interior walls, stored
// as the two matrices an external renderer consumes directly:
// vertical_borders[row][col] is the wall between cells (row,col) and
// (row,col+1); horizontal_borders[row][col] is the wall between cells
// (row,col) and (row+1,col). Frame walls (the grid's own boundary) are
// implicit and always present; they are never stored.
type Board struct {
	width, height int
	vertical      [][]bool // [height][width-1]
	horizontal    [][]bool // [height-1][width]
}

// New returns a Board of the given dimensions with no interior walls.
func New(width, height int) (Board, error) {
	if width <= 0 || height <= 0 {
		return Board{}, fmt.Errorf("board: New(%d, %d): %w", width, height, ErrInvalidDimensions)
	}
	vertical := make([][]bool, height)
	for row := range vertical {
		vertical[row] = make([]bool, width-1)
	}
	horizontal := make([][]bool, height-1)
	for row := range horizontal {
		horizontal[row] = make([]bool, width)
	}
	return Board{width: width, height: height, vertical: vertical, horizontal: horizontal}, nil
}

// FromBorders builds a Board from a set of borders (as returned by
// universe.Universe.Borders): every interior border present in borders
// becomes an active wall; frame borders are ignored, since the frame is
// always implicitly walled.
func FromBorders(width, height int, borders []geometry.Border) (Board, error) {
	b, err := New(width, height)
	if err != nil {
		return Board{}, err
	}
	for _, border := range borders {
		b.AddWall(border)
	}
	return b, nil
}

// Width returns the board's width.
func (b Board) Width() int { return b.width }

// Height returns the board's height.
func (b Board) Height() int { return b.height }

// isInside reports whether p is a cell within the board's bounds.
func (b Board) isInside(p geometry.Position) bool {
	return p.Row >= 0 && p.Row < b.height && p.Col >= 0 && p.Col < b.width
}

// interior reports whether border lies strictly between two in-bounds
// cells, and if so returns which matrix holds it and its index.
func (b Board) interior(border geometry.Border) (vertical bool, row, col int, ok bool) {
	if !b.isInside(border.P1) || !b.isInside(border.P2) {
		return false, 0, 0, false
	}
	if border.IsVertical() {
		return true, border.P1.Row, border.P1.Col, true
	}
	return false, border.P1.Row, border.P1.Col, true
}

// IsWall reports whether border is an active wall: every frame border
// (one endpoint outside the grid) is always a wall; an interior border is
// a wall iff it was added.
func (b Board) IsWall(border geometry.Border) bool {
	vertical, row, col, ok := b.interior(border)
	if !ok {
		return true
	}
	if vertical {
		return b.vertical[row][col]
	}
	return b.horizontal[row][col]
}

// AddWall marks border as an active wall. A frame border is already
// always a wall and is left untouched.
func (b Board) AddWall(border geometry.Border) {
	b.setWall(border, true)
}

// RemoveWall clears border. A frame border cannot be removed and is left
// untouched.
func (b Board) RemoveWall(border geometry.Border) {
	b.setWall(border, false)
}

// ToggleWall flips border's active state. A frame border is left
// untouched.
func (b Board) ToggleWall(border geometry.Border) {
	vertical, row, col, ok := b.interior(border)
	if !ok {
		return
	}
	if vertical {
		b.vertical[row][col] = !b.vertical[row][col]
	} else {
		b.horizontal[row][col] = !b.horizontal[row][col]
	}
}

func (b Board) setWall(border geometry.Border, value bool) {
	vertical, row, col, ok := b.interior(border)
	if !ok {
		return
	}
	if vertical {
		b.vertical[row][col] = value
	} else {
		b.horizontal[row][col] = value
	}
}

// Walls returns every active wall, including the implicit frame, sorted
// for determinism — the same shape universe.Universe.Borders returns.
// The report package's dangling-wall check walks this list.
func (b Board) Walls() []geometry.Border {
	var walls []geometry.Border
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			p := geometry.NewPosition(row, col)
			right := p.Right()
			if b.IsWall(geometry.NewBorder(p, right)) {
				walls = append(walls, geometry.NewBorder(p, right))
			}
			down := p.Down()
			if b.IsWall(geometry.NewBorder(p, down)) {
				walls = append(walls, geometry.NewBorder(p, down))
			}
			if col == 0 {
				walls = append(walls, geometry.NewBorder(p, p.Left()))
			}
			if row == 0 {
				walls = append(walls, geometry.NewBorder(p, p.Up()))
			}
		}
	}
	sortBorders(walls)
	return walls
}
