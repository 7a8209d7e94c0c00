package galaxy

import (
	"sort"
	"strings"

	"github.com/katalvlaran/laniakea/geometry"
)

// Tree is a forest of parent pointers over a set of positions, used to
// represent a galaxy's spanning tree. A position with a nil parent is a
// root.
type Tree struct {
	parents map[geometry.Position]*geometry.Position
}

// NewTree returns an empty Tree.
func NewTree() Tree {
	return Tree{parents: make(map[geometry.Position]*geometry.Position)}
}

// Insert records position's parent, or marks it a root if parent is nil.
func (t Tree) Insert(position geometry.Position, parent *geometry.Position) {
	t.parents[position] = parent
}

// IsValid reports whether every recorded parent is itself a position in
// the tree.
func (t Tree) IsValid() bool {
	for _, parent := range t.parents {
		if parent == nil {
			continue
		}
		if _, ok := t.parents[*parent]; !ok {
			return false
		}
	}
	return true
}

// Contains reports whether position is part of the tree.
func (t Tree) Contains(position geometry.Position) bool {
	_, ok := t.parents[position]
	return ok
}

// GetParent returns position's parent, if it has one.
func (t Tree) GetParent(position geometry.Position) (geometry.Position, bool) {
	parent, ok := t.parents[position]
	if !ok || parent == nil {
		return geometry.Position{}, false
	}
	return *parent, true
}

// Positions returns every position in the tree, sorted for determinism.
func (t Tree) Positions() []geometry.Position {
	positions := make([]geometry.Position, 0, len(t.parents))
	for p := range t.parents {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].Less(positions[j]) })
	return positions
}

// Size returns the number of positions in the tree.
func (t Tree) Size() int {
	return len(t.parents)
}

// Each calls fn once per position in the tree, in no particular order,
// passing the position and its parent (ok is false for roots).
func (t Tree) Each(fn func(position geometry.Position, parent geometry.Position, ok bool)) {
	for p, parent := range t.parents {
		if parent == nil {
			fn(p, geometry.Position{}, false)
		} else {
			fn(p, *parent, true)
		}
	}
}

// String renders the tree as a box-drawing diagram: a border is drawn
// wherever a position's containment changes across an edge, and wherever a
// parent link does not cross that edge (a connected pair of tree nodes
// that aren't parent/child of each other still gets a wall between them).
func (t Tree) String() string {
	positions := t.Positions()
	if len(positions) == 0 {
		return ""
	}
	bounds := geometry.BoundingRectangle(positions)

	contains := func(p geometry.Position) bool { return t.Contains(p) }
	parentOf := func(p geometry.Position) (geometry.Position, bool) { return t.GetParent(p) }

	var b strings.Builder
	for row := bounds.MinRow; row <= bounds.MaxRow; row++ {
		var line strings.Builder
		for col := bounds.MinCol; col <= bounds.MaxCol; col++ {
			bottomRight := geometry.NewPosition(row, col)
			bottomLeft := bottomRight.Left()
			topLeft := bottomLeft.Up()
			topRight := bottomRight.Up()

			hasTL, hasTR := contains(topLeft), contains(topRight)
			hasBL, hasBR := contains(bottomLeft), contains(bottomRight)

			topBorder := hasTL != hasTR
			leftBorder := hasTL != hasBL
			rightBorder := hasTR != hasBR
			bottomBorder := hasBL != hasBR

			tlParent, tlOK := parentOf(topLeft)
			trParent, trOK := parentOf(topRight)
			blParent, blOK := parentOf(bottomLeft)
			brParent, brOK := parentOf(bottomRight)

			topParent := (hasTL && !(tlOK && tlParent == topRight)) &&
				(hasTR && !(trOK && trParent == topLeft))
			leftParent := (hasTL && !(tlOK && tlParent == bottomLeft)) &&
				(hasBL && !(blOK && blParent == topLeft))
			rightParent := (hasTR && !(trOK && trParent == bottomRight)) &&
				(hasBR && !(brOK && brParent == topRight))
			bottomParent := (hasBL && !(blOK && blParent == bottomRight)) &&
				(hasBR && !(brOK && brParent == bottomLeft))

			barTop := topBorder || topParent
			barLeft := leftBorder || leftParent
			barRight := rightBorder || rightParent
			barBottom := bottomBorder || bottomParent

			line.WriteString(boxGlyph(barTop, barRight, barBottom, barLeft))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		if row != bounds.MaxRow {
			b.WriteByte('\n')
		}
	}
	return strings.TrimRight(b.String(), "\n ")
}

// boxGlyph returns the two-character box-drawing glyph for a grid vertex
// with bars in the given directions, matching the 16-entry table used by
// both Galaxy and Board rendering.
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
