package board

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/laniakea/geometry"
)

// quad holds which of a vertex's four directions carry a wall bar.
type quad struct {
	top, right, bottom, left bool
}

// glyphToQuad is the reverse of boxGlyph: every two-rune glyph the
// renderer can produce, mapped back to its bar quad.
var glyphToQuad = map[string]quad{
	"  ": {},
	"╴ ": {left: true},
	"╷ ": {bottom: true},
	"┐ ": {bottom: true, left: true},
	"╶─": {right: true},
	"──": {right: true, left: true},
	"┌─": {right: true, bottom: true},
	"┬─": {right: true, bottom: true, left: true},
	"╵ ": {top: true},
	"┘ ": {top: true, left: true},
	"│ ": {top: true, bottom: true},
	"┤ ": {top: true, bottom: true, left: true},
	"└─": {top: true, right: true},
	"┴─": {top: true, right: true, left: true},
	"├─": {top: true, right: true, bottom: true},
	"┼─": {top: true, right: true, bottom: true, left: true},
}

// FromString parses a board rendered by String back into a Board. The
// text's line count fixes the height (lines - 1) and the widest line's
// glyph count fixes the width (glyphs - 1); shorter lines (the
// trailing-space trimming String performs) are treated as a run of blank
// ("no wall") glyphs.
func FromString(text string) (Board, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	height := len(lines) - 1
	if height < 1 {
		return Board{}, fmt.Errorf("board: %w: need at least 2 lines of vertices", ErrMalformedText)
	}

	rows := make([][]rune, len(lines))
	width := 0
	for i, line := range lines {
		rows[i] = []rune(line)
		glyphs := (len(rows[i]) + 1) / 2
		if glyphs > width {
			width = glyphs
		}
	}
	width--
	if width < 1 {
		return Board{}, fmt.Errorf("board: %w: need at least 2 vertex columns", ErrMalformedText)
	}

	glyphAt := func(row, col int) (quad, error) {
		runes := rows[row]
		start := col * 2
		if start >= len(runes) {
			return quad{}, nil
		}
		end := start + 2
		if end > len(runes) {
			end = len(runes)
		}
		g := string(runes[start:end])
		if end-start == 1 {
			g += " "
		}
		q, ok := glyphToQuad[g]
		if !ok {
			return quad{}, fmt.Errorf("board: %w: unrecognized glyph %q at line %d, vertex %d", ErrMalformedText, g, row, col)
		}
		return q, nil
	}

	b, err := New(width, height)
	if err != nil {
		return Board{}, err
	}

	for row := 0; row <= height; row++ {
		for col := 0; col <= width; col++ {
			q, err := glyphAt(row, col)
			if err != nil {
				return Board{}, err
			}
			bottomRight := geometry.NewPosition(row, col)
			bottomLeft := bottomRight.Left()
			topLeft := bottomLeft.Up()
			topRight := bottomRight.Up()

			if q.top {
				setIfInterior(b, topLeft, topRight)
			}
			if q.right {
				setIfInterior(b, topRight, bottomRight)
			}
			if q.bottom {
				setIfInterior(b, bottomLeft, bottomRight)
			}
			if q.left {
				setIfInterior(b, topLeft, bottomLeft)
			}
		}
	}
	return b, nil
}

// setIfInterior marks the border between p1 and p2 as a wall when both
// lie inside the board. Frame borders (and the double-outside corner
// case) are already always true and need no bookkeeping.
func setIfInterior(b Board, p1, p2 geometry.Position) {
	if b.isInside(p1) && b.isInside(p2) {
		b.AddWall(geometry.NewBorder(p1, p2))
	}
}
