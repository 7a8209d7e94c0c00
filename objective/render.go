package objective

import (
	"strings"

	"github.com/katalvlaran/laniakea/geometry"
)

// String renders the objective in its textual form: the grid's frame and
// interior vertices drawn with box glyphs and '·' marks, and a '●' at
// every center's spot on the doubled lattice — a half-step position
// (h, c) lands on text line h+1, character column 2c+2. Target sizes and
// pre-placed walls have no textual form and are not rendered.
func (o Objective) String() string {
	lines := make([][]rune, 2*o.height+1)
	for i := range lines {
		lines[i] = blankObjectiveLine(i, o.width, o.height)
	}
	for _, c := range o.centers {
		lines[c.Position.Row+1][2*c.Position.Col+2] = '●'
	}

	var b strings.Builder
	for i, line := range lines {
		b.WriteString(string(line))
		if i != len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// blankObjectiveLine builds text line i of a width x height objective
// with no centers on it: the top and bottom frame, an interior vertex
// line ('├', '·' marks, '┤'), or a cell line ('│' walls).
func blankObjectiveLine(i, width, height int) []rune {
	line := make([]rune, 4*width+1)
	for j := range line {
		line[j] = ' '
	}
	switch {
	case i == 0:
		for j := range line {
			line[j] = '─'
		}
		for col := 0; col <= width; col++ {
			line[4*col] = '┬'
		}
		line[0] = '┌'
		line[4*width] = '┐'
	case i == 2*height:
		for j := range line {
			line[j] = '─'
		}
		for col := 0; col <= width; col++ {
			line[4*col] = '┴'
		}
		line[0] = '└'
		line[4*width] = '┘'
	case i%2 == 0:
		line[0] = '├'
		line[4*width] = '┤'
		for col := 1; col < width; col++ {
			line[4*col] = '·'
		}
	default:
		line[0] = '│'
		line[4*width] = '│'
	}
	return line
}

// centersFromText scans objective text for '●' marks and converts each
// to its half-step position.
func centersFromText(lines []string) []Center {
	var centers []Center
	for i, line := range lines {
		for j, r := range []rune(line) {
			if r == '●' {
				centers = append(centers, Center{
					Position: geometry.NewPosition(i-1, (j-2)/2),
				})
			}
		}
	}
	return centers
}
