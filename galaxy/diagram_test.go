package galaxy

import (
	"strings"

	"github.com/katalvlaran/laniakea/geometry"
)

// fromDiagram builds a galaxy from a cell diagram, where every non-space
// rune marks a cell. Surrounding blank lines and common indentation are
// stripped, so diagrams can be laid out freely inside raw strings. The
// resulting galaxy is not necessarily valid.
func fromDiagram(diagram string) Galaxy {
	lines := strings.Split(diagram, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		leading := len(line) - len(strings.TrimLeft(line, " "))
		if indent == -1 || leading < indent {
			indent = leading
		}
	}

	g := New()
	for row, line := range lines {
		for col, r := range []rune(line) {
			if r != ' ' {
				g.AddPosition(geometry.NewPosition(row, col-indent))
			}
		}
	}
	return g
}
