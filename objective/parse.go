package objective

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FromString parses an objective rendered by String: the line count fixes
// the height ((lines-1)/2) and the first line's rune count fixes the
// width ((runes-1)/4); every '●' becomes a center at its spot on the
// doubled lattice. The result passes through New's validation.
func FromString(text string) (Objective, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) < 3 || len(lines)%2 == 0 {
		return Objective{}, fmt.Errorf("objective: %w: need an odd number of lines, at least 3", ErrMalformedText)
	}
	height := (len(lines) - 1) / 2

	runes := utf8.RuneCountInString(lines[0])
	if runes < 5 || (runes-1)%4 != 0 {
		return Objective{}, fmt.Errorf("objective: %w: frame line must span 4*width+1 columns", ErrMalformedText)
	}
	width := (runes - 1) / 4

	return New(width, height, centersFromText(lines))
}
