package galaxy

import "github.com/katalvlaran/laniakea/geometry"

// Rectangles greedily decomposes the galaxy into rectangles: repeatedly find the single largest axis-aligned rectangle
// that fits entirely within the remaining positions, remove it, and
// repeat. Uses the classic largest-rectangle-in-histogram technique,
// treating each row as extending the column histograms built up from the
// rows above.
func (g Galaxy) Rectangles() []geometry.Rectangle {
	remaining := make(map[geometry.Position]struct{}, g.Size())
	for p := range g.positions {
		remaining[p] = struct{}{}
	}
	return rectanglesInternal(remaining)
}

func rectanglesInternal(positions map[geometry.Position]struct{}) []geometry.Rectangle {
	if len(positions) == 0 {
		return nil
	}

	minRow, maxRow := 0, 0
	minCol, maxCol := 0, 0
	first := true
	for p := range positions {
		if first {
			minRow, maxRow = p.Row, p.Row
			minCol, maxCol = p.Col, p.Col
			first = false
			continue
		}
		if p.Row < minRow {
			minRow = p.Row
		}
		if p.Row > maxRow {
			maxRow = p.Row
		}
		if p.Col < minCol {
			minCol = p.Col
		}
		if p.Col > maxCol {
			maxCol = p.Col
		}
	}
	maxRow++
	maxCol++

	width := maxCol - minCol
	height := make([]int, width)
	left := make([]int, width)
	right := make([]int, width)
	for i := range left {
		left[i] = minCol
		right[i] = maxCol
	}

	var best geometry.Rectangle
	contains := func(row, col int) bool {
		_, ok := positions[geometry.NewPosition(row, col)]
		return ok
	}

	for row := minRow; row < maxRow; row++ {
		for col := minCol; col < maxCol; col++ {
			index := col - minCol
			if contains(row, col) {
				height[index]++
			} else {
				height[index] = 0
			}
		}
		currentLeft := minCol
		for col := minCol; col < maxCol; col++ {
			index := col - minCol
			if contains(row, col) {
				if currentLeft > left[index] {
					left[index] = currentLeft
				}
			} else {
				left[index] = 0
				currentLeft = col + 1
			}
		}
		currentRight := maxCol
		for col := maxCol - 1; col >= minCol; col-- {
			index := col - minCol
			if contains(row, col) {
				if currentRight < right[index] {
					right[index] = currentRight
				}
			} else {
				right[index] = maxCol
				currentRight = col
			}
		}
		for col := minCol; col < maxCol; col++ {
			index := col - minCol
			rect := geometry.Rectangle{
				MinRow: row - height[index] + 1,
				MaxRow: row + 1,
				MinCol: left[index],
				MaxCol: right[index],
			}
			if rect.Area() > best.Area() {
				best = rect
			}
		}
	}

	for _, p := range best.Positions() {
		delete(positions, p)
	}
	rectangles := rectanglesInternal(positions)
	rectangles = append(rectangles, best)
	return rectangles
}
