package report

import (
	"github.com/katalvlaran/laniakea/board"
	"github.com/katalvlaran/laniakea/galaxy"
	"github.com/katalvlaran/laniakea/geometry"
	"github.com/katalvlaran/laniakea/objective"
)

// Of classifies every shortcoming of candidate against obj: dangling
// borders, cut centers, incorrect galaxy sizes, asymmetric centers, and
// centerless cells (see ErrorReport).
func Of(candidate board.Board, obj objective.Objective) ErrorReport {
	regions := regionsOf(candidate)

	// regionOf picks the region containing a single representative cell
	// of a center's footprint — any one suffices, since the region
	// flood-fill already groups a cell's entire reachable set together.
	regionOf := func(center geometry.Position) galaxy.Galaxy {
		representative := geometry.FootprintCells(center)[0]
		return regions[representative]
	}

	var report ErrorReport
	report.DanglingBorders = danglingBorders(candidate)

	var cutCenters []geometry.Position
	var incorrectSizes []SizeMismatch
	var asymmetricCenters []geometry.Position
	centerfulCells := make(map[geometry.Position]struct{})

	for _, c := range obj.Centers() {
		if isCenterCut(candidate, c.Position) {
			cutCenters = append(cutCenters, c.Position)
		}

		region := regionOf(c.Position)
		for _, p := range region.Positions() {
			centerfulCells[p] = struct{}{}
		}

		if c.HasSize() && region.Size() != c.Size {
			incorrectSizes = append(incorrectSizes, SizeMismatch{
				Center:   c.Position,
				Expected: c.Size,
				Actual:   region.Size(),
			})
		}

		if region.Center() != c.Position || !region.IsValid() {
			asymmetricCenters = append(asymmetricCenters, c.Position)
		}
	}

	var centerlessCells []geometry.Position
	for row := 0; row < candidate.Height(); row++ {
		for col := 0; col < candidate.Width(); col++ {
			p := geometry.NewPosition(row, col)
			if _, ok := centerfulCells[p]; !ok {
				centerlessCells = append(centerlessCells, p)
			}
		}
	}

	sortPositions(cutCenters)
	sortPositions(asymmetricCenters)
	sortPositions(centerlessCells)

	report.CutCenters = cutCenters
	report.IncorrectSizes = incorrectSizes
	report.AsymmetricCenters = asymmetricCenters
	report.CenterlessCells = centerlessCells

	return report
}
