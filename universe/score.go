package universe

import (
	"math"

	"github.com/katalvlaran/laniakea/geometry"
)

// straightBorderPenaltyPower is the exponent applied to the length of
// every maximal straight run of galaxy-to-galaxy borders. Long straight
// cuts between galaxies look unnatural, so they are penalized steeply.
const straightBorderPenaltyPower = 3.5

// Score rates the aesthetic quality of the universe: the sum of every
// galaxy's own Score, minus a penalty for long straight borders running
// between galaxies.
func (u Universe) Score() float64 {
	score := 0.0
	for _, g := range u.GetGalaxies() {
		score += g.Score()
	}
	return score - u.straightBorderPenalty()
}

// straightBorderPenalty sums, over every maximal straight run of
// galaxy-to-galaxy borders (vertical runs scanned column by column,
// horizontal runs scanned row by row), the run's length raised to
// straightBorderPenaltyPower.
func (u Universe) straightBorderPenalty() float64 {
	penalty := 0.0

	for col := 0; col < u.width-1; col++ {
		run := 0
		for row := 0; row < u.height; row++ {
			p := geometry.NewPosition(row, col)
			if u.AreNeighbours(p, p.Right()) {
				if run > 0 {
					penalty += math.Pow(float64(run), straightBorderPenaltyPower)
				}
				run = 0
			} else {
				run++
			}
		}
		if run > 0 {
			penalty += math.Pow(float64(run), straightBorderPenaltyPower)
		}
	}

	for row := 0; row < u.height-1; row++ {
		run := 0
		for col := 0; col < u.width; col++ {
			p := geometry.NewPosition(row, col)
			if u.AreNeighbours(p, p.Down()) {
				if run > 0 {
					penalty += math.Pow(float64(run), straightBorderPenaltyPower)
				}
				run = 0
			} else {
				run++
			}
		}
		if run > 0 {
			penalty += math.Pow(float64(run), straightBorderPenaltyPower)
		}
	}

	return penalty
}
