package universe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_singleCellIsZero(t *testing.T) {
	u := New(1, 1)
	assert.Equal(t, 0.0, u.Score())
}

func TestStraightBorderPenalty_noBordersIsZero(t *testing.T) {
	u := New(3, 3)
	for _, p := range u.Positions() {
		u.SetGalaxyID(p, 0)
	}
	assert.Equal(t, 0.0, u.straightBorderPenalty())
}

func TestStraightBorderPenalty_longRunCostsMoreThanSplitRuns(t *testing.T) {
	// Two columns, 4 rows. straight keeps the same two ids the whole way
	// down, so the vertical border between the columns is one
	// uninterrupted run of length 4. split merges the two columns' ids
	// for just one row, breaking that run into a 2-run and a 1-run (at
	// the cost of two length-1 horizontal borders where the merged row
	// meets its neighbours) — a strictly cheaper arrangement.
	straight := New(2, 4)
	for row := 0; row < 4; row++ {
		straight.SetGalaxyID(p(row, 0), 100)
		straight.SetGalaxyID(p(row, 1), 200)
	}
	straightPenalty := straight.straightBorderPenalty()
	assert.Equal(t, math.Pow(4, straightBorderPenaltyPower), straightPenalty)

	split := New(2, 4)
	split.SetGalaxyID(p(0, 0), 100)
	split.SetGalaxyID(p(0, 1), 200)
	split.SetGalaxyID(p(1, 0), 100)
	split.SetGalaxyID(p(1, 1), 200)
	split.SetGalaxyID(p(2, 0), 100)
	split.SetGalaxyID(p(2, 1), 100)
	split.SetGalaxyID(p(3, 0), 100)
	split.SetGalaxyID(p(3, 1), 200)
	splitPenalty := split.straightBorderPenalty()
	expectedSplit := math.Pow(2, straightBorderPenaltyPower) + 3*math.Pow(1, straightBorderPenaltyPower)
	assert.Equal(t, expectedSplit, splitPenalty)

	assert.Greater(t, straightPenalty, splitPenalty)
}
