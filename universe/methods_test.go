package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/laniakea/galaxy"
	"github.com/katalvlaran/laniakea/geometry"
)

func p(row, col int) geometry.Position { return geometry.NewPosition(row, col) }

func TestNew(t *testing.T) {
	u := New(2, 2)
	assert.Equal(t, 2, u.Width())
	assert.Equal(t, 2, u.Height())
	assert.Equal(t, 0, u.GalaxyID(p(0, 0)))
	assert.Equal(t, 1, u.GalaxyID(p(0, 1)))
	assert.Equal(t, 2, u.GalaxyID(p(1, 0)))
	assert.Equal(t, 3, u.GalaxyID(p(1, 1)))
	assert.True(t, u.IsValid())
}

func TestClone_isIndependentOfTheOriginal(t *testing.T) {
	u := New(2, 2)
	clone := u.Clone()
	clone.SetGalaxyID(p(0, 0), 99)
	assert.Equal(t, 0, u.GalaxyID(p(0, 0)))
	assert.Equal(t, 99, clone.GalaxyID(p(0, 0)))
}

func TestAreNeighbours(t *testing.T) {
	u := New(3, 1)
	u.SetGalaxyID(p(0, 1), u.GalaxyID(p(0, 0)))
	assert.True(t, u.AreNeighbours(p(0, 0), p(0, 1)))
	assert.False(t, u.AreNeighbours(p(0, 0), p(0, 2)))
	assert.False(t, u.AreNeighbours(p(0, 0), p(5, 5)))
}

func TestAdjacentPositions(t *testing.T) {
	u := New(3, 3)
	assert.ElementsMatch(t, []geometry.Position{p(0, 1), p(1, 0)}, u.AdjacentPositions(p(0, 0)))
	assert.ElementsMatch(t, []geometry.Position{
		p(0, 1), p(2, 1), p(1, 0), p(1, 2),
	}, u.AdjacentPositions(p(1, 1)))
}

func TestNeighboursAndNonNeighbours(t *testing.T) {
	u := New(2, 1)
	u.SetGalaxyID(p(0, 1), u.GalaxyID(p(0, 0)))
	assert.Equal(t, []geometry.Position{p(0, 1)}, u.Neighbours(p(0, 0)))
	assert.Empty(t, u.AdjacentNonNeighbours(p(0, 0)))

	solo := New(2, 1)
	assert.Empty(t, solo.Neighbours(p(0, 0)))
	assert.Equal(t, []geometry.Position{p(0, 1)}, solo.AdjacentNonNeighbours(p(0, 0)))
}

func TestGetGalaxyAndGetGalaxies(t *testing.T) {
	u := New(2, 2)
	u.SetGalaxyID(p(0, 1), u.GalaxyID(p(0, 0)))
	u.SetGalaxyID(p(1, 0), u.GalaxyID(p(0, 0)))
	u.SetGalaxyID(p(1, 1), u.GalaxyID(p(0, 0)))

	g := u.GetGalaxy(p(1, 1))
	assert.Equal(t, 4, g.Size())
	assert.True(t, g.IsValid())

	assert.Len(t, u.GetGalaxies(), 1)
}

func TestRemoveAllNeighbours(t *testing.T) {
	u := New(2, 1)
	u.SetGalaxyID(p(0, 1), u.GalaxyID(p(0, 0)))
	assert.True(t, u.AreNeighbours(p(0, 0), p(0, 1)))

	u.RemoveAllNeighbours(p(0, 1))
	assert.False(t, u.AreNeighbours(p(0, 0), p(0, 1)))
	assert.Equal(t, 2, u.GalaxyID(p(0, 1)))

	u.RemoveAllNeighbours(p(0, 0))
	assert.Equal(t, 3, u.GalaxyID(p(0, 0)))
}

func TestMakeNeighbours(t *testing.T) {
	u := New(2, 1)
	u.MakeNeighbours(p(0, 0), p(0, 1))
	assert.True(t, u.AreNeighbours(p(0, 0), p(0, 1)))
}

func TestRemovePositionsFromGalaxy_shrinksSymmetrically(t *testing.T) {
	// A 4-in-a-row galaxy stays valid and symmetric once its leading cell
	// is peeled off, so the other three stay together as one galaxy.
	u := New(4, 1)
	u.SetGalaxyID(p(0, 1), u.GalaxyID(p(0, 0)))
	u.SetGalaxyID(p(0, 2), u.GalaxyID(p(0, 0)))
	u.SetGalaxyID(p(0, 3), u.GalaxyID(p(0, 0)))
	g := u.GetGalaxy(p(0, 0))
	assert.True(t, g.IsValid())

	u.RemovePositionsFromGalaxy(g, []geometry.Position{p(0, 0)})

	assert.False(t, u.AreNeighbours(p(0, 0), p(0, 1)))
	assert.True(t, u.AreNeighbours(p(0, 1), p(0, 2)))
	assert.True(t, u.AreNeighbours(p(0, 2), p(0, 3)))
}

func TestRemovePositionsFromGalaxy_breaksUpOnInvalidRemainder(t *testing.T) {
	// Removing one corner of a 2x2 block also removes its mirror (the
	// opposite corner) to preserve symmetry, which leaves a disconnected
	// diagonal pair — invalid, so the whole remainder is broken into
	// singles.
	u := New(2, 2)
	u.SetGalaxyID(p(0, 1), u.GalaxyID(p(0, 0)))
	u.SetGalaxyID(p(1, 0), u.GalaxyID(p(0, 0)))
	u.SetGalaxyID(p(1, 1), u.GalaxyID(p(0, 0)))
	g := u.GetGalaxy(p(0, 0))
	assert.True(t, g.IsValid())

	u.RemovePositionsFromGalaxy(g, []geometry.Position{p(0, 0)})

	assert.False(t, u.AreNeighbours(p(0, 1), p(1, 0)))
	assert.False(t, u.AreNeighbours(p(0, 0), p(1, 1)))
}

func TestIsValid(t *testing.T) {
	assert.True(t, New(3, 3).IsValid())

	u := New(3, 1)
	u.SetGalaxyID(p(0, 2), u.GalaxyID(p(0, 0)))
	assert.False(t, u.IsValid())
}

func TestFromGalaxies(t *testing.T) {
	g := galaxy.FromPositions(p(0, 0), p(0, 1))
	u := FromGalaxies([]galaxy.Galaxy{g})
	assert.Equal(t, 2, u.Width())
	assert.Equal(t, 1, u.Height())
	assert.True(t, u.AreNeighbours(p(0, 0), p(0, 1)))
}
