package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/laniakea/geometry"
	"github.com/katalvlaran/laniakea/objective"
)

func TestNewState_seedsFrameAndWallsAsKnownTrue(t *testing.T) {
	obj, err := objective.New(2, 2, []objective.Center{
		{Position: geometry.NewPosition(1, 0)}, // left column: (0,0),(1,0)
		{Position: geometry.NewPosition(1, 2)}, // right column: (0,1),(1,1)
	}, objective.WithWalls(geometry.Right(geometry.NewPosition(0, 0))))
	require.NoError(t, err)

	s := newState(obj)

	assert.True(t, s.borders[geometry.Up(geometry.NewPosition(0, 0))])
	assert.True(t, s.borders[geometry.Left(geometry.NewPosition(0, 0))])
	assert.True(t, s.borders[geometry.Down(geometry.NewPosition(1, 0))])
	assert.True(t, s.borders[geometry.Right(geometry.NewPosition(1, 1))])
	assert.True(t, s.borders[geometry.Right(geometry.NewPosition(0, 0))])

	id0, ok := s.singleID(geometry.NewPosition(0, 0))
	assert.True(t, ok)
	assert.Equal(t, 0, id0)
	id1, ok := s.singleID(geometry.NewPosition(0, 1))
	assert.True(t, ok)
	assert.Equal(t, 1, id1)
}

func TestState_cloneIsIndependent(t *testing.T) {
	obj, err := objective.New(2, 1, []objective.Center{
		{Position: geometry.NewPosition(0, 0)},
		{Position: geometry.NewPosition(0, 2)},
	})
	require.NoError(t, err)

	s := newState(obj)
	clone := s.clone()
	clone.borders[geometry.Right(geometry.NewPosition(0, 0))] = true
	delete(clone.possible[geometry.NewPosition(0, 1)], 1)

	_, stillUnknown := s.borders[geometry.Right(geometry.NewPosition(0, 0))]
	assert.False(t, stillUnknown)
	assert.Len(t, s.possible[geometry.NewPosition(0, 1)], 1)
}

func TestAddBordersBetweenKnownGalaxies_marksDifferingNeighbours(t *testing.T) {
	obj, err := objective.New(2, 1, []objective.Center{
		{Position: geometry.NewPosition(0, 0)},
		{Position: geometry.NewPosition(0, 2)},
	})
	require.NoError(t, err)

	s := newState(obj)
	changed, err := s.addBordersBetweenKnownGalaxies()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, s.borders[geometry.Right(geometry.NewPosition(0, 0))])
}
