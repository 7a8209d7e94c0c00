package objective

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/laniakea/geometry"
)

func TestNew_rejectsNonPositiveDimensions(t *testing.T) {
	_, err := New(0, 4, nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = New(4, -1, nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestNew_rejectsOutOfBoundsCenter(t *testing.T) {
	_, err := New(2, 2, []Center{{Position: geometry.NewPosition(10, 10)}})
	assert.ErrorIs(t, err, ErrCenterOutOfBounds)
}

func TestNew_rejectsOverlappingFootprints(t *testing.T) {
	_, err := New(2, 3, []Center{
		{Position: geometry.NewPosition(1, 1)}, // footprint: (0,0),(0,1),(1,0),(1,1)
		{Position: geometry.NewPosition(3, 1)}, // footprint: (1,0),(1,1),(2,0),(2,1)
	})
	assert.ErrorIs(t, err, ErrOverlappingFootprints)
}

func TestNew_acceptsValidObjectiveWithWalls(t *testing.T) {
	wall := geometry.Right(geometry.NewPosition(0, 0))
	o, err := New(4, 4, []Center{
		{Position: geometry.NewPosition(0, 0), Size: 1},
		{Position: geometry.NewPosition(6, 6)},
	}, WithWalls(wall))
	require.NoError(t, err)
	assert.Equal(t, 4, o.Width())
	assert.Equal(t, 4, o.Height())
	assert.Equal(t, 2, o.Count())
	assert.Equal(t, []geometry.Border{wall}, o.Walls())
	assert.True(t, o.Centers()[0].HasSize())
	assert.False(t, o.Centers()[1].HasSize())
}
