package objective

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/laniakea/galaxy"
	"github.com/katalvlaran/laniakea/geometry"
	"github.com/katalvlaran/laniakea/universe"
)

func TestFromUniverse_oneCenterPerGalaxy(t *testing.T) {
	u := universe.FromGalaxies([]galaxy.Galaxy{
		galaxy.FromPositions(geometry.NewPosition(0, 0), geometry.NewPosition(1, 0)),
		galaxy.FromPositions(geometry.NewPosition(0, 1), geometry.NewPosition(1, 1)),
	})
	o := FromUniverse(u)
	assert.Equal(t, 2, o.Count())
	for _, c := range o.Centers() {
		assert.False(t, c.HasSize())
	}
	assert.Empty(t, o.Walls())
}
