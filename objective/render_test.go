package objective

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/laniakea/geometry"
)

const smallObjectiveText = "┌───┬───┬───┬───┐\n" +
	"│             ● │\n" +
	"├   ·   · ● ·   ┤\n" +
	"│               │\n" +
	"├ ● ·   ·   ·   ┤\n" +
	"│     ●         │\n" +
	"├   ·   ·   ●   ┤\n" +
	"│               │\n" +
	"└───┴───┴───┴───┘"

func TestString_rendersCentersOnTheDoubledLattice(t *testing.T) {
	o, err := New(4, 4, []Center{
		{Position: geometry.NewPosition(0, 6)},
		{Position: geometry.NewPosition(1, 4)},
		{Position: geometry.NewPosition(3, 0)},
		{Position: geometry.NewPosition(4, 2)},
		{Position: geometry.NewPosition(5, 5)},
	})
	require.NoError(t, err)
	assert.Equal(t, smallObjectiveText, o.String())
}

func TestString_emptyObjectiveIsJustTheGrid(t *testing.T) {
	o, err := New(2, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "┌───┬───┐\n│       │\n└───┴───┘", o.String())
}

func TestFromString_roundTrips(t *testing.T) {
	o, err := FromString(smallObjectiveText)
	require.NoError(t, err)
	assert.Equal(t, 4, o.Width())
	assert.Equal(t, 4, o.Height())
	assert.Equal(t, 5, o.Count())
	assert.Equal(t, smallObjectiveText, o.String())
}

func TestFromString_rejectsMalformedText(t *testing.T) {
	_, err := FromString("not an objective")
	assert.ErrorIs(t, err, ErrMalformedText)

	_, err = FromString("┌─┐\n│ │\n└─┘")
	assert.ErrorIs(t, err, ErrMalformedText)
}
