package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_emptyBoardsAreJustTheFrame(t *testing.T) {
	cases := []struct {
		width, height int
		want          string
	}{
		{1, 1, "┌─┐\n└─┘"},
		{2, 1, "┌───┐\n└───┘"},
		{1, 2, "┌─┐\n│ │\n└─┘"},
		{2, 2, "┌───┐\n│   │\n└───┘"},
		{3, 3, "┌─────┐\n│     │\n│     │\n└─────┘"},
	}
	for _, c := range cases {
		b, err := New(c.width, c.height)
		require.NoError(t, err)
		assert.Equal(t, c.want, b.String())
	}
}

func TestFromString_roundTrips(t *testing.T) {
	text := "┌───┬─┬───┬─┬─┬───┬─┐\n" +
		"├─┐ └─┼─┐ └─┴─┤   ├─┤\n" +
		"├─┤   └─┼───┐ └─┬─┘ │\n" +
		"├─┘   ┌─┘ ┌─┴─┬─┘   │\n" +
		"├─┐   ├───┤   │   ┌─┤\n" +
		"│ └─┐ └─┬─┘ ╷ │ ┌─┘ │\n" +
		"│   ├─┬─┘ ╶─┘ └─┤ ┌─┤\n" +
		"├─┐ ├─┤   ┌─╴ ┌─┴─┘ │\n" +
		"│ └─┘ └─┐ ╵ ┌─┤     │\n" +
		"├─┐ ┌─┐ ├─┐ ├─┤ ┌─┬─┤\n" +
		"└─┴─┴─┴─┴─┴─┴─┴─┴─┴─┘"

	b, err := FromString(text)
	require.NoError(t, err)
	assert.Equal(t, text, b.String())
}

func TestFromString_rejectsMalformedText(t *testing.T) {
	_, err := FromString("not a board")
	assert.ErrorIs(t, err, ErrMalformedText)
}
