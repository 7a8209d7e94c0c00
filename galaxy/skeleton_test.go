package galaxy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/laniakea/geometry"
)

func TestGalaxy_Skeleton_KnownShapes(t *testing.T) {
	cases := []struct {
		name     string
		original string
		expected string
	}{
		{
			"2x3 block",
			"▉▉▉\n" +
				"▉▉▉",
			" ▉▉\n" +
				"▉▉",
		},
		{
			"3x3 block",
			"▉▉▉\n" +
				"▉▉▉\n" +
				"▉▉▉",
			" ▉\n" +
				"▉▉▉\n" +
				" ▉",
		},
		{
			"4x4 block",
			"▉▉▉▉\n" +
				"▉▉▉▉\n" +
				"▉▉▉▉\n" +
				"▉▉▉▉",
			"  ▉\n" +
				" ▉▉▉\n" +
				"▉▉▉\n" +
				" ▉",
		},
		{
			"5x5 block",
			"▉▉▉▉▉\n" +
				"▉▉▉▉▉\n" +
				"▉▉▉▉▉\n" +
				"▉▉▉▉▉\n" +
				"▉▉▉▉▉",
			"  ▉\n" +
				"  ▉\n" +
				"▉▉▉▉▉\n" +
				"  ▉\n" +
				"  ▉",
		},
		{
			"pinwheel",
			"▉▉ ▉▉\n" +
				"▉ ▉▉▉▉\n" +
				"▉▉▉▉ ▉\n" +
				" ▉▉ ▉▉",
			"▉▉  ▉\n" +
				"▉ ▉▉▉▉\n" +
				"▉▉▉▉ ▉\n" +
				" ▉  ▉▉",
		},
		{
			"diamond with fat arms",
			"  ▉\n" +
				" ▉▉▉\n" +
				"▉▉▉ ▉\n" +
				"▉ ▉▉▉\n" +
				" ▉▉▉\n" +
				"  ▉",
			"  ▉\n" +
				"  ▉▉\n" +
				"▉▉▉ ▉\n" +
				"▉ ▉▉▉\n" +
				" ▉▉\n" +
				"  ▉",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual := fromDiagram(tc.original).Skeleton()
			expected := fromDiagram(tc.expected)
			assert.Equal(t, expected.Positions(), actual.Positions())
		})
	}
}

func TestGalaxy_Skeleton_IsASubsetThatKeepsTheFootprint(t *testing.T) {
	shapes := []Galaxy{
		FromRectangle(geometry.NewRectangle(4, 6)),
		fromDiagram(
			" ▉▉▉\n" +
				"▉▉\n" +
				"▉▉ ▉▉▉\n" +
				"▉▉ ▉ ▉▉\n" +
				" ▉▉▉ ▉▉\n" +
				"     ▉▉\n" +
				"   ▉▉▉"),
	}
	for _, g := range shapes {
		skeleton := g.Skeleton()
		assert.LessOrEqual(t, skeleton.Size(), g.Size())
		for _, p := range skeleton.Positions() {
			assert.True(t, g.ContainsPosition(p))
		}
		assert.True(t, skeleton.IsConnected())
		assert.True(t, skeleton.ContainsCenter())
	}
}
