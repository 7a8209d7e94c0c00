package board

import (
	"sort"

	"github.com/katalvlaran/laniakea/geometry"
)

func sortBorders(borders []geometry.Border) {
	sort.Slice(borders, func(i, j int) bool { return borders[i].Less(borders[j]) })
}
