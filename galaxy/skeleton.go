package galaxy

import (
	"sort"

	"github.com/katalvlaran/laniakea/geometry"
)

// Skeleton returns the galaxy with its "fat" cells removed: corner cells
// whose two straight neighbours are both present and whose diagonal (the
// one that would round off the corner) is also present, and T-shaped
// cells with three straight neighbours whose corresponding pair of
// diagonals are present. Removing these peels back filled-in corners to
// reveal the thin, arm-like shape underneath, which Score and Arms use to
// reward long, spindly galaxies over blobby ones.
func (g Galaxy) Skeleton() Galaxy {
	skeleton := g.clone()
	center := skeleton.Center()
	footprint := make(map[geometry.Position]struct{})
	for _, p := range geometry.FootprintCells(center) {
		footprint[p] = struct{}{}
	}
	mirrorSymmetric := skeleton.isMirrorSymmetric()

	for {
		fat, ok := skeleton.findFatCell(footprint, cornerFatPatterns)
		if !ok {
			fat, ok = skeleton.findFatCell(footprint, tFatPatterns)
		}
		if !ok {
			break
		}
		skeleton.RemovePosition(fat)
		diagonalMirror := fat.MirrorThrough(center)
		skeleton.RemovePosition(diagonalMirror)
		horizontalMirror := geometry.NewPosition(fat.Row, diagonalMirror.Col)
		verticalMirror := geometry.NewPosition(diagonalMirror.Row, fat.Col)
		if mirrorSymmetric && !fat.IsAdjacentTo(horizontalMirror) && !fat.IsAdjacentTo(verticalMirror) {
			skeleton.RemovePosition(horizontalMirror)
			skeleton.RemovePosition(verticalMirror)
		}
	}
	return skeleton
}

type fatNeighbours struct {
	north, west, south, east bool
}

type fatPattern struct {
	neighbours fatNeighbours
	diagonals  func(p geometry.Position) []geometry.Position
}

var cornerFatPatterns = []fatPattern{
	{fatNeighbours{true, true, false, false}, func(p geometry.Position) []geometry.Position {
		return []geometry.Position{p.Up().Left()}
	}},
	{fatNeighbours{true, false, false, true}, func(p geometry.Position) []geometry.Position {
		return []geometry.Position{p.Up().Right()}
	}},
	{fatNeighbours{false, true, true, false}, func(p geometry.Position) []geometry.Position {
		return []geometry.Position{p.Down().Left()}
	}},
	{fatNeighbours{false, false, true, true}, func(p geometry.Position) []geometry.Position {
		return []geometry.Position{p.Down().Right()}
	}},
}

var tFatPatterns = []fatPattern{
	{fatNeighbours{false, true, true, true}, func(p geometry.Position) []geometry.Position {
		return []geometry.Position{p.Down().Left(), p.Down().Right()}
	}},
	{fatNeighbours{true, false, true, true}, func(p geometry.Position) []geometry.Position {
		return []geometry.Position{p.Up().Right(), p.Down().Right()}
	}},
	{fatNeighbours{true, true, false, true}, func(p geometry.Position) []geometry.Position {
		return []geometry.Position{p.Up().Left(), p.Up().Right()}
	}},
	{fatNeighbours{true, true, true, false}, func(p geometry.Position) []geometry.Position {
		return []geometry.Position{p.Up().Left(), p.Down().Left()}
	}},
}

// findFatCell scans the galaxy's positions, in sorted order, for the
// first one matching any of the given patterns.
func (g Galaxy) findFatCell(footprint map[geometry.Position]struct{}, patterns []fatPattern) (geometry.Position, bool) {
	positions := g.Positions()
	sort.Slice(positions, func(i, j int) bool { return positions[i].Less(positions[j]) })
	for _, p := range positions {
		if _, isFootprint := footprint[p]; isFootprint {
			continue
		}
		n := fatNeighbours{
			north: g.ContainsPosition(p.Up()),
			west:  g.ContainsPosition(p.Left()),
			south: g.ContainsPosition(p.Down()),
			east:  g.ContainsPosition(p.Right()),
		}
		for _, pattern := range patterns {
			if pattern.neighbours != n {
				continue
			}
			diagonals := pattern.diagonals(p)
			allPresent := true
			for _, d := range diagonals {
				if !g.ContainsPosition(d) {
					allPresent = false
					break
				}
			}
			if allPresent {
				return p, true
			}
		}
	}
	return geometry.Position{}, false
}
