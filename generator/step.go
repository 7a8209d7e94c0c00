package generator

import (
	"math/rand"

	"github.com/katalvlaran/laniakea/galaxy"
	"github.com/katalvlaran/laniakea/geometry"
	"github.com/katalvlaran/laniakea/universe"
)

// GenerateStep performs one local edit on u: it picks a random cell p1
// and a random neighbouring cell p2 not already in p1's galaxy, then
// grows p1's galaxy to include p2 (and, if needed, a third cell p3) just
// far enough to restore symmetry. It reports whether an edit was made;
// u is left valid whether or not it returns true.
func GenerateStep(u *universe.Universe, rng *rand.Rand) bool {
	p1 := randomPosition(*u, rng)

	candidates := u.AdjacentNonNeighbours(p1)
	if len(candidates) == 0 {
		return false
	}
	p2 := candidates[rng.Intn(len(candidates))]

	g1 := u.GetGalaxy(p1)
	g1WithP2 := g1.WithPosition(p2)
	if g1WithP2.IsSymmetric() {
		// Absorbing p2 alone keeps g1 symmetric; just detach p2 from
		// whatever it belonged to and join it to p1.
		g2 := u.GetGalaxy(p2)
		u.RemovePositionsFromGalaxy(g2, []geometry.Position{p2})
		u.MakeNeighbours(p1, p2)
		return true
	}

	p3, ok := pickP3(u, g1, g1WithP2, p2, rng)
	if !ok {
		return false
	}

	if u.GalaxyID(p2) == u.GalaxyID(p3) {
		g := u.GetGalaxy(p2)
		u.RemovePositionsFromGalaxy(g, []geometry.Position{p2, p3})
	} else {
		g2 := u.GetGalaxy(p2)
		g3 := u.GetGalaxy(p3)
		u.RemovePositionsFromGalaxy(g2, []geometry.Position{p2})
		u.RemovePositionsFromGalaxy(g3, []geometry.Position{p3})
	}
	u.MakeNeighbours(p1, p2)
	u.MakeNeighbours(p1, p3)
	return true
}

// pickP3 finds every cell that would make g1WithP2 symmetric once added,
// and picks one uniformly at random: g1's own mirror of p2 (if in
// bounds), plus any adjacent non-neighbour of p2 that restores symmetry.
func pickP3(u *universe.Universe, g1, g1WithP2 galaxy.Galaxy, p2 geometry.Position, rng *rand.Rand) (geometry.Position, bool) {
	var candidates []geometry.Position

	mirror := g1.MirrorPosition(p2)
	if u.IsInside(mirror) {
		candidates = append(candidates, mirror)
	}
	for _, p3 := range u.AdjacentNonNeighbours(p2) {
		if g1WithP2.WithPosition(p3).IsSymmetric() {
			candidates = append(candidates, p3)
		}
	}

	if len(candidates) == 0 {
		return geometry.Position{}, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// randomPosition picks a uniformly random cell within u's bounds.
func randomPosition(u universe.Universe, rng *rand.Rand) geometry.Position {
	row := rng.Intn(u.Height())
	col := rng.Intn(u.Width())
	return geometry.NewPosition(row, col)
}
