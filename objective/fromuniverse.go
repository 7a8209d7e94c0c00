package objective

import (
	"sort"

	"github.com/katalvlaran/laniakea/universe"
)

// FromUniverse extracts the Objective implied by a finished universe:
// one center per galaxy, taken from galaxy.Center(), with sizes left
// unset. A universe produced by generator.Generate
// is already valid, so the footprint-overlap and bounds checks New
// performs can never fail here; skipping them avoids paying for a
// guarantee the caller already holds.
func FromUniverse(u universe.Universe) Objective {
	galaxies := u.GetGalaxies()
	centers := make([]Center, 0, len(galaxies))
	for _, g := range galaxies {
		centers = append(centers, Center{Position: g.Center()})
	}
	sort.Slice(centers, func(i, j int) bool { return centers[i].Position.Less(centers[j].Position) })
	return Objective{width: u.Width(), height: u.Height(), centers: centers}
}
