package galaxy

import "github.com/katalvlaran/laniakea/geometry"

// HammingDistances returns, for every position in the galaxy, its distance
// (in orthogonal steps) to the nearest cell of the galaxy's footprint —
// the set of one, two or four cells its half-step center lands in (see
// geometry.FootprintCells). Footprint cells themselves have distance 0.
//
// This is a multi-source breadth-first search seeded from the footprint,
// walked with an explicit FIFO queue rather than recursion.
func (g Galaxy) HammingDistances() map[geometry.Position]int {
	distances := make(map[geometry.Position]int, g.Size())
	queue := make([]geometry.Position, 0, g.Size())
	for _, p := range geometry.FootprintCells(g.Center()) {
		distances[p] = 0
		queue = append(queue, g.Neighbours(p)...)
	}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if _, done := distances[p]; done {
			continue
		}
		neighbours := g.Neighbours(p)
		minNeighbourDistance := -1
		for _, n := range neighbours {
			if d, ok := distances[n]; ok && (minNeighbourDistance == -1 || d < minNeighbourDistance) {
				minNeighbourDistance = d
			}
		}
		distances[p] = minNeighbourDistance + 1
		for _, n := range neighbours {
			if _, ok := distances[n]; !ok {
				queue = append(queue, n)
			}
		}
	}
	return distances
}

// parentCandidates maps every position to the neighbours that are exactly
// one hamming-step closer to the center. Root positions (the footprint
// itself) map to an empty slice.
func (g Galaxy) parentCandidates() map[geometry.Position][]geometry.Position {
	distances := g.HammingDistances()
	candidates := make(map[geometry.Position][]geometry.Position, g.Size())
	for p := range g.positions {
		distance := distances[p]
		var parents []geometry.Position
		for _, n := range g.Neighbours(p) {
			if distances[n]+1 == distance {
				parents = append(parents, n)
			}
		}
		candidates[p] = parents
	}
	return candidates
}
