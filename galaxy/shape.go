package galaxy

import "github.com/katalvlaran/laniakea/geometry"

// Swirl measures how consistently the galaxy curls in one rotational
// direction around its center. It sums, for every non-root cell, the
// signed angle from each hamming-closer neighbour's direction to its own —
// angles that agree in sign (consistent curl) add up; a straight or
// criss-crossing shape cancels towards zero.
func (g Galaxy) Swirl() float64 {
	distances := g.HammingDistances()
	center := geometry.FromHalfStepCenter(g.Center())
	vectors := make(map[geometry.Position]geometry.Vector, g.Size())
	for p := range g.positions {
		vectors[p] = geometry.FromPosition(p).Sub(center)
	}

	var swirl float64
	for p := range g.positions {
		distance := distances[p]
		if distance == 0 {
			continue
		}
		v := vectors[p]
		for _, n := range g.Neighbours(p) {
			if distances[n] >= distance {
				continue
			}
			parentVector := vectors[n]
			if parentVector.IsZero() {
				continue
			}
			swirl += parentVector.AngleTo(v)
		}
	}
	return swirl
}

// CumulativeSwirl is an alternative curl metric that, instead of summing
// per-edge angles once, propagates an averaged running swirl outward from
// the footprint: a cell with several parents at different depths
// contributes the average of the swirl each path would have produced.
// It is not used by Score; it exists for callers that want a smoother
// curl signal than Swirl's per-edge sum.
func (g Galaxy) CumulativeSwirl() float64 {
	if g.IsEmpty() {
		return 0
	}
	center := geometry.FromHalfStepCenter(g.Center())
	partialSwirls := make(map[geometry.Position][]float64, g.Size())
	queue := make([]geometry.Position, 0, g.Size())
	for _, p := range geometry.FootprintCells(g.Center()) {
		partialSwirls[p] = []float64{0}
		queue = append(queue, p)
	}
	var cumulative float64
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		v := geometry.FromPosition(p)
		partials := partialSwirls[p]
		var sum float64
		for _, s := range partials {
			sum += s
		}
		swirl := sum / float64(len(partials))
		cumulative += swirl
		for _, n := range g.Neighbours(p) {
			angle := v.Sub(center).AngleTo(geometry.FromPosition(n).Sub(center))
			if _, ok := partialSwirls[n]; !ok {
				queue = append(queue, n)
			}
			partialSwirls[n] = append(partialSwirls[n], swirl+angle)
		}
	}
	return cumulative
}

// Curl measures how sharply the galaxy's arms bend: each cell's outward
// "flow" direction is the normalized sum of the directions from each of
// its hamming-closer neighbours to it (with the footprint's flow seeded from the
// center outward), and Curl sums the signed angle between each parent's
// flow and each child's flow. A shape whose arms run straight outward
// without bending scores near zero.
func (g Galaxy) Curl() float64 {
	distances := g.HammingDistances()
	type childSet struct {
		children []geometry.Position
	}
	childrenMap := make(map[geometry.Position]childSet, g.Size())
	for p := range g.positions {
		distance := distances[p]
		var children []geometry.Position
		for _, n := range g.Neighbours(p) {
			if distances[n] == distance+1 {
				children = append(children, n)
			}
		}
		childrenMap[p] = childSet{children: children}
	}

	flows := make(map[geometry.Position]geometry.Vector)
	center := g.Center()
	parentVector := geometry.FromHalfStepCenter(center)
	for _, child := range geometry.FootprintCells(center) {
		v := geometry.FromPosition(child).Sub(parentVector).Normalized()
		flows[child] = flows[child].Add(v)
	}
	for parent, set := range childrenMap {
		parentV := geometry.FromPosition(parent)
		for _, child := range set.children {
			v := geometry.FromPosition(child).Sub(parentV).Normalized()
			flows[child] = flows[child].Add(v)
		}
	}
	for p, flow := range flows {
		flows[p] = flow.Normalized()
	}

	var curl float64
	for parent, set := range childrenMap {
		parentFlow := flows[parent]
		for _, child := range set.children {
			curl += parentFlow.AngleTo(flows[child])
		}
	}
	return curl
}

// thickness returns the average number of galaxy-internal neighbours each
// position has.
func (g Galaxy) thickness() float64 {
	if g.IsEmpty() {
		return 0
	}
	var total float64
	for p := range g.positions {
		total += float64(len(g.Neighbours(p)))
	}
	return total / float64(g.Size())
}
