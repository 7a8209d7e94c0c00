package galaxy

import "math"

// Score is an aesthetic fitness function used by the generator's
// best-of-k branching search. Higher scores favor galaxies with long,
// curling arms and the occasional hole; lower scores penalize large
// rectangular blobs, excess "fat", and oversized galaxies. Zig-zag
// galaxies (a degenerate shape — see IsZigZag) always score exactly 0.
func (g Galaxy) Score() float64 {
	if g.IsZigZag() {
		return 0
	}

	var score float64

	for _, rect := range g.Rectangles() {
		area := float64(rect.Area())
		score -= math.Pow(area, 2)
	}

	skeleton := g.Skeleton()
	const fatRateThreshold = 0.1
	fatAmount := g.Size() - skeleton.Size()
	fatRate := float64(fatAmount) / float64(g.Size())
	if fatRate > fatRateThreshold {
		score -= math.Pow(float64(fatAmount), 2)
	}

	score += math.Pow(g.Swirl(), 2)

	arms := skeleton.Arms()
	for _, arm := range arms {
		score += math.Pow(float64(len(arm)), 2)
	}

	longArms := 0
	for _, arm := range arms {
		if len(arm) > 1 {
			longArms++
		}
	}
	score += math.Pow(float64(longArms), 2.5)

	if g.Size() > 16 {
		score -= math.Pow(float64(g.Size()), 2)
	}

	score += float64(len(g.Holes())) * 10

	return score
}
