package galaxy

import (
	"sort"

	"github.com/katalvlaran/laniakea/geometry"
)

// ScoreSpanningTree sums the signed angle, about the galaxy's center, from
// every parent to its child. A tree that winds consistently in one
// direction scores far from zero; a tree that zig-zags cancels out near
// zero.
func (g Galaxy) ScoreSpanningTree(tree Tree) float64 {
	center := geometry.FromHalfStepCenter(g.Center())
	var score float64
	tree.Each(func(child geometry.Position, parent geometry.Position, ok bool) {
		if !ok {
			return
		}
		parentVector := geometry.FromPosition(parent).Sub(center)
		childVector := geometry.FromPosition(child).Sub(center)
		score += parentVector.AngleTo(childVector)
	})
	return score
}

// SpanningTree builds a tree rooted at the galaxy's footprint, choosing
// one hamming-closer neighbour as each position's parent. For a galaxy
// that is mirror-symmetric about its vertical axis, the parent is the
// candidate with the smallest absolute angle (the straightest step
// outward). Otherwise two trees are built, one preferring the largest
// signed angle (clockwise) and one the smallest (counter-clockwise), and
// the one whose ScoreSpanningTree has the larger magnitude is returned;
// on a tie the clockwise tree is returned.
func (g Galaxy) SpanningTree() Tree {
	candidates := g.parentCandidates()
	center := geometry.FromHalfStepCenter(g.Center())

	build := func(better func(a, b float64) bool) Tree {
		tree := NewTree()
		for child, parents := range candidates {
			if len(parents) == 0 {
				tree.Insert(child, nil)
				continue
			}
			childVector := geometry.FromPosition(child).Sub(center)
			best := parents[0]
			bestAngle := geometry.FromPosition(best).Sub(center).AngleTo(childVector)
			for _, candidate := range parents[1:] {
				candidateVector := geometry.FromPosition(candidate).Sub(center)
				angle := candidateVector.AngleTo(childVector)
				if better(angle, bestAngle) {
					best = candidate
					bestAngle = angle
				}
			}
			parent := best
			tree.Insert(child, &parent)
		}
		return tree
	}

	if g.isMirrorSymmetric() {
		return build(func(a, b float64) bool { return absFloat(a) < absFloat(b) })
	}

	clockwise := build(func(a, b float64) bool { return -a < -b })
	counterClockwise := build(func(a, b float64) bool { return a < b })
	if absFloat(g.ScoreSpanningTree(counterClockwise)) > absFloat(g.ScoreSpanningTree(clockwise)) {
		return counterClockwise
	}
	return clockwise
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// WindingNode pairs a position's accumulated winding number with its
// chosen parent, as produced by WindingSpanningTree.
type WindingNode struct {
	WindingNumber float64
	Parent        geometry.Position
	HasParent     bool
}

// WindingSpanningTree builds a tree outward from the galaxy's footprint,
// at each round assigning every not-yet-placed neighbour to whichever
// already-placed neighbour gives it the largest-magnitude cumulative
// winding number. Unlike SpanningTree (which only looks at each node's own
// candidates), this produces a tree that favors a single consistently
// curling path from root to leaf.
func (g Galaxy) WindingSpanningTree() map[geometry.Position]WindingNode {
	center := geometry.FromHalfStepCenter(g.Center())
	nodes := make(map[geometry.Position]WindingNode, g.Size())
	queue := make([]geometry.Position, 0, g.Size())
	for _, p := range geometry.FootprintCells(g.Center()) {
		nodes[p] = WindingNode{}
		queue = append(queue, p)
	}
	for len(nodes) != g.Size() {
		type candidate struct {
			windingNumber float64
			parent        geometry.Position
		}
		roundCandidates := make(map[geometry.Position]candidate)
		for len(queue) > 0 {
			parent := queue[0]
			queue = queue[1:]
			parentNode := nodes[parent]
			parentVector := geometry.FromPosition(parent).Sub(center)
			for _, child := range g.Neighbours(parent) {
				if _, placed := nodes[child]; placed {
					continue
				}
				childVector := geometry.FromPosition(child).Sub(center)
				windingNumber := parentNode.WindingNumber + parentVector.AngleTo(childVector)
				existing, has := roundCandidates[child]
				if !has || absFloat(windingNumber) > absFloat(existing.windingNumber) {
					roundCandidates[child] = candidate{windingNumber: windingNumber, parent: parent}
				}
			}
		}
		children := make([]geometry.Position, 0, len(roundCandidates))
		for child := range roundCandidates {
			children = append(children, child)
		}
		sort.Slice(children, func(i, j int) bool { return children[i].Less(children[j]) })
		for _, child := range children {
			c := roundCandidates[child]
			nodes[child] = WindingNode{WindingNumber: c.windingNumber, Parent: c.parent, HasParent: true}
			queue = append(queue, child)
		}
	}
	return nodes
}

// Arms partitions the galaxy's spanning tree into root-to-leaf paths: one
// per leaf, each walked from the leaf up to (but not reusing) an ancestor
// already claimed by another arm.
func (g Galaxy) Arms() [][]geometry.Position {
	tree := g.SpanningTree()
	distances := g.HammingDistances()

	children := make(map[geometry.Position]struct{})
	parents := make(map[geometry.Position]struct{})
	for _, p := range tree.Positions() {
		children[p] = struct{}{}
		if parent, ok := tree.GetParent(p); ok {
			parents[parent] = struct{}{}
		}
	}
	var leaves []geometry.Position
	for p := range children {
		if _, isParent := parents[p]; !isParent {
			leaves = append(leaves, p)
		}
	}
	sort.Slice(leaves, func(i, j int) bool { return distances[leaves[i]] < distances[leaves[j]] })

	var arms [][]geometry.Position
	visited := make(map[geometry.Position]struct{})
	for i := len(leaves) - 1; i >= 0; i-- {
		position := leaves[i]
		arm := []geometry.Position{position}
		for {
			parent, ok := tree.GetParent(position)
			if !ok {
				break
			}
			if _, already := visited[parent]; already {
				break
			}
			visited[parent] = struct{}{}
			arm = append(arm, parent)
			position = parent
		}
		arms = append(arms, arm)
	}
	return arms
}
