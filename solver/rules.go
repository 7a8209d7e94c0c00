package solver

import (
	"github.com/katalvlaran/laniakea/geometry"
	"github.com/katalvlaran/laniakea/objective"
)

// addBordersBetweenKnownGalaxies is rule 1: two orthogonally adjacent
// cells that are each certain of their galaxy identifier must have a
// border between them iff those identifiers differ.
func (s *state) addBordersBetweenKnownGalaxies() (bool, error) {
	changed := false
	for _, p := range s.allPositions() {
		idP, ok := s.singleID(p)
		if !ok {
			continue
		}
		for _, q := range p.Adjacent() {
			if q.Row < 0 || q.Row >= s.height || q.Col < 0 || q.Col >= s.width {
				continue
			}
			idQ, ok := s.singleID(q)
			if !ok {
				continue
			}
			border := geometry.NewBorder(p, q)
			wasChanged, contradiction := s.setBorder(border, idP != idQ)
			if contradiction {
				return false, ErrContradiction
			}
			changed = changed || wasChanged
		}
	}
	return changed, nil
}

// mirrorBorders is rule 2: once a cell is certainly a member of some
// galaxy, the four borders around it must mirror, through that galaxy's
// center, the four borders around the mirrored cell.
func (s *state) mirrorBorders() (bool, error) {
	changed := false
	for _, p := range s.allPositions() {
		id, ok := s.singleID(p)
		if !ok {
			continue
		}
		center := s.centers[id].Position
		mirror := p.MirrorThrough(center)
		if mirror.Row < 0 || mirror.Row >= s.height || mirror.Col < 0 || mirror.Col >= s.width {
			continue
		}

		pairs := [4][2]geometry.Border{
			{geometry.Up(p), geometry.Down(mirror)},
			{geometry.Left(p), geometry.Right(mirror)},
			{geometry.Right(p), geometry.Left(mirror)},
			{geometry.Down(p), geometry.Up(mirror)},
		}
		for _, pair := range pairs {
			wasChanged, contradiction := s.mirrorBorderPair(pair[0], pair[1])
			if contradiction {
				return false, ErrContradiction
			}
			changed = changed || wasChanged
		}
	}
	return changed, nil
}

// mirrorBorderPair propagates a known value from either side of a mirror
// pair to the other, reporting a contradiction if both sides are known
// and disagree.
func (s *state) mirrorBorderPair(a, b geometry.Border) (changed, contradiction bool) {
	av, aok := s.borders[a]
	bv, bok := s.borders[b]
	switch {
	case aok && bok:
		return false, av != bv
	case aok:
		s.borders[b] = av
		return true, false
	case bok:
		s.borders[a] = bv
		return true, false
	default:
		return false, false
	}
}

// excludeUnreachableGalaxies is rule 3: a cell can belong to galaxy id
// only if it is reachable from that galaxy's footprint by crossing
// borders that aren't known true, staying only on cells that still
// consider id possible.
func (s *state) excludeUnreachableGalaxies() (bool, error) {
	changed := false
	for id, c := range s.centers {
		reachable := s.reachableCells(id, c)
		for _, p := range s.allPositions() {
			ids := s.possible[p]
			if _, present := ids[id]; !present {
				continue
			}
			if _, ok := reachable[p]; ok {
				continue
			}
			delete(ids, id)
			changed = true
			if len(ids) == 0 {
				return false, ErrContradiction
			}
		}
	}
	return changed, nil
}

func (s *state) reachableCells(id galaxyID, c objective.Center) map[geometry.Position]struct{} {
	visited := make(map[geometry.Position]struct{})
	queue := geometry.FootprintCells(c.Position)
	for _, p := range queue {
		if _, ok := s.possible[p][id]; ok {
			visited[p] = struct{}{}
		}
	}
	for i := 0; i < len(queue); i++ {
		p := queue[i]
		if _, ok := visited[p]; !ok {
			continue
		}
		for _, q := range p.Adjacent() {
			if q.Row < 0 || q.Row >= s.height || q.Col < 0 || q.Col >= s.width {
				continue
			}
			if _, ok := visited[q]; ok {
				continue
			}
			if _, ok := s.possible[q][id]; !ok {
				continue
			}
			if value, known := s.borders[geometry.NewBorder(p, q)]; known && value {
				continue
			}
			visited[q] = struct{}{}
			queue = append(queue, q)
		}
	}
	return visited
}

// removeImpossibleGalaxyMirrors is rule 4: if a cell might belong to
// galaxy id, its mirror image through id's center must exist on the
// grid and must itself still consider id possible; otherwise id is
// impossible at the original cell. Removals are snapshotted first and
// applied after the scan, so mutating possible sets mid-scan can't make
// the result order-dependent.
func (s *state) removeImpossibleGalaxyMirrors() (bool, error) {
	type removal struct {
		p  geometry.Position
		id galaxyID
	}
	var removals []removal
	for _, p := range s.allPositions() {
		for id := range s.possible[p] {
			center := s.centers[id].Position
			mirror := p.MirrorThrough(center)
			if mirror.Row < 0 || mirror.Row >= s.height || mirror.Col < 0 || mirror.Col >= s.width {
				removals = append(removals, removal{p, id})
				continue
			}
			if _, ok := s.possible[mirror][id]; !ok {
				removals = append(removals, removal{p, id})
			}
		}
	}
	if len(removals) == 0 {
		return false, nil
	}
	for _, r := range removals {
		delete(s.possible[r.p], r.id)
		if len(s.possible[r.p]) == 0 {
			return false, ErrContradiction
		}
	}
	return true, nil
}
