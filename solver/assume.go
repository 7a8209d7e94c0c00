package solver

import (
	"sort"

	"github.com/katalvlaran/laniakea/geometry"
)

// assumeGalaxy is rule 5, the case-split fallback used once the other
// rules stall: it picks the least-ambiguous cell still undecided, tries
// each of its candidate identifiers in a cloned state, and recurses. A
// candidate that leads to contradiction is eliminated from the original
// state and the rule reports a change so the round-robin loop restarts
// from rule 1.
func (s *state) assumeGalaxy() (bool, error) {
	for _, p := range s.ambiguousPositions() {
		ids := sortedIDs(s.possible[p])
		for _, id := range ids {
			trial := s.clone()
			restrictTo(trial.possible[p], id)
			err := trial.solve()
			if err == nil {
				continue
			}
			if err != ErrContradiction {
				return false, err
			}
			delete(s.possible[p], id)
			if len(s.possible[p]) == 0 {
				return false, ErrContradiction
			}
			return true, nil
		}
	}
	return false, nil
}

// ambiguousPositions returns every cell with more than one remaining
// candidate, ordered by ascending candidate count and then by position,
// matching the original's stable sort over undecided cells.
func (s *state) ambiguousPositions() []geometry.Position {
	var positions []geometry.Position
	for _, p := range s.allPositions() {
		if len(s.possible[p]) > 1 {
			positions = append(positions, p)
		}
	}
	sort.SliceStable(positions, func(i, j int) bool {
		a, b := positions[i], positions[j]
		if len(s.possible[a]) != len(s.possible[b]) {
			return len(s.possible[a]) < len(s.possible[b])
		}
		return a.Less(b)
	})
	return positions
}

func sortedIDs(ids map[galaxyID]struct{}) []galaxyID {
	out := make([]galaxyID, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
