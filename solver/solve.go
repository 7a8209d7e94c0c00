package solver

import (
	"sort"

	"github.com/katalvlaran/laniakea/geometry"
	"github.com/katalvlaran/laniakea/objective"
)

// Solution is the wall set the solver derived for an objective.
type Solution struct {
	Walls []geometry.Border
}

// Solve derives the unique wall set implied by obj. It returns
// ErrContradiction if obj has no solution, or returns a propagation
// rule's own error if one occurs.
func Solve(obj objective.Objective) (Solution, error) {
	s := newState(obj)
	if err := s.solve(); err != nil {
		return Solution{}, err
	}
	return Solution{Walls: s.activeBorders()}, nil
}

// rules are run in order every round; the round restarts from the top
// whenever any rule reports a change, and the loop ends once a full pass
// changes nothing.
func (s *state) rules() []func() (bool, error) {
	return []func() (bool, error){
		s.addBordersBetweenKnownGalaxies,
		s.mirrorBorders,
		s.excludeUnreachableGalaxies,
		s.removeImpossibleGalaxyMirrors,
		s.assumeGalaxy,
	}
}

// solve runs the propagation rules to fixpoint, returning ErrContradiction
// (or a rule's own error) if the objective is unsatisfiable.
func (s *state) solve() error {
	for {
		anyChanged := false
		for _, rule := range s.rules() {
			changed, err := rule()
			if err != nil {
				return err
			}
			if changed {
				anyChanged = true
				break
			}
		}
		if !anyChanged {
			return nil
		}
	}
}

// activeBorders returns every border known true, sorted for determinism.
func (s *state) activeBorders() []geometry.Border {
	borders := make([]geometry.Border, 0, len(s.borders))
	for border, value := range s.borders {
		if value {
			borders = append(borders, border)
		}
	}
	sort.Slice(borders, func(i, j int) bool { return borders[i].Less(borders[j]) })
	return borders
}
