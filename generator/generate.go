package generator

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/katalvlaran/laniakea/universe"
)

// Generate builds a random, valid width x height universe, seeded for
// reproducibility. It logs the seed it was given, so anyone needing to
// reproduce a specific run can pass that seed back in.
//
// Starting from every cell its own galaxy, it performs width*height*10
// best-of-k branching iterations (overridable via WithIterations and
// WithBranches), each one cloning the current universe k times,
// attempting one GenerateStep per clone, and keeping whichever
// successful clone scores highest — or the unchanged universe if no
// clone succeeded.
func Generate(width, height int, seed int64, opts ...Option) (universe.Universe, error) {
	if width <= 0 || height <= 0 {
		return universe.Universe{}, fmt.Errorf("generator: Generate(%d, %d): %w", width, height, ErrInvalidDimensions)
	}

	cfg := newConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	iterations := cfg.iterations
	if iterations == 0 {
		iterations = width * height * defaultIterationsPerCell
	}

	log.Printf("generator: seed %d", seed)
	rng := rand.New(rand.NewSource(seed))

	u := universe.New(width, height)
	for i := 0; i < iterations; i++ {
		u = bestOfBranches(u, rng, cfg.branches)
	}

	if !u.IsValid() {
		return universe.Universe{}, fmt.Errorf("generator: Generate: %w", ErrInvariantViolated)
	}
	return u, nil
}

// bestOfBranches tries branches independent clones of u, each starting
// from the same state, keeps the ones where GenerateStep succeeded, and
// returns whichever of those scores highest. If none succeeded, u itself
// is returned unchanged.
func bestOfBranches(u universe.Universe, rng *rand.Rand, branches int) universe.Universe {
	var best universe.Universe
	bestScore := 0.0
	found := false

	for i := 0; i < branches; i++ {
		candidate := u.Clone()
		if !GenerateStep(&candidate, rng) {
			continue
		}
		score := candidate.Score()
		if !found || score > bestScore {
			best, bestScore, found = candidate, score, true
		}
	}

	if !found {
		return u
	}
	return best
}
