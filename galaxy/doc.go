// Package galaxy implements the Galaxy type: a set of grid positions that
// forms one region of a Tentai Show puzzle, together with the shape
// analysis used both to score generated puzzles and to render them.
//
// A galaxy is a set of cell positions with a half-step center (see
// geometry.Classify). A *valid* galaxy is non-empty, 4-connected, contains
// its own center, and is symmetric under 180-degree rotation about that
// center. Most methods here are happy to operate on galaxies that don't
// (yet) satisfy those invariants — the generator builds them up
// incrementally — but callers that need a finished galaxy should check
// IsValid first.
package galaxy
