// Package solver derives the unique wall set implied by an objective.
//
// Solve holds, per cell, the set of galaxy identifiers that cell might
// still belong to, and a border -> {true, false, unknown} map. It runs a
// handful of propagation rules to fixpoint — confirmed borders between
// distinctly-identified neighbours, mirrored borders across a galaxy's
// center, BFS reachability pruning, and mirror-membership pruning — and
// falls back to a case-split assumption (clone the state, assume one
// identifier, recurse) only once plain propagation stalls.
package solver
