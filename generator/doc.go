// Package generator builds random, solvable galaxy puzzles.
//
// Generate starts from a universe of singleton galaxies and repeatedly
// applies GenerateStep, a single local edit (merge one cell into a
// neighbouring galaxy, restoring symmetry along the way) that either
// succeeds and leaves the universe valid, or fails and leaves it
// untouched. Each iteration tries several candidate steps from the same
// starting state (best-of-k branching) and keeps whichever survivor
// scores highest, favoring visually pleasing galaxies over merely valid
// ones.
package generator
