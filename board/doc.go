// Package board implements Board: the external, galaxy-agnostic view of a
// puzzle's walls, serialized as two dense boolean matrices
// (vertical_borders[H][W-1], horizontal_borders[H-1][W]) plus the implicit
// frame. This is the type a rendering UI, a solver's caller, or a
// candidate-board validator all speak; it never carries galaxy
// identifiers, only the wall geometry solver.Solve and universe.Universe
// both ultimately reduce to.
package board
