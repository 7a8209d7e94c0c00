// Package geometry provides the primitives every other package in this
// module builds on: grid positions, the half-step lattice used to place
// galaxy centers, borders between adjacent cells, axis-aligned rectangles,
// and the 2D vectors used for signed-angle shape analysis.
//
// Nothing in this package knows about galaxies or universes. It is the
// leaf layer: positions, borders and rectangles are plain comparable
// values, safe to use as map keys, and vectors are float64 pairs with the
// handful of operations swirl/curl/winding-tree analysis need.
package geometry
